package trip

import "nomad/internal/ai"

// Aggregation helpers derive display summaries from a stored itinerary.
// All of them are pure and deterministic; nothing here is persisted.

// DailyBreakdown is the per-day cost split used by the expense view.
type DailyBreakdown struct {
	Day           int     `json:"day"`
	Activities    float64 `json:"activities"`
	Meals         float64 `json:"meals"`
	Accommodation float64 `json:"accommodation"`
	Total         float64 `json:"total"`
}

// DailyCosts computes the cost breakdown for each day in order.
func DailyCosts(days []ai.Day) []DailyBreakdown {
	out := make([]DailyBreakdown, 0, len(days))
	for _, d := range days {
		b := DailyBreakdown{Day: d.Number, Accommodation: d.Accommodation.EstimatedCost}
		for _, a := range d.Activities {
			b.Activities += a.EstimatedCost
		}
		for _, m := range d.Meals {
			b.Meals += m.EstimatedCost
		}
		b.Total = b.Activities + b.Meals + b.Accommodation
		out = append(out, b)
	}
	return out
}

// CategoryBreakdown is the whole-trip cost split per category.
type CategoryBreakdown struct {
	Activities    float64 `json:"activities"`
	Meals         float64 `json:"meals"`
	Accommodation float64 `json:"accommodation"`
	Total         float64 `json:"total"`
}

// CategoryTotals sums each cost category across the full itinerary.
func CategoryTotals(days []ai.Day) CategoryBreakdown {
	var c CategoryBreakdown
	for _, b := range DailyCosts(days) {
		c.Activities += b.Activities
		c.Meals += b.Meals
		c.Accommodation += b.Accommodation
	}
	c.Total = c.Activities + c.Meals + c.Accommodation
	return c
}

// TimeBreakdown allocates the trip's hours across activity types.
type TimeBreakdown struct {
	Activities float64 `json:"activities"`
	Meals      float64 `json:"meals"`
	Travel     float64 `json:"travel"`
	Rest       float64 `json:"rest"`
}

// TimeDistribution estimates where the hours of the trip go: two hours
// per activity, one per meal, one of travel between consecutive
// activities, and the remainder of each 24-hour day as rest.
func TimeDistribution(days []ai.Day) TimeBreakdown {
	var t TimeBreakdown
	for _, d := range days {
		activities := float64(len(d.Activities)) * 2
		meals := float64(len(d.Meals))
		var travel float64
		if n := len(d.Activities); n > 1 {
			travel = float64(n - 1)
		}
		t.Activities += activities
		t.Meals += meals
		t.Travel += travel
		if rest := 24 - (activities + meals + travel); rest > 0 {
			t.Rest += rest
		}
	}
	return t
}

// Summary bundles every derived view of one itinerary for the UI.
type Summary struct {
	Daily      []DailyBreakdown  `json:"daily"`
	Categories CategoryBreakdown `json:"categories"`
	Time       TimeBreakdown     `json:"time"`
}

// Summarize produces the full display summary for a trip.
func Summarize(t *Trip) Summary {
	return Summary{
		Daily:      DailyCosts(t.Days),
		Categories: CategoryTotals(t.Days),
		Time:       TimeDistribution(t.Days),
	}
}
