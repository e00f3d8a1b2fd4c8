package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var trailingCommaRe = regexp.MustCompile(`,\s*([}\]])`)

// ExtractJSON locates the JSON payload inside raw model text. The
// surrounding text may contain prose or markdown fences. The cleanup
// steps mirror what models actually emit: fenced blocks, trailing
// commas, and explanatory text around the object.
func ExtractJSON(raw string) (string, error) {
	s := strings.TrimSpace(raw)

	if i := strings.Index(s, "```json"); i >= 0 {
		s = s[i+len("```json"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	} else if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+len("```"):]
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}
	s = strings.TrimSpace(s)

	if json.Valid([]byte(s)) {
		return s, nil
	}

	// Remove trailing commas before } or ], then narrow to the outermost
	// object boundaries.
	s = trailingCommaRe.ReplaceAllString(s, "$1")
	first := strings.IndexByte(s, '{')
	last := strings.LastIndexByte(s, '}')
	if first == -1 || last == -1 || last <= first {
		return "", fmt.Errorf("%w: no JSON object found", ErrParse)
	}
	s = s[first : last+1]

	if !json.Valid([]byte(s)) {
		return "", fmt.Errorf("%w: invalid JSON", ErrParse)
	}
	return s, nil
}

// rawItinerary mirrors the requested schema with pointer cost fields so
// that a missing or non-numeric cost is distinguishable from zero.
type rawItinerary struct {
	Overview           string   `json:"trip_overview"`
	TotalEstimatedCost *float64 `json:"total_estimated_cost"`
	Days               []rawDay `json:"daily_itinerary"`
}

type rawDay struct {
	Number        *int             `json:"day"`
	Date          string           `json:"date"`
	Title         string           `json:"title"`
	Summary       string           `json:"summary"`
	Activities    []rawActivity    `json:"activities"`
	Meals         []rawMeal        `json:"meals"`
	Accommodation rawAccommodation `json:"accommodation"`
}

type rawActivity struct {
	Time          string   `json:"time"`
	Name          string   `json:"activity"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	EstimatedCost *float64 `json:"estimated_cost"`
	Duration      string   `json:"duration"`
}

type rawMeal struct {
	Type          string   `json:"type"`
	Restaurant    string   `json:"restaurant"`
	Cuisine       string   `json:"cuisine"`
	EstimatedCost *float64 `json:"estimated_cost"`
}

type rawAccommodation struct {
	Hotel         string   `json:"hotel"`
	Area          string   `json:"area"`
	EstimatedCost *float64 `json:"estimated_cost"`
}

// ParseItinerary validates and normalizes a raw model response into an
// Itinerary. It fails with ErrParse when no JSON is found, the day list
// is missing or empty, or a required cost field is absent or non-numeric.
// Day-count agreement with the requested date range is a business
// invariant checked by the trip validator, not here.
func ParseItinerary(raw string) (*Itinerary, error) {
	payload, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}

	var r rawItinerary
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(r.Days) == 0 {
		return nil, fmt.Errorf("%w: missing daily_itinerary", ErrParse)
	}

	it := &Itinerary{Overview: r.Overview, Days: make([]Day, 0, len(r.Days))}
	if r.TotalEstimatedCost != nil {
		it.TotalEstimatedCost = *r.TotalEstimatedCost
	}

	for i, d := range r.Days {
		day := Day{
			Number:  i + 1,
			Date:    d.Date,
			Title:   d.Title,
			Summary: d.Summary,
		}
		if d.Number != nil {
			day.Number = *d.Number
		}
		for _, a := range d.Activities {
			if a.EstimatedCost == nil {
				return nil, fmt.Errorf("%w: activity %q on day %d has no estimated_cost", ErrParse, a.Name, day.Number)
			}
			day.Activities = append(day.Activities, Activity{
				Time:          a.Time,
				Name:          a.Name,
				Description:   a.Description,
				Location:      a.Location,
				EstimatedCost: *a.EstimatedCost,
				Duration:      a.Duration,
			})
		}
		for _, m := range d.Meals {
			if m.EstimatedCost == nil {
				return nil, fmt.Errorf("%w: %s meal on day %d has no estimated_cost", ErrParse, m.Type, day.Number)
			}
			day.Meals = append(day.Meals, Meal{
				Type:          m.Type,
				Restaurant:    m.Restaurant,
				Cuisine:       m.Cuisine,
				EstimatedCost: *m.EstimatedCost,
			})
		}
		day.Accommodation = Accommodation{
			Hotel: d.Accommodation.Hotel,
			Area:  d.Accommodation.Area,
		}
		if d.Accommodation.EstimatedCost != nil {
			day.Accommodation.EstimatedCost = *d.Accommodation.EstimatedCost
		}
		it.Days = append(it.Days, day)
	}
	return it, nil
}

// ParseHotels extracts the hotel list from a model response.
func ParseHotels(raw string) ([]HotelResult, error) {
	payload, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}
	var r struct {
		Hotels []HotelResult `json:"hotels"`
	}
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(r.Hotels) == 0 {
		return nil, fmt.Errorf("%w: missing hotels", ErrParse)
	}
	return r.Hotels, nil
}

// ParseRestaurants extracts the restaurant list from a model response.
func ParseRestaurants(raw string) ([]RestaurantResult, error) {
	payload, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}
	var r struct {
		Restaurants []RestaurantResult `json:"restaurants"`
	}
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if len(r.Restaurants) == 0 {
		return nil, fmt.Errorf("%w: missing restaurants", ErrParse)
	}
	return r.Restaurants, nil
}

// ParseDestination extracts the destination research payload.
func ParseDestination(raw string) (*DestinationInsight, error) {
	payload, err := ExtractJSON(raw)
	if err != nil {
		return nil, err
	}
	var d DestinationInsight
	if err := json.Unmarshal([]byte(payload), &d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if d.Description == "" {
		return nil, fmt.Errorf("%w: missing description", ErrParse)
	}
	return &d, nil
}
