package trip

import (
	"fmt"

	"nomad/internal/ai"
)

// TotalCost sums every activity, meal, and accommodation cost across
// all days of an itinerary.
func TotalCost(days []ai.Day) float64 {
	var total float64
	for _, d := range days {
		for _, a := range d.Activities {
			total += a.EstimatedCost
		}
		for _, m := range d.Meals {
			total += m.EstimatedCost
		}
		total += d.Accommodation.EstimatedCost
	}
	return total
}

// DayCost is the cost of a single day, all categories included.
func DayCost(d ai.Day) float64 {
	var total float64
	for _, a := range d.Activities {
		total += a.EstimatedCost
	}
	for _, m := range d.Meals {
		total += m.EstimatedCost
	}
	return total + d.Accommodation.EstimatedCost
}

// Validate enforces the business invariants on a parsed itinerary
// before anything touches storage:
//
//   - the day count must equal the count implied by the date range; a
//     mismatched model response is rejected, never silently corrected;
//   - the summed cost must not exceed the budget by more than the
//     configured tolerance fraction (0 = hard ceiling).
//
// A failure here leaves storage untouched.
func Validate(it *ai.Itinerary, req Request, tolerance float64) error {
	want := req.Days()
	if len(it.Days) != want {
		return fmt.Errorf("%w: got %d days, date range implies %d", ErrDayCountMismatch, len(it.Days), want)
	}

	ceiling := req.Budget.Amount * (1 + tolerance)
	if total := TotalCost(it.Days); total > ceiling {
		return fmt.Errorf("%w: total %.2f %s over budget %s", ErrBudgetExceeded, total, req.Budget.Currency, req.Budget)
	}
	return nil
}
