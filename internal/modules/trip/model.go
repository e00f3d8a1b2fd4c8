// README: Trip aggregate, generation request, and module error taxonomy.
package trip

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"nomad/internal/ai"
	"nomad/internal/types"
)

var (
	ErrBadRequest       = errors.New("bad request")
	ErrNotFound         = errors.New("trip not found")
	ErrBudgetExceeded   = errors.New("itinerary exceeds budget")
	ErrDayCountMismatch = errors.New("itinerary day count does not match date range")
	ErrDuplicateTrip    = errors.New("an identical trip already exists")
)

// Request holds the user-supplied constraints for one generation run.
type Request struct {
	City           string      `json:"city"`
	State          string      `json:"state,omitempty"`
	Country        string      `json:"country"`
	StartDate      time.Time   `json:"start_date"`
	EndDate        time.Time   `json:"end_date"`
	Budget         types.Money `json:"budget"`
	Travelers      int         `json:"travelers"`
	TripTypes      []string    `json:"trip_types,omitempty"`
	FoodPreference string      `json:"food_preference,omitempty"`
}

// Validate enforces the structural invariants: destination present,
// non-empty forward date range, positive budget, at least one traveler.
func (r Request) Validate() error {
	if r.City == "" || r.Country == "" {
		return ErrBadRequest
	}
	if r.StartDate.IsZero() || r.EndDate.IsZero() || r.EndDate.Before(r.StartDate) {
		return ErrBadRequest
	}
	if r.Budget.Amount <= 0 || r.Budget.Currency == "" {
		return ErrBadRequest
	}
	if r.Travelers < 1 {
		return ErrBadRequest
	}
	return nil
}

// Days is the itinerary length implied by the date range:
// (end - start).days + 1. A same-day trip is one day.
func (r Request) Days() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

// Prompt converts the request into the prompt-builder input.
func (r Request) Prompt() ai.TripPrompt {
	return ai.TripPrompt{
		City:           r.City,
		State:          r.State,
		Country:        r.Country,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		Days:           r.Days(),
		Budget:         r.Budget.Amount,
		Currency:       r.Budget.Currency,
		Travelers:      r.Travelers,
		TripTypes:      r.TripTypes,
		FoodPreference: r.FoodPreference,
	}
}

// Trip is a validated, persisted itinerary owned by one user.
type Trip struct {
	ID                 uuid.UUID   `json:"id"`
	UserID             uuid.UUID   `json:"user_id"`
	City               string      `json:"city"`
	State              string      `json:"state,omitempty"`
	Country            string      `json:"country"`
	StartDate          time.Time   `json:"start_date"`
	EndDate            time.Time   `json:"end_date"`
	Budget             types.Money `json:"budget"`
	Travelers          int         `json:"travelers"`
	TripTypes          []string    `json:"trip_types,omitempty"`
	FoodPreference     string      `json:"food_preference,omitempty"`
	Overview           string      `json:"overview"`
	TotalEstimatedCost float64     `json:"total_estimated_cost"`
	Days               []ai.Day    `json:"days"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// Update carries the mutable trip fields. Dates are immutable once an
// itinerary exists; changing them would orphan the generated day list.
type Update struct {
	Budget         *types.Money `json:"budget,omitempty"`
	Travelers      *int         `json:"travelers,omitempty"`
	TripTypes      []string     `json:"trip_types,omitempty"`
	FoodPreference *string      `json:"food_preference,omitempty"`
}

// Stats summarizes a user's saved trips for the profile view.
type Stats struct {
	TotalTrips       int     `json:"total_trips"`
	TotalBudget      float64 `json:"total_budget"`
	CountriesVisited int     `json:"countries_visited"`
}
