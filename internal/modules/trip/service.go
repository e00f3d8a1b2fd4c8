// README: Trip service; runs the generate→parse→validate→persist pipeline.
package trip

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"nomad/internal/ai"
	"nomad/internal/maps"
)

// Service orchestrates itinerary generation and trip CRUD.
type Service struct {
	store     Store
	gen       ai.TextGenerator
	maps      *maps.Service
	tolerance float64
}

// NewService constructs a Service. tolerance is the allowed budget
// overage fraction (0 = hard ceiling).
func NewService(store Store, gen ai.TextGenerator, m *maps.Service, tolerance float64) *Service {
	return &Service{store: store, gen: gen, maps: m, tolerance: tolerance}
}

// Generate runs one synchronous generation unit of work:
// prompt → model → parse → validate → duplicate check → transactional save.
// Any validation failure leaves storage untouched; ErrTransport and
// ErrParse propagate from the ai package unmodified.
func (s *Service) Generate(ctx context.Context, userID uuid.UUID, req Request) (*Trip, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.gen.Generate(ctx, ai.BuildItineraryPrompt(req.Prompt()), ai.ItineraryGenParams(req.Days()))
	if err != nil {
		return nil, err
	}

	it, err := ai.ParseItinerary(raw)
	if err != nil {
		return nil, err
	}

	if err := Validate(it, req, s.tolerance); err != nil {
		return nil, err
	}

	dup, err := s.store.FindDuplicate(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	if dup {
		return nil, ErrDuplicateTrip
	}

	s.attachMapsLinks(it, req)

	now := time.Now()
	t := &Trip{
		ID:                 uuid.New(),
		UserID:             userID,
		City:               req.City,
		State:              req.State,
		Country:            req.Country,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Budget:             req.Budget,
		Travelers:          req.Travelers,
		TripTypes:          req.TripTypes,
		FoodPreference:     req.FoodPreference,
		Overview:           it.Overview,
		TotalEstimatedCost: TotalCost(it.Days),
		Days:               it.Days,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.store.CreateWithDays(ctx, t); err != nil {
		return nil, err
	}
	slog.Info("trip generated", "trip_id", t.ID, "user_id", userID, "days", len(t.Days), "total_cost", t.TotalEstimatedCost)
	return t, nil
}

// attachMapsLinks decorates activities and meals with Google Maps
// search links. Best effort; the itinerary is already valid without them.
func (s *Service) attachMapsLinks(it *ai.Itinerary, req Request) {
	if s.maps == nil {
		return
	}
	for di := range it.Days {
		d := &it.Days[di]
		for i := range d.Activities {
			if loc := d.Activities[i].Location; loc != "" {
				d.Activities[i].MapsLink = s.maps.Link(loc, req.City, req.Country)
			}
		}
		for mi := range d.Meals {
			if r := d.Meals[mi].Restaurant; r != "" {
				d.Meals[mi].MapsLink = s.maps.Link(r, req.City, req.Country)
			}
		}
	}
}

// Get returns a trip with its full day list, owner-checked.
func (s *Service) Get(ctx context.Context, id, userID uuid.UUID) (*Trip, error) {
	t, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.UserID != userID {
		return nil, ErrNotFound
	}
	return t, nil
}

// List returns the user's trips, newest first, without day details.
func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]Trip, error) {
	return s.store.ListByUser(ctx, userID)
}

// Edit applies the mutable fields of an existing trip and revalidates
// the budget invariant.
func (s *Service) Edit(ctx context.Context, id, userID uuid.UUID, upd Update) (*Trip, error) {
	t, err := s.Get(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if upd.Budget != nil {
		if upd.Budget.Amount <= 0 || upd.Budget.Currency == "" {
			return nil, ErrBadRequest
		}
		// The stored itinerary must still fit under the new budget.
		if ceiling := upd.Budget.Amount * (1 + s.tolerance); t.TotalEstimatedCost > ceiling {
			return nil, fmt.Errorf("%w: itinerary cost %.2f over budget %s", ErrBudgetExceeded, t.TotalEstimatedCost, upd.Budget)
		}
		t.Budget = *upd.Budget
	}
	if upd.Travelers != nil {
		if *upd.Travelers < 1 {
			return nil, ErrBadRequest
		}
		t.Travelers = *upd.Travelers
	}
	if upd.TripTypes != nil {
		t.TripTypes = upd.TripTypes
	}
	if upd.FoodPreference != nil {
		t.FoodPreference = *upd.FoodPreference
	}
	if err := s.store.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes a trip; day rows and favorites go with it via FK cascade.
func (s *Service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	if err := s.store.Delete(ctx, id, userID); err != nil {
		return err
	}
	slog.Info("trip deleted", "trip_id", id, "user_id", userID)
	return nil
}

// Summary computes the aggregation views for one trip.
func (s *Service) Summary(ctx context.Context, id, userID uuid.UUID) (Summary, error) {
	t, err := s.Get(ctx, id, userID)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(t), nil
}

// UserStats returns the profile statistics for a user.
func (s *Service) UserStats(ctx context.Context, userID uuid.UUID) (Stats, error) {
	st, err := s.store.Stats(ctx, userID)
	if err != nil {
		return Stats{}, fmt.Errorf("trip: user stats: %w", err)
	}
	return st, nil
}
