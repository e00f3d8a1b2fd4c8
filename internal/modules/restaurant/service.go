// README: Restaurant service; LLM-backed search with geocode decoration.
package restaurant

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"nomad/internal/ai"
	"nomad/internal/maps"
)

type Service struct {
	store Store
	gen   ai.TextGenerator
	maps  *maps.Service
}

func NewService(store Store, gen ai.TextGenerator, m *maps.Service) *Service {
	return &Service{store: store, gen: gen, maps: m}
}

// Find asks the model for restaurant recommendations matching the
// query, attaches location data, and persists the results. Persistence
// is best effort.
func (s *Service) Find(ctx context.Context, q Query) ([]Restaurant, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	prompt := ai.BuildRestaurantPrompt(q.City, q.Country, q.Cuisine, q.Dietary, q.PriceRange, q.Limit)
	raw, err := s.gen.Generate(ctx, prompt, ai.GenParams{Temperature: 0.5, MaxTokens: 8000})
	if err != nil {
		return nil, err
	}
	results, err := ai.ParseRestaurants(raw)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	restaurants := make([]Restaurant, 0, len(results))
	for _, r := range results {
		rec := Restaurant{
			ID:            uuid.New(),
			TripID:        q.TripID,
			Name:          r.Name,
			Description:   r.Description,
			Location:      r.Location,
			City:          q.City,
			Country:       q.Country,
			Cuisine:       r.Cuisine,
			FoodType:      r.FoodType,
			PriceRange:    r.PriceRange,
			Rating:        r.Rating,
			PopularDishes: r.PopularDishes,
			ImageURL:      r.ImageURL,
			CreatedAt:     now,
		}
		s.attachLocation(ctx, &rec)
		restaurants = append(restaurants, rec)
	}

	if err := s.store.SaveBatch(ctx, restaurants); err != nil {
		slog.Warn("restaurant save failed", "city", q.City, "error", err)
	}
	return restaurants, nil
}

// ListSaved returns previously generated restaurants for a city,
// optionally filtered by dietary tag.
func (s *Service) ListSaved(ctx context.Context, city, country, dietary string, limit int) ([]Restaurant, error) {
	return s.store.ListByCity(ctx, city, country, dietary, limit)
}

func (s *Service) attachLocation(ctx context.Context, r *Restaurant) {
	if s.maps == nil {
		return
	}
	r.MapsLink = s.maps.Link(r.Name, r.City, r.Country)
	pt, err := s.maps.Geocode(ctx, r.Name+", "+r.City+", "+r.Country)
	if err != nil {
		return
	}
	r.Latitude = &pt.Lat
	r.Longitude = &pt.Lng
}
