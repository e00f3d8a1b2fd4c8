// README: Hotel service; LLM-backed search with geocode decoration.
package hotel

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

// Find asks the model for hotel recommendations matching the query,
// attaches location data, and persists the results. Persistence is best
// effort; the recommendations are returned even if the save fails.
func (s *Service) Find(ctx context.Context, q Query) ([]Hotel, error) {
	if q.Limit <= 0 {
		q.Limit = 10
	}
	prompt := ai.BuildHotelPrompt(q.City, q.Country, q.RoomType, q.Amenities, q.PriceRange, q.Limit)
	raw, err := s.gen.Generate(ctx, prompt, ai.GenParams{Temperature: 0.5, MaxTokens: 8000})
	if err != nil {
		return nil, err
	}
	results, err := ai.ParseHotels(raw)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	hotels := make([]Hotel, 0, len(results))
	for _, r := range results {
		h := Hotel{
			ID:            uuid.New(),
			TripID:        q.TripID,
			Name:          r.Name,
			Description:   r.Description,
			Location:      r.Location,
			City:          q.City,
			Country:       q.Country,
			PricePerNight: r.PricePerNight,
			Rating:        r.Rating,
			RoomType:      r.RoomType,
			Amenities:     r.Amenities,
			ImageURL:      r.ImageURL,
			CreatedAt:     now,
		}
		s.attachLocation(ctx, &h)
		hotels = append(hotels, h)
	}

	if err := s.store.SaveBatch(ctx, hotels); err != nil {
		slog.Warn("hotel save failed", "city", q.City, "error", err)
	}
	return hotels, nil
}

// ListSaved returns previously generated hotels for a city.
func (s *Service) ListSaved(ctx context.Context, city, country string, limit int) ([]Hotel, error) {
	return s.store.ListByCity(ctx, city, country, limit)
}

func (s *Service) attachLocation(ctx context.Context, h *Hotel) {
	if s.maps == nil {
		return
	}
	h.MapsLink = s.maps.Link(h.Name, h.City, h.Country)
	pt, err := s.maps.Geocode(ctx, h.Name+", "+h.City+", "+h.Country)
	if err != nil {
		return // link-only mode or geocode miss; both fine
	}
	h.Latitude = &pt.Lat
	h.Longitude = &pt.Lng
}
