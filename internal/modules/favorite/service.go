// README: Favorite service; variant validation over the store.
package favorite

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// AddSaved favorites one of the user's generated trips.
func (s *Service) AddSaved(ctx context.Context, userID, tripID uuid.UUID) (*Favorite, error) {
	f := &Favorite{
		ID:        uuid.New(),
		UserID:    userID,
		TripID:    &tripID,
		CreatedAt: time.Now(),
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Add(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// AddPopular favorites a pre-made popular trip descriptor.
func (s *Service) AddPopular(ctx context.Context, userID uuid.UUID, title, destination string, payload json.RawMessage) (*Favorite, error) {
	f := &Favorite{
		ID:                 uuid.New(),
		UserID:             userID,
		IsPopular:          true,
		PopularTitle:       title,
		PopularDestination: destination,
		PopularPayload:     payload,
		CreatedAt:          time.Now(),
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Add(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) RemoveSaved(ctx context.Context, userID, tripID uuid.UUID) error {
	return s.store.RemoveSaved(ctx, userID, tripID)
}

func (s *Service) RemovePopular(ctx context.Context, userID uuid.UUID, title, destination string) error {
	return s.store.RemovePopular(ctx, userID, title, destination)
}

func (s *Service) IsSaved(ctx context.Context, userID, tripID uuid.UUID) (bool, error) {
	return s.store.IsSaved(ctx, userID, tripID)
}

func (s *Service) IsPopular(ctx context.Context, userID uuid.UUID, title, destination string) (bool, error) {
	return s.store.IsPopular(ctx, userID, title, destination)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) (Lists, error) {
	return s.store.ListByUser(ctx, userID)
}
