// README: Bookmark service; validation over the store.
package bookmark

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

// Add bookmarks an item for the user. The second attempt on the same
// (type, name, location) fails with ErrDuplicate.
func (s *Service) Add(ctx context.Context, userID uuid.UUID, itemType ItemType, name, location, city, country string, payload json.RawMessage) (*Bookmark, error) {
	b := &Bookmark{
		ID:        uuid.New(),
		UserID:    userID,
		ItemType:  itemType,
		Name:      name,
		Location:  location,
		City:      city,
		Country:   country,
		Payload:   payload,
		CreatedAt: time.Now(),
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := s.store.Add(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Remove(ctx context.Context, userID uuid.UUID, itemType ItemType, name, location string) error {
	if !itemType.Valid() {
		return ErrBadRequest
	}
	return s.store.Remove(ctx, userID, itemType, name, location)
}

func (s *Service) IsBookmarked(ctx context.Context, userID uuid.UUID, itemType ItemType, name, location string) (bool, error) {
	if !itemType.Valid() {
		return false, ErrBadRequest
	}
	return s.store.Exists(ctx, userID, itemType, name, location)
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) (Lists, error) {
	return s.store.ListByUser(ctx, userID)
}
