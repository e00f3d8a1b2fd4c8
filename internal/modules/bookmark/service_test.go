package bookmark

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	items map[string]*Bookmark
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: map[string]*Bookmark{}}
}

func key(userID uuid.UUID, itemType ItemType, name, location string) string {
	return userID.String() + "/" + string(itemType) + "/" + name + "/" + location
}

func (s *fakeStore) Add(_ context.Context, b *Bookmark) error {
	k := key(b.UserID, b.ItemType, b.Name, b.Location)
	if _, ok := s.items[k]; ok {
		return ErrDuplicate
	}
	s.items[k] = b
	return nil
}

func (s *fakeStore) Remove(_ context.Context, userID uuid.UUID, itemType ItemType, name, location string) error {
	k := key(userID, itemType, name, location)
	if _, ok := s.items[k]; !ok {
		return ErrNotFound
	}
	delete(s.items, k)
	return nil
}

func (s *fakeStore) Exists(_ context.Context, userID uuid.UUID, itemType ItemType, name, location string) (bool, error) {
	_, ok := s.items[key(userID, itemType, name, location)]
	return ok, nil
}

func (s *fakeStore) ListByUser(_ context.Context, userID uuid.UUID) (Lists, error) {
	var l Lists
	for _, b := range s.items {
		if b.UserID != userID {
			continue
		}
		if b.ItemType == ItemHotel {
			l.Hotels = append(l.Hotels, *b)
		} else {
			l.Restaurants = append(l.Restaurants, *b)
		}
	}
	return l, nil
}

func TestAdd(t *testing.T) {
	svc := NewService(newFakeStore())
	userID := uuid.New()

	b, err := svc.Add(context.Background(), userID, ItemHotel, "Grand Hotel", "Downtown", "Lisbon", "Portugal", nil)
	require.NoError(t, err)
	assert.Equal(t, ItemHotel, b.ItemType)
	assert.NotEqual(t, uuid.Nil, b.ID)

	_, err = svc.Add(context.Background(), userID, ItemHotel, "Grand Hotel", "Downtown", "Lisbon", "Portugal", nil)
	assert.ErrorIs(t, err, ErrDuplicate)

	// Same name as a restaurant is a different identity.
	_, err = svc.Add(context.Background(), userID, ItemRestaurant, "Grand Hotel", "Downtown", "Lisbon", "Portugal", nil)
	assert.NoError(t, err)
}

func TestAdd_InvalidType(t *testing.T) {
	svc := NewService(newFakeStore())
	_, err := svc.Add(context.Background(), uuid.New(), ItemType("museum"), "Louvre", "Paris", "", "", nil)
	assert.ErrorIs(t, err, ErrBadRequest)

	_, err = svc.Add(context.Background(), uuid.New(), ItemHotel, "", "Paris", "", "", nil)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestRemoveAndStatus(t *testing.T) {
	svc := NewService(newFakeStore())
	userID := uuid.New()

	_, err := svc.Add(context.Background(), userID, ItemRestaurant, "Trattoria", "Rome", "Rome", "Italy", nil)
	require.NoError(t, err)

	exists, err := svc.IsBookmarked(context.Background(), userID, ItemRestaurant, "Trattoria", "Rome")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, svc.Remove(context.Background(), userID, ItemRestaurant, "Trattoria", "Rome"))
	assert.ErrorIs(t, svc.Remove(context.Background(), userID, ItemRestaurant, "Trattoria", "Rome"), ErrNotFound)

	exists, err = svc.IsBookmarked(context.Background(), userID, ItemRestaurant, "Trattoria", "Rome")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListSplitsByType(t *testing.T) {
	svc := NewService(newFakeStore())
	userID := uuid.New()

	_, err := svc.Add(context.Background(), userID, ItemHotel, "H1", "L1", "", "", nil)
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), userID, ItemRestaurant, "R1", "L1", "", "", nil)
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), userID, ItemRestaurant, "R2", "L2", "", "", nil)
	require.NoError(t, err)

	lists, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, lists.Hotels, 1)
	assert.Len(t, lists.Restaurants, 2)
}
