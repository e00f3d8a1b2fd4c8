// README: Favorite store integration tests; require TEST_DATABASE_URL.
package favorite_test

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nomad/internal/ai"
	"nomad/internal/modules/favorite"
	"nomad/internal/modules/trip"
	"nomad/internal/modules/user"
	"nomad/internal/types"
	"nomad/testutil"
)

func TestMain(m *testing.M) {
	if dsn := os.Getenv("TEST_DATABASE_URL"); dsn != "" {
		if err := testutil.MigrateUp(dsn); err != nil {
			log.Fatalf("TestMain: migrate: %v", err)
		}
	}
	os.Exit(m.Run())
}

// seed creates a user with one trip and returns both IDs.
func seed(t *testing.T, ctx context.Context, userStore user.Store, tripStore trip.Store) (uuid.UUID, uuid.UUID) {
	t.Helper()
	suffix := uuid.NewString()[:8]
	u := &user.User{
		ID:        uuid.New(),
		Username:  "traveler_" + suffix,
		Email:     "traveler_" + suffix + "@example.com",
		CreatedAt: time.Now(),
	}
	require.NoError(t, userStore.Create(ctx, u))

	now := time.Now()
	tr := &trip.Trip{
		ID:        uuid.New(),
		UserID:    u.ID,
		City:      "Rome",
		Country:   "Italy",
		StartDate: time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC),
		Budget:    types.Money{Amount: 300, Currency: "EUR"},
		Travelers: 1,
		Days:      []ai.Day{{Number: 1, Date: "2026-11-01"}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, tripStore.CreateWithDays(ctx, tr))
	return u.ID, tr.ID
}

func TestSavedFavoriteUniqueness(t *testing.T) {
	pool := testutil.NewPool(t)
	ctx := context.Background()
	store := favorite.NewStore(pool)
	userID, tripID := seed(t, ctx, user.NewStore(pool), trip.NewStore(pool))

	f := &favorite.Favorite{ID: uuid.New(), UserID: userID, TripID: &tripID, CreatedAt: time.Now()}
	require.NoError(t, store.Add(ctx, f))

	again := &favorite.Favorite{ID: uuid.New(), UserID: userID, TripID: &tripID, CreatedAt: time.Now()}
	assert.ErrorIs(t, store.Add(ctx, again), favorite.ErrDuplicate)

	saved, err := store.IsSaved(ctx, userID, tripID)
	require.NoError(t, err)
	assert.True(t, saved)
}

func TestPopularFavoriteUniqueness(t *testing.T) {
	pool := testutil.NewPool(t)
	ctx := context.Background()
	store := favorite.NewStore(pool)
	userID, _ := seed(t, ctx, user.NewStore(pool), trip.NewStore(pool))

	f := &favorite.Favorite{
		ID: uuid.New(), UserID: userID, IsPopular: true,
		PopularTitle: "Golden Triangle", PopularDestination: "India",
		CreatedAt: time.Now(),
	}
	require.NoError(t, store.Add(ctx, f))

	again := *f
	again.ID = uuid.New()
	assert.ErrorIs(t, store.Add(ctx, &again), favorite.ErrDuplicate)

	// A different descriptor is a separate favorite.
	other := *f
	other.ID = uuid.New()
	other.PopularTitle = "Kerala Backwaters"
	assert.NoError(t, store.Add(ctx, &other))
}

func TestListSplitsAndRemove(t *testing.T) {
	pool := testutil.NewPool(t)
	ctx := context.Background()
	store := favorite.NewStore(pool)
	userID, tripID := seed(t, ctx, user.NewStore(pool), trip.NewStore(pool))

	require.NoError(t, store.Add(ctx, &favorite.Favorite{
		ID: uuid.New(), UserID: userID, TripID: &tripID, CreatedAt: time.Now(),
	}))
	require.NoError(t, store.Add(ctx, &favorite.Favorite{
		ID: uuid.New(), UserID: userID, IsPopular: true,
		PopularTitle: "Bali Escape", PopularDestination: "Indonesia",
		CreatedAt: time.Now(),
	}))

	lists, err := store.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, lists.SavedTrips, 1)
	assert.Len(t, lists.PopularTrips, 1)

	require.NoError(t, store.RemoveSaved(ctx, userID, tripID))
	assert.ErrorIs(t, store.RemoveSaved(ctx, userID, tripID), favorite.ErrNotFound)

	require.NoError(t, store.RemovePopular(ctx, userID, "Bali Escape", "Indonesia"))
	assert.ErrorIs(t, store.RemovePopular(ctx, userID, "Bali Escape", "Indonesia"), favorite.ErrNotFound)
}
