// README: Router tests covering routing and error-to-status mapping.
package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nomad/internal/ai"
	httptransport "nomad/internal/http"
	"nomad/internal/modules/bookmark"
	"nomad/internal/modules/destination"
	"nomad/internal/modules/favorite"
	"nomad/internal/modules/hotel"
	"nomad/internal/modules/restaurant"
	"nomad/internal/modules/trip"
	"nomad/internal/modules/user"
)

// The doubles below back real services so the full handler stack runs
// against in-memory state.

type stubGenerator struct {
	response string
	err      error
}

func (g *stubGenerator) Generate(_ context.Context, _ string, _ ai.GenParams) (string, error) {
	return g.response, g.err
}

type memTripStore struct {
	trips     map[uuid.UUID]*trip.Trip
	duplicate bool
}

func (s *memTripStore) FindDuplicate(context.Context, uuid.UUID, trip.Request) (bool, error) {
	return s.duplicate, nil
}

func (s *memTripStore) CreateWithDays(_ context.Context, t *trip.Trip) error {
	s.trips[t.ID] = t
	return nil
}

func (s *memTripStore) Get(_ context.Context, id uuid.UUID) (*trip.Trip, error) {
	t, ok := s.trips[id]
	if !ok {
		return nil, trip.ErrNotFound
	}
	return t, nil
}

func (s *memTripStore) ListByUser(_ context.Context, userID uuid.UUID) ([]trip.Trip, error) {
	var out []trip.Trip
	for _, t := range s.trips {
		if t.UserID == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (s *memTripStore) Update(_ context.Context, t *trip.Trip) error {
	s.trips[t.ID] = t
	return nil
}

func (s *memTripStore) Delete(_ context.Context, id, userID uuid.UUID) error {
	t, ok := s.trips[id]
	if !ok || t.UserID != userID {
		return trip.ErrNotFound
	}
	delete(s.trips, id)
	return nil
}

func (s *memTripStore) Stats(context.Context, uuid.UUID) (trip.Stats, error) {
	return trip.Stats{}, nil
}

type memUserStore struct {
	users map[uuid.UUID]*user.User
}

func (s *memUserStore) Create(_ context.Context, u *user.User) error {
	for _, existing := range s.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return user.ErrDuplicate
		}
	}
	s.users[u.ID] = u
	return nil
}

func (s *memUserStore) Get(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func (s *memUserStore) GetByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, user.ErrNotFound
}

func (s *memUserStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return user.ErrNotFound
	}
	delete(s.users, id)
	return nil
}

type memFavoriteStore struct {
	saved map[string]bool
}

func (s *memFavoriteStore) Add(_ context.Context, f *favorite.Favorite) error {
	k := f.UserID.String() + "/" + f.PopularTitle
	if f.TripID != nil {
		k = f.UserID.String() + "/" + f.TripID.String()
	}
	if s.saved[k] {
		return favorite.ErrDuplicate
	}
	s.saved[k] = true
	return nil
}

func (s *memFavoriteStore) RemoveSaved(_ context.Context, userID, tripID uuid.UUID) error {
	k := userID.String() + "/" + tripID.String()
	if !s.saved[k] {
		return favorite.ErrNotFound
	}
	delete(s.saved, k)
	return nil
}

func (s *memFavoriteStore) RemovePopular(_ context.Context, userID uuid.UUID, title, _ string) error {
	k := userID.String() + "/" + title
	if !s.saved[k] {
		return favorite.ErrNotFound
	}
	delete(s.saved, k)
	return nil
}

func (s *memFavoriteStore) IsSaved(_ context.Context, userID, tripID uuid.UUID) (bool, error) {
	return s.saved[userID.String()+"/"+tripID.String()], nil
}

func (s *memFavoriteStore) IsPopular(_ context.Context, userID uuid.UUID, title, _ string) (bool, error) {
	return s.saved[userID.String()+"/"+title], nil
}

func (s *memFavoriteStore) ListByUser(context.Context, uuid.UUID) (favorite.Lists, error) {
	return favorite.Lists{}, nil
}

type memBookmarkStore struct {
	items map[string]bool
}

func (s *memBookmarkStore) Add(_ context.Context, b *bookmark.Bookmark) error {
	k := b.UserID.String() + "/" + string(b.ItemType) + "/" + b.Name + "/" + b.Location
	if s.items[k] {
		return bookmark.ErrDuplicate
	}
	s.items[k] = true
	return nil
}

func (s *memBookmarkStore) Remove(_ context.Context, userID uuid.UUID, itemType bookmark.ItemType, name, location string) error {
	k := userID.String() + "/" + string(itemType) + "/" + name + "/" + location
	if !s.items[k] {
		return bookmark.ErrNotFound
	}
	delete(s.items, k)
	return nil
}

func (s *memBookmarkStore) Exists(_ context.Context, userID uuid.UUID, itemType bookmark.ItemType, name, location string) (bool, error) {
	return s.items[userID.String()+"/"+string(itemType)+"/"+name+"/"+location], nil
}

func (s *memBookmarkStore) ListByUser(context.Context, uuid.UUID) (bookmark.Lists, error) {
	return bookmark.Lists{}, nil
}

type memHotelStore struct{}

func (memHotelStore) SaveBatch(context.Context, []hotel.Hotel) error { return nil }
func (memHotelStore) ListByCity(context.Context, string, string, int) ([]hotel.Hotel, error) {
	return nil, nil
}

type memRestaurantStore struct{}

func (memRestaurantStore) SaveBatch(context.Context, []restaurant.Restaurant) error { return nil }
func (memRestaurantStore) ListByCity(context.Context, string, string, string, int) ([]restaurant.Restaurant, error) {
	return nil, nil
}

type memCache struct {
	entries map[string]string
}

func (c *memCache) Get(_ context.Context, key string) (string, error) {
	v, ok := c.entries[key]
	if !ok {
		return "", destination.ErrCacheMiss
	}
	return v, nil
}

func (c *memCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.entries[key] = value
	return nil
}

type testEnv struct {
	handler   http.Handler
	tripStore *memTripStore
	gen       *stubGenerator
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)

	gen := &stubGenerator{response: tripResponse(150)}
	tripStore := &memTripStore{trips: map[uuid.UUID]*trip.Trip{}}

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Users:        user.NewService(&memUserStore{users: map[uuid.UUID]*user.User{}}),
		Trips:        trip.NewService(tripStore, gen, nil, 0),
		Hotels:       hotel.NewService(memHotelStore{}, gen, nil),
		Restaurants:  restaurant.NewService(memRestaurantStore{}, gen, nil),
		Favorites:    favorite.NewService(&memFavoriteStore{saved: map[string]bool{}}),
		Bookmarks:    bookmark.NewService(&memBookmarkStore{items: map[string]bool{}}),
		Destinations: destination.NewService(gen, &memCache{entries: map[string]string{}}, time.Hour),
	})
	return &testEnv{handler: handler, tripStore: tripStore, gen: gen}
}

// tripResponse renders a valid two-day itinerary costing 2*perDay.
func tripResponse(perDay float64) string {
	day := `{"day": %d, "date": "2026-09-0%d", "title": "Day", "summary": "s",
		"activities": [], "meals": [], "accommodation": {"hotel": "H", "area": "A", "estimated_cost": %f}}`
	return fmt.Sprintf(`{"trip_overview": "o", "daily_itinerary": [%s, %s]}`,
		fmt.Sprintf(day, 1, 1, perDay), fmt.Sprintf(day, 2, 2, perDay))
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func generateBody() map[string]any {
	return map[string]any{
		"city":       "Paris",
		"country":    "France",
		"start_date": "2026-09-01",
		"end_date":   "2026-09-02",
		"budget":     500,
		"currency":   "USD",
		"travelers":  2,
	}
}

func TestHealth(t *testing.T) {
	env := newTestEnv()
	w := doRequest(t, env.handler, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}

func TestGenerateTrip_Created(t *testing.T) {
	env := newTestEnv()
	userID := uuid.New()

	w := doRequest(t, env.handler, http.MethodPost, "/api/users/"+userID.String()+"/trips", generateBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var got trip.Trip
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got.Days) != 2 {
		t.Errorf("expected 2 days, got %d", len(got.Days))
	}
	if got.UserID != userID {
		t.Errorf("expected owner %s, got %s", userID, got.UserID)
	}
}

func TestGenerateTrip_BadDates(t *testing.T) {
	env := newTestEnv()
	body := generateBody()
	body["start_date"] = "09/01/2026"

	w := doRequest(t, env.handler, http.MethodPost, "/api/users/"+uuid.NewString()+"/trips", body)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestGenerateTrip_BudgetExceededMapsTo422(t *testing.T) {
	env := newTestEnv()
	env.gen.response = tripResponse(400) // 800 total vs 500 budget

	w := doRequest(t, env.handler, http.MethodPost, "/api/users/"+uuid.NewString()+"/trips", generateBody())
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestEditTrip_BudgetBelowCostMapsTo422(t *testing.T) {
	env := newTestEnv()
	userID := uuid.New()

	w := doRequest(t, env.handler, http.MethodPost, "/api/users/"+userID.String()+"/trips", generateBody())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created trip.Trip
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// Stored itinerary costs 300; a 50 budget cannot cover it.
	patch := map[string]any{"budget": map[string]any{"amount": 50, "currency": "USD"}}
	w = doRequest(t, env.handler, http.MethodPatch,
		"/api/users/"+userID.String()+"/trips/"+created.ID.String(), patch)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestGenerateTrip_DuplicateMapsTo409(t *testing.T) {
	env := newTestEnv()
	env.tripStore.duplicate = true

	w := doRequest(t, env.handler, http.MethodPost, "/api/users/"+uuid.NewString()+"/trips", generateBody())
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

func TestGenerateTrip_ModelGarbageMapsTo502(t *testing.T) {
	env := newTestEnv()
	env.gen.response = "I'm sorry, I cannot help with that."

	w := doRequest(t, env.handler, http.MethodPost, "/api/users/"+uuid.NewString()+"/trips", generateBody())
	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", w.Code)
	}
}

func TestGenerateTrip_TransportFailureMapsTo502(t *testing.T) {
	env := newTestEnv()
	env.gen.err = fmt.Errorf("%w: deadline exceeded", ai.ErrTransport)

	w := doRequest(t, env.handler, http.MethodPost, "/api/users/"+uuid.NewString()+"/trips", generateBody())
	if w.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", w.Code)
	}
}

func TestGetTrip_UnknownIs404(t *testing.T) {
	env := newTestEnv()
	path := "/api/users/" + uuid.NewString() + "/trips/" + uuid.NewString()
	w := doRequest(t, env.handler, http.MethodGet, path, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestGetTrip_MalformedIDIs400(t *testing.T) {
	env := newTestEnv()
	w := doRequest(t, env.handler, http.MethodGet, "/api/users/not-a-uuid/trips", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestUserLifecycle(t *testing.T) {
	env := newTestEnv()

	w := doRequest(t, env.handler, http.MethodPost, "/api/users", map[string]any{
		"username": "ana", "email": "ana@example.com",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created user.User
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	// Duplicate registration conflicts.
	w = doRequest(t, env.handler, http.MethodPost, "/api/users", map[string]any{
		"username": "ana", "email": "ana@example.com",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}

	w = doRequest(t, env.handler, http.MethodGet, "/api/users/"+created.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	// Username lookup resolves to the same account.
	w = doRequest(t, env.handler, http.MethodGet, "/api/users?username=ana", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 from lookup, got %d: %s", w.Code, w.Body.String())
	}
	var found user.User
	if err := json.Unmarshal(w.Body.Bytes(), &found); err != nil {
		t.Fatalf("decode lookup: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("lookup returned %s, want %s", found.ID, created.ID)
	}

	w = doRequest(t, env.handler, http.MethodGet, "/api/users?username=nobody", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown username, got %d", w.Code)
	}

	w = doRequest(t, env.handler, http.MethodGet, "/api/users", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without username, got %d", w.Code)
	}

	w = doRequest(t, env.handler, http.MethodDelete, "/api/users/"+created.ID.String(), nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	w = doRequest(t, env.handler, http.MethodGet, "/api/users/"+created.ID.String(), nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", w.Code)
	}
}

func TestFavoriteDuplicateIs409(t *testing.T) {
	env := newTestEnv()
	userID, tripID := uuid.NewString(), uuid.NewString()
	body := map[string]any{"trip_id": tripID}

	w := doRequest(t, env.handler, http.MethodPost, "/api/users/"+userID+"/favorites/trips", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, env.handler, http.MethodPost, "/api/users/"+userID+"/favorites/trips", body)
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}
}

func TestBookmarkFlow(t *testing.T) {
	env := newTestEnv()
	userID := uuid.NewString()
	body := map[string]any{
		"item_type": "hotel", "name": "Grand Hotel", "location": "Downtown",
	}

	w := doRequest(t, env.handler, http.MethodPost, "/api/users/"+userID+"/bookmarks", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = doRequest(t, env.handler, http.MethodPost, "/api/users/"+userID+"/bookmarks", body)
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", w.Code)
	}

	// Invalid item type rejected up front.
	w = doRequest(t, env.handler, http.MethodPost, "/api/users/"+userID+"/bookmarks", map[string]any{
		"item_type": "museum", "name": "Louvre",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}

	w = doRequest(t, env.handler, http.MethodGet,
		"/api/users/"+userID+"/bookmarks/status?item_type=hotel&name=Grand+Hotel&location=Downtown", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var status map[string]bool
	if err := json.Unmarshal(w.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !status["bookmarked"] {
		t.Error("expected bookmarked=true")
	}
}

func TestDestinationInsight(t *testing.T) {
	env := newTestEnv()
	env.gen.response = `{"description": "Hilly and sunny.", "local_language": "Portuguese"}`

	w := doRequest(t, env.handler, http.MethodGet, "/api/destinations?city=Lisbon&country=Portugal", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	// Missing params are a client error.
	w = doRequest(t, env.handler, http.MethodGet, "/api/destinations?city=Lisbon", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestHotelSearchRequiresCity(t *testing.T) {
	env := newTestEnv()
	w := doRequest(t, env.handler, http.MethodPost, "/api/hotels/search", map[string]any{"country": "Portugal"})
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}
