// README: Trip handlers; generation, CRUD, summaries and stats.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"nomad/internal/modules/trip"
	"nomad/internal/types"
)

type TripHandler struct {
	trips *trip.Service
}

func NewTripHandler(svc *trip.Service) *TripHandler {
	return &TripHandler{trips: svc}
}

type generateTripReq struct {
	City           string   `json:"city"`
	State          string   `json:"state"`
	Country        string   `json:"country"`
	StartDate      string   `json:"start_date"`
	EndDate        string   `json:"end_date"`
	Budget         float64  `json:"budget"`
	Currency       string   `json:"currency"`
	Travelers      int      `json:"travelers"`
	TripTypes      []string `json:"trip_types"`
	FoodPreference string   `json:"food_preference"`
}

const dateLayout = "2006-01-02"

func (r generateTripReq) toRequest() (trip.Request, error) {
	start, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return trip.Request{}, err
	}
	end, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return trip.Request{}, err
	}
	return trip.Request{
		City:           r.City,
		State:          r.State,
		Country:        r.Country,
		StartDate:      start,
		EndDate:        end,
		Budget:         types.Money{Amount: r.Budget, Currency: r.Currency},
		Travelers:      r.Travelers,
		TripTypes:      r.TripTypes,
		FoodPreference: r.FoodPreference,
	}, nil
}

// Generate handles POST /api/users/:id/trips.
func (h *TripHandler) Generate(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req generateTripReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	tr, err := req.toRequest()
	if err != nil {
		writeError(c, http.StatusBadRequest, "dates must be YYYY-MM-DD")
		return
	}
	t, err := h.trips.Generate(c.Request.Context(), userID, tr)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, t)
}

// Get handles GET /api/users/:id/trips/:trip_id.
func (h *TripHandler) Get(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	tripID, ok := parseID(c, "trip_id")
	if !ok {
		return
	}
	t, err := h.trips.Get(c.Request.Context(), tripID, userID)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, t)
}

// List handles GET /api/users/:id/trips.
func (h *TripHandler) List(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	trips, err := h.trips.List(c.Request.Context(), userID)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"trips": trips})
}

// Edit handles PATCH /api/users/:id/trips/:trip_id.
func (h *TripHandler) Edit(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	tripID, ok := parseID(c, "trip_id")
	if !ok {
		return
	}
	var upd trip.Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	t, err := h.trips.Edit(c.Request.Context(), tripID, userID, upd)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, t)
}

// Delete handles DELETE /api/users/:id/trips/:trip_id.
func (h *TripHandler) Delete(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	tripID, ok := parseID(c, "trip_id")
	if !ok {
		return
	}
	if err := h.trips.Delete(c.Request.Context(), tripID, userID); err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "deleted"})
}

// Summary handles GET /api/users/:id/trips/:trip_id/summary.
func (h *TripHandler) Summary(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	tripID, ok := parseID(c, "trip_id")
	if !ok {
		return
	}
	sum, err := h.trips.Summary(c.Request.Context(), tripID, userID)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, sum)
}

// Stats handles GET /api/users/:id/stats.
func (h *TripHandler) Stats(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	st, err := h.trips.UserStats(c.Request.Context(), userID)
	if err != nil {
		writeTripError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, st)
}
