// README: Favorite handlers; saved-trip and popular-trip variants.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nomad/internal/modules/favorite"
)

type FavoriteHandler struct {
	favorites *favorite.Service
}

func NewFavoriteHandler(svc *favorite.Service) *FavoriteHandler {
	return &FavoriteHandler{favorites: svc}
}

type addSavedFavoriteReq struct {
	TripID string `json:"trip_id"`
}

// AddSaved handles POST /api/users/:id/favorites/trips.
func (h *FavoriteHandler) AddSaved(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req addSavedFavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	tripID, err := uuid.Parse(req.TripID)
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid trip_id")
		return
	}
	f, err := h.favorites.AddSaved(c.Request.Context(), userID, tripID)
	if err != nil {
		writeFavoriteError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, f)
}

type addPopularFavoriteReq struct {
	Title       string          `json:"title"`
	Destination string          `json:"destination"`
	Payload     json.RawMessage `json:"payload"`
}

// AddPopular handles POST /api/users/:id/favorites/popular.
func (h *FavoriteHandler) AddPopular(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req addPopularFavoriteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	f, err := h.favorites.AddPopular(c.Request.Context(), userID, req.Title, req.Destination, req.Payload)
	if err != nil {
		writeFavoriteError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, f)
}

// RemoveSaved handles DELETE /api/users/:id/favorites/trips/:trip_id.
func (h *FavoriteHandler) RemoveSaved(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	tripID, ok := parseID(c, "trip_id")
	if !ok {
		return
	}
	if err := h.favorites.RemoveSaved(c.Request.Context(), userID, tripID); err != nil {
		writeFavoriteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "removed"})
}

// RemovePopular handles DELETE /api/users/:id/favorites/popular.
func (h *FavoriteHandler) RemovePopular(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	title := c.Query("title")
	destination := c.Query("destination")
	if title == "" || destination == "" {
		writeError(c, http.StatusBadRequest, "title and destination are required")
		return
	}
	if err := h.favorites.RemovePopular(c.Request.Context(), userID, title, destination); err != nil {
		writeFavoriteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "removed"})
}

// StatusSaved handles GET /api/users/:id/favorites/trips/:trip_id.
func (h *FavoriteHandler) StatusSaved(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	tripID, ok := parseID(c, "trip_id")
	if !ok {
		return
	}
	saved, err := h.favorites.IsSaved(c.Request.Context(), userID, tripID)
	if err != nil {
		writeFavoriteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"favorited": saved})
}

// StatusPopular handles GET /api/users/:id/favorites/popular.
func (h *FavoriteHandler) StatusPopular(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	title := c.Query("title")
	destination := c.Query("destination")
	if title == "" || destination == "" {
		writeError(c, http.StatusBadRequest, "title and destination are required")
		return
	}
	saved, err := h.favorites.IsPopular(c.Request.Context(), userID, title, destination)
	if err != nil {
		writeFavoriteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"favorited": saved})
}

// List handles GET /api/users/:id/favorites.
func (h *FavoriteHandler) List(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	lists, err := h.favorites.List(c.Request.Context(), userID)
	if err != nil {
		writeFavoriteError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, lists)
}
