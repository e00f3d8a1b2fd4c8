// README: Bookmark handlers for hotel and restaurant items.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"nomad/internal/modules/bookmark"
)

type BookmarkHandler struct {
	bookmarks *bookmark.Service
}

func NewBookmarkHandler(svc *bookmark.Service) *BookmarkHandler {
	return &BookmarkHandler{bookmarks: svc}
}

type addBookmarkReq struct {
	ItemType string          `json:"item_type"`
	Name     string          `json:"name"`
	Location string          `json:"location"`
	City     string          `json:"city"`
	Country  string          `json:"country"`
	Payload  json.RawMessage `json:"payload"`
}

// Add handles POST /api/users/:id/bookmarks.
func (h *BookmarkHandler) Add(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req addBookmarkReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	b, err := h.bookmarks.Add(c.Request.Context(), userID, bookmark.ItemType(req.ItemType),
		req.Name, req.Location, req.City, req.Country, req.Payload)
	if err != nil {
		writeBookmarkError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, b)
}

// Remove handles DELETE /api/users/:id/bookmarks.
func (h *BookmarkHandler) Remove(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemType := bookmark.ItemType(c.Query("item_type"))
	name := c.Query("name")
	location := c.Query("location")
	if name == "" {
		writeError(c, http.StatusBadRequest, "name is required")
		return
	}
	if err := h.bookmarks.Remove(c.Request.Context(), userID, itemType, name, location); err != nil {
		writeBookmarkError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "removed"})
}

// Status handles GET /api/users/:id/bookmarks/status.
func (h *BookmarkHandler) Status(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemType := bookmark.ItemType(c.Query("item_type"))
	name := c.Query("name")
	location := c.Query("location")
	if name == "" {
		writeError(c, http.StatusBadRequest, "name is required")
		return
	}
	exists, err := h.bookmarks.IsBookmarked(c.Request.Context(), userID, itemType, name, location)
	if err != nil {
		writeBookmarkError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"bookmarked": exists})
}

// List handles GET /api/users/:id/bookmarks.
func (h *BookmarkHandler) List(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}
	lists, err := h.bookmarks.List(c.Request.Context(), userID)
	if err != nil {
		writeBookmarkError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, lists)
}
