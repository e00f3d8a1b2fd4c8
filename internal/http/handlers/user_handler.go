// README: User handlers for register/get/delete.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nomad/internal/modules/user"
)

type UserHandler struct {
	users *user.Service
}

func NewUserHandler(svc *user.Service) *UserHandler {
	return &UserHandler{users: svc}
}

// Register handles POST /api/users.
func (h *UserHandler) Register(c *gin.Context) {
	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	u, err := h.users.Register(c.Request.Context(), req)
	if err != nil {
		writeUserError(c, err)
		return
	}
	writeJSON(c, http.StatusCreated, u)
}

// Lookup handles GET /api/users?username=. Resolves a username to the
// full account record.
func (h *UserHandler) Lookup(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		writeError(c, http.StatusBadRequest, "username is required")
		return
	}
	u, err := h.users.GetByUsername(c.Request.Context(), username)
	if err != nil {
		writeUserError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, u)
}

// Get handles GET /api/users/:id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	u, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		writeUserError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, u)
}

// Delete handles DELETE /api/users/:id. Trips, favorites and bookmarks
// cascade with the account.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		writeUserError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"status": "deleted"})
}
