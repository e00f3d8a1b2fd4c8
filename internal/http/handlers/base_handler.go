// README: Base handler utilities (JSON helpers, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nomad/internal/ai"
	"nomad/internal/modules/bookmark"
	"nomad/internal/modules/destination"
	"nomad/internal/modules/favorite"
	"nomad/internal/modules/trip"
	"nomad/internal/modules/user"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

// parseID reads a UUID path parameter, writing a 400 on failure.
func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		writeError(c, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// writeGenError maps model-pipeline failures. A malformed or unreachable
// upstream model is a bad gateway, not our fault and not the client's.
func writeGenError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, ai.ErrParse):
		writeError(c, http.StatusBadGateway, "model returned an unusable response")
	case errors.Is(err, ai.ErrTransport):
		writeError(c, http.StatusBadGateway, "model request failed")
	default:
		return false
	}
	return true
}

func writeTripError(c *gin.Context, err error) {
	if writeGenError(c, err) {
		return
	}
	switch {
	case errors.Is(err, trip.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, trip.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, trip.ErrDuplicateTrip):
		writeError(c, http.StatusConflict, err.Error())
	case errors.Is(err, trip.ErrBudgetExceeded), errors.Is(err, trip.ErrDayCountMismatch):
		writeError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, user.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, user.ErrDuplicate):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeFavoriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, favorite.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, favorite.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, favorite.ErrDuplicate):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeBookmarkError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, bookmark.ErrBadRequest):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, bookmark.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, bookmark.ErrDuplicate):
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

func writeDestinationError(c *gin.Context, err error) {
	if writeGenError(c, err) {
		return
	}
	if errors.Is(err, destination.ErrBadRequest) {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}
	writeError(c, http.StatusInternalServerError, "internal error")
}
