// README: Destination insight handler.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nomad/internal/modules/destination"
)

type DestinationHandler struct {
	destinations *destination.Service
}

func NewDestinationHandler(svc *destination.Service) *DestinationHandler {
	return &DestinationHandler{destinations: svc}
}

// Insight handles GET /api/destinations.
func (h *DestinationHandler) Insight(c *gin.Context) {
	city := c.Query("city")
	country := c.Query("country")
	insight, err := h.destinations.Insight(c.Request.Context(), city, country)
	if err != nil {
		writeDestinationError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, insight)
}
