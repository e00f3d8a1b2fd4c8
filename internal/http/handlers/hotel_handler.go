// README: Hotel handlers; model-backed search plus saved lookups.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nomad/internal/modules/hotel"
)

type HotelHandler struct {
	hotels *hotel.Service
}

func NewHotelHandler(svc *hotel.Service) *HotelHandler {
	return &HotelHandler{hotels: svc}
}

// Search handles POST /api/hotels/search.
func (h *HotelHandler) Search(c *gin.Context) {
	var q hotel.Query
	if err := c.ShouldBindJSON(&q); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if q.City == "" || q.Country == "" {
		writeError(c, http.StatusBadRequest, "city and country are required")
		return
	}
	results, err := h.hotels.Find(c.Request.Context(), q)
	if err != nil {
		if !writeGenError(c, err) {
			writeError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"hotels": results})
}

// ListSaved handles GET /api/hotels.
func (h *HotelHandler) ListSaved(c *gin.Context) {
	city := c.Query("city")
	country := c.Query("country")
	if city == "" {
		writeError(c, http.StatusBadRequest, "city is required")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	results, err := h.hotels.ListSaved(c.Request.Context(), city, country, limit)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"hotels": results})
}
