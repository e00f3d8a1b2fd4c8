// README: Restaurant handlers; model-backed search plus saved lookups.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nomad/internal/modules/restaurant"
)

type RestaurantHandler struct {
	restaurants *restaurant.Service
}

func NewRestaurantHandler(svc *restaurant.Service) *RestaurantHandler {
	return &RestaurantHandler{restaurants: svc}
}

// Search handles POST /api/restaurants/search.
func (h *RestaurantHandler) Search(c *gin.Context) {
	var q restaurant.Query
	if err := c.ShouldBindJSON(&q); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}
	if q.City == "" || q.Country == "" {
		writeError(c, http.StatusBadRequest, "city and country are required")
		return
	}
	results, err := h.restaurants.Find(c.Request.Context(), q)
	if err != nil {
		if !writeGenError(c, err) {
			writeError(c, http.StatusInternalServerError, "internal error")
		}
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"restaurants": results})
}

// ListSaved handles GET /api/restaurants.
func (h *RestaurantHandler) ListSaved(c *gin.Context) {
	city := c.Query("city")
	country := c.Query("country")
	if city == "" {
		writeError(c, http.StatusBadRequest, "city is required")
		return
	}
	dietary := c.Query("dietary")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	results, err := h.restaurants.ListSaved(c.Request.Context(), city, country, dietary, limit)
	if err != nil {
		writeError(c, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"restaurants": results})
}
