// README: HTTP router registration.
package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"nomad/internal/http/handlers"
	"nomad/internal/http/middleware"
	"nomad/internal/modules/bookmark"
	"nomad/internal/modules/destination"
	"nomad/internal/modules/favorite"
	"nomad/internal/modules/hotel"
	"nomad/internal/modules/restaurant"
	"nomad/internal/modules/trip"
	"nomad/internal/modules/user"
)

type RouterDeps struct {
	Users        *user.Service
	Trips        *trip.Service
	Hotels       *hotel.Service
	Restaurants  *restaurant.Service
	Favorites    *favorite.Service
	Bookmarks    *bookmark.Service
	Destinations *destination.Service
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery(), middleware.Logging(), cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api")

	userHandler := handlers.NewUserHandler(deps.Users)
	api.POST("/users", userHandler.Register)
	api.GET("/users", userHandler.Lookup)
	api.GET("/users/:id", userHandler.Get)
	api.DELETE("/users/:id", userHandler.Delete)

	tripHandler := handlers.NewTripHandler(deps.Trips)
	api.POST("/users/:id/trips", tripHandler.Generate)
	api.GET("/users/:id/trips", tripHandler.List)
	api.GET("/users/:id/trips/:trip_id", tripHandler.Get)
	api.PATCH("/users/:id/trips/:trip_id", tripHandler.Edit)
	api.DELETE("/users/:id/trips/:trip_id", tripHandler.Delete)
	api.GET("/users/:id/trips/:trip_id/summary", tripHandler.Summary)
	api.GET("/users/:id/stats", tripHandler.Stats)

	hotelHandler := handlers.NewHotelHandler(deps.Hotels)
	api.POST("/hotels/search", hotelHandler.Search)
	api.GET("/hotels", hotelHandler.ListSaved)

	restaurantHandler := handlers.NewRestaurantHandler(deps.Restaurants)
	api.POST("/restaurants/search", restaurantHandler.Search)
	api.GET("/restaurants", restaurantHandler.ListSaved)

	favoriteHandler := handlers.NewFavoriteHandler(deps.Favorites)
	api.GET("/users/:id/favorites", favoriteHandler.List)
	api.POST("/users/:id/favorites/trips", favoriteHandler.AddSaved)
	api.GET("/users/:id/favorites/trips/:trip_id", favoriteHandler.StatusSaved)
	api.DELETE("/users/:id/favorites/trips/:trip_id", favoriteHandler.RemoveSaved)
	api.POST("/users/:id/favorites/popular", favoriteHandler.AddPopular)
	api.GET("/users/:id/favorites/popular", favoriteHandler.StatusPopular)
	api.DELETE("/users/:id/favorites/popular", favoriteHandler.RemovePopular)

	bookmarkHandler := handlers.NewBookmarkHandler(deps.Bookmarks)
	api.GET("/users/:id/bookmarks", bookmarkHandler.List)
	api.POST("/users/:id/bookmarks", bookmarkHandler.Add)
	api.GET("/users/:id/bookmarks/status", bookmarkHandler.Status)
	api.DELETE("/users/:id/bookmarks", bookmarkHandler.Remove)

	destinationHandler := handlers.NewDestinationHandler(deps.Destinations)
	api.GET("/destinations", destinationHandler.Insight)

	return r
}
