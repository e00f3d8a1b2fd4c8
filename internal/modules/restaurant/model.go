// README: Restaurant recommendation record and search query.
package restaurant

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("restaurant not found")

// Restaurant is a generated recommendation, optionally tied to a trip.
type Restaurant struct {
	ID            uuid.UUID  `json:"id"`
	TripID        *uuid.UUID `json:"trip_id,omitempty"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Location      string     `json:"location"`
	City          string     `json:"city"`
	Country       string     `json:"country"`
	Cuisine       string     `json:"cuisine"`
	FoodType      string     `json:"food_type"`
	PriceRange    string     `json:"price_range"`
	Rating        float32    `json:"rating"`
	PopularDishes []string   `json:"popular_dishes"`
	ImageURL      string     `json:"image_url,omitempty"`
	Latitude      *float64   `json:"latitude,omitempty"`
	Longitude     *float64   `json:"longitude,omitempty"`
	MapsLink      string     `json:"maps_link,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Query narrows a restaurant search.
type Query struct {
	City       string     `json:"city"`
	Country    string     `json:"country"`
	Cuisine    string     `json:"cuisine,omitempty"`
	Dietary    string     `json:"dietary,omitempty"` // Vegetarian / Vegan / Halal / ...
	PriceRange string     `json:"price_range,omitempty"`
	Limit      int        `json:"limit,omitempty"`
	TripID     *uuid.UUID `json:"trip_id,omitempty"`
}
