// README: Hotel recommendation record and search query.
package hotel

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("hotel not found")

// Hotel is a generated recommendation, optionally tied to a trip.
type Hotel struct {
	ID            uuid.UUID  `json:"id"`
	TripID        *uuid.UUID `json:"trip_id,omitempty"`
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Location      string     `json:"location"`
	City          string     `json:"city"`
	Country       string     `json:"country"`
	PricePerNight float64    `json:"price_per_night"`
	Rating        float32    `json:"rating"`
	RoomType      string     `json:"room_type"`
	Amenities     []string   `json:"amenities"`
	ImageURL      string     `json:"image_url,omitempty"`
	Latitude      *float64   `json:"latitude,omitempty"`
	Longitude     *float64   `json:"longitude,omitempty"`
	MapsLink      string     `json:"maps_link,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Query narrows a hotel search.
type Query struct {
	City       string     `json:"city"`
	Country    string     `json:"country"`
	RoomType   string     `json:"room_type,omitempty"`
	Amenities  []string   `json:"amenities,omitempty"`
	PriceRange string     `json:"price_range,omitempty"` // Budget / Medium / Luxury
	Limit      int        `json:"limit,omitempty"`
	TripID     *uuid.UUID `json:"trip_id,omitempty"`
}
