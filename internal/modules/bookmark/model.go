// README: Hotel/restaurant bookmarks keyed by (user, type, name, location).
package bookmark

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBadRequest = errors.New("bad bookmark request")
	ErrNotFound   = errors.New("bookmark not found")
	ErrDuplicate  = errors.New("item already bookmarked")
)

// ItemType discriminates what kind of item a bookmark points at.
type ItemType string

const (
	ItemHotel      ItemType = "hotel"
	ItemRestaurant ItemType = "restaurant"
)

func (t ItemType) Valid() bool {
	return t == ItemHotel || t == ItemRestaurant
}

// Bookmark is a user's saved pointer to a recommended hotel or
// restaurant. Identity is (user, item_type, name, location); the full
// item snapshot rides along as a JSON payload.
type Bookmark struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	ItemType  ItemType        `json:"item_type"`
	Name      string          `json:"item_name"`
	Location  string          `json:"item_location"`
	City      string          `json:"item_city,omitempty"`
	Country   string          `json:"item_country,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func (b Bookmark) Validate() error {
	if !b.ItemType.Valid() || b.Name == "" {
		return ErrBadRequest
	}
	return nil
}

// Lists groups a user's bookmarks by item type for display.
type Lists struct {
	Hotels      []Bookmark `json:"hotels"`
	Restaurants []Bookmark `json:"restaurants"`
}
