// README: Favorite trips; saved-trip and popular-trip variants.
package favorite

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrBadRequest = errors.New("bad favorite request")
	ErrNotFound   = errors.New("favorite not found")
	ErrDuplicate  = errors.New("trip already favorited")
)

// Favorite is a (user, trip) or (user, popular-trip descriptor) pair.
// The two variants are mutually exclusive, discriminated by IsPopular:
// a saved favorite has TripID set, a popular one carries the descriptor.
type Favorite struct {
	ID                 uuid.UUID       `json:"id"`
	UserID             uuid.UUID       `json:"user_id"`
	TripID             *uuid.UUID      `json:"trip_id,omitempty"`
	IsPopular          bool            `json:"is_popular"`
	PopularTitle       string          `json:"popular_title,omitempty"`
	PopularDestination string          `json:"popular_destination,omitempty"`
	PopularPayload     json.RawMessage `json:"popular_payload,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// Validate enforces variant exclusivity.
func (f Favorite) Validate() error {
	if f.IsPopular {
		if f.TripID != nil || f.PopularTitle == "" {
			return ErrBadRequest
		}
		return nil
	}
	if f.TripID == nil {
		return ErrBadRequest
	}
	return nil
}

// Lists groups a user's favorites by variant for display.
type Lists struct {
	SavedTrips   []Favorite `json:"saved_trips"`
	PopularTrips []Favorite `json:"popular_trips"`
}
