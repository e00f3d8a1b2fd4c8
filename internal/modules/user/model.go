// README: User accounts; trips, favorites and bookmarks hang off a user.
package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrDuplicate  = errors.New("username or email already taken")
	ErrBadRequest = errors.New("invalid user request")
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name,omitempty"`
	Country   string    `json:"country,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Request struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Country  string `json:"country"`
}

func (r *Request) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.TrimSpace(r.Email)
	if r.Username == "" || r.Email == "" {
		return ErrBadRequest
	}
	if !strings.Contains(r.Email, "@") {
		return ErrBadRequest
	}
	return nil
}
