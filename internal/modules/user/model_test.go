package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestValidate(t *testing.T) {
	r := Request{Username: "  ana  ", Email: " ana@example.com "}
	assert.NoError(t, r.Validate())
	// Validate trims before checking.
	assert.Equal(t, "ana", r.Username)
	assert.Equal(t, "ana@example.com", r.Email)

	assert.ErrorIs(t, (&Request{Email: "a@b.com"}).Validate(), ErrBadRequest)
	assert.ErrorIs(t, (&Request{Username: "ana"}).Validate(), ErrBadRequest)
	assert.ErrorIs(t, (&Request{Username: "ana", Email: "not-an-email"}).Validate(), ErrBadRequest)
}
