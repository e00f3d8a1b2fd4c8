package maps

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink(t *testing.T) {
	svc, err := NewService("")
	require.NoError(t, err)

	link := svc.Link("Eiffel Tower", "Paris", "France")
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Eiffel+Tower%2C+Paris%2C+France", link)

	// City and country are optional.
	link = svc.Link("Eiffel Tower", "", "")
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Eiffel+Tower", link)
}

func TestGeocode_LinkOnlyMode(t *testing.T) {
	svc, err := NewService("")
	require.NoError(t, err)

	_, err = svc.Geocode(context.Background(), "Paris")
	assert.ErrorIs(t, err, ErrNoClient)
}
