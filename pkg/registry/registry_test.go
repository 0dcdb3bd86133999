package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polyroute/polyroute/pkg/registry"
	"github.com/polyroute/polyroute/pkg/transport"
)

func TestRegistry_OrderAndLookup(t *testing.T) {
	reg, err := registry.New([]transport.Location{
		{Name: "Delhi", Latitude: 28.6139, Longitude: 77.2090},
		{Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777},
		{Name: "Kolkata", Latitude: 22.5726, Longitude: 88.3639},
	})
	require.NoError(t, err)

	require.Equal(t, 3, reg.Len())
	require.Equal(t, []string{"Delhi", "Mumbai", "Kolkata"}, reg.Names())
	require.Equal(t, "Mumbai", reg.At(1).Name)

	index, exists := reg.IndexOf("Kolkata")
	require.True(t, exists)
	require.Equal(t, 2, index)

	location, exists := reg.Get("Delhi")
	require.True(t, exists)
	require.Equal(t, 28.6139, location.Latitude)
}

func TestRegistry_ExactMatchOnly(t *testing.T) {
	reg, err := registry.New([]transport.Location{{Name: "Delhi"}})
	require.NoError(t, err)

	_, exists := reg.Get("delhi")
	require.False(t, exists)
	_, exists = reg.Get("Delhi ")
	require.False(t, exists)
}

func TestRegistry_DuplicateName(t *testing.T) {
	_, err := registry.New([]transport.Location{
		{Name: "Delhi"},
		{Name: "Delhi"},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "Delhi")
}
