package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tokyo-toilet-data/internal/pkg/utils"
)

func TestParseLatLon(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		lat, lon, err := utils.ParseLatLon("35.681236", "139.767125")
		require.NoError(t, err)
		assert.InDelta(t, 35.681236, lat, 1e-9)
		assert.InDelta(t, 139.767125, lon, 1e-9)
	})

	t.Run("surrounding whitespace tolerated", func(t *testing.T) {
		lat, lon, err := utils.ParseLatLon(" 35.0 ", "\t139.5")
		require.NoError(t, err)
		assert.Equal(t, 35.0, lat)
		assert.Equal(t, 139.5, lon)
	})

	t.Run("non-numeric latitude fails", func(t *testing.T) {
		_, _, err := utils.ParseLatLon("north", "139.7")
		assert.Error(t, err)
	})

	t.Run("empty longitude fails", func(t *testing.T) {
		_, _, err := utils.ParseLatLon("35.0", "")
		assert.Error(t, err)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(35.68, 139.76))
	assert.True(t, utils.ValidateCoordinates(-90, 180))
	assert.False(t, utils.ValidateCoordinates(91, 139.76))
	assert.False(t, utils.ValidateCoordinates(35.68, -181))
}

func TestCoordSet(t *testing.T) {
	const tolerance = 0.0001

	t.Run("identical point collapses", func(t *testing.T) {
		s := utils.NewCoordSet(tolerance)
		s.Add(35.0, 139.0)
		assert.True(t, s.Contains(35.0, 139.0))
	})

	t.Run("difference below tolerance collapses", func(t *testing.T) {
		s := utils.NewCoordSet(tolerance)
		s.Add(35.0, 139.0)
		assert.True(t, s.Contains(35.00009, 139.0))
		assert.True(t, s.Contains(35.0, 138.99991))
	})

	t.Run("difference above tolerance is kept", func(t *testing.T) {
		s := utils.NewCoordSet(tolerance)
		s.Add(35.0, 139.0)
		assert.False(t, s.Contains(35.00011, 139.0))
		assert.False(t, s.Contains(35.0, 139.00011))
	})

	t.Run("both axes must be inside tolerance", func(t *testing.T) {
		s := utils.NewCoordSet(tolerance)
		s.Add(35.0, 139.0)
		assert.False(t, s.Contains(35.00009, 139.5))
	})

	t.Run("empty set contains nothing", func(t *testing.T) {
		s := utils.NewCoordSet(tolerance)
		assert.False(t, s.Contains(35.0, 139.0))
		assert.Equal(t, 0, s.Len())
	})
}
