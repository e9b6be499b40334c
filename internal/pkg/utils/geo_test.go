package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saferoute-service/internal/pkg/utils"
)

func TestDegreeDistance(t *testing.T) {
	assert.Equal(t, 0.0, utils.DegreeDistance(23.81, 90.41, 23.81, 90.41))

	// 3-4-5 triangle in degree space
	d := utils.DegreeDistance(0, 0, 0.003, 0.004)
	assert.InDelta(t, 0.005, d, 1e-12)

	// Symmetric
	assert.Equal(t,
		utils.DegreeDistance(23.81, 90.41, 23.75, 90.39),
		utils.DegreeDistance(23.75, 90.39, 23.81, 90.41),
	)

	// Axis-aligned
	assert.InDelta(t, 0.01, utils.DegreeDistance(23.81, 90.41, 23.82, 90.41), 1e-12)
}

func TestHaversineDistance(t *testing.T) {
	// Same point
	assert.Equal(t, 0.0, utils.HaversineDistance(23.81, 90.41, 23.81, 90.41))

	// One degree of latitude is ~111 km anywhere
	d := utils.HaversineDistance(23.0, 90.0, 24.0, 90.0)
	assert.InDelta(t, 111.2, d, 1.0)

	// Longitude degrees shrink away from the equator
	dEquator := utils.HaversineDistance(0, 90.0, 0, 91.0)
	dDhaka := utils.HaversineDistance(23.8, 90.0, 23.8, 91.0)
	assert.Greater(t, dEquator, dDhaka)
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(23.8103, 90.4125))
	assert.True(t, utils.ValidateCoordinates(90, 180))
	assert.True(t, utils.ValidateCoordinates(-90, -180))
	assert.True(t, utils.ValidateCoordinates(0, 0))

	assert.False(t, utils.ValidateCoordinates(90.0001, 0))
	assert.False(t, utils.ValidateCoordinates(-91, 0))
	assert.False(t, utils.ValidateCoordinates(0, 180.5))
	assert.False(t, utils.ValidateCoordinates(0, -181))
}
