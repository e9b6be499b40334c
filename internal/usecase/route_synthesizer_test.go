package usecase_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/usecase"
)

func TestRouteSynthesizer_Endpoints(t *testing.T) {
	synth := usecase.NewRouteSynthesizer(15, rand.New(rand.NewSource(1)))

	start := domain.RoutePoint{Lat: 23.8103, Lon: 90.4125}
	end := domain.RoutePoint{Lat: 23.785, Lon: 90.408}

	route := synth.Synthesize(start, end)

	require.Len(t, route, 16)
	assert.Equal(t, start, route.Start())
	assert.Equal(t, end, route.End())
}

func TestRouteSynthesizer_InteriorDeviation(t *testing.T) {
	const n = 15
	synth := usecase.NewRouteSynthesizer(n, rand.New(rand.NewSource(7)))

	start := domain.RoutePoint{Lat: 23.8103, Lon: 90.4125}
	end := domain.RoutePoint{Lat: 23.753, Lon: 90.392}

	route := synth.Synthesize(start, end)

	// Each interior point stays within half the jitter amplitude of the
	// straight line, per axis
	for i := 1; i < n; i++ {
		fraction := float64(i) / float64(n)
		lerpLat := start.Lat + (end.Lat-start.Lat)*fraction
		lerpLon := start.Lon + (end.Lon-start.Lon)*fraction

		assert.LessOrEqual(t, math.Abs(route[i].Lat-lerpLat), 0.004, "point %d lat", i)
		assert.LessOrEqual(t, math.Abs(route[i].Lon-lerpLon), 0.004, "point %d lon", i)
	}
}

func TestRouteSynthesizer_MinimumPoints(t *testing.T) {
	synth := usecase.NewRouteSynthesizer(0, rand.New(rand.NewSource(1)))

	route := synth.Synthesize(
		domain.RoutePoint{Lat: 0, Lon: 0},
		domain.RoutePoint{Lat: 1, Lon: 1},
	)

	// Raised to 2 segments, so 3 points with one interior
	assert.Len(t, route, 3)
}

func TestRouteSynthesizer_SeededDeterminism(t *testing.T) {
	start := domain.RoutePoint{Lat: 23.8103, Lon: 90.4125}
	end := domain.RoutePoint{Lat: 23.785, Lon: 90.408}

	first := usecase.NewRouteSynthesizer(15, rand.New(rand.NewSource(99))).Synthesize(start, end)
	second := usecase.NewRouteSynthesizer(15, rand.New(rand.NewSource(99))).Synthesize(start, end)

	assert.Equal(t, first, second)
}
