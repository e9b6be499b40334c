package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saferoute-service/internal/pkg/validator"
	"github.com/saferoute-service/internal/usecase/dto"
)

func TestSuggestRouteRequest_Validation(t *testing.T) {
	t.Run("gender is free text", func(t *testing.T) {
		req := dto.SuggestRouteRequest{
			StartLat:  23.8103,
			StartLon:  90.4125,
			Gender:    "Nonbinary",
			VisitTime: "22:30",
		}
		assert.NoError(t, validator.Validate(&req))
	})

	t.Run("empty gender accepted", func(t *testing.T) {
		req := dto.SuggestRouteRequest{StartLat: 23.8103, StartLon: 90.4125}
		assert.NoError(t, validator.Validate(&req))
	})

	t.Run("zero coordinates are valid", func(t *testing.T) {
		req := dto.SuggestRouteRequest{StartLat: 0, StartLon: 0, Gender: "Female"}
		assert.NoError(t, validator.Validate(&req))
	})

	t.Run("out of range coordinates rejected", func(t *testing.T) {
		assert.Error(t, validator.Validate(&dto.SuggestRouteRequest{StartLat: 91, StartLon: 0}))
		assert.Error(t, validator.Validate(&dto.SuggestRouteRequest{StartLat: 0, StartLon: -181}))
	})
}

func TestPanicAlertRequest_Validation(t *testing.T) {
	t.Run("zero coordinates are valid", func(t *testing.T) {
		req := dto.PanicAlertRequest{UserID: 7, Lat: 0, Lon: 0}
		assert.NoError(t, validator.Validate(&req))
	})

	t.Run("user id still required", func(t *testing.T) {
		assert.Error(t, validator.Validate(&dto.PanicAlertRequest{Lat: 23.79, Lon: 90.40}))
	})

	t.Run("out of range coordinates rejected", func(t *testing.T) {
		assert.Error(t, validator.Validate(&dto.PanicAlertRequest{UserID: 1, Lat: -95, Lon: 0}))
	})
}
