package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/pkg/errors"
	"github.com/saferoute-service/internal/usecase"
	"github.com/saferoute-service/internal/usecase/dto"
)

func TestAlertUseCase_RaisePanicAlert(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("publishes to the panic stream", func(t *testing.T) {
		streamRepo := &MockStreamRepository{}
		streamRepo.On("PublishToStream", ctx, domain.StreamPanicAlerts, mock.AnythingOfType("domain.PanicAlertEvent")).Return(nil)

		uc := usecase.NewAlertUseCase(streamRepo, logger)

		resp, err := uc.RaisePanicAlert(ctx, dto.PanicAlertRequest{
			UserID: 42,
			Lat:    23.7925,
			Lon:    90.4078,
		})
		require.NoError(t, err)

		assert.Equal(t, "queued", resp.Status)
		_, parseErr := uuid.Parse(resp.AlertID)
		assert.NoError(t, parseErr)

		event := streamRepo.Calls[0].Arguments.Get(2).(domain.PanicAlertEvent)
		assert.Equal(t, int64(42), event.UserID)
		assert.Equal(t, 23.7925, event.Lat)
		assert.Equal(t, 90.4078, event.Lon)
		assert.False(t, event.RaisedAt.IsZero())

		streamRepo.AssertExpectations(t)
	})

	t.Run("stream failure surfaces as stream error", func(t *testing.T) {
		streamRepo := &MockStreamRepository{}
		streamRepo.On("PublishToStream", ctx, domain.StreamPanicAlerts, mock.Anything).Return(assert.AnError)

		uc := usecase.NewAlertUseCase(streamRepo, logger)

		_, err := uc.RaisePanicAlert(ctx, dto.PanicAlertRequest{UserID: 1, Lat: 23.79, Lon: 90.40})
		assert.ErrorIs(t, err, errors.ErrStreamError)
	})

	t.Run("invalid coordinates rejected before publish", func(t *testing.T) {
		streamRepo := &MockStreamRepository{}
		uc := usecase.NewAlertUseCase(streamRepo, logger)

		_, err := uc.RaisePanicAlert(ctx, dto.PanicAlertRequest{UserID: 1, Lat: 95, Lon: 0})
		assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)

		streamRepo.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	})
}
