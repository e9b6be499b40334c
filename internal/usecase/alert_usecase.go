package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/domain/repository"
	"github.com/saferoute-service/internal/pkg/errors"
	"github.com/saferoute-service/internal/pkg/utils"
	"github.com/saferoute-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// AlertUseCase accepts panic alerts and hands them to the async notification
// pipeline. The HTTP path only publishes; workers do the processing.
type AlertUseCase struct {
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func NewAlertUseCase(streamRepo repository.StreamRepository, logger *zap.Logger) *AlertUseCase {
	return &AlertUseCase{
		streamRepo: streamRepo,
		logger:     logger,
	}
}

// RaisePanicAlert publishes the alert to the panic stream and returns its ID.
func (uc *AlertUseCase) RaisePanicAlert(ctx context.Context, req dto.PanicAlertRequest) (*dto.PanicAlertResponse, error) {
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidCoordinates
	}

	event := domain.PanicAlertEvent{
		AlertID:  uuid.New(),
		UserID:   req.UserID,
		Lat:      req.Lat,
		Lon:      req.Lon,
		RaisedAt: time.Now().UTC(),
	}

	if err := uc.streamRepo.PublishToStream(ctx, domain.StreamPanicAlerts, event); err != nil {
		uc.logger.Error("Failed to publish panic alert",
			zap.String("alert_id", event.AlertID.String()),
			zap.Error(err))
		return nil, errors.ErrStreamError
	}

	uc.logger.Info("Panic alert raised",
		zap.String("alert_id", event.AlertID.String()),
		zap.Int64("user_id", event.UserID),
	)

	return &dto.PanicAlertResponse{
		AlertID: event.AlertID.String(),
		Status:  "queued",
	}, nil
}
