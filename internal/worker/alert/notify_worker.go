package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/domain/repository"
	"github.com/saferoute-service/internal/worker"
	"go.uber.org/zap"
)

// NotifyWorker consumes panic alerts and publishes a notification for each.
// Parsing failures are acked and dropped so a poisoned message cannot wedge
// the stream; publish failures are retried and the message stays pending for
// redelivery.
type NotifyWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	consumerName string
	maxRetries   int
}

func NewNotifyWorker(
	streamRepo repository.StreamRepository,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *NotifyWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &NotifyWorker{
		BaseWorker:   worker.NewBaseWorker("alert-notify", consumerGroup, logger),
		streamRepo:   streamRepo,
		consumerName: consumerName,
		maxRetries:   maxRetries,
	}
}

// Start runs the consume loop until the context is cancelled or Stop is called
func (w *NotifyWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting NotifyWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamPanicAlerts, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	msgChan, err := w.streamRepo.ConsumeStream(ctx, domain.StreamPanicAlerts, w.ConsumerGroup(), w.consumerName)
	if err != nil {
		return fmt.Errorf("failed to consume stream: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		case msg, ok := <-msgChan:
			if !ok {
				logger.Info("Stream channel closed")
				return nil
			}
			w.handleMessage(ctx, msg)
		}
	}
}

func (w *NotifyWorker) handleMessage(ctx context.Context, msg domain.StreamMessage) {
	logger := w.Logger()

	var event domain.PanicAlertEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		logger.Warn("Failed to parse panic alert, skipping",
			zap.String("message_id", msg.ID),
			zap.Error(err))
		// Ack the broken message so it does not stay pending forever
		_ = w.streamRepo.AckMessage(ctx, domain.StreamPanicAlerts, w.ConsumerGroup(), msg.ID)
		return
	}

	notification := domain.NotificationEvent{
		AlertID:   event.AlertID,
		UserID:    event.UserID,
		Message:   fmt.Sprintf("Panic alert raised at (%.4f, %.4f)", event.Lat, event.Lon),
		CreatedAt: time.Now().UTC(),
	}

	published := false
	for attempt := 1; attempt <= w.maxRetries; attempt++ {
		if err := w.streamRepo.PublishToStream(ctx, domain.StreamAlertNotifications, notification); err != nil {
			logger.Error("Failed to publish notification",
				zap.String("alert_id", event.AlertID.String()),
				zap.Int("attempt", attempt),
				zap.Error(err))
			time.Sleep(time.Duration(attempt) * time.Second)
			continue
		}
		published = true
		break
	}

	if !published {
		// Leave the message pending for redelivery
		logger.Error("Giving up on notification, message left pending",
			zap.String("message_id", msg.ID),
			zap.String("alert_id", event.AlertID.String()))
		return
	}

	if err := w.streamRepo.AckMessage(ctx, domain.StreamPanicAlerts, w.ConsumerGroup(), msg.ID); err != nil {
		logger.Error("Failed to ack message", zap.String("message_id", msg.ID), zap.Error(err))
		return
	}

	logger.Info("Panic alert processed",
		zap.String("alert_id", event.AlertID.String()),
		zap.Int64("user_id", event.UserID))
}
