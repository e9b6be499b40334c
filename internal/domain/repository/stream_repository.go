package repository

import (
	"context"

	"github.com/saferoute-service/internal/domain"
)

// StreamRepository - the Redis Streams contract for the alert pipeline.
type StreamRepository interface {
	// CreateConsumerGroup creates the consumer group for a stream.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeStream reads messages from a stream through a consumer group.
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// AckMessage acknowledges a processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// PublishToStream publishes a JSON-serialized payload to a stream.
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
