package repository

import (
	"context"
	"time"

	"github.com/saferoute-service/internal/domain"
)

// CacheRepository defines the cache operations used by the use cases.
type CacheRepository interface {
	// Get returns the cached value for the key, nil on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value under the key with a TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes the key.
	Delete(ctx context.Context, key string) error

	// Exists reports whether the key is present.
	Exists(ctx context.Context, key string) (bool, error)

	// GetHeatmap returns the cached heatmap for a request context, nil on a miss.
	GetHeatmap(ctx context.Context, gender string, timeOfDay domain.TimeOfDay) ([]domain.HeatmapPoint, error)

	// SetHeatmap caches the heatmap for a request context.
	SetHeatmap(ctx context.Context, gender string, timeOfDay domain.TimeOfDay, points []domain.HeatmapPoint, ttl time.Duration) error

	// GetStats returns the cached catalog statistics, nil on a miss.
	GetStats(ctx context.Context) (*domain.CatalogStats, error)

	// SetStats caches the catalog statistics.
	SetStats(ctx context.Context, stats *domain.CatalogStats, ttl time.Duration) error
}
