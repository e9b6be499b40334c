package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/domain/repository"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func (r *cacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	val, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		r.logger.Error("Failed to check cache existence", zap.String("key", key), zap.Error(err))
		return false, fmt.Errorf("cache exists error: %w", err)
	}

	return val > 0, nil
}

// heatmapKey builds the cache key for one request context. The gender string
// is used verbatim: demographic matching is case-sensitive, so "Female" and
// "female" produce different intensities and must not share an entry.
func heatmapKey(gender string, timeOfDay domain.TimeOfDay) string {
	return fmt.Sprintf("heatmap:%s:%s", gender, timeOfDay)
}

// GetHeatmap returns the cached heatmap for a request context
func (r *cacheRepository) GetHeatmap(ctx context.Context, gender string, timeOfDay domain.TimeOfDay) ([]domain.HeatmapPoint, error) {
	data, err := r.Get(ctx, heatmapKey(gender, timeOfDay))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var points []domain.HeatmapPoint
	if err := json.Unmarshal(data, &points); err != nil {
		r.logger.Error("Failed to unmarshal heatmap from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal heatmap: %w", err)
	}

	return points, nil
}

// SetHeatmap caches the heatmap for a request context
func (r *cacheRepository) SetHeatmap(ctx context.Context, gender string, timeOfDay domain.TimeOfDay, points []domain.HeatmapPoint, ttl time.Duration) error {
	data, err := json.Marshal(points)
	if err != nil {
		r.logger.Error("Failed to marshal heatmap", zap.Error(err))
		return fmt.Errorf("marshal heatmap: %w", err)
	}

	return r.Set(ctx, heatmapKey(gender, timeOfDay), data, ttl)
}

// GetStats returns the cached catalog statistics
func (r *cacheRepository) GetStats(ctx context.Context) (*domain.CatalogStats, error) {
	key := "stats:catalog"
	data, err := r.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var stats domain.CatalogStats
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Error("Failed to unmarshal stats from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal stats: %w", err)
	}

	return &stats, nil
}

// SetStats caches the catalog statistics
func (r *cacheRepository) SetStats(ctx context.Context, stats *domain.CatalogStats, ttl time.Duration) error {
	key := "stats:catalog"
	data, err := json.Marshal(stats)
	if err != nil {
		r.logger.Error("Failed to marshal stats", zap.Error(err))
		return fmt.Errorf("marshal stats: %w", err)
	}

	return r.Set(ctx, key, data, ttl)
}
