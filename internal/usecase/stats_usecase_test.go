package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/usecase"
)

func TestStatsUseCase_GetStats(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	catalog := domain.NewIncidentCatalog([]domain.Incident{
		{Lat: 23.80, Lon: 90.40, Category: domain.CategoryTheft, VictimProfile: domain.ProfileAny, TimeOfDay: domain.TimeDay},
		{Lat: 23.85, Lon: 90.45, Category: domain.CategoryTheft, VictimProfile: domain.ProfileFemale, TimeOfDay: domain.TimeNight},
		{Lat: 23.75, Lon: 90.38, Category: domain.CategoryAssault, VictimProfile: domain.ProfileFemale, TimeOfDay: domain.TimeNight},
	})

	t.Run("aggregates catalog on cache miss", func(t *testing.T) {
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("GetStats", ctx).Return(nil, nil)
		cacheRepo.On("SetStats", ctx, mock.Anything, time.Minute).Return(nil)

		uc := usecase.NewStatsUseCase(catalog, cacheRepo, time.Minute, logger)

		stats, err := uc.GetStats(ctx)
		require.NoError(t, err)

		assert.Equal(t, 3, stats.TotalIncidents)
		assert.Equal(t, 2, stats.ByCategory[domain.CategoryTheft])
		assert.Equal(t, 1, stats.ByCategory[domain.CategoryAssault])
		assert.Equal(t, 2, stats.ByTimeOfDay[domain.TimeNight])
		assert.Equal(t, 1, stats.ByTimeOfDay[domain.TimeDay])
		assert.Equal(t, 2, stats.ByVictimProfile[domain.ProfileFemale])
		assert.Equal(t, 1, stats.ByVictimProfile[domain.ProfileAny])

		assert.Equal(t, 23.75, stats.Coverage.BBoxMinLat)
		assert.Equal(t, 23.85, stats.Coverage.BBoxMaxLat)
		assert.Equal(t, 90.38, stats.Coverage.BBoxMinLon)
		assert.Equal(t, 90.45, stats.Coverage.BBoxMaxLon)
		assert.InDelta(t, 23.80, stats.Coverage.CenterLat, 1e-9)
		assert.InDelta(t, 90.415, stats.Coverage.CenterLon, 1e-9)

		assert.False(t, stats.GeneratedAt.IsZero())
		cacheRepo.AssertExpectations(t)
	})

	t.Run("returns cached stats", func(t *testing.T) {
		cached := &domain.CatalogStats{TotalIncidents: 42}

		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("GetStats", ctx).Return(cached, nil)

		uc := usecase.NewStatsUseCase(catalog, cacheRepo, time.Minute, logger)

		stats, err := uc.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, cached, stats)

		cacheRepo.AssertNotCalled(t, "SetStats", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty catalog", func(t *testing.T) {
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("GetStats", ctx).Return(nil, nil)
		cacheRepo.On("SetStats", ctx, mock.Anything, time.Minute).Return(nil)

		uc := usecase.NewStatsUseCase(domain.NewIncidentCatalog(nil), cacheRepo, time.Minute, logger)

		stats, err := uc.GetStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, stats.TotalIncidents)
		assert.Equal(t, 0.0, stats.Coverage.CenterLat)
	})
}
