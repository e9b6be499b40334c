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
	"github.com/saferoute-service/internal/pkg/errors"
	"github.com/saferoute-service/internal/usecase"
)

func TestHeatmapUseCase_Project(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	catalog := domain.NewIncidentCatalog([]domain.Incident{
		{Lat: 23.81, Lon: 90.41, Category: domain.CategoryAssault, VictimProfile: domain.ProfileAny, TimeOfDay: domain.TimeNight},
		{Lat: 23.82, Lon: 90.42, Category: domain.CategoryTheft, VictimProfile: domain.ProfileMale, TimeOfDay: domain.TimeDay},
		{Lat: 23.83, Lon: 90.43, Category: domain.CategoryRobbery, VictimProfile: domain.ProfileFemale, TimeOfDay: domain.TimeNight},
	})

	t.Run("computes intensities on cache miss", func(t *testing.T) {
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("GetHeatmap", ctx, "Female", domain.TimeNight).Return(nil, nil)
		cacheRepo.On("SetHeatmap", ctx, "Female", domain.TimeNight, mock.Anything, time.Minute).Return(nil)

		uc := usecase.NewHeatmapUseCase(catalog, cacheRepo, time.Minute, logger)

		points, err := uc.Project(ctx, "Female", domain.TimeNight)
		require.NoError(t, err)
		require.Len(t, points, 3)

		// Catalog order is preserved
		assert.Equal(t, 23.81, points[0].Lat)
		assert.Equal(t, 23.82, points[1].Lat)
		assert.Equal(t, 23.83, points[2].Lat)

		// Time and demographic match: 0.5 + 0.3 + 0.3
		assert.InDelta(t, 1.1, points[0].Intensity, 1e-9)
		// Neither matches
		assert.InDelta(t, 0.5, points[1].Intensity, 1e-9)
		// Both match again
		assert.InDelta(t, 1.1, points[2].Intensity, 1e-9)

		cacheRepo.AssertExpectations(t)
	})

	t.Run("returns cached projection without recomputing", func(t *testing.T) {
		cached := []domain.HeatmapPoint{{Lat: 1, Lon: 2, Intensity: 0.8}}

		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("GetHeatmap", ctx, "Male", domain.TimeDay).Return(cached, nil)

		uc := usecase.NewHeatmapUseCase(catalog, cacheRepo, time.Minute, logger)

		points, err := uc.Project(ctx, "Male", domain.TimeDay)
		require.NoError(t, err)
		assert.Equal(t, cached, points)

		cacheRepo.AssertNotCalled(t, "SetHeatmap", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("cache failures do not fail the projection", func(t *testing.T) {
		cacheRepo := &MockCacheRepository{}
		cacheRepo.On("GetHeatmap", ctx, "Female", domain.TimeDay).Return(nil, errors.ErrCacheError)
		cacheRepo.On("SetHeatmap", ctx, "Female", domain.TimeDay, mock.Anything, time.Minute).Return(errors.ErrCacheError)

		uc := usecase.NewHeatmapUseCase(catalog, cacheRepo, time.Minute, logger)

		points, err := uc.Project(ctx, "Female", domain.TimeDay)
		require.NoError(t, err)
		assert.Len(t, points, 3)
	})
}
