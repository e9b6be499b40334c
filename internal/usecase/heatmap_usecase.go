package usecase

import (
	"context"
	"time"

	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/domain/repository"
	"go.uber.org/zap"
)

const (
	baseIntensity      = 0.5
	contextualityBonus = 0.3
)

// HeatmapUseCase projects the incident catalog into weighted map points for
// one request context. Projections are cached per (gender, time of day) pair;
// the cache is an optimization and its failures never fail a request.
type HeatmapUseCase struct {
	catalog   *domain.IncidentCatalog
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
	logger    *zap.Logger
}

func NewHeatmapUseCase(
	catalog *domain.IncidentCatalog,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *HeatmapUseCase {
	return &HeatmapUseCase{
		catalog:   catalog,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// Project returns one point per catalog incident, in catalog order. Intensity
// starts at the base and gains a bonus for a time-of-day match and another for
// a demographic match.
func (uc *HeatmapUseCase) Project(ctx context.Context, gender string, timeOfDay domain.TimeOfDay) ([]domain.HeatmapPoint, error) {
	if cached, err := uc.cacheRepo.GetHeatmap(ctx, gender, timeOfDay); err != nil {
		uc.logger.Warn("Heatmap cache read failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	points := make([]domain.HeatmapPoint, 0, uc.catalog.Size())
	for _, incident := range uc.catalog.All() {
		intensity := baseIntensity
		if incident.TimeOfDay == timeOfDay {
			intensity += contextualityBonus
		}
		if incident.VictimProfile.Matches(gender) {
			intensity += contextualityBonus
		}

		points = append(points, domain.HeatmapPoint{
			Lat:       incident.Lat,
			Lon:       incident.Lon,
			Intensity: intensity,
		})
	}

	if err := uc.cacheRepo.SetHeatmap(ctx, gender, timeOfDay, points, uc.cacheTTL); err != nil {
		uc.logger.Warn("Heatmap cache write failed", zap.Error(err))
	}

	return points, nil
}
