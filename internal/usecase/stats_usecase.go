package usecase

import (
	"context"
	"time"

	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/domain/repository"
	"go.uber.org/zap"
)

// StatsUseCase aggregates the incident catalog for the dashboard. The catalog
// never changes after startup, so the aggregate is cached and recomputation is
// cheap when the cache is cold.
type StatsUseCase struct {
	catalog   *domain.IncidentCatalog
	cacheRepo repository.CacheRepository
	cacheTTL  time.Duration
	logger    *zap.Logger
}

func NewStatsUseCase(
	catalog *domain.IncidentCatalog,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *StatsUseCase {
	return &StatsUseCase{
		catalog:   catalog,
		cacheRepo: cacheRepo,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// GetStats returns catalog counts by category, time of day and victim
// profile, plus the bounding box the incidents span.
func (uc *StatsUseCase) GetStats(ctx context.Context) (*domain.CatalogStats, error) {
	if cached, err := uc.cacheRepo.GetStats(ctx); err != nil {
		uc.logger.Warn("Stats cache read failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	stats := &domain.CatalogStats{
		TotalIncidents:  uc.catalog.Size(),
		ByCategory:      make(map[domain.CrimeCategory]int),
		ByTimeOfDay:     make(map[domain.TimeOfDay]int),
		ByVictimProfile: make(map[domain.VictimProfile]int),
		GeneratedAt:     time.Now().UTC(),
	}

	for i, incident := range uc.catalog.All() {
		stats.ByCategory[incident.Category]++
		stats.ByTimeOfDay[incident.TimeOfDay]++
		stats.ByVictimProfile[incident.VictimProfile]++

		if i == 0 {
			stats.Coverage.BBoxMinLat = incident.Lat
			stats.Coverage.BBoxMaxLat = incident.Lat
			stats.Coverage.BBoxMinLon = incident.Lon
			stats.Coverage.BBoxMaxLon = incident.Lon
			continue
		}
		if incident.Lat < stats.Coverage.BBoxMinLat {
			stats.Coverage.BBoxMinLat = incident.Lat
		}
		if incident.Lat > stats.Coverage.BBoxMaxLat {
			stats.Coverage.BBoxMaxLat = incident.Lat
		}
		if incident.Lon < stats.Coverage.BBoxMinLon {
			stats.Coverage.BBoxMinLon = incident.Lon
		}
		if incident.Lon > stats.Coverage.BBoxMaxLon {
			stats.Coverage.BBoxMaxLon = incident.Lon
		}
	}

	if stats.TotalIncidents > 0 {
		stats.Coverage.CenterLat = (stats.Coverage.BBoxMinLat + stats.Coverage.BBoxMaxLat) / 2
		stats.Coverage.CenterLon = (stats.Coverage.BBoxMinLon + stats.Coverage.BBoxMaxLon) / 2
	}

	if err := uc.cacheRepo.SetStats(ctx, stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Stats cache write failed", zap.Error(err))
	}

	return stats, nil
}
