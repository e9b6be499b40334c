package synthetic

import (
	"context"
	"math/rand"
	"time"

	"github.com/saferoute-service/internal/config"
	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/domain/repository"
	"go.uber.org/zap"
)

// incidentRepository synthesizes an incident catalog in place of the recorded
// crime store. Every attribute is drawn independently and uniformly, so the
// catalog is plausible noise, not data. Deployments with a real store use the
// postgres implementation instead; the engine cannot tell the difference.
type incidentRepository struct {
	size      int
	centerLat float64
	centerLon float64
	spreadDeg float64
	rng       *rand.Rand
	logger    *zap.Logger
}

// NewIncidentRepository creates a synthetic incident source. A zero seed
// falls back to the clock; a fixed seed reproduces the same catalog.
func NewIncidentRepository(cfg *config.CatalogConfig, logger *zap.Logger) repository.IncidentRepository {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &incidentRepository{
		size:      cfg.Size,
		centerLat: cfg.CenterLat,
		centerLon: cfg.CenterLon,
		spreadDeg: cfg.SpreadDeg,
		rng:       rand.New(rand.NewSource(seed)),
		logger:    logger,
	}
}

// GetAllIncidents generates the configured number of incidents uniformly
// inside the box centerLat±spread/2 × centerLon±spread/2. Generation always
// succeeds; values are valid by construction.
func (r *incidentRepository) GetAllIncidents(_ context.Context) ([]domain.Incident, error) {
	categories := domain.AllCategories()
	profiles := domain.AllVictimProfiles()
	times := domain.AllTimesOfDay()

	incidents := make([]domain.Incident, 0, r.size)
	for i := 0; i < r.size; i++ {
		incidents = append(incidents, domain.Incident{
			Lat:           r.centerLat + (r.rng.Float64()-0.5)*r.spreadDeg,
			Lon:           r.centerLon + (r.rng.Float64()-0.5)*r.spreadDeg,
			Category:      categories[r.rng.Intn(len(categories))],
			VictimProfile: profiles[r.rng.Intn(len(profiles))],
			TimeOfDay:     times[r.rng.Intn(len(times))],
		})
	}

	r.logger.Info("Synthetic incident catalog generated",
		zap.Int("size", len(incidents)),
		zap.Float64("center_lat", r.centerLat),
		zap.Float64("center_lon", r.centerLon),
		zap.Float64("spread_deg", r.spreadDeg),
	)

	return incidents, nil
}
