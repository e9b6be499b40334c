package repository

import (
	"context"

	"github.com/saferoute-service/internal/domain"
)

// IncidentRepository is the read-only contract against the incident store.
// It is queried exactly once at startup to populate the catalog; the scorer
// and the heatmap projector never care which implementation backed it.
type IncidentRepository interface {
	// GetAllIncidents returns every incident the store holds.
	GetAllIncidents(ctx context.Context) ([]domain.Incident, error)
}
