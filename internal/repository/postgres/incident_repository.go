package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/domain/repository"
	"go.uber.org/zap"
)

type incidentRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewIncidentRepository creates an incident source backed by the recorded
// crime store. Read-only: the engine never writes back.
func NewIncidentRepository(db *DB, logger *zap.Logger) repository.IncidentRepository {
	return &incidentRepository{
		db:     db,
		logger: logger,
	}
}

type incidentRow struct {
	Lat           float64 `db:"lat"`
	Lon           float64 `db:"lon"`
	Category      string  `db:"category"`
	VictimProfile string  `db:"victim_profile"`
	TimeOfDay     string  `db:"time_of_day"`
}

// GetAllIncidents loads every recorded incident whose crime type maps onto
// the fixed category set. The victim sex and the recorded hour are folded
// into the catalog enumerations; crimes without a victim row count as "Any".
func (r *incidentRepository) GetAllIncidents(ctx context.Context) ([]domain.Incident, error) {
	query := `
		SELECT
			l.latitude  AS lat,
			l.longitude AS lon,
			c.crime_type AS category,
			CASE
				WHEN v.sex = 'F' THEN 'Female'
				WHEN v.sex = 'M' THEN 'Male'
				ELSE 'Any'
			END AS victim_profile,
			CASE
				WHEN EXTRACT(HOUR FROM c.start_date) >= 19
				  OR EXTRACT(HOUR FROM c.start_date) < 6 THEN 'night'
				ELSE 'day'
			END AS time_of_day
		FROM crime c
		JOIN location l ON l.location_id = c.location_id
		LEFT JOIN victim v ON v.crime_id = c.crime_id
		WHERE c.crime_type = ANY($1)
		  AND l.latitude IS NOT NULL
		  AND l.longitude IS NOT NULL
		ORDER BY c.crime_id
	`

	categories := domain.AllCategories()
	names := make([]string, len(categories))
	for i, cat := range categories {
		names[i] = string(cat)
	}

	var rows []incidentRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(names)); err != nil {
		r.logger.Error("Failed to load incidents", zap.Error(err))
		return nil, fmt.Errorf("load incidents: %w", err)
	}

	incidents := make([]domain.Incident, 0, len(rows))
	for _, row := range rows {
		incidents = append(incidents, domain.Incident{
			Lat:           row.Lat,
			Lon:           row.Lon,
			Category:      domain.CrimeCategory(row.Category),
			VictimProfile: domain.VictimProfile(row.VictimProfile),
			TimeOfDay:     domain.TimeOfDay(row.TimeOfDay),
		})
	}

	r.logger.Info("Incident catalog loaded from store", zap.Int("size", len(incidents)))

	return incidents, nil
}
