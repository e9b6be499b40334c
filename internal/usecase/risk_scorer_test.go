package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/usecase"
)

func TestRiskScorer_Score(t *testing.T) {
	point := domain.RoutePoint{Lat: 23.81, Lon: 90.41}
	route := domain.Route{point}

	t.Run("far incident contributes nothing", func(t *testing.T) {
		catalog := domain.NewIncidentCatalog([]domain.Incident{
			{Lat: 23.81, Lon: 90.42, Category: domain.CategoryAssault, VictimProfile: domain.ProfileAny, TimeOfDay: domain.TimeNight},
		})
		scorer := usecase.NewRiskScorer(catalog)

		assert.Equal(t, 0, scorer.Score(route, "Female", domain.TimeNight))
	})

	t.Run("base severity only", func(t *testing.T) {
		catalog := domain.NewIncidentCatalog([]domain.Incident{
			{Lat: 23.81, Lon: 90.41, Category: domain.CategoryAssault, VictimProfile: domain.ProfileMale, TimeOfDay: domain.TimeDay},
		})
		scorer := usecase.NewRiskScorer(catalog)

		// No time match, no demographic match: 7
		assert.Equal(t, 7, scorer.Score(route, "Female", domain.TimeNight))
	})

	t.Run("time of day multiplier truncates at the end", func(t *testing.T) {
		catalog := domain.NewIncidentCatalog([]domain.Incident{
			{Lat: 23.81, Lon: 90.41, Category: domain.CategoryAssault, VictimProfile: domain.ProfileMale, TimeOfDay: domain.TimeNight},
		})
		scorer := usecase.NewRiskScorer(catalog)

		// 7 * 1.5 = 10.5 -> 10
		assert.Equal(t, 10, scorer.Score(route, "Female", domain.TimeNight))
	})

	t.Run("both multipliers stack", func(t *testing.T) {
		catalog := domain.NewIncidentCatalog([]domain.Incident{
			{Lat: 23.81, Lon: 90.41, Category: domain.CategoryAssault, VictimProfile: domain.ProfileFemale, TimeOfDay: domain.TimeNight},
		})
		scorer := usecase.NewRiskScorer(catalog)

		// 7 * 1.5 * 1.5 = 15.75 -> 15
		assert.Equal(t, 15, scorer.Score(route, "Female", domain.TimeNight))
	})

	t.Run("any profile matches every gender", func(t *testing.T) {
		catalog := domain.NewIncidentCatalog([]domain.Incident{
			{Lat: 23.81, Lon: 90.41, Category: domain.CategoryTheft, VictimProfile: domain.ProfileAny, TimeOfDay: domain.TimeDay},
		})
		scorer := usecase.NewRiskScorer(catalog)

		// 2 * 1.5 = 3 for any gender at day
		assert.Equal(t, 3, scorer.Score(route, "Male", domain.TimeDay))
		assert.Equal(t, 3, scorer.Score(route, "Other", domain.TimeDay))
	})

	t.Run("fractions accumulate before truncation", func(t *testing.T) {
		catalog := domain.NewIncidentCatalog([]domain.Incident{
			{Lat: 23.81, Lon: 90.41, Category: domain.CategoryRobbery, VictimProfile: domain.ProfileMale, TimeOfDay: domain.TimeNight},
			{Lat: 23.81, Lon: 90.41, Category: domain.CategoryRobbery, VictimProfile: domain.ProfileMale, TimeOfDay: domain.TimeNight},
		})
		scorer := usecase.NewRiskScorer(catalog)

		// 5*1.5 + 5*1.5 = 15.0 -> 15; per-pair truncation would give 14
		assert.Equal(t, 15, scorer.Score(route, "Female", domain.TimeNight))
	})

	t.Run("incident counts once per nearby route point", func(t *testing.T) {
		catalog := domain.NewIncidentCatalog([]domain.Incident{
			{Lat: 23.81, Lon: 90.41, Category: domain.CategoryAssault, VictimProfile: domain.ProfileMale, TimeOfDay: domain.TimeDay},
		})
		scorer := usecase.NewRiskScorer(catalog)

		twoPoints := domain.Route{
			{Lat: 23.81, Lon: 90.41},
			{Lat: 23.811, Lon: 90.41},
		}

		// Both points sit within range of the same incident
		assert.Equal(t, 14, scorer.Score(twoPoints, "Female", domain.TimeNight))
	})

	t.Run("empty catalog scores zero", func(t *testing.T) {
		scorer := usecase.NewRiskScorer(domain.NewIncidentCatalog(nil))
		assert.Equal(t, 0, scorer.Score(route, "Female", domain.TimeNight))
	})

	t.Run("just outside threshold", func(t *testing.T) {
		catalog := domain.NewIncidentCatalog([]domain.Incident{
			{Lat: 23.81, Lon: 90.416, Category: domain.CategoryAssault, VictimProfile: domain.ProfileAny, TimeOfDay: domain.TimeNight},
		})
		scorer := usecase.NewRiskScorer(catalog)

		// 0.006 deg away, beyond the 0.005 cutoff
		assert.Equal(t, 0, scorer.Score(route, "Female", domain.TimeNight))
	})
}
