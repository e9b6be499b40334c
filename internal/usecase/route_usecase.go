package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/pkg/errors"
	"github.com/saferoute-service/internal/pkg/utils"
	"github.com/saferoute-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteUseCase evaluates the route option menu for a request and suggests the
// option with the strictly lowest risk score. Ties keep the earlier option in
// menu order.
type RouteUseCase struct {
	synthesizer *RouteSynthesizer
	scorer      *RiskScorer
	heatmapUC   *HeatmapUseCase
	options     []domain.RouteOption
	rng         RandSource
	logger      *zap.Logger
}

// NewRouteUseCase wires the suggestion pipeline. An empty option menu is a
// configuration defect and refuses construction.
func NewRouteUseCase(
	synthesizer *RouteSynthesizer,
	scorer *RiskScorer,
	heatmapUC *HeatmapUseCase,
	options []domain.RouteOption,
	rng RandSource,
	logger *zap.Logger,
) (*RouteUseCase, error) {
	if len(options) == 0 {
		return nil, errors.ErrEmptyRouteMenu
	}
	return &RouteUseCase{
		synthesizer: synthesizer,
		scorer:      scorer,
		heatmapUC:   heatmapUC,
		options:     options,
		rng:         rng,
		logger:      logger,
	}, nil
}

// DeriveTimeOfDay buckets a "HH:MM" visit time. Any parsed hour goes straight
// through the night test, so out-of-range values like "25:00" bucket as night
// rather than erroring; only an unparsable value falls back to the hour of
// now, degrading to "right now" instead of an error.
func DeriveTimeOfDay(visitTime string, now time.Time) domain.TimeOfDay {
	hour := now.Hour()
	if parts := strings.SplitN(visitTime, ":", 2); len(parts) == 2 {
		if h, err := strconv.Atoi(parts[0]); err == nil {
			hour = h
		}
	}
	return domain.TimeOfDayForHour(hour)
}

// SuggestRoute synthesizes one candidate per menu option from the request
// origin, scores each against the catalog and returns the winner with its
// heatmap and polyline. The free-text destination is logged for analytics but
// does not steer the fixed menu.
func (uc *RouteUseCase) SuggestRoute(ctx context.Context, req dto.SuggestRouteRequest) (*dto.SuggestRouteResponse, error) {
	if !utils.ValidateCoordinates(req.StartLat, req.StartLon) {
		return nil, errors.ErrInvalidCoordinates
	}

	timeOfDay := DeriveTimeOfDay(req.VisitTime, time.Now())
	start := domain.RoutePoint{Lat: req.StartLat, Lon: req.StartLon}

	var (
		bestOption domain.RouteOption
		bestRoute  domain.Route
		bestScore  int
	)

	for i, option := range uc.options {
		route := uc.synthesizer.Synthesize(start, option.End())
		score := uc.scorer.Score(route, req.Gender, timeOfDay)

		uc.logger.Debug("Route option scored",
			zap.String("option", option.Name),
			zap.Int("score", score),
		)

		if i == 0 || score < bestScore {
			bestOption = option
			bestRoute = route
			bestScore = score
		}
	}

	assessment := domain.ClassifyRisk(bestScore)

	eta := bestOption.EtaMin
	if spread := bestOption.EtaMax - bestOption.EtaMin; spread > 0 {
		eta += uc.rng.Intn(spread + 1)
	}

	heatmap, err := uc.heatmapUC.Project(ctx, req.Gender, timeOfDay)
	if err != nil {
		uc.logger.Error("Failed to project heatmap", zap.Error(err))
		return nil, err
	}

	coords := make([][]float64, 0, len(bestRoute))
	for _, p := range bestRoute {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}

	uc.logger.Info("Route suggested",
		zap.String("option", bestOption.Name),
		zap.Int("score", bestScore),
		zap.String("band", string(assessment.Band)),
		zap.String("time_of_day", string(timeOfDay)),
		zap.String("destination", req.Destination),
	)

	return &dto.SuggestRouteResponse{
		Route: dto.RouteSummary{
			Name:      bestOption.Name,
			Risk:      assessment.Band,
			RiskColor: assessment.Color,
			Eta:       fmt.Sprintf("%d min", eta),
			Details:   bestOption.Details,
			Theme:     assessment.Theme,
		},
		Heatmap:     heatmap,
		RouteCoords: coords,
	}, nil
}
