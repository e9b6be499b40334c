package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/saferoute-service/internal/domain"
	"github.com/saferoute-service/internal/pkg/errors"
	"github.com/saferoute-service/internal/pkg/utils"
	"github.com/saferoute-service/internal/usecase"
	"github.com/saferoute-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// HeatmapHandler - handler for standalone heatmap requests
type HeatmapHandler struct {
	heatmapUC *usecase.HeatmapUseCase
	logger    *zap.Logger
}

func NewHeatmapHandler(heatmapUC *usecase.HeatmapUseCase, logger *zap.Logger) *HeatmapHandler {
	return &HeatmapHandler{
		heatmapUC: heatmapUC,
		logger:    logger,
	}
}

// GetHeatmap godoc
// @Summary Get the incident heatmap
// @Description Projects the incident catalog into [lat, lon, intensity] points weighted for the given context. Omitted time_of_day is derived from the current hour.
// @Tags Heatmap
// @Produce json
// @Param gender query string false "Requester gender used for demographic weighting"
// @Param time_of_day query string false "day or night" Enums(day, night)
// @Success 200 {object} utils.SuccessResponse{data=dto.HeatmapResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/heatmap [get]
func (h *HeatmapHandler) GetHeatmap(c *fiber.Ctx) error {
	gender := c.Query("gender")

	timeOfDay := domain.TimeOfDayForHour(time.Now().Hour())
	if raw := c.Query("time_of_day"); raw != "" {
		switch domain.TimeOfDay(raw) {
		case domain.TimeDay, domain.TimeNight:
			timeOfDay = domain.TimeOfDay(raw)
		default:
			return utils.SendError(c, errors.ErrInvalidTimeOfDay)
		}
	}

	points, err := h.heatmapUC.Project(c.Context(), gender, timeOfDay)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dto.HeatmapResponse{
		Points:    points,
		Gender:    gender,
		TimeOfDay: timeOfDay,
	}, &utils.Meta{
		Total: len(points),
	})
}
