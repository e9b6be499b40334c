package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saferoute-service/internal/pkg/utils"
	"github.com/saferoute-service/internal/usecase"
	"go.uber.org/zap"
)

// StatsHandler - handler for catalog statistics
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStats godoc
// @Summary Get incident catalog statistics
// @Description Returns catalog counts by category, time of day and victim profile plus the bounding box the incidents cover.
// @Tags Statistics
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.CatalogStats}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	h.logger.Debug("Handling get statistics request")

	stats, err := h.statsUC.GetStats(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, &utils.Meta{
		Total: stats.TotalIncidents,
	})
}
