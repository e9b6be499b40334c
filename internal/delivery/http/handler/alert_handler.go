package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saferoute-service/internal/pkg/utils"
	"github.com/saferoute-service/internal/pkg/validator"
	"github.com/saferoute-service/internal/usecase"
	"github.com/saferoute-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// AlertHandler - handler for panic alerts
type AlertHandler struct {
	alertUC *usecase.AlertUseCase
	logger  *zap.Logger
}

func NewAlertHandler(alertUC *usecase.AlertUseCase, logger *zap.Logger) *AlertHandler {
	return &AlertHandler{
		alertUC: alertUC,
		logger:  logger,
	}
}

// RaisePanicAlert godoc
// @Summary Raise a panic alert
// @Description Publishes the alert to the async notification pipeline and acknowledges immediately.
// @Tags Alerts
// @Accept json
// @Produce json
// @Param request body dto.PanicAlertRequest true "Alert origin"
// @Success 200 {object} utils.SuccessResponse{data=dto.PanicAlertResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/alerts/panic [post]
func (h *AlertHandler) RaisePanicAlert(c *fiber.Ctx) error {
	var req dto.PanicAlertRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.alertUC.RaisePanicAlert(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
