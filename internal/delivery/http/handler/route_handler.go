package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saferoute-service/internal/pkg/utils"
	"github.com/saferoute-service/internal/pkg/validator"
	"github.com/saferoute-service/internal/usecase"
	"github.com/saferoute-service/internal/usecase/dto"
	"go.uber.org/zap"
)

// RouteHandler - handler for route suggestion requests
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// SuggestRoute godoc
// @Summary Suggest the safest route option
// @Description Evaluates the route option menu from the traveler's origin against the incident catalog and returns the option with the lowest risk score, its context-weighted heatmap and the route polyline.
// @Tags Routes
// @Accept json
// @Produce json
// @Param request body dto.SuggestRouteRequest true "Traveler origin and context"
// @Success 200 {object} utils.SuccessResponse{data=dto.SuggestRouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/routes/suggest [post]
func (h *RouteHandler) SuggestRoute(c *fiber.Ctx) error {
	var req dto.SuggestRouteRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.SuggestRoute(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
