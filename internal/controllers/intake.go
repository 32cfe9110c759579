package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"repair-flow/internal/dto"
	"repair-flow/internal/services"
	apperrors "repair-flow/pkg/errors"
	"repair-flow/pkg/utils"
)

// IntakeController обслуживает публичную форму заявки. Единственный
// маршрут без общего префикса /api-админки.
type IntakeController struct {
	intakeService services.IntakeServiceInterface
	logger        *zap.Logger
}

func NewIntakeController(intakeService services.IntakeServiceInterface, logger *zap.Logger) *IntakeController {
	return &IntakeController{intakeService: intakeService, logger: logger}
}

func (c *IntakeController) Submit(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.IntakeRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный JSON в теле запроса", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.intakeService.Submit(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Заявка принята", http.StatusCreated)
}
