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

type PartController struct {
	partService services.PartServiceInterface
	logger      *zap.Logger
}

func NewPartController(partService services.PartServiceInterface, logger *zap.Logger) *PartController {
	return &PartController{partService: partService, logger: logger}
}

func (c *PartController) GetParts(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	res, err := c.partService.GetParts(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Список запчастей успешно получен", http.StatusOK)
}

func (c *PartController) CreatePart(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	var payload dto.CreatePartDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный JSON в теле запроса", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.partService.CreatePart(reqCtx, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Запчасть успешно создана", http.StatusCreated)
}

func (c *PartController) UpdatePart(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id := ctx.Param("id")

	var payload dto.UpdatePartDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный JSON в теле запроса", err, nil),
			c.logger,
		)
	}

	res, err := c.partService.UpdatePart(reqCtx, id, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Запчасть успешно обновлена", http.StatusOK)
}

func (c *PartController) AdjustQuantity(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()
	id := ctx.Param("id")

	var payload dto.AdjustQuantityDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "Неверный JSON в теле запроса", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.partService.AdjustQuantity(reqCtx, id, payload.Delta)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "Остаток успешно скорректирован", http.StatusOK)
}
