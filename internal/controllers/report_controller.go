package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"repair-flow/internal/dto"
	"repair-flow/internal/services"
	"repair-flow/pkg/utils"
)

// ReportController выгружает книгу заказов: JSON по умолчанию,
// ?format=xlsx - файл для бухгалтерии.
type ReportController struct {
	orderService services.OrderServiceInterface
	logger       *zap.Logger
}

func NewReportController(orderService services.OrderServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{orderService: orderService, logger: logger}
}

func (c *ReportController) GetOrdersReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	format := strings.ToLower(ctx.QueryParam("format"))
	status := ctx.QueryParam("status")
	c.logger.Debug("Запрос на отчет по заказам", zap.String("format", format), zap.String("status", status))

	data, err := c.orderService.GetOrders(reqCtx, "", status)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}

	return utils.SuccessResponse(ctx, data, "Отчет успешно сформирован", http.StatusOK)
}

var reportHeaders = []string{
	"№ заказа", "Клиент", "Устройство", "Статус", "Запчасти (сумма)", "Работа", "Итого",
	"Дата приёма", "Последнее изменение",
}

func rowToSlice(item dto.OrderDTO) []interface{} {
	dateFmt := "02.01.2006 15:04"
	formatTS := func(s string) string {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.Format(dateFmt)
		}
		return s
	}

	return []interface{}{
		item.ID, item.ClientName, item.Model, item.StatusLabel,
		item.Total - item.LaborCost, item.LaborCost, item.Total,
		formatTS(item.CreatedAt), formatTS(item.UpdatedAt),
	}
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []dto.OrderDTO) error {
	f := excelize.NewFile()
	sheet := "Заказы"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "I1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := rowToSlice(item)
		f.SetSheetRow(sheet, cell, &row)
	}
	// Авто-ширина колонок для красоты
	f.SetColWidth(sheet, "B", "C", 25)
	f.SetColWidth(sheet, "D", "D", 18)
	f.SetColWidth(sheet, "H", "I", 20)

	fileName := fmt.Sprintf("orders_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
