package routes

import (
	"github.com/labstack/echo/v4"

	"repair-flow/internal/controllers"
)

func runReportRouter(g *echo.Group, ctrl *controllers.ReportController) {
	g.GET("/reports/orders", ctrl.GetOrdersReport)
}
