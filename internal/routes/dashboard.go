package routes

import (
	"github.com/labstack/echo/v4"

	"repair-flow/internal/controllers"
)

func runDashboardRouter(g *echo.Group, ctrl *controllers.DashboardController) {
	g.GET("/dashboard/stats", ctrl.GetStats)
}
