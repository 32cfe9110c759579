package routes

import (
	"github.com/labstack/echo/v4"

	"repair-flow/internal/controllers"
)

// Публичная форма, без префикса /api: её дергает сайт мастерской.
func runIntakeRouter(e *echo.Echo, ctrl *controllers.IntakeController) {
	e.POST("/intake", ctrl.Submit)
}
