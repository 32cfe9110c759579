package routes

import (
	"github.com/labstack/echo/v4"

	"repair-flow/internal/controllers"
)

func runPartRouter(g *echo.Group, ctrl *controllers.PartController) {
	g.GET("/parts", ctrl.GetParts)
	g.POST("/parts", ctrl.CreatePart)
	g.PUT("/parts/:id", ctrl.UpdatePart)
	g.POST("/parts/:id/adjust", ctrl.AdjustQuantity)
}
