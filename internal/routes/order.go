package routes

import (
	"github.com/labstack/echo/v4"

	"repair-flow/internal/controllers"
)

func runOrderRouter(g *echo.Group, ctrl *controllers.OrderController) {
	g.GET("/orders", ctrl.GetOrders)
	g.GET("/orders/statuses", ctrl.GetStatuses)
	g.GET("/orders/:id", ctrl.FindOrder)
	g.POST("/orders", ctrl.CreateOrder)
	g.PUT("/orders/:id", ctrl.UpdateOrder)
	g.POST("/orders/:id/parts", ctrl.AttachPart)
}
