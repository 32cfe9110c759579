package routes

import (
	"github.com/labstack/echo/v4"

	"repair-flow/internal/controllers"
)

func runClientRouter(g *echo.Group, ctrl *controllers.ClientController) {
	g.GET("/clients", ctrl.GetClients)
	g.GET("/clients/find", ctrl.FindClientByPhone)
	g.POST("/clients", ctrl.CreateClient)
}
