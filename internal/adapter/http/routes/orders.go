package routes

import (
	"assistec_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathOrders      = "/orders"
	PathTechnicians = "/technicians"
	PathRouteSlots  = "/route-slots"
)

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.ServiceOrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PATCH("/:id/status", orderHandler.UpdateStatus)
		orders.PATCH("/:id/cancel", orderHandler.CancelOrder)
	}
}

func addSchedulingRoutes(rg *gin.RouterGroup, schedulingHandler *handlers.SchedulingHandler) {
	technicians := rg.Group(PathTechnicians)
	{
		technicians.POST("", schedulingHandler.CreateTechnician)
		technicians.GET("", schedulingHandler.ListTechnicians)
		technicians.GET("/:id/availability", schedulingHandler.GetAvailability)
		technicians.GET("/:id/density", schedulingHandler.GetMonthlyDensity)
	}

	rg.GET(PathRouteSlots, schedulingHandler.GetRouteSlot)
}
