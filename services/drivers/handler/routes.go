package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/swiftride/swiftride/services/drivers"
	httpHandler "github.com/swiftride/swiftride/services/drivers/handler/http"
)

// Handler combines all handlers for the drivers service
type Handler struct {
	driversHTTP *httpHandler.DriversHandler
}

// NewHandler creates a new combined handler
func NewHandler(driverUC drivers.DriverUC) *Handler {
	return &Handler{
		driversHTTP: httpHandler.NewDriversHandler(driverUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/drivers")
	group.GET("/available", h.driversHTTP.ListAvailable)
	group.GET("/nearby", h.driversHTTP.NearbyDrivers)
	group.PUT("/availability", h.driversHTTP.SetAvailability)
}
