package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/swiftride/swiftride/services/rides"
	httpHandler "github.com/swiftride/swiftride/services/rides/handler/http"
)

// Handler combines all handlers for the rides service
type Handler struct {
	ridesHTTP *httpHandler.RidesHandler
}

// NewHandler creates a new combined handler
func NewHandler(rideUC rides.RideUC) *Handler {
	return &Handler{
		ridesHTTP: httpHandler.NewRidesHandler(rideUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/rides")
	group.GET("/current", h.ridesHTTP.Current)
	group.GET("/history", h.ridesHTTP.History)
	group.POST("/:rideID/verify-otp", h.ridesHTTP.VerifyOTP)
	group.POST("/:rideID/start", h.ridesHTTP.Start)
	group.POST("/:rideID/complete", h.ridesHTTP.Complete)
}
