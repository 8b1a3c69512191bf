package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/swiftride/swiftride/services/dispatch"
	httpHandler "github.com/swiftride/swiftride/services/dispatch/handler/http"
)

// Handler combines all handlers for the dispatch service
type Handler struct {
	dispatchHTTP *httpHandler.DispatchHandler
}

// NewHandler creates a new combined handler
func NewHandler(dispatchUC dispatch.DispatchUC) *Handler {
	return &Handler{
		dispatchHTTP: httpHandler.NewDispatchHandler(dispatchUC),
	}
}

// RegisterRoutes registers all HTTP routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/rides/book", h.dispatchHTTP.BookRide)
}
