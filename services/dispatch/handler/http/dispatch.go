package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/internal/utils"
	"github.com/swiftride/swiftride/services/dispatch"
)

// DispatchHandler handles HTTP requests for ride booking
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{dispatchUC: dispatchUC}
}

// BookRide handles POST /rides/book
func (h *DispatchHandler) BookRide(c echo.Context) error {
	var req models.BookRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body: "+err.Error())
	}
	if req.RiderEmail == "" {
		return utils.BadRequestResponse(c, "rider_email is required")
	}

	confirmation, err := h.dispatchUC.BookRide(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRiderNotFound):
			return utils.NotFoundResponse(c, "rider not found")
		case errors.Is(err, models.ErrNoDriversAvailable):
			return utils.ErrorResponseHandler(c, http.StatusServiceUnavailable, "no drivers available")
		default:
			return utils.InternalServerErrorResponse(c, "failed to book ride")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "ride booked", confirmation)
}
