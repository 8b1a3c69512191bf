package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/internal/utils"
	"github.com/swiftride/swiftride/services/rides"
)

// RidesHandler handles HTTP requests for the ride lifecycle
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new rides HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{rideUC: rideUC}
}

func parseRideID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.Param("rideID"))
}

// VerifyOTP handles POST /rides/:rideID/verify-otp
func (h *RidesHandler) VerifyOTP(c echo.Context) error {
	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body: "+err.Error())
	}
	if req.Code == "" {
		return utils.BadRequestResponse(c, "code is required")
	}

	ride, err := h.rideUC.VerifyStart(c.Request().Context(), rideID, req.Code)
	if err != nil {
		return rideErrorResponse(c, err, "failed to verify ride code")
	}
	return utils.SuccessResponse(c, http.StatusOK, "ride verified", ride)
}

// Start handles POST /rides/:rideID/start
func (h *RidesHandler) Start(c echo.Context) error {
	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	ride, err := h.rideUC.Begin(c.Request().Context(), rideID)
	if err != nil {
		return rideErrorResponse(c, err, "failed to start ride")
	}
	return utils.SuccessResponse(c, http.StatusOK, "ride started", ride)
}

// Complete handles POST /rides/:rideID/complete
func (h *RidesHandler) Complete(c echo.Context) error {
	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid ride id")
	}

	var req models.CompleteRideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body: "+err.Error())
	}

	record, err := h.rideUC.Complete(c.Request().Context(), rideID, req)
	if err != nil {
		return rideErrorResponse(c, err, "failed to complete ride")
	}
	return utils.SuccessResponse(c, http.StatusOK, "ride completed", record)
}

// Current handles GET /rides/current
func (h *RidesHandler) Current(c echo.Context) error {
	driverEmail := c.QueryParam("driver_email")
	riderPhone := c.QueryParam("rider_phone")

	var (
		ride *models.Ride
		err  error
	)
	switch {
	case driverEmail != "":
		ride, err = h.rideUC.CurrentByDriver(c.Request().Context(), driverEmail)
	case riderPhone != "":
		ride, err = h.rideUC.CurrentByRider(c.Request().Context(), riderPhone)
	default:
		return utils.BadRequestResponse(c, "driver_email or rider_phone is required")
	}

	if err != nil {
		if errors.Is(err, models.ErrRideNotFound) {
			return utils.NotFoundResponse(c, "no active ride")
		}
		return utils.InternalServerErrorResponse(c, "failed to get current ride")
	}
	return utils.SuccessResponse(c, http.StatusOK, "current ride", ride)
}

// History handles GET /rides/history
func (h *RidesHandler) History(c echo.Context) error {
	riderPhone := c.QueryParam("rider_phone")
	driverEmail := c.QueryParam("driver_email")
	if riderPhone == "" && driverEmail == "" {
		return utils.BadRequestResponse(c, "driver_email or rider_phone is required")
	}

	history, err := h.rideUC.History(c.Request().Context(), riderPhone, driverEmail)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "failed to get ride history")
	}
	return utils.SuccessResponse(c, http.StatusOK, "ride history", history)
}

func rideErrorResponse(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, models.ErrRideNotFound):
		return utils.NotFoundResponse(c, "ride not found")
	case errors.Is(err, models.ErrOTPNotFound):
		return utils.NotFoundResponse(c, "no code issued for this ride")
	case errors.Is(err, models.ErrOTPInvalid):
		return utils.BadRequestResponse(c, "incorrect verification code")
	case errors.Is(err, models.ErrInvalidTransition):
		return utils.ConflictResponse(c, "ride is not in a state that allows this action")
	default:
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
