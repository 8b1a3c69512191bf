package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/internal/utils"
	"github.com/swiftride/swiftride/services/drivers"
)

// DriversHandler handles HTTP requests for the driver pool
type DriversHandler struct {
	driverUC drivers.DriverUC
}

// NewDriversHandler creates a new drivers HTTP handler
func NewDriversHandler(driverUC drivers.DriverUC) *DriversHandler {
	return &DriversHandler{driverUC: driverUC}
}

// ListAvailable handles GET /drivers/available
func (h *DriversHandler) ListAvailable(c echo.Context) error {
	filter := models.DriverFilter{
		VehicleClass: models.VehicleClass(c.QueryParam("vehicle_class")),
	}

	if v := c.QueryParam("min_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid min_price")
		}
		filter.MinPrice = price
	}
	if v := c.QueryParam("max_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid max_price")
		}
		filter.MaxPrice = price
	}

	if origin, err := parseCoordinate(c, "latitude", "longitude"); err != nil {
		return utils.BadRequestResponse(c, err.Error())
	} else if origin != nil {
		filter.Origin = origin
	}

	list, err := h.driverUC.ListAvailable(c.Request().Context(), filter)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "failed to list available drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "available drivers", list)
}

// SetAvailability handles PUT /drivers/availability
func (h *DriversHandler) SetAvailability(c echo.Context) error {
	var req models.AvailabilityRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "invalid request body: "+err.Error())
	}
	if req.Email == "" {
		return utils.BadRequestResponse(c, "email is required")
	}

	driver, err := h.driverUC.SetAvailability(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, models.ErrDriverNotFound) {
			return utils.NotFoundResponse(c, "driver not found")
		}
		return utils.InternalServerErrorResponse(c, "failed to update availability")
	}

	return utils.SuccessResponse(c, http.StatusOK, "availability updated", driver)
}

// NearbyDrivers handles GET /drivers/nearby
func (h *DriversHandler) NearbyDrivers(c echo.Context) error {
	origin, err := parseCoordinate(c, "latitude", "longitude")
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	if origin == nil {
		return utils.BadRequestResponse(c, "latitude and longitude are required")
	}

	radiusKm := 0.0
	if v := c.QueryParam("radius_km"); v != "" {
		radiusKm, err = strconv.ParseFloat(v, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid radius_km")
		}
	}

	nearby, err := h.driverUC.NearbyDrivers(c.Request().Context(), *origin, radiusKm)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "failed to query nearby drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "nearby drivers", nearby)
}

// parseCoordinate reads an optional coordinate pair from query params.
// Returns nil when neither parameter is present.
func parseCoordinate(c echo.Context, latParam, lngParam string) (*models.Coordinate, error) {
	latStr := c.QueryParam(latParam)
	lngStr := c.QueryParam(lngParam)
	if latStr == "" && lngStr == "" {
		return nil, nil
	}
	if latStr == "" || lngStr == "" {
		return nil, errors.New("latitude and longitude must be supplied together")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return nil, errors.New("invalid latitude")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return nil, errors.New("invalid longitude")
	}

	return &models.Coordinate{Latitude: lat, Longitude: lng}, nil
}
