package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/swiftride/swiftride/internal/pkg/logger"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/internal/utils"
	"github.com/swiftride/swiftride/services/drivers"
)

type driverUC struct {
	cfg        *models.Config
	driverRepo drivers.DriverRepo
}

// NewDriverUC creates a new driver pool use case
func NewDriverUC(cfg *models.Config, driverRepo drivers.DriverRepo) drivers.DriverUC {
	return &driverUC{
		cfg:        cfg,
		driverRepo: driverRepo,
	}
}

// ListAvailable returns available drivers matching the filter. When the
// filter carries an origin the result is sorted by distance ascending,
// drivers without a stored location last.
func (uc *driverUC) ListAvailable(ctx context.Context, filter models.DriverFilter) ([]models.Driver, error) {
	list, err := uc.driverRepo.ListAvailable(ctx, filter)
	if err != nil {
		return nil, err
	}

	if filter.Origin == nil {
		return list, nil
	}

	origin := *filter.Origin
	sort.SliceStable(list, func(i, j int) bool {
		li, lj := list[i].Location(), list[j].Location()
		if li == nil {
			return false
		}
		if lj == nil {
			return true
		}
		return utils.DistanceKm(origin, *li) < utils.DistanceKm(origin, *lj)
	})

	return list, nil
}

// SetAvailability flips a driver online or offline. Going online without
// a location keeps the previously stored coordinates.
func (uc *driverUC) SetAvailability(ctx context.Context, req models.AvailabilityRequest) (*models.Driver, error) {
	if req.Email == "" {
		return nil, fmt.Errorf("driver email is required")
	}

	driver, err := uc.driverRepo.SetAvailability(ctx, req.Email, req.IsAvailable, req.Location)
	if err != nil {
		return nil, err
	}

	logger.Info("driver availability updated", logrus.Fields{
		"driver_id":    driver.ID.String(),
		"is_available": driver.IsAvailable,
	})
	return driver, nil
}

// NearbyDrivers returns online drivers within radiusKm of origin
func (uc *driverUC) NearbyDrivers(ctx context.Context, origin models.Coordinate, radiusKm float64) ([]models.NearbyDriver, error) {
	if radiusKm <= 0 {
		radiusKm = uc.cfg.Dispatch.NearbyRadiusKm
	}
	return uc.driverRepo.NearbyDrivers(ctx, origin, radiusKm)
}
