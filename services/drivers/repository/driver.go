package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/swiftride/swiftride/internal/pkg/constants"
	"github.com/swiftride/swiftride/internal/pkg/database"
	"github.com/swiftride/swiftride/internal/pkg/logger"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/internal/utils"
)

// DriverRepo is the postgres-backed driver pool with a redis geo index
// of online drivers kept in sync with availability changes.
type DriverRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(
	cfg *models.Config,
	db *sqlx.DB,
	redisClient *database.RedisClient,
) *DriverRepo {
	return &DriverRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

const driverColumns = `id, name, phone_number, email, vehicle_class, latitude, longitude, is_available, updated_at`

// ListAvailable returns all available drivers matching the filter. The
// hourly price band derives from the vehicle class, so the price filter
// is applied after the fetch.
func (r *DriverRepo) ListAvailable(ctx context.Context, filter models.DriverFilter) ([]models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE is_available = TRUE`
	args := []interface{}{}

	if filter.VehicleClass != "" {
		query += ` AND vehicle_class = $1`
		args = append(args, filter.VehicleClass)
	}

	var drivers []models.Driver
	if err := r.db.SelectContext(ctx, &drivers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list available drivers: %w", err)
	}

	if filter.MinPrice == 0 && filter.MaxPrice == 0 {
		return drivers, nil
	}

	filtered := make([]models.Driver, 0, len(drivers))
	for _, d := range drivers {
		rate := d.VehicleClass.HourlyRate()
		if filter.MinPrice > 0 && rate < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && rate > filter.MaxPrice {
			continue
		}
		filtered = append(filtered, d)
	}
	return filtered, nil
}

// GetByID retrieves a driver by id
func (r *DriverRepo) GetByID(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	query := `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`

	var driver models.Driver
	if err := r.db.GetContext(ctx, &driver, query, driverID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

// Reserve atomically flips the driver from available to reserved. The
// conditional update is the only guard against double-booking: of two
// concurrent callers exactly one sees an affected row.
func (r *DriverRepo) Reserve(ctx context.Context, driverID uuid.UUID) (*models.Driver, error) {
	query := `
		UPDATE drivers
		SET is_available = FALSE, updated_at = $2
		WHERE id = $1 AND is_available = TRUE
		RETURNING ` + driverColumns

	var driver models.Driver
	err := r.db.QueryRowxContext(ctx, query, driverID, time.Now()).StructScan(&driver)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Distinguish a lost race from an unknown driver
			if _, getErr := r.GetByID(ctx, driverID); getErr != nil {
				return nil, getErr
			}
			return nil, models.ErrDriverUnavailable
		}
		return nil, fmt.Errorf("failed to reserve driver: %w", err)
	}

	r.removeFromGeoIndex(ctx, driverID.String())
	return &driver, nil
}

// Release marks the driver available again. Releasing an already
// available driver is a no-op success.
func (r *DriverRepo) Release(ctx context.Context, driverID uuid.UUID) error {
	query := `
		UPDATE drivers
		SET is_available = TRUE, updated_at = $2
		WHERE id = $1
		RETURNING ` + driverColumns

	var driver models.Driver
	err := r.db.QueryRowxContext(ctx, query, driverID, time.Now()).StructScan(&driver)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrDriverNotFound
		}
		return fmt.Errorf("failed to release driver: %w", err)
	}

	r.addToGeoIndex(ctx, &driver)
	return nil
}

// SetAvailability flips a driver online or offline, recording the
// reported location when going online.
func (r *DriverRepo) SetAvailability(ctx context.Context, email string, available bool, location *models.Coordinate) (*models.Driver, error) {
	var (
		query string
		args  []interface{}
	)

	if location != nil {
		query = `
			UPDATE drivers
			SET is_available = $2, latitude = $3, longitude = $4, updated_at = $5
			WHERE email = $1
			RETURNING ` + driverColumns
		args = []interface{}{email, available, location.Latitude, location.Longitude, time.Now()}
	} else {
		query = `
			UPDATE drivers
			SET is_available = $2, updated_at = $3
			WHERE email = $1
			RETURNING ` + driverColumns
		args = []interface{}{email, available, time.Now()}
	}

	var driver models.Driver
	err := r.db.QueryRowxContext(ctx, query, args...).StructScan(&driver)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to update driver availability: %w", err)
	}

	if available {
		r.addToGeoIndex(ctx, &driver)
	} else {
		r.removeFromGeoIndex(ctx, driver.ID.String())
	}

	return &driver, nil
}

// NearbyDrivers queries the redis geo index for online drivers within
// radiusKm of the origin, nearest first.
func (r *DriverRepo) NearbyDrivers(ctx context.Context, origin models.Coordinate, radiusKm float64) ([]models.NearbyDriver, error) {
	locations, err := r.redisClient.GeoRadius(ctx, constants.KeyDriverGeo, origin.Longitude, origin.Latitude, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to query driver geo index: %w", err)
	}

	nearby := make([]models.NearbyDriver, 0, len(locations))
	for _, loc := range locations {
		nearby = append(nearby, models.NearbyDriver{
			ID:         loc.Name,
			Location:   models.Coordinate{Latitude: loc.Latitude, Longitude: loc.Longitude},
			DistanceKm: loc.Dist,
		})
	}
	return nearby, nil
}

// addToGeoIndex mirrors an available driver into the geo index. Index
// updates are best-effort: the drivers table stays the source of truth.
func (r *DriverRepo) addToGeoIndex(ctx context.Context, driver *models.Driver) {
	if r.redisClient == nil {
		return
	}
	loc := driver.Location()
	if loc == nil {
		return
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyDriverGeo, loc.Longitude, loc.Latitude, driver.ID.String()); err != nil {
		logger.Warn("failed to update driver geo index", logrus.Fields{
			"driver_id": driver.ID.String(),
			"error":     err.Error(),
		})
		return
	}

	logger.Debug("driver geo index updated", logrus.Fields{
		"driver_id": driver.ID.String(),
		"geohash":   utils.EncodeLocation(*loc, 9),
	})
}

func (r *DriverRepo) removeFromGeoIndex(ctx context.Context, driverID string) {
	if r.redisClient == nil {
		return
	}
	if err := r.redisClient.GeoRemove(ctx, constants.KeyDriverGeo, driverID); err != nil {
		logger.Warn("failed to remove driver from geo index", logrus.Fields{
			"driver_id": driverID,
			"error":     err.Error(),
		})
	}
}
