package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// RideRepo is the postgres-backed ride ledger. Live rides sit in the
// rides table; completed rides move to the completed_rides archive.
type RideRepo struct {
	db *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(db *sqlx.DB) *RideRepo {
	return &RideRepo{db: db}
}

const rideColumns = `ride_id, rider_phone, driver_id, driver_phone, driver_email,
	source_latitude, source_longitude, destination_latitude, destination_longitude,
	distance_km, fare, status, created_at, updated_at`

func (r *RideRepo) getRideRow(ctx context.Context, query string, args ...interface{}) (*models.Ride, error) {
	var dto models.RideDTO
	if err := r.db.GetContext(ctx, &dto, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrRideNotFound
		}
		return nil, fmt.Errorf("failed to get ride: %w", err)
	}
	return dto.ToRide(), nil
}

// GetRide retrieves a live ride by id
func (r *RideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides WHERE ride_id = $1`
	return r.getRideRow(ctx, query, rideID)
}

// GetActiveByDriver returns the driver's ride that has not completed yet
func (r *RideRepo) GetActiveByDriver(ctx context.Context, driverEmail string) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides
		WHERE driver_email = $1 AND status <> $2
		ORDER BY created_at DESC LIMIT 1`
	return r.getRideRow(ctx, query, driverEmail, models.RideStatusCompleted)
}

// GetActiveByRider returns the rider's ride that has not completed yet
func (r *RideRepo) GetActiveByRider(ctx context.Context, riderPhone string) (*models.Ride, error) {
	query := `SELECT ` + rideColumns + ` FROM rides
		WHERE rider_phone = $1 AND status <> $2
		ORDER BY created_at DESC LIMIT 1`
	return r.getRideRow(ctx, query, riderPhone, models.RideStatusCompleted)
}

const completedColumns = `ride_id, rider_phone, driver_id, driver_email,
	source_latitude, source_longitude, destination_latitude, destination_longitude,
	distance_km, fare, completed_at`

type completedRideDTO struct {
	RideID      uuid.UUID `db:"ride_id"`
	RiderPhone  string    `db:"rider_phone"`
	DriverID    uuid.UUID `db:"driver_id"`
	DriverEmail string    `db:"driver_email"`
	SourceLat   float64   `db:"source_latitude"`
	SourceLng   float64   `db:"source_longitude"`
	DestLat     float64   `db:"destination_latitude"`
	DestLng     float64   `db:"destination_longitude"`
	DistanceKm  float64   `db:"distance_km"`
	Fare        float64   `db:"fare"`
	CompletedAt time.Time `db:"completed_at"`
}

func (dto *completedRideDTO) toModel() models.CompletedRide {
	return models.CompletedRide{
		RideID:      dto.RideID,
		RiderPhone:  dto.RiderPhone,
		DriverID:    dto.DriverID,
		DriverEmail: dto.DriverEmail,
		Source:      models.Coordinate{Latitude: dto.SourceLat, Longitude: dto.SourceLng},
		Destination: models.Coordinate{Latitude: dto.DestLat, Longitude: dto.DestLng},
		DistanceKm:  dto.DistanceKm,
		Fare:        dto.Fare,
		CompletedAt: dto.CompletedAt,
	}
}

func (r *RideRepo) listCompleted(ctx context.Context, query string, arg interface{}) ([]models.CompletedRide, error) {
	var dtos []completedRideDTO
	if err := r.db.SelectContext(ctx, &dtos, query, arg); err != nil {
		return nil, fmt.Errorf("failed to list completed rides: %w", err)
	}
	out := make([]models.CompletedRide, 0, len(dtos))
	for i := range dtos {
		out = append(out, dtos[i].toModel())
	}
	return out, nil
}

// GetPastByDriver returns the driver's completed rides, newest first
func (r *RideRepo) GetPastByDriver(ctx context.Context, driverEmail string) ([]models.CompletedRide, error) {
	query := `SELECT ` + completedColumns + ` FROM completed_rides
		WHERE driver_email = $1 ORDER BY completed_at DESC`
	return r.listCompleted(ctx, query, driverEmail)
}

// GetPastByRider returns the rider's completed rides, newest first
func (r *RideRepo) GetPastByRider(ctx context.Context, riderPhone string) ([]models.CompletedRide, error) {
	query := `SELECT ` + completedColumns + ` FROM completed_rides
		WHERE rider_phone = $1 ORDER BY completed_at DESC`
	return r.listCompleted(ctx, query, riderPhone)
}

// UpdateStatus advances a ride to the given status. The update carries
// the current status in its predicate, so an illegal or stale transition
// matches no row and is rejected.
func (r *RideRepo) UpdateStatus(ctx context.Context, rideID uuid.UUID, status models.RideStatus) (*models.Ride, error) {
	current, err := r.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, models.ErrInvalidTransition
	}

	query := `UPDATE rides SET status = $3, updated_at = $4
		WHERE ride_id = $1 AND status = $2
		RETURNING ` + rideColumns

	var dto models.RideDTO
	err = r.db.QueryRowxContext(ctx, query, rideID, current.Status, status, time.Now()).StructScan(&dto)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// status moved underneath us between the read and the update
			return nil, models.ErrInvalidTransition
		}
		return nil, fmt.Errorf("failed to update ride status: %w", err)
	}
	return dto.ToRide(), nil
}

// ArchiveCompleted moves a finished ride into the archive: the insert
// into completed_rides and the delete of the live row commit together.
func (r *RideRepo) ArchiveCompleted(ctx context.Context, record *models.CompletedRide) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin archive transaction: %w", err)
	}
	defer tx.Rollback()

	insert := `
		INSERT INTO completed_rides (
			ride_id, rider_phone, driver_id, driver_email,
			source_latitude, source_longitude,
			destination_latitude, destination_longitude,
			distance_km, fare, completed_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	if _, err := tx.ExecContext(ctx, insert,
		record.RideID, record.RiderPhone, record.DriverID, record.DriverEmail,
		record.Source.Latitude, record.Source.Longitude,
		record.Destination.Latitude, record.Destination.Longitude,
		record.DistanceKm, record.Fare, record.CompletedAt,
	); err != nil {
		return fmt.Errorf("failed to archive ride: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM rides WHERE ride_id = $1`, record.RideID); err != nil {
		return fmt.Errorf("failed to remove live ride: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM ride_otps WHERE ride_id = $1`, record.RideID); err != nil {
		return fmt.Errorf("failed to remove ride OTP: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit archive transaction: %w", err)
	}
	return nil
}
