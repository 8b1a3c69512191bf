package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// RideRepo writes newly assigned rides into the live ledger
type RideRepo struct {
	db *sqlx.DB
}

// NewRideRepository creates a new ride repository
func NewRideRepository(db *sqlx.DB) *RideRepo {
	return &RideRepo{db: db}
}

// CreateRide inserts a ride into the ledger. Rides enter the ledger
// already assigned to a reserved driver.
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) error {
	now := time.Now()
	if ride.CreatedAt.IsZero() {
		ride.CreatedAt = now
	}
	ride.UpdatedAt = now

	query := `
		INSERT INTO rides (
			ride_id, rider_phone, driver_id, driver_phone, driver_email,
			source_latitude, source_longitude,
			destination_latitude, destination_longitude,
			distance_km, fare, status, created_at, updated_at
		) VALUES (
			:ride_id, :rider_phone, :driver_id, :driver_phone, :driver_email,
			:source_latitude, :source_longitude,
			:destination_latitude, :destination_longitude,
			:distance_km, :fare, :status, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, ride.ToDTO()); err != nil {
		return fmt.Errorf("failed to create ride: %w", err)
	}
	return nil
}
