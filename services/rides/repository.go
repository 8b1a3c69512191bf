package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// RideRepo is the ride ledger: live rides plus the completed archive
type RideRepo interface {
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	GetActiveByDriver(ctx context.Context, driverEmail string) (*models.Ride, error)
	GetActiveByRider(ctx context.Context, riderPhone string) (*models.Ride, error)
	GetPastByDriver(ctx context.Context, driverEmail string) ([]models.CompletedRide, error)
	GetPastByRider(ctx context.Context, riderPhone string) ([]models.CompletedRide, error)
	UpdateStatus(ctx context.Context, rideID uuid.UUID, status models.RideStatus) (*models.Ride, error)
	ArchiveCompleted(ctx context.Context, record *models.CompletedRide) error
}

// OTPRepo verifies ride-start codes
type OTPRepo interface {
	VerifyOTP(ctx context.Context, rideID uuid.UUID, code string) error
}
