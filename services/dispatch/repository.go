package dispatch

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// DriverPool is the slice of the driver pool the dispatch engine needs:
// candidate listing plus the atomic reserve and its compensating release.
type DriverPool interface {
	ListAvailable(ctx context.Context, filter models.DriverFilter) ([]models.Driver, error)
	Reserve(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)
	Release(ctx context.Context, driverID uuid.UUID) error
}

// RideRepo persists newly assigned rides to the ledger
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) error
}

// OTPRepo issues ride-start codes keyed by ride id
type OTPRepo interface {
	IssueOTP(ctx context.Context, rideID uuid.UUID) (*models.RideOTP, error)
}

// RiderRepo resolves rider contact details
type RiderRepo interface {
	GetPhoneByEmail(ctx context.Context, email string) (string, error)
}
