package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// RideUC defines the interface for ride lifecycle business logic
type RideUC interface {
	VerifyStart(ctx context.Context, rideID uuid.UUID, code string) (*models.Ride, error)
	Begin(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	Complete(ctx context.Context, rideID uuid.UUID, req models.CompleteRideRequest) (*models.CompletedRide, error)
	CurrentByDriver(ctx context.Context, driverEmail string) (*models.Ride, error)
	CurrentByRider(ctx context.Context, riderPhone string) (*models.Ride, error)
	History(ctx context.Context, riderPhone, driverEmail string) ([]models.CompletedRide, error)
}
