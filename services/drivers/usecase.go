package drivers

import (
	"context"

	"github.com/swiftride/swiftride/internal/pkg/models"
)

// DriverUC defines the interface for driver pool business logic
type DriverUC interface {
	ListAvailable(ctx context.Context, filter models.DriverFilter) ([]models.Driver, error)
	SetAvailability(ctx context.Context, req models.AvailabilityRequest) (*models.Driver, error)
	NearbyDrivers(ctx context.Context, origin models.Coordinate, radiusKm float64) ([]models.NearbyDriver, error)
}
