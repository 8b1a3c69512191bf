package drivers

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// DriverRepo defines the interface for driver pool data access
type DriverRepo interface {
	ListAvailable(ctx context.Context, filter models.DriverFilter) ([]models.Driver, error)
	GetByID(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)
	Reserve(ctx context.Context, driverID uuid.UUID) (*models.Driver, error)
	Release(ctx context.Context, driverID uuid.UUID) error
	SetAvailability(ctx context.Context, email string, available bool, location *models.Coordinate) (*models.Driver, error)
	NearbyDrivers(ctx context.Context, origin models.Coordinate, radiusKm float64) ([]models.NearbyDriver, error)
}
