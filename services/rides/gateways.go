package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// DriverPool releases drivers back to the pool when their ride ends
type DriverPool interface {
	Release(ctx context.Context, driverID uuid.UUID) error
}

// EventGW publishes lifecycle events for asynchronous consumers
type EventGW interface {
	PublishRideCompleted(event *models.RideCompletedEvent) error
}
