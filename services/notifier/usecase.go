package notifier

import (
	"context"

	"github.com/swiftride/swiftride/internal/pkg/models"
)

// NotifierUC defines the interface for notification processing
type NotifierUC interface {
	ProcessRideAssigned(ctx context.Context, event *models.RideAssignedEvent) error
	ProcessRideCompleted(ctx context.Context, event *models.RideCompletedEvent) error
}
