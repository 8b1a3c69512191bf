package dispatch

import (
	"context"

	"github.com/swiftride/swiftride/internal/pkg/models"
)

// DispatchUC defines the interface for the dispatch engine
type DispatchUC interface {
	BookRide(ctx context.Context, req models.BookRideRequest) (*models.BookingConfirmation, error)
}
