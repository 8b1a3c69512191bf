package dispatch

import (
	"context"

	"github.com/swiftride/swiftride/internal/pkg/models"
)

// SMSGW delivers the ride-start OTP to the rider's phone
type SMSGW interface {
	SendOTP(ctx context.Context, phone, code string) error
}

// EventGW publishes dispatch events for asynchronous consumers
type EventGW interface {
	PublishRideAssigned(event *models.RideAssignedEvent) error
}
