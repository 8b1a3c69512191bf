package usecase

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/swiftride/swiftride/internal/pkg/logger"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/services/notifier"
)

type notifierUC struct {
	pushGW notifier.PushGW
	smsGW  notifier.SMSGW
}

// NewNotifierUC creates a new notifier use case
func NewNotifierUC(pushGW notifier.PushGW, smsGW notifier.SMSGW) notifier.NotifierUC {
	return &notifierUC{
		pushGW: pushGW,
		smsGW:  smsGW,
	}
}

// ProcessRideAssigned pushes a new-ride notice to the assigned driver
func (uc *notifierUC) ProcessRideAssigned(ctx context.Context, event *models.RideAssignedEvent) error {
	message := fmt.Sprintf(
		"New ride assigned. Pickup at (%.5f, %.5f), drop-off at (%.5f, %.5f).",
		event.Source.Latitude, event.Source.Longitude,
		event.Destination.Latitude, event.Destination.Longitude,
	)

	if err := uc.pushGW.NotifyDriver(ctx, event.DriverPhone, message); err != nil {
		return fmt.Errorf("failed to notify driver: %w", err)
	}

	logger.Info("driver notified of assignment", logrus.Fields{
		"ride_id": event.RideID,
	})
	return nil
}

// ProcessRideCompleted sends the rider a completion receipt by SMS
func (uc *notifierUC) ProcessRideCompleted(ctx context.Context, event *models.RideCompletedEvent) error {
	message := fmt.Sprintf(
		"Your ride is complete. Distance: %.1f km, fare: %.2f. Thanks for riding with us.",
		event.DistanceKm, event.Fare,
	)

	if err := uc.smsGW.SendSMS(ctx, event.RiderPhone, message); err != nil {
		return fmt.Errorf("failed to send ride receipt: %w", err)
	}

	logger.Info("ride receipt sent", logrus.Fields{
		"ride_id": event.RideID,
	})
	return nil
}
