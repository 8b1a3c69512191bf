package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/swiftride/swiftride/internal/pkg/logger"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/services/rides"
)

type rideUC struct {
	cfg        *models.Config
	rideRepo   rides.RideRepo
	otpRepo    rides.OTPRepo
	driverPool rides.DriverPool
	eventGW    rides.EventGW
}

// NewRideUC creates a new ride lifecycle use case
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	otpRepo rides.OTPRepo,
	driverPool rides.DriverPool,
	eventGW rides.EventGW,
) rides.RideUC {
	return &rideUC{
		cfg:        cfg,
		rideRepo:   rideRepo,
		otpRepo:    otpRepo,
		driverPool: driverPool,
		eventGW:    eventGW,
	}
}

// VerifyStart checks the code the driver entered against the ride's OTP
// and advances the ride to OTP_VERIFIED.
func (uc *rideUC) VerifyStart(ctx context.Context, rideID uuid.UUID, code string) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !ride.Status.CanTransitionTo(models.RideStatusOTPVerified) {
		return nil, models.ErrInvalidTransition
	}

	if err := uc.otpRepo.VerifyOTP(ctx, rideID, code); err != nil {
		return nil, err
	}

	return uc.rideRepo.UpdateStatus(ctx, rideID, models.RideStatusOTPVerified)
}

// Begin moves a verified ride into progress
func (uc *rideUC) Begin(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusOTPVerified {
		return nil, models.ErrInvalidTransition
	}
	return uc.rideRepo.UpdateStatus(ctx, rideID, models.RideStatusInProgress)
}

// Complete finishes a ride: the live row moves to the archive and the
// driver returns to the pool. The driver is released even when the
// archive step fails, so a stuck ride never keeps a driver locked.
func (uc *rideUC) Complete(ctx context.Context, rideID uuid.UUID, req models.CompleteRideRequest) (*models.CompletedRide, error) {
	ride, err := uc.rideRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if !ride.Status.CanTransitionTo(models.RideStatusCompleted) {
		return nil, models.ErrInvalidTransition
	}

	record := &models.CompletedRide{
		RideID:      ride.RideID,
		RiderPhone:  ride.RiderPhone,
		DriverID:    ride.DriverID,
		DriverEmail: ride.DriverEmail,
		Source:      ride.Source,
		Destination: ride.Destination,
		DistanceKm:  ride.DistanceKm,
		Fare:        ride.Fare,
		CompletedAt: time.Now(),
	}
	if req.FinalFare > 0 {
		record.Fare = req.FinalFare
	}
	if req.FinalDistanceKm > 0 {
		record.DistanceKm = req.FinalDistanceKm
	}

	archiveErr := uc.rideRepo.ArchiveCompleted(ctx, record)
	if archiveErr != nil {
		logger.Error("ride archive failed, ledger needs manual reconciliation", logrus.Fields{
			"ride_id": rideID.String(),
			"error":   archiveErr.Error(),
		})
	}

	if err := uc.driverPool.Release(ctx, ride.DriverID); err != nil {
		logger.Error("failed to release driver after ride completion", logrus.Fields{
			"ride_id":   rideID.String(),
			"driver_id": ride.DriverID.String(),
			"error":     err.Error(),
		})
	}

	if archiveErr != nil {
		return nil, archiveErr
	}

	if err := uc.eventGW.PublishRideCompleted(&models.RideCompletedEvent{
		RideID:      record.RideID.String(),
		RiderPhone:  record.RiderPhone,
		DriverEmail: record.DriverEmail,
		Fare:        record.Fare,
		DistanceKm:  record.DistanceKm,
		CompletedAt: record.CompletedAt,
	}); err != nil {
		logger.Warn("failed to publish ride completed event", logrus.Fields{
			"ride_id": rideID.String(),
			"error":   err.Error(),
		})
	}

	logger.Info("ride completed", logrus.Fields{
		"ride_id":   record.RideID.String(),
		"driver_id": record.DriverID.String(),
		"fare":      record.Fare,
	})
	return record, nil
}

// CurrentByDriver returns the driver's active ride, if any
func (uc *rideUC) CurrentByDriver(ctx context.Context, driverEmail string) (*models.Ride, error) {
	return uc.rideRepo.GetActiveByDriver(ctx, driverEmail)
}

// CurrentByRider returns the rider's active ride, if any
func (uc *rideUC) CurrentByRider(ctx context.Context, riderPhone string) (*models.Ride, error) {
	return uc.rideRepo.GetActiveByRider(ctx, riderPhone)
}

// History returns completed rides for a rider phone or a driver email
func (uc *rideUC) History(ctx context.Context, riderPhone, driverEmail string) ([]models.CompletedRide, error) {
	if riderPhone != "" {
		return uc.rideRepo.GetPastByRider(ctx, riderPhone)
	}
	return uc.rideRepo.GetPastByDriver(ctx, driverEmail)
}
