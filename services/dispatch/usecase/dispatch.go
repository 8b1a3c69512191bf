package usecase

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/swiftride/swiftride/internal/pkg/logger"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/internal/utils"
	"github.com/swiftride/swiftride/services/dispatch"
)

type dispatchUC struct {
	cfg        *models.Config
	driverPool dispatch.DriverPool
	rideRepo   dispatch.RideRepo
	otpRepo    dispatch.OTPRepo
	riderRepo  dispatch.RiderRepo
	smsGW      dispatch.SMSGW
	eventGW    dispatch.EventGW
}

// NewDispatchUC creates a new dispatch engine use case
func NewDispatchUC(
	cfg *models.Config,
	driverPool dispatch.DriverPool,
	rideRepo dispatch.RideRepo,
	otpRepo dispatch.OTPRepo,
	riderRepo dispatch.RiderRepo,
	smsGW dispatch.SMSGW,
	eventGW dispatch.EventGW,
) dispatch.DispatchUC {
	return &dispatchUC{
		cfg:        cfg,
		driverPool: driverPool,
		rideRepo:   rideRepo,
		otpRepo:    otpRepo,
		riderRepo:  riderRepo,
		smsGW:      smsGW,
		eventGW:    eventGW,
	}
}

// BookRide matches the rider with the nearest available driver, reserves
// the driver, records the ride and issues a start code. Losing a reserve
// race to a concurrent booking moves on to the next candidate instead of
// failing the request.
func (uc *dispatchUC) BookRide(ctx context.Context, req models.BookRideRequest) (*models.BookingConfirmation, error) {
	riderPhone, err := uc.riderRepo.GetPhoneByEmail(ctx, req.RiderEmail)
	if err != nil {
		return nil, err
	}

	candidates, err := uc.driverPool.ListAvailable(ctx, models.DriverFilter{
		VehicleClass: req.VehicleClass,
	})
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, models.ErrNoDriversAvailable
	}

	driver, err := uc.reserveNearest(ctx, req.Source, candidates)
	if err != nil {
		return nil, err
	}

	ride := &models.Ride{
		RideID:      uuid.New(),
		RiderPhone:  riderPhone,
		DriverID:    driver.ID,
		DriverPhone: driver.PhoneNumber,
		DriverEmail: driver.Email,
		Source:      req.Source,
		Destination: req.Destination,
		DistanceKm:  req.DistanceKm,
		Fare:        req.Fare,
		Status:      models.RideStatusAssigned,
	}

	otp, err := uc.otpRepo.IssueOTP(ctx, ride.RideID)
	if err != nil {
		uc.compensateReserve(ctx, driver.ID)
		return nil, err
	}

	if err := uc.rideRepo.CreateRide(ctx, ride); err != nil {
		uc.compensateReserve(ctx, driver.ID)
		return nil, err
	}

	// Notification failures never unwind a committed booking
	otpSent := true
	if err := uc.smsGW.SendOTP(ctx, riderPhone, otp.Code); err != nil {
		otpSent = false
		logger.Warn("booking confirmed but OTP SMS was not delivered", logrus.Fields{
			"ride_id": ride.RideID.String(),
			"error":   err.Error(),
		})
	}

	if err := uc.eventGW.PublishRideAssigned(&models.RideAssignedEvent{
		RideID:      ride.RideID.String(),
		DriverPhone: driver.PhoneNumber,
		RiderPhone:  riderPhone,
		Source:      req.Source,
		Destination: req.Destination,
		AssignedAt:  time.Now(),
	}); err != nil {
		logger.Warn("failed to publish ride assigned event", logrus.Fields{
			"ride_id": ride.RideID.String(),
			"error":   err.Error(),
		})
	}

	logger.Info("ride booked", logrus.Fields{
		"ride_id":   ride.RideID.String(),
		"driver_id": driver.ID.String(),
		"otp_sent":  otpSent,
	})

	return &models.BookingConfirmation{
		RideID:      ride.RideID,
		DriverID:    driver.ID,
		DriverPhone: driver.PhoneNumber,
		DriverEmail: driver.Email,
		OTP:         otp.Code,
		OTPSent:     otpSent,
		Message:     "Ride booked. Share the verification code with your driver to start the trip.",
	}, nil
}

// reserveNearest walks the candidate list nearest-first, retrying with
// the next candidate whenever a reserve loses to a concurrent booking.
func (uc *dispatchUC) reserveNearest(ctx context.Context, origin models.Coordinate, candidates []models.Driver) (*models.Driver, error) {
	remaining := make([]models.Driver, len(candidates))
	copy(remaining, candidates)

	for len(remaining) > 0 {
		idx := pickCandidate(origin, remaining)

		driver, err := uc.driverPool.Reserve(ctx, remaining[idx].ID)
		if err == nil {
			return driver, nil
		}
		if errors.Is(err, models.ErrDriverUnavailable) || errors.Is(err, models.ErrDriverNotFound) {
			logger.Debug("candidate lost to concurrent booking", logrus.Fields{
				"driver_id": remaining[idx].ID.String(),
			})
			remaining = append(remaining[:idx], remaining[idx+1:]...)
			continue
		}
		return nil, err
	}
	return nil, models.ErrNoDriversAvailable
}

// pickCandidate returns the index of the closest candidate to origin.
// The first minimum wins ties. When no candidate has a stored location
// the pick is uniformly random.
func pickCandidate(origin models.Coordinate, candidates []models.Driver) int {
	best := -1
	bestDist := math.MaxFloat64
	for i := range candidates {
		loc := candidates[i].Location()
		if loc == nil {
			continue
		}
		if d := utils.DistanceKm(origin, *loc); d < bestDist {
			best = i
			bestDist = d
		}
	}
	if best == -1 {
		return rand.Intn(len(candidates))
	}
	return best
}

// compensateReserve releases a driver reserved for a booking that could
// not be committed.
func (uc *dispatchUC) compensateReserve(ctx context.Context, driverID uuid.UUID) {
	if err := uc.driverPool.Release(ctx, driverID); err != nil {
		logger.Error("failed to release driver after aborted booking", logrus.Fields{
			"driver_id": driverID.String(),
			"error":     err.Error(),
		})
	}
}
