package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/services/rides/mocks"
)

type lifecycleFixture struct {
	rides   *mocks.MockRideRepo
	otps    *mocks.MockOTPRepo
	pool    *mocks.MockDriverPool
	eventGW *mocks.MockEventGW
}

func newFixture(ctrl *gomock.Controller) *lifecycleFixture {
	return &lifecycleFixture{
		rides:   mocks.NewMockRideRepo(ctrl),
		otps:    mocks.NewMockOTPRepo(ctrl),
		pool:    mocks.NewMockDriverPool(ctrl),
		eventGW: mocks.NewMockEventGW(ctrl),
	}
}

func (f *lifecycleFixture) uc() *rideUC {
	return NewRideUC(&models.Config{}, f.rides, f.otps, f.pool, f.eventGW).(*rideUC)
}

func rideInStatus(status models.RideStatus) *models.Ride {
	return &models.Ride{
		RideID:      uuid.New(),
		RiderPhone:  "+6281200000000",
		DriverID:    uuid.New(),
		DriverPhone: "+6281100000000",
		DriverEmail: "driver@example.com",
		Source:      models.Coordinate{Latitude: 12.9716, Longitude: 77.5946},
		Destination: models.Coordinate{Latitude: 13.1986, Longitude: 77.7066},
		DistanceKm:  38.2,
		Fare:        420,
		Status:      status,
	}
}

func TestVerifyStartHappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	ride := rideInStatus(models.RideStatusAssigned)
	verified := *ride
	verified.Status = models.RideStatusOTPVerified

	f.rides.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)
	f.otps.EXPECT().VerifyOTP(gomock.Any(), ride.RideID, "482913").Return(nil)
	f.rides.EXPECT().UpdateStatus(gomock.Any(), ride.RideID, models.RideStatusOTPVerified).Return(&verified, nil)

	out, err := f.uc().VerifyStart(context.Background(), ride.RideID, "482913")
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusOTPVerified, out.Status)
}

func TestVerifyStartWrongCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	ride := rideInStatus(models.RideStatusAssigned)

	f.rides.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)
	f.otps.EXPECT().VerifyOTP(gomock.Any(), ride.RideID, "000000").Return(models.ErrOTPInvalid)

	out, err := f.uc().VerifyStart(context.Background(), ride.RideID, "000000")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, models.ErrOTPInvalid)
}

func TestVerifyStartOnCompletedRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	ride := rideInStatus(models.RideStatusCompleted)

	f.rides.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)

	out, err := f.uc().VerifyStart(context.Background(), ride.RideID, "482913")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestBeginRequiresVerifiedRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	ride := rideInStatus(models.RideStatusAssigned)

	f.rides.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)

	out, err := f.uc().Begin(context.Background(), ride.RideID)
	assert.Nil(t, out)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestBeginHappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	ride := rideInStatus(models.RideStatusOTPVerified)
	started := *ride
	started.Status = models.RideStatusInProgress

	f.rides.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)
	f.rides.EXPECT().UpdateStatus(gomock.Any(), ride.RideID, models.RideStatusInProgress).Return(&started, nil)

	out, err := f.uc().Begin(context.Background(), ride.RideID)
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusInProgress, out.Status)
}

func TestCompleteFromInProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	ride := rideInStatus(models.RideStatusInProgress)

	f.rides.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)
	f.rides.EXPECT().ArchiveCompleted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.CompletedRide) error {
			assert.Equal(t, ride.RideID, record.RideID)
			assert.Equal(t, 450.0, record.Fare)
			assert.Equal(t, 40.1, record.DistanceKm)
			return nil
		})
	f.pool.EXPECT().Release(gomock.Any(), ride.DriverID).Return(nil)
	f.eventGW.EXPECT().PublishRideCompleted(gomock.Any()).Return(nil)

	record, err := f.uc().Complete(context.Background(), ride.RideID, models.CompleteRideRequest{
		FinalFare:       450,
		FinalDistanceKm: 40.1,
	})
	require.NoError(t, err)
	assert.Equal(t, 450.0, record.Fare)
}

func TestCompleteDirectlyFromVerified(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	ride := rideInStatus(models.RideStatusOTPVerified)

	f.rides.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)
	f.rides.EXPECT().ArchiveCompleted(gomock.Any(), gomock.Any()).Return(nil)
	f.pool.EXPECT().Release(gomock.Any(), ride.DriverID).Return(nil)
	f.eventGW.EXPECT().PublishRideCompleted(gomock.Any()).Return(nil)

	record, err := f.uc().Complete(context.Background(), ride.RideID, models.CompleteRideRequest{})
	require.NoError(t, err)
	// zero final figures fall back to the booked ones
	assert.Equal(t, ride.Fare, record.Fare)
	assert.Equal(t, ride.DistanceKm, record.DistanceKm)
}

func TestCompleteFromAssignedRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	ride := rideInStatus(models.RideStatusAssigned)

	f.rides.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)

	record, err := f.uc().Complete(context.Background(), ride.RideID, models.CompleteRideRequest{})
	assert.Nil(t, record)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestCompleteReleasesDriverEvenWhenArchiveFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	ride := rideInStatus(models.RideStatusInProgress)

	f.rides.EXPECT().GetRide(gomock.Any(), ride.RideID).Return(ride, nil)
	f.rides.EXPECT().ArchiveCompleted(gomock.Any(), gomock.Any()).Return(errors.New("archive insert failed"))
	f.pool.EXPECT().Release(gomock.Any(), ride.DriverID).Return(nil)

	record, err := f.uc().Complete(context.Background(), ride.RideID, models.CompleteRideRequest{})
	assert.Nil(t, record)
	assert.Error(t, err)
}

func TestCurrentByDriverNoActiveRide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.rides.EXPECT().GetActiveByDriver(gomock.Any(), "driver@example.com").
		Return(nil, models.ErrRideNotFound)

	ride, err := f.uc().CurrentByDriver(context.Background(), "driver@example.com")
	assert.Nil(t, ride)
	assert.ErrorIs(t, err, models.ErrRideNotFound)
}

func TestHistoryPrefersRiderPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.rides.EXPECT().GetPastByRider(gomock.Any(), "+6281200000000").
		Return([]models.CompletedRide{{RideID: uuid.New()}}, nil)

	history, err := f.uc().History(context.Background(), "+6281200000000", "driver@example.com")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}
