package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftride/swiftride/internal/pkg/models"
	"github.com/swiftride/swiftride/services/dispatch/mocks"
)

func floatPtr(v float64) *float64 { return &v }

func driverAt(lat, lng float64) models.Driver {
	return models.Driver{
		ID:           uuid.New(),
		Name:         "Driver",
		PhoneNumber:  "+6281100000000",
		Email:        "driver@example.com",
		VehicleClass: models.VehicleClassStandard,
		Latitude:     floatPtr(lat),
		Longitude:    floatPtr(lng),
		IsAvailable:  true,
	}
}

type dispatchFixture struct {
	pool    *mocks.MockDriverPool
	rides   *mocks.MockRideRepo
	otps    *mocks.MockOTPRepo
	riders  *mocks.MockRiderRepo
	smsGW   *mocks.MockSMSGW
	eventGW *mocks.MockEventGW
}

func newFixture(ctrl *gomock.Controller) *dispatchFixture {
	return &dispatchFixture{
		pool:    mocks.NewMockDriverPool(ctrl),
		rides:   mocks.NewMockRideRepo(ctrl),
		otps:    mocks.NewMockOTPRepo(ctrl),
		riders:  mocks.NewMockRiderRepo(ctrl),
		smsGW:   mocks.NewMockSMSGW(ctrl),
		eventGW: mocks.NewMockEventGW(ctrl),
	}
}

func (f *dispatchFixture) uc() *dispatchUC {
	return NewDispatchUC(&models.Config{}, f.pool, f.rides, f.otps, f.riders, f.smsGW, f.eventGW).(*dispatchUC)
}

func bookReq() models.BookRideRequest {
	return models.BookRideRequest{
		RiderEmail:  "rider@example.com",
		Source:      models.Coordinate{Latitude: 12.9716, Longitude: 77.5946},
		Destination: models.Coordinate{Latitude: 13.1986, Longitude: 77.7066},
		DistanceKm:  38.2,
		Fare:        420,
	}
}

func TestBookRidePicksNearestDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	near := driverAt(12.9720, 77.5950)
	far := driverAt(13.10, 77.70)

	f.riders.EXPECT().GetPhoneByEmail(gomock.Any(), "rider@example.com").Return("+6281200000000", nil)
	f.pool.EXPECT().ListAvailable(gomock.Any(), gomock.Any()).Return([]models.Driver{far, near}, nil)
	f.pool.EXPECT().Reserve(gomock.Any(), near.ID).Return(&near, nil)
	f.otps.EXPECT().IssueOTP(gomock.Any(), gomock.Any()).
		Return(&models.RideOTP{Code: "482913"}, nil)
	f.rides.EXPECT().CreateRide(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ride *models.Ride) error {
			assert.Equal(t, models.RideStatusAssigned, ride.Status)
			assert.Equal(t, near.ID, ride.DriverID)
			assert.Equal(t, "+6281200000000", ride.RiderPhone)
			return nil
		})
	f.smsGW.EXPECT().SendOTP(gomock.Any(), "+6281200000000", "482913").Return(nil)
	f.eventGW.EXPECT().PublishRideAssigned(gomock.Any()).Return(nil)

	conf, err := f.uc().BookRide(context.Background(), bookReq())
	require.NoError(t, err)
	assert.Equal(t, near.ID, conf.DriverID)
	assert.Equal(t, "482913", conf.OTP)
	assert.True(t, conf.OTPSent)
}

func TestBookRideNoDrivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.riders.EXPECT().GetPhoneByEmail(gomock.Any(), gomock.Any()).Return("+6281200000000", nil)
	f.pool.EXPECT().ListAvailable(gomock.Any(), gomock.Any()).Return([]models.Driver{}, nil)

	conf, err := f.uc().BookRide(context.Background(), bookReq())
	assert.Nil(t, conf)
	assert.ErrorIs(t, err, models.ErrNoDriversAvailable)
}

func TestBookRideUnknownRider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	f.riders.EXPECT().GetPhoneByEmail(gomock.Any(), gomock.Any()).Return("", models.ErrRiderNotFound)

	conf, err := f.uc().BookRide(context.Background(), bookReq())
	assert.Nil(t, conf)
	assert.ErrorIs(t, err, models.ErrRiderNotFound)
}

func TestBookRideRetriesNextCandidateOnLostRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	near := driverAt(12.9720, 77.5950)
	next := driverAt(13.00, 77.62)

	f.riders.EXPECT().GetPhoneByEmail(gomock.Any(), gomock.Any()).Return("+6281200000000", nil)
	f.pool.EXPECT().ListAvailable(gomock.Any(), gomock.Any()).Return([]models.Driver{near, next}, nil)
	// nearest already taken by a concurrent booking
	f.pool.EXPECT().Reserve(gomock.Any(), near.ID).Return(nil, models.ErrDriverUnavailable)
	f.pool.EXPECT().Reserve(gomock.Any(), next.ID).Return(&next, nil)
	f.otps.EXPECT().IssueOTP(gomock.Any(), gomock.Any()).Return(&models.RideOTP{Code: "123456"}, nil)
	f.rides.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	f.smsGW.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.eventGW.EXPECT().PublishRideAssigned(gomock.Any()).Return(nil)

	conf, err := f.uc().BookRide(context.Background(), bookReq())
	require.NoError(t, err)
	assert.Equal(t, next.ID, conf.DriverID)
}

func TestBookRideAllCandidatesLost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	a := driverAt(12.9720, 77.5950)
	b := driverAt(13.00, 77.62)

	f.riders.EXPECT().GetPhoneByEmail(gomock.Any(), gomock.Any()).Return("+6281200000000", nil)
	f.pool.EXPECT().ListAvailable(gomock.Any(), gomock.Any()).Return([]models.Driver{a, b}, nil)
	f.pool.EXPECT().Reserve(gomock.Any(), a.ID).Return(nil, models.ErrDriverUnavailable)
	f.pool.EXPECT().Reserve(gomock.Any(), b.ID).Return(nil, models.ErrDriverUnavailable)

	conf, err := f.uc().BookRide(context.Background(), bookReq())
	assert.Nil(t, conf)
	assert.ErrorIs(t, err, models.ErrNoDriversAvailable)
}

func TestBookRideRandomFallbackWithoutLocations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	a := models.Driver{ID: uuid.New(), PhoneNumber: "+62811", Email: "a@example.com", IsAvailable: true}
	b := models.Driver{ID: uuid.New(), PhoneNumber: "+62812", Email: "b@example.com", IsAvailable: true}

	f.riders.EXPECT().GetPhoneByEmail(gomock.Any(), gomock.Any()).Return("+6281200000000", nil)
	f.pool.EXPECT().ListAvailable(gomock.Any(), gomock.Any()).Return([]models.Driver{a, b}, nil)
	f.pool.EXPECT().Reserve(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id uuid.UUID) (*models.Driver, error) {
			switch id {
			case a.ID:
				return &a, nil
			case b.ID:
				return &b, nil
			}
			t.Fatalf("reserved unknown driver %s", id)
			return nil, nil
		})
	f.otps.EXPECT().IssueOTP(gomock.Any(), gomock.Any()).Return(&models.RideOTP{Code: "123456"}, nil)
	f.rides.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	f.smsGW.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.eventGW.EXPECT().PublishRideAssigned(gomock.Any()).Return(nil)

	conf, err := f.uc().BookRide(context.Background(), bookReq())
	require.NoError(t, err)
	assert.Contains(t, []uuid.UUID{a.ID, b.ID}, conf.DriverID)
}

func TestBookRideSurvivesSMSFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	driver := driverAt(12.9720, 77.5950)

	f.riders.EXPECT().GetPhoneByEmail(gomock.Any(), gomock.Any()).Return("+6281200000000", nil)
	f.pool.EXPECT().ListAvailable(gomock.Any(), gomock.Any()).Return([]models.Driver{driver}, nil)
	f.pool.EXPECT().Reserve(gomock.Any(), driver.ID).Return(&driver, nil)
	f.otps.EXPECT().IssueOTP(gomock.Any(), gomock.Any()).Return(&models.RideOTP{Code: "654321"}, nil)
	f.rides.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil)
	f.smsGW.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("provider down"))
	f.eventGW.EXPECT().PublishRideAssigned(gomock.Any()).Return(nil)

	conf, err := f.uc().BookRide(context.Background(), bookReq())
	require.NoError(t, err)
	assert.False(t, conf.OTPSent)
	assert.Equal(t, "654321", conf.OTP)
}

func TestBookRideReleasesDriverWhenLedgerWriteFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)
	driver := driverAt(12.9720, 77.5950)

	f.riders.EXPECT().GetPhoneByEmail(gomock.Any(), gomock.Any()).Return("+6281200000000", nil)
	f.pool.EXPECT().ListAvailable(gomock.Any(), gomock.Any()).Return([]models.Driver{driver}, nil)
	f.pool.EXPECT().Reserve(gomock.Any(), driver.ID).Return(&driver, nil)
	f.otps.EXPECT().IssueOTP(gomock.Any(), gomock.Any()).Return(&models.RideOTP{Code: "123456"}, nil)
	f.rides.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(errors.New("db down"))
	f.pool.EXPECT().Release(gomock.Any(), driver.ID).Return(nil)

	conf, err := f.uc().BookRide(context.Background(), bookReq())
	assert.Nil(t, conf)
	assert.Error(t, err)
}

// fakeDriverPool mimics the conditional-update semantics of the real
// pool: reserve succeeds for exactly one caller per driver.
type fakeDriverPool struct {
	mu      sync.Mutex
	drivers map[uuid.UUID]*models.Driver
}

func newFakeDriverPool(drivers ...models.Driver) *fakeDriverPool {
	pool := &fakeDriverPool{drivers: make(map[uuid.UUID]*models.Driver)}
	for i := range drivers {
		d := drivers[i]
		pool.drivers[d.ID] = &d
	}
	return pool
}

func (p *fakeDriverPool) ListAvailable(_ context.Context, _ models.DriverFilter) ([]models.Driver, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []models.Driver
	for _, d := range p.drivers {
		if d.IsAvailable {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (p *fakeDriverPool) Reserve(_ context.Context, driverID uuid.UUID) (*models.Driver, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	d, ok := p.drivers[driverID]
	if !ok {
		return nil, models.ErrDriverNotFound
	}
	if !d.IsAvailable {
		return nil, models.ErrDriverUnavailable
	}
	d.IsAvailable = false
	copied := *d
	return &copied, nil
}

func (p *fakeDriverPool) Release(_ context.Context, driverID uuid.UUID) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	d, ok := p.drivers[driverID]
	if !ok {
		return models.ErrDriverNotFound
	}
	d.IsAvailable = true
	return nil
}

func TestConcurrentBookingsSingleDriver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	driver := driverAt(12.9720, 77.5950)
	pool := newFakeDriverPool(driver)

	f := newFixture(ctrl)
	f.riders.EXPECT().GetPhoneByEmail(gomock.Any(), gomock.Any()).Return("+6281200000000", nil).Times(2)
	f.otps.EXPECT().IssueOTP(gomock.Any(), gomock.Any()).Return(&models.RideOTP{Code: "123456"}, nil).MaxTimes(1)
	f.rides.EXPECT().CreateRide(gomock.Any(), gomock.Any()).Return(nil).MaxTimes(1)
	f.smsGW.EXPECT().SendOTP(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).MaxTimes(1)
	f.eventGW.EXPECT().PublishRideAssigned(gomock.Any()).Return(nil).MaxTimes(1)

	uc := NewDispatchUC(&models.Config{}, pool, f.rides, f.otps, f.riders, f.smsGW, f.eventGW)

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.BookRide(context.Background(), bookReq())
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, losses int
	for err := range results {
		if err == nil {
			wins++
		} else if errors.Is(err, models.ErrNoDriversAvailable) {
			losses++
		} else {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, wins, "exactly one booking must win the driver")
	assert.Equal(t, 1, losses, "the losing booking must see no drivers available")
}
