package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

func setupMockDB(t *testing.T) (*RideRepo, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	return NewRideRepository(sqlxDB), mock, func() { db.Close() }
}

var rideColumnNames = []string{
	"ride_id", "rider_phone", "driver_id", "driver_phone", "driver_email",
	"source_latitude", "source_longitude", "destination_latitude", "destination_longitude",
	"distance_km", "fare", "status", "created_at", "updated_at",
}

func rideRow(rideID uuid.UUID, status models.RideStatus) *sqlmock.Rows {
	return sqlmock.NewRows(rideColumnNames).AddRow(
		rideID, "+6281200000000", uuid.New(), "+6281100000000", "driver@example.com",
		12.9716, 77.5946, 13.1986, 77.7066,
		38.2, 420.0, status, time.Now(), time.Now(),
	)
}

func TestGetRideNotFound(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	rideID := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM rides WHERE ride_id = \$1`).
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows(rideColumnNames))

	ride, err := repo.GetRide(context.Background(), rideID)
	assert.Nil(t, ride)
	assert.ErrorIs(t, err, models.ErrRideNotFound)
}

func TestUpdateStatusLegalTransition(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	rideID := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM rides WHERE ride_id = \$1`).
		WithArgs(rideID).
		WillReturnRows(rideRow(rideID, models.RideStatusAssigned))
	mock.ExpectQuery(`UPDATE rides SET status = \$3`).
		WithArgs(rideID, models.RideStatusAssigned, models.RideStatusOTPVerified, sqlmock.AnyArg()).
		WillReturnRows(rideRow(rideID, models.RideStatusOTPVerified))

	ride, err := repo.UpdateStatus(context.Background(), rideID, models.RideStatusOTPVerified)
	require.NoError(t, err)
	assert.Equal(t, models.RideStatusOTPVerified, ride.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusIllegalTransition(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	rideID := uuid.New()
	// ASSIGNED cannot jump straight to IN_PROGRESS
	mock.ExpectQuery(`SELECT .+ FROM rides WHERE ride_id = \$1`).
		WithArgs(rideID).
		WillReturnRows(rideRow(rideID, models.RideStatusAssigned))

	ride, err := repo.UpdateStatus(context.Background(), rideID, models.RideStatusInProgress)
	assert.Nil(t, ride)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestUpdateStatusTerminalRide(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	rideID := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM rides WHERE ride_id = \$1`).
		WithArgs(rideID).
		WillReturnRows(rideRow(rideID, models.RideStatusCompleted))

	_, err := repo.UpdateStatus(context.Background(), rideID, models.RideStatusOTPVerified)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestUpdateStatusLostConcurrentUpdate(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	rideID := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM rides WHERE ride_id = \$1`).
		WithArgs(rideID).
		WillReturnRows(rideRow(rideID, models.RideStatusAssigned))
	// another writer advanced the ride between our read and update
	mock.ExpectQuery(`UPDATE rides SET status = \$3`).
		WithArgs(rideID, models.RideStatusAssigned, models.RideStatusOTPVerified, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows(rideColumnNames))

	_, err := repo.UpdateStatus(context.Background(), rideID, models.RideStatusOTPVerified)
	assert.ErrorIs(t, err, models.ErrInvalidTransition)
}

func TestArchiveCompletedCommitsBothWrites(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	record := &models.CompletedRide{
		RideID:      uuid.New(),
		RiderPhone:  "+6281200000000",
		DriverID:    uuid.New(),
		DriverEmail: "driver@example.com",
		Source:      models.Coordinate{Latitude: 12.9716, Longitude: 77.5946},
		Destination: models.Coordinate{Latitude: 13.1986, Longitude: 77.7066},
		DistanceKm:  38.2,
		Fare:        420,
		CompletedAt: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO completed_rides`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM rides WHERE ride_id = \$1`).
		WithArgs(record.RideID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM ride_otps WHERE ride_id = \$1`).
		WithArgs(record.RideID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.ArchiveCompleted(context.Background(), record))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestArchiveCompletedRollsBackOnInsertFailure(t *testing.T) {
	repo, mock, cleanup := setupMockDB(t)
	defer cleanup()

	record := &models.CompletedRide{RideID: uuid.New(), CompletedAt: time.Now()}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO completed_rides`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	assert.Error(t, repo.ArchiveCompleted(context.Background(), record))
	assert.NoError(t, mock.ExpectationsWereMet())
}
