package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRideStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    RideStatus
		to      RideStatus
		allowed bool
	}{
		{"requested to assigned", RideStatusRequested, RideStatusAssigned, true},
		{"assigned to otp verified", RideStatusAssigned, RideStatusOTPVerified, true},
		{"otp verified to in progress", RideStatusOTPVerified, RideStatusInProgress, true},
		{"otp verified to completed (implicit start)", RideStatusOTPVerified, RideStatusCompleted, true},
		{"in progress to completed", RideStatusInProgress, RideStatusCompleted, true},
		{"assigned to in progress skips otp", RideStatusAssigned, RideStatusInProgress, false},
		{"assigned to completed skips lifecycle", RideStatusAssigned, RideStatusCompleted, false},
		{"completed to in progress moves backward", RideStatusCompleted, RideStatusInProgress, false},
		{"completed to assigned moves backward", RideStatusCompleted, RideStatusAssigned, false},
		{"in progress to otp verified moves backward", RideStatusInProgress, RideStatusOTPVerified, false},
		{"completed to completed", RideStatusCompleted, RideStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRideStatusTerminal(t *testing.T) {
	assert.True(t, RideStatusCompleted.IsTerminal())
	assert.False(t, RideStatusAssigned.IsTerminal())
	assert.False(t, RideStatusInProgress.IsTerminal())
}

func TestVehicleClassHourlyRate(t *testing.T) {
	assert.Equal(t, 25.0, VehicleClassStandard.HourlyRate())
	assert.Equal(t, 35.0, VehicleClassPremium.HourlyRate())
	assert.Equal(t, 50.0, VehicleClassLuxury.HourlyRate())
	assert.Equal(t, 30.0, VehicleClass("rickshaw").HourlyRate())
}

func TestRideDTORoundTrip(t *testing.T) {
	ride := &Ride{
		RiderPhone:  "9876543210",
		DriverPhone: "9123456780",
		DriverEmail: "driver@example.com",
		Source:      Coordinate{Latitude: 12.90, Longitude: 77.58},
		Destination: Coordinate{Latitude: 12.93, Longitude: 77.61},
		DistanceKm:  4.7,
		Fare:        120,
		Status:      RideStatusAssigned,
	}

	got := ride.ToDTO().ToRide()
	assert.Equal(t, ride, got)
}
