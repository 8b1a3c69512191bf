package models

import "time"

// RideAssignedEvent is published when a booking reserves a driver.
// The notifier consumes it to push a new-ride notice to the driver.
type RideAssignedEvent struct {
	RideID      string     `json:"ride_id"`
	DriverPhone string     `json:"driver_phone"`
	RiderPhone  string     `json:"rider_phone"`
	Source      Coordinate `json:"source"`
	Destination Coordinate `json:"destination"`
	AssignedAt  time.Time  `json:"assigned_at"`
}

// RideCompletedEvent is published when a ride is archived. The notifier
// consumes it to send the rider a completion receipt.
type RideCompletedEvent struct {
	RideID      string    `json:"ride_id"`
	RiderPhone  string    `json:"rider_phone"`
	DriverEmail string    `json:"driver_email"`
	Fare        float64   `json:"fare"`
	DistanceKm  float64   `json:"distance_km"`
	CompletedAt time.Time `json:"completed_at"`
}
