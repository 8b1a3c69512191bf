package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the lifecycle state of a ride
type RideStatus string

const (
	// RideStatusRequested is ephemeral: a ride request that has not been
	// assigned yet. It is never persisted to the ledger.
	RideStatusRequested   RideStatus = "REQUESTED"
	RideStatusAssigned    RideStatus = "ASSIGNED"
	RideStatusOTPVerified RideStatus = "OTP_VERIFIED"
	RideStatusInProgress  RideStatus = "IN_PROGRESS"
	RideStatusCompleted   RideStatus = "COMPLETED"
)

// rideTransitions is the set of allowed forward edges. COMPLETED is
// terminal; no backward transitions exist.
var rideTransitions = map[RideStatus][]RideStatus{
	RideStatusRequested:   {RideStatusAssigned},
	RideStatusAssigned:    {RideStatusOTPVerified},
	RideStatusOTPVerified: {RideStatusInProgress, RideStatusCompleted},
	RideStatusInProgress:  {RideStatusCompleted},
	RideStatusCompleted:   {},
}

// CanTransitionTo reports whether moving from s to next is a legal
// lifecycle transition.
func (s RideStatus) CanTransitionTo(next RideStatus) bool {
	for _, allowed := range rideTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the status admits no further transitions.
func (s RideStatus) IsTerminal() bool {
	return len(rideTransitions[s]) == 0
}

// Ride represents a live ledger entry for an assigned ride
type Ride struct {
	RideID      uuid.UUID  `json:"ride_id" db:"ride_id"`
	RiderPhone  string     `json:"rider_phone" db:"rider_phone"`
	DriverID    uuid.UUID  `json:"driver_id" db:"driver_id"`
	DriverPhone string     `json:"driver_phone" db:"driver_phone"`
	DriverEmail string     `json:"driver_email" db:"driver_email"`
	Source      Coordinate `json:"source"`
	Destination Coordinate `json:"destination"`
	DistanceKm  float64    `json:"distance_km" db:"distance_km"`
	Fare        float64    `json:"fare" db:"fare"`
	Status      RideStatus `json:"status" db:"status"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// CompletedRide is the archived record written when a ride completes
type CompletedRide struct {
	RideID      uuid.UUID  `json:"ride_id" db:"ride_id"`
	RiderPhone  string     `json:"rider_phone" db:"rider_phone"`
	DriverID    uuid.UUID  `json:"driver_id" db:"driver_id"`
	DriverEmail string     `json:"driver_email" db:"driver_email"`
	Source      Coordinate `json:"source"`
	Destination Coordinate `json:"destination"`
	DistanceKm  float64    `json:"distance_km" db:"distance_km"`
	Fare        float64    `json:"fare" db:"fare"`
	CompletedAt time.Time  `json:"completed_at" db:"completed_at"`
}

// RideDTO flattens the nested coordinates for database operations
type RideDTO struct {
	RideID      uuid.UUID  `db:"ride_id"`
	RiderPhone  string     `db:"rider_phone"`
	DriverID    uuid.UUID  `db:"driver_id"`
	DriverPhone string     `db:"driver_phone"`
	DriverEmail string     `db:"driver_email"`
	SourceLat   float64    `db:"source_latitude"`
	SourceLng   float64    `db:"source_longitude"`
	DestLat     float64    `db:"destination_latitude"`
	DestLng     float64    `db:"destination_longitude"`
	DistanceKm  float64    `db:"distance_km"`
	Fare        float64    `db:"fare"`
	Status      RideStatus `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

// ToDTO converts a Ride to its flattened database representation
func (r *Ride) ToDTO() *RideDTO {
	return &RideDTO{
		RideID:      r.RideID,
		RiderPhone:  r.RiderPhone,
		DriverID:    r.DriverID,
		DriverPhone: r.DriverPhone,
		DriverEmail: r.DriverEmail,
		SourceLat:   r.Source.Latitude,
		SourceLng:   r.Source.Longitude,
		DestLat:     r.Destination.Latitude,
		DestLng:     r.Destination.Longitude,
		DistanceKm:  r.DistanceKm,
		Fare:        r.Fare,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ToRide converts a flattened row back into a Ride
func (dto *RideDTO) ToRide() *Ride {
	return &Ride{
		RideID:      dto.RideID,
		RiderPhone:  dto.RiderPhone,
		DriverID:    dto.DriverID,
		DriverPhone: dto.DriverPhone,
		DriverEmail: dto.DriverEmail,
		Source:      Coordinate{Latitude: dto.SourceLat, Longitude: dto.SourceLng},
		Destination: Coordinate{Latitude: dto.DestLat, Longitude: dto.DestLng},
		DistanceKm:  dto.DistanceKm,
		Fare:        dto.Fare,
		Status:      dto.Status,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	}
}

// BookRideRequest is a rider's request to book a ride
type BookRideRequest struct {
	RiderEmail   string       `json:"rider_email" validate:"required"`
	Source       Coordinate   `json:"source"`
	Destination  Coordinate   `json:"destination"`
	DistanceKm   float64      `json:"distance_km"`
	Fare         float64      `json:"fare"`
	VehicleClass VehicleClass `json:"vehicle_class,omitempty"`
}

// BookingConfirmation is returned to the rider after a successful booking
type BookingConfirmation struct {
	RideID      uuid.UUID `json:"ride_id"`
	DriverID    uuid.UUID `json:"driver_id"`
	DriverPhone string    `json:"driver_phone"`
	DriverEmail string    `json:"driver_email"`
	OTP         string    `json:"otp"`
	OTPSent     bool      `json:"otp_sent"`
	Message     string    `json:"message"`
}

// VerifyOTPRequest carries the code a driver enters to start a ride
type VerifyOTPRequest struct {
	Code string `json:"code" validate:"required"`
}

// CompleteRideRequest carries the final figures reported at drop-off
type CompleteRideRequest struct {
	FinalFare       float64 `json:"final_fare"`
	FinalDistanceKm float64 `json:"final_distance_km"`
}
