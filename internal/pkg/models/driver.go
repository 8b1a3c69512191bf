package models

import (
	"time"

	"github.com/google/uuid"
)

// VehicleClass categorizes a driver's vehicle for filtering and pricing
type VehicleClass string

const (
	VehicleClassStandard VehicleClass = "standard"
	VehicleClassPremium  VehicleClass = "premium"
	VehicleClassLuxury   VehicleClass = "luxury"
)

// HourlyRate returns the rental price band for a vehicle class
func (v VehicleClass) HourlyRate() float64 {
	switch v {
	case VehicleClassStandard:
		return 25
	case VehicleClassPremium:
		return 35
	case VehicleClassLuxury:
		return 50
	default:
		return 30
	}
}

// Driver represents a driver record in the pool
type Driver struct {
	ID           uuid.UUID    `json:"id" db:"id"`
	Name         string       `json:"name" db:"name"`
	PhoneNumber  string       `json:"phone_number" db:"phone_number"`
	Email        string       `json:"email" db:"email"`
	VehicleClass VehicleClass `json:"vehicle_class" db:"vehicle_class"`
	Latitude     *float64     `json:"latitude,omitempty" db:"latitude"`
	Longitude    *float64     `json:"longitude,omitempty" db:"longitude"`
	IsAvailable  bool         `json:"is_available" db:"is_available"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}

// Location returns the driver's coordinates, or nil when none are stored
func (d *Driver) Location() *Coordinate {
	if d.Latitude == nil || d.Longitude == nil {
		return nil
	}
	return &Coordinate{Latitude: *d.Latitude, Longitude: *d.Longitude}
}

// DriverFilter narrows the available-driver listing
type DriverFilter struct {
	VehicleClass VehicleClass
	MinPrice     float64
	MaxPrice     float64
	Origin       *Coordinate
}

// AvailabilityRequest flips a driver online or offline
type AvailabilityRequest struct {
	Email       string      `json:"email" validate:"required"`
	IsAvailable bool        `json:"is_available"`
	Location    *Coordinate `json:"location,omitempty"`
}

// NearbyDriver is a driver returned from the geo index with its distance
type NearbyDriver struct {
	ID         string     `json:"id"`
	Location   Coordinate `json:"location"`
	DistanceKm float64    `json:"distance_km"`
}
