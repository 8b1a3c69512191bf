package models

import (
	"time"

	"github.com/google/uuid"
)

// RideOTP is a one-time code bound to a ride, gating ride start.
// A ride has exactly one active code; re-issuing replaces it.
type RideOTP struct {
	RideID     uuid.UUID `json:"ride_id" db:"ride_id"`
	Code       string    `json:"code" db:"code"`
	IsVerified bool      `json:"is_verified" db:"is_verified"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
