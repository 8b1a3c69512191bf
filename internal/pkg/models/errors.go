package models

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP
// status codes with errors.Is; anything unrecognized is an internal error.
var (
	ErrNoDriversAvailable = errors.New("no available drivers found")
	ErrDriverUnavailable  = errors.New("driver is already reserved")
	ErrDriverNotFound     = errors.New("driver not found")
	ErrRideNotFound       = errors.New("ride not found")
	ErrRiderNotFound      = errors.New("rider not found")
	ErrOTPInvalid         = errors.New("invalid OTP code")
	ErrOTPNotFound        = errors.New("OTP not found for ride")
	ErrInvalidTransition  = errors.New("invalid ride status transition")
)
