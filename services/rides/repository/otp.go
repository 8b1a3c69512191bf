package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// OTPRepo verifies ride-start codes against the stored record
type OTPRepo struct {
	db *sqlx.DB
}

// NewOTPRepository creates a new OTP repository
func NewOTPRepository(db *sqlx.DB) *OTPRepo {
	return &OTPRepo{db: db}
}

// VerifyOTP checks the submitted code against the one issued for the
// ride and marks it verified on a match.
func (r *OTPRepo) VerifyOTP(ctx context.Context, rideID uuid.UUID, code string) error {
	var stored string
	query := `SELECT code FROM ride_otps WHERE ride_id = $1`
	if err := r.db.GetContext(ctx, &stored, query, rideID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ErrOTPNotFound
		}
		return fmt.Errorf("failed to load OTP: %w", err)
	}

	if stored != code {
		return models.ErrOTPInvalid
	}

	if _, err := r.db.ExecContext(ctx,
		`UPDATE ride_otps SET is_verified = TRUE WHERE ride_id = $1`, rideID); err != nil {
		return fmt.Errorf("failed to mark OTP verified: %w", err)
	}
	return nil
}
