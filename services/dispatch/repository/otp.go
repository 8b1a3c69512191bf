package repository

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// OTPRepo issues and stores ride-start codes, one per ride
type OTPRepo struct {
	db *sqlx.DB

	mu  sync.Mutex
	rng *rand.Rand
}

// NewOTPRepository creates a new OTP repository
func NewOTPRepository(db *sqlx.DB) *OTPRepo {
	return &OTPRepo{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// IssueOTP generates a 6-digit code for the ride and stores it, replacing
// any code issued earlier for the same ride.
func (r *OTPRepo) IssueOTP(ctx context.Context, rideID uuid.UUID) (*models.RideOTP, error) {
	otp := &models.RideOTP{
		RideID:    rideID,
		Code:      r.generateCode(),
		CreatedAt: time.Now(),
	}

	query := `
		INSERT INTO ride_otps (ride_id, code, is_verified, created_at)
		VALUES ($1, $2, FALSE, $3)
		ON CONFLICT (ride_id)
		DO UPDATE SET code = EXCLUDED.code, is_verified = FALSE, created_at = EXCLUDED.created_at`

	if _, err := r.db.ExecContext(ctx, query, otp.RideID, otp.Code, otp.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to store OTP: %w", err)
	}
	return otp, nil
}

// generateCode returns a uniform 6-digit code in [100000, 999999]
func (r *OTPRepo) generateCode() string {
	r.mu.Lock()
	code := 100000 + r.rng.Intn(900000)
	r.mu.Unlock()
	return fmt.Sprintf("%06d", code)
}
