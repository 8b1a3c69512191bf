package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/swiftride/swiftride/internal/pkg/models"
)

// RiderRepo resolves rider contact details from the users table
type RiderRepo struct {
	db *sqlx.DB
}

// NewRiderRepository creates a new rider repository
func NewRiderRepository(db *sqlx.DB) *RiderRepo {
	return &RiderRepo{db: db}
}

// GetPhoneByEmail returns the phone number registered for a rider
func (r *RiderRepo) GetPhoneByEmail(ctx context.Context, email string) (string, error) {
	var phone string
	query := `SELECT phone_number FROM users WHERE email = $1`

	if err := r.db.GetContext(ctx, &phone, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", models.ErrRiderNotFound
		}
		return "", fmt.Errorf("failed to get rider phone: %w", err)
	}
	return phone, nil
}
