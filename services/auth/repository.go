package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/xsnapster/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/xsnapster/backend/services/auth AuthRepo

// AuthRepo represents the persistence interface for users and OTPs.
// All state is reloaded per call; nothing is cached across requests.
type AuthRepo interface {
	// GetUserByIdentifier looks a user up by email or phone number.
	// Returns (nil, nil) when no user exists for the identifier.
	GetUserByIdentifier(ctx context.Context, channel, value string) (*models.User, error)

	// CreateUser inserts a new unverified user. If a concurrent request
	// created the same identifier first, the existing row is returned.
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)

	// GetUserByID loads a user by primary key; (nil, nil) when absent
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)

	// MarkUserVerified sets the verified flag; idempotent
	MarkUserVerified(ctx context.Context, id uuid.UUID) error

	// CreateOTP atomically enforces the single-active-OTP invariant for
	// (user, channel) and inserts a fresh code. Fails with OTPAlreadyActive
	// carrying the remaining wait when an unexpired, unused code exists.
	CreateOTP(ctx context.Context, userID uuid.UUID, channel string) (*models.OTP, error)

	// VerifyOTP consumes the latest unused OTP for (user, channel).
	// Any failure (none, mismatch, expired) is the single ErrInvalidOTP.
	VerifyOTP(ctx context.Context, userID uuid.UUID, channel, code string) error

	// InvalidateOTP force-expires an OTP after a failed delivery so a retry
	// does not trip the single-active-OTP check
	InvalidateOTP(ctx context.Context, otpID uuid.UUID) error
}
