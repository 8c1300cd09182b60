package models

import (
	"time"

	"github.com/google/uuid"
)

// OTPCodeLength is the fixed length of generated passcodes
const OTPCodeLength = 6

// OTP represents a single-use, time-limited verification code.
// At most one unused, unexpired OTP may exist per (user, channel);
// once marked used the row is immutable and retained for audit.
type OTP struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	Code      string    `json:"code" db:"otp_code"`
	ForField  string    `json:"for_field" db:"for_field"` // ChannelEmail or ChannelPhone
	IsUsed    bool      `json:"is_used" db:"is_used"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// RefreshToken is the session record backing refresh-token revocation.
// The base design is stateless (signed JWT only); this relation is the
// extension point for a revocation list.
type RefreshToken struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	TokenHash string    `json:"-" db:"token_hash"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
