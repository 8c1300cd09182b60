package models

import (
	"time"

	"github.com/google/uuid"
)

// Identifier channels a user can be addressed by before authentication.
const (
	ChannelEmail = "email"
	ChannelPhone = "phone"
)

// User represents an account anchored to an email address or phone number.
// At least one identifier is always present; each is globally unique.
// Users are never hard-deleted, only deactivated.
type User struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Email       *string   `json:"email" db:"email"`
	PhoneNumber *string   `json:"phone_number" db:"phone_number"`
	IsVerified  bool      `json:"is_verified" db:"is_verified"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// RequestOTPRequest represents a request to send an OTP to an identifier
type RequestOTPRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}

// VerifyOTPRequest represents a request to verify an OTP
type VerifyOTPRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	OTP        string `json:"otp" validate:"required"`
}

// AuthUser is the user projection returned by auth endpoints
type AuthUser struct {
	ID          uuid.UUID `json:"id"`
	Email       *string   `json:"email"`
	PhoneNumber *string   `json:"phone_number"`
}

// AuthResponse represents the response after successful authentication.
// The refresh token travels separately in an HTTP-only cookie.
type AuthResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        AuthUser `json:"user"`
}

// NewAuthResponse builds the auth payload for a user and access token
func NewAuthResponse(accessToken string, user *User) *AuthResponse {
	return &AuthResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		User: AuthUser{
			ID:          user.ID,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
		},
	}
}
