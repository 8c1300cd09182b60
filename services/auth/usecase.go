package auth

import (
	"context"

	"github.com/xsnapster/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/xsnapster/backend/services/auth AuthUC

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	// RequestOTP issues and delivers a one-time passcode to the identifier.
	// The code itself is never returned to the caller.
	RequestOTP(ctx context.Context, identifier string) error

	// VerifyOTP checks the submitted code and, on success, returns a signed
	// access/refresh token pair together with the (now verified) user.
	VerifyOTP(ctx context.Context, identifier, code string) (accessToken, refreshToken string, user *models.User, err error)

	// RefreshTokens validates a refresh token and rotates the pair
	RefreshTokens(ctx context.Context, refreshToken string) (accessToken, newRefreshToken string, user *models.User, err error)
}
