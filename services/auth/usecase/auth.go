package usecase

import (
	"context"

	"github.com/xsnapster/backend/internal/pkg/apperrors"
	jwtpkg "github.com/xsnapster/backend/internal/pkg/jwt"
	"github.com/xsnapster/backend/internal/pkg/logger"
	"github.com/xsnapster/backend/internal/pkg/models"
	"github.com/xsnapster/backend/internal/utils"
)

// RequestOTP issues a one-time passcode for the identifier and hands it to
// the delivery channel. The user row is created on first contact. The code
// is never returned to the caller.
func (u *AuthUC) RequestOTP(ctx context.Context, identifier string) error {
	value, channel, err := utils.ClassifyIdentifier(identifier)
	if err != nil {
		return apperrors.BadRequest(err.Error())
	}

	user, err := u.authRepo.GetUserByIdentifier(ctx, channel, value)
	if err != nil {
		return err
	}
	if user == nil {
		user = &models.User{
			IsVerified: false,
			IsActive:   true,
		}
		if channel == models.ChannelEmail {
			user.Email = &value
		} else {
			user.PhoneNumber = &value
		}

		user, err = u.authRepo.CreateUser(ctx, user)
		if err != nil {
			return err
		}

		logger.Info("Created user on first OTP request",
			logger.String("user_id", user.ID.String()),
			logger.String("channel", channel))
	}

	otp, err := u.authRepo.CreateOTP(ctx, user.ID, channel)
	if err != nil {
		return err
	}

	if err := u.notifierGW.SendOTP(ctx, channel, value, otp.Code); err != nil {
		// Compensating cleanup: without it the user would be locked out by
		// OTPAlreadyActive for a code that was never delivered
		if invErr := u.authRepo.InvalidateOTP(ctx, otp.ID); invErr != nil {
			logger.Error("Failed to invalidate undelivered OTP",
				logger.String("otp_id", otp.ID.String()),
				logger.ErrorField(invErr))
		}
		return apperrors.OTPDeliveryFailed(err.Error(), err)
	}

	logger.Info("OTP issued",
		logger.String("user_id", user.ID.String()),
		logger.String("channel", channel))

	return nil
}

// VerifyOTP validates the submitted code and issues an access/refresh token
// pair. Every failure path returns ErrInvalidOTP so the response does not
// reveal whether the identifier is registered.
func (u *AuthUC) VerifyOTP(ctx context.Context, identifier, code string) (string, string, *models.User, error) {
	value, channel, err := utils.ClassifyIdentifier(identifier)
	if err != nil {
		return "", "", nil, apperrors.ErrInvalidOTP
	}

	user, err := u.authRepo.GetUserByIdentifier(ctx, channel, value)
	if err != nil {
		return "", "", nil, err
	}
	if user == nil {
		return "", "", nil, apperrors.ErrInvalidOTP
	}

	if err := u.authRepo.VerifyOTP(ctx, user.ID, channel, code); err != nil {
		return "", "", nil, err
	}

	// First successful verification flips the user to Verified; after that
	// a fresh OTP simply reauthenticates.
	if !user.IsVerified {
		if err := u.authRepo.MarkUserVerified(ctx, user.ID); err != nil {
			return "", "", nil, err
		}
		user.IsVerified = true
	}

	return u.issueTokenPair(user)
}

// RefreshTokens validates a refresh token and rotates the pair
func (u *AuthUC) RefreshTokens(ctx context.Context, refreshToken string) (string, string, *models.User, error) {
	claims, err := jwtpkg.ValidateToken(refreshToken, u.cfg.JWT.RefreshSecret)
	if err != nil {
		return "", "", nil, err
	}

	user, err := u.authRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return "", "", nil, err
	}
	if user == nil || !user.IsActive {
		return "", "", nil, apperrors.ErrTokenInvalid
	}

	return u.issueTokenPair(user)
}

func (u *AuthUC) issueTokenPair(user *models.User) (string, string, *models.User, error) {
	accessToken, _, err := jwtpkg.GenerateAccessToken(user, u.cfg)
	if err != nil {
		return "", "", nil, apperrors.FromError(err)
	}

	refreshToken, _, err := jwtpkg.GenerateRefreshToken(user, u.cfg)
	if err != nil {
		return "", "", nil, apperrors.FromError(err)
	}

	return accessToken, refreshToken, user, nil
}
