package repository

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/xsnapster/backend/internal/pkg/apperrors"
	"github.com/xsnapster/backend/internal/pkg/models"
	"github.com/xsnapster/backend/internal/utils"
)

// CreateOTP issues a fresh passcode for (user, channel). The check-then-act
// sequence runs inside one transaction: the current active row is locked
// with FOR UPDATE, expired leftovers are retired, and the insert is backed
// by the partial unique index uq_otps_active on (user_id, for_field) WHERE
// NOT is_used, so a concurrent duplicate request fails deterministically
// with OTPAlreadyActive instead of creating a second active code.
func (r *AuthRepo) CreateOTP(ctx context.Context, userID uuid.UUID, channel string) (*models.OTP, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperrors.DatabaseOperation(err)
	}
	defer tx.Rollback()

	now := time.Now()

	var expiresAt time.Time
	query := `
		SELECT expires_at FROM otps
		WHERE user_id = $1 AND for_field = $2 AND is_used = FALSE
		ORDER BY created_at DESC
		LIMIT 1
		FOR UPDATE
	`
	err = tx.QueryRowxContext(ctx, query, userID, channel).Scan(&expiresAt)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.DatabaseOperation(err)
	}

	if err == nil {
		if expiresAt.After(now) {
			return nil, apperrors.OTPAlreadyActive(remainingSeconds(now, expiresAt))
		}

		// Retire the expired code so the active-OTP index admits a new row.
		// The row itself is kept for audit.
		retire := `
			UPDATE otps SET is_used = TRUE
			WHERE user_id = $1 AND for_field = $2 AND is_used = FALSE
		`
		if _, err := tx.ExecContext(ctx, retire, userID, channel); err != nil {
			return nil, apperrors.DatabaseOperation(err)
		}
	}

	code, err := utils.GenerateOTPCode(models.OTPCodeLength)
	if err != nil {
		return nil, apperrors.DatabaseOperation(err)
	}

	otp := &models.OTP{
		ID:        uuid.New(),
		UserID:    userID,
		Code:      code,
		ForField:  channel,
		IsUsed:    false,
		ExpiresAt: now.Add(time.Duration(r.cfg.OTP.ExpiryMinutes) * time.Minute),
		CreatedAt: now,
	}

	insert := `
		INSERT INTO otps (id, user_id, otp_code, for_field, is_used, expires_at, created_at)
		VALUES (:id, :user_id, :otp_code, :for_field, :is_used, :expires_at, :created_at)
	`
	if _, err := tx.NamedExecContext(ctx, insert, otp); err != nil {
		if isUniqueViolation(err) {
			// Lost the race to a concurrent request; report its remaining wait
			return nil, apperrors.OTPAlreadyActive(r.cfg.OTP.ExpiryMinutes * 60)
		}
		return nil, apperrors.DatabaseOperation(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, apperrors.DatabaseOperation(err)
	}

	return otp, nil
}

// VerifyOTP consumes the latest unused OTP for (user, channel). Every
// failure branch returns the same ErrInvalidOTP so callers cannot tell a
// missing code from a mismatch or an expired one.
func (r *AuthRepo) VerifyOTP(ctx context.Context, userID uuid.UUID, channel, code string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.DatabaseOperation(err)
	}
	defer tx.Rollback()

	var otp models.OTP
	query := `
		SELECT id, user_id, otp_code, for_field, is_used, expires_at, created_at
		FROM otps
		WHERE user_id = $1 AND for_field = $2 AND is_used = FALSE
		ORDER BY created_at DESC
		LIMIT 1
		FOR UPDATE
	`
	err = tx.GetContext(ctx, &otp, query, userID, channel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.ErrInvalidOTP
		}
		return apperrors.DatabaseOperation(err)
	}

	// Expiry is evaluated lazily here; no background sweeper exists
	if otp.Code != code || time.Now().After(otp.ExpiresAt) {
		return apperrors.ErrInvalidOTP
	}

	update := `UPDATE otps SET is_used = TRUE WHERE id = $1`
	if _, err := tx.ExecContext(ctx, update, otp.ID); err != nil {
		return apperrors.DatabaseOperation(err)
	}

	if err := tx.Commit(); err != nil {
		return apperrors.DatabaseOperation(err)
	}

	return nil
}

// InvalidateOTP force-expires a code after a failed delivery, so the next
// request-otp call is not rejected for a code the user never received.
func (r *AuthRepo) InvalidateOTP(ctx context.Context, otpID uuid.UUID) error {
	query := `UPDATE otps SET is_used = TRUE WHERE id = $1`

	_, err := r.db.ExecContext(ctx, query, otpID)
	if err != nil {
		return apperrors.DatabaseOperation(err)
	}

	return nil
}

// remainingSeconds reports the seconds left until expiry, rounded up so the
// caller-visible wait never understates the actual remaining time.
func remainingSeconds(now, expiresAt time.Time) int {
	secs := int(math.Ceil(expiresAt.Sub(now).Seconds()))
	if secs < 0 {
		return 0
	}
	return secs
}
