package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xsnapster/backend/internal/pkg/apperrors"
	"github.com/xsnapster/backend/internal/pkg/models"
)

func otpColumns() []string {
	return []string{"id", "user_id", "otp_code", "for_field", "is_used", "expires_at", "created_at"}
}

func TestCreateOTP(t *testing.T) {
	userID := uuid.New()

	t.Run("No Active OTP Issues Fresh Code", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT expires_at FROM otps").
			WithArgs(userID, models.ChannelEmail).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectExec("INSERT INTO otps").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		otp, err := repo.CreateOTP(context.Background(), userID, models.ChannelEmail)
		require.NoError(t, err)
		require.NotNil(t, otp)
		assert.Len(t, otp.Code, models.OTPCodeLength)
		assert.Equal(t, userID, otp.UserID)
		assert.False(t, otp.IsUsed)
		assert.WithinDuration(t, time.Now().Add(5*time.Minute), otp.ExpiresAt, 5*time.Second)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Active Unexpired OTP Rejected With Wait", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		expiresAt := time.Now().Add(90 * time.Second)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT expires_at FROM otps").
			WithArgs(userID, models.ChannelEmail).
			WillReturnRows(sqlmock.NewRows([]string{"expires_at"}).AddRow(expiresAt))
		mock.ExpectRollback()

		otp, err := repo.CreateOTP(context.Background(), userID, models.ChannelEmail)
		assert.Nil(t, otp)
		require.Error(t, err)

		appErr := apperrors.FromError(err)
		assert.Equal(t, apperrors.CodeOTPAlreadySent, appErr.Code)
		assert.Equal(t, 429, appErr.Status)
		// wait is rounded up, never past the full window
		assert.Contains(t, appErr.Message, "Please wait")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Expired OTP Retired Before New Issue", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		expiresAt := time.Now().Add(-1 * time.Minute)

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT expires_at FROM otps").
			WithArgs(userID, models.ChannelEmail).
			WillReturnRows(sqlmock.NewRows([]string{"expires_at"}).AddRow(expiresAt))
		mock.ExpectExec("UPDATE otps SET is_used = TRUE").
			WithArgs(userID, models.ChannelEmail).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("INSERT INTO otps").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		otp, err := repo.CreateOTP(context.Background(), userID, models.ChannelEmail)
		require.NoError(t, err)
		assert.NotNil(t, otp)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Concurrent Insert Loses Race", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT expires_at FROM otps").
			WithArgs(userID, models.ChannelEmail).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectExec("INSERT INTO otps").
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})
		mock.ExpectRollback()

		otp, err := repo.CreateOTP(context.Background(), userID, models.ChannelEmail)
		assert.Nil(t, otp)
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeOTPAlreadySent, apperrors.FromError(err).Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database Error", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT expires_at FROM otps").
			WithArgs(userID, models.ChannelEmail).
			WillReturnError(errors.New("connection reset"))
		mock.ExpectRollback()

		_, err := repo.CreateOTP(context.Background(), userID, models.ChannelEmail)
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeDatabaseFailed, apperrors.FromError(err).Code)
	})
}

func TestVerifyOTP(t *testing.T) {
	userID := uuid.New()
	otpID := uuid.New()

	t.Run("Success Consumes Code", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		now := time.Now()
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, user_id, otp_code, for_field, is_used, expires_at, created_at").
			WithArgs(userID, models.ChannelEmail).
			WillReturnRows(sqlmock.NewRows(otpColumns()).
				AddRow(otpID, userID, "123456", models.ChannelEmail, false, now.Add(2*time.Minute), now))
		mock.ExpectExec("UPDATE otps SET is_used = TRUE").
			WithArgs(otpID).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.VerifyOTP(context.Background(), userID, models.ChannelEmail, "123456")
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No Pending OTP", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, user_id, otp_code, for_field, is_used, expires_at, created_at").
			WithArgs(userID, models.ChannelEmail).
			WillReturnError(sql.ErrNoRows)
		mock.ExpectRollback()

		err := repo.VerifyOTP(context.Background(), userID, models.ChannelEmail, "123456")
		assert.ErrorIs(t, err, apperrors.ErrInvalidOTP)
	})

	t.Run("Wrong Code", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		now := time.Now()
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, user_id, otp_code, for_field, is_used, expires_at, created_at").
			WithArgs(userID, models.ChannelEmail).
			WillReturnRows(sqlmock.NewRows(otpColumns()).
				AddRow(otpID, userID, "123456", models.ChannelEmail, false, now.Add(2*time.Minute), now))
		mock.ExpectRollback()

		err := repo.VerifyOTP(context.Background(), userID, models.ChannelEmail, "654321")
		assert.ErrorIs(t, err, apperrors.ErrInvalidOTP)
	})

	t.Run("Expired Code", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		now := time.Now()
		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id, user_id, otp_code, for_field, is_used, expires_at, created_at").
			WithArgs(userID, models.ChannelEmail).
			WillReturnRows(sqlmock.NewRows(otpColumns()).
				AddRow(otpID, userID, "123456", models.ChannelEmail, false, now.Add(-1*time.Second), now))
		mock.ExpectRollback()

		// The right code submitted too late is indistinguishable from a wrong one
		err := repo.VerifyOTP(context.Background(), userID, models.ChannelEmail, "123456")
		assert.ErrorIs(t, err, apperrors.ErrInvalidOTP)
	})
}

func TestInvalidateOTP(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	otpID := uuid.New()
	mock.ExpectExec("UPDATE otps SET is_used = TRUE").
		WithArgs(otpID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.InvalidateOTP(context.Background(), otpID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
