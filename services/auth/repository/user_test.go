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
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xsnapster/backend/internal/pkg/apperrors"
	"github.com/xsnapster/backend/internal/pkg/models"
)

func setupAuthRepoTest(t *testing.T) (*AuthRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &AuthRepo{
		db: sqlxDB,
		cfg: &models.Config{
			OTP: models.OTPConfig{ExpiryMinutes: 5},
		},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func userColumns() []string {
	return []string{"id", "email", "phone_number", "is_verified", "is_active", "created_at", "updated_at"}
}

func TestGetUserByIdentifier(t *testing.T) {
	userID := uuid.New()
	email := "alice@example.com"
	now := time.Now()

	testCases := []struct {
		name       string
		channel    string
		value      string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, user *models.User, err error)
	}{
		{
			name:    "Found By Email",
			channel: models.ChannelEmail,
			value:   email,
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(userColumns()).
					AddRow(userID, email, nil, true, true, now, now)
				mock.ExpectQuery("SELECT id, email, phone_number, is_verified, is_active, created_at, updated_at").
					WithArgs(email).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, userID, user.ID)
				require.NotNil(t, user.Email)
				assert.Equal(t, email, *user.Email)
			},
		},
		{
			name:    "Not Found Returns Nil Nil",
			channel: models.ChannelEmail,
			value:   "nobody@example.com",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, email, phone_number, is_verified, is_active, created_at, updated_at").
					WithArgs("nobody@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.NoError(t, err)
				assert.Nil(t, user)
			},
		},
		{
			name:    "Database Error",
			channel: models.ChannelPhone,
			value:   "+628123456789",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT id, email, phone_number, is_verified, is_active, created_at, updated_at").
					WithArgs("+628123456789").
					WillReturnError(errors.New("connection reset"))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.Nil(t, user)
				require.Error(t, err)
				assert.Equal(t, apperrors.CodeDatabaseFailed, apperrors.FromError(err).Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupAuthRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			user, err := repo.GetUserByIdentifier(context.Background(), tc.channel, tc.value)

			tc.assertFunc(t, user, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateUser(t *testing.T) {
	email := "alice@example.com"

	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		mock.ExpectExec("INSERT INTO users").
			WillReturnResult(sqlmock.NewResult(0, 1))

		user, err := repo.CreateUser(context.Background(), &models.User{Email: &email, IsActive: true})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("Unique Violation Returns Existing User", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		existingID := uuid.New()
		now := time.Now()

		mock.ExpectExec("INSERT INTO users").
			WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})
		mock.ExpectQuery("SELECT id, email, phone_number, is_verified, is_active, created_at, updated_at").
			WithArgs(email).
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(existingID, email, nil, true, true, now, now))

		user, err := repo.CreateUser(context.Background(), &models.User{Email: &email, IsActive: true})
		require.NoError(t, err)
		assert.Equal(t, existingID, user.ID)
	})

	t.Run("Database Error", func(t *testing.T) {
		repo, mock, cleanup := setupAuthRepoTest(t)
		defer cleanup()

		mock.ExpectExec("INSERT INTO users").
			WillReturnError(errors.New("disk full"))

		user, err := repo.CreateUser(context.Background(), &models.User{Email: &email})
		assert.Nil(t, user)
		require.Error(t, err)
		assert.Equal(t, apperrors.CodeDatabaseFailed, apperrors.FromError(err).Code)
	})
}

func TestMarkUserVerified(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	mock.ExpectExec("UPDATE users").
		WithArgs(userID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkUserVerified(context.Background(), userID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByID(t *testing.T) {
	repo, mock, cleanup := setupAuthRepoTest(t)
	defer cleanup()

	userID := uuid.New()
	now := time.Now()
	email := "alice@example.com"

	mock.ExpectQuery("SELECT id, email, phone_number, is_verified, is_active, created_at, updated_at").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(userID, email, nil, true, true, now, now))

	user, err := repo.GetUserByID(context.Background(), userID)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, userID, user.ID)
}
