package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/xsnapster/backend/internal/pkg/apperrors"
	"github.com/xsnapster/backend/internal/pkg/models"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations
const pgUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// GetUserByIdentifier retrieves a user by email or phone number.
// Returns (nil, nil) when no user exists for the identifier.
func (r *AuthRepo) GetUserByIdentifier(ctx context.Context, channel, value string) (*models.User, error) {
	column := "email"
	if channel == models.ChannelPhone {
		column = "phone_number"
	}

	query := `
		SELECT id, email, phone_number, is_verified, is_active, created_at, updated_at
		FROM users
		WHERE ` + column + ` = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.DatabaseOperation(err)
	}

	return &user, nil
}

// GetUserByID retrieves a user by primary key; (nil, nil) when absent
func (r *AuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `
		SELECT id, email, phone_number, is_verified, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.DatabaseOperation(err)
	}

	return &user, nil
}

// CreateUser inserts a new unverified user. The email/phone unique
// constraints make concurrent creation for the same identifier safe: the
// loser of the race gets a unique violation and re-reads the winner's row.
func (r *AuthRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	user.ID = uuid.New()
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, email, phone_number, is_verified, is_active, created_at, updated_at)
		VALUES (:id, :email, :phone_number, :is_verified, :is_active, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if isUniqueViolation(err) {
			channel := models.ChannelEmail
			value := ""
			if user.Email != nil {
				value = *user.Email
			} else if user.PhoneNumber != nil {
				channel = models.ChannelPhone
				value = *user.PhoneNumber
			}

			existing, getErr := r.GetUserByIdentifier(ctx, channel, value)
			if getErr != nil {
				return nil, getErr
			}
			if existing != nil {
				return existing, nil
			}
		}
		return nil, apperrors.DatabaseOperation(err)
	}

	return user, nil
}

// MarkUserVerified sets the verified flag; idempotent
func (r *AuthRepo) MarkUserVerified(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE users
		SET is_verified = TRUE, updated_at = $2
		WHERE id = $1
	`

	_, err := r.db.ExecContext(ctx, query, id, time.Now())
	if err != nil {
		return apperrors.DatabaseOperation(err)
	}

	return nil
}
