package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/xsnapster/backend/internal/pkg/models"
)

// AuthRepo implements persistence for users and OTPs on PostgreSQL
type AuthRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, db *sqlx.DB) *AuthRepo {
	return &AuthRepo{
		cfg: cfg,
		db:  db,
	}
}
