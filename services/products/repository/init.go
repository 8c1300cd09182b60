package repository

import (
	"github.com/jmoiron/sqlx"
	"github.com/xsnapster/backend/internal/pkg/models"
)

// ProductRepo implements catalog persistence on PostgreSQL
type ProductRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewProductRepo creates a new product repository instance
func NewProductRepo(cfg *models.Config, db *sqlx.DB) *ProductRepo {
	return &ProductRepo{
		cfg: cfg,
		db:  db,
	}
}
