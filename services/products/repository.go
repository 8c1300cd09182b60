package products

import (
	"context"

	"github.com/xsnapster/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/xsnapster/backend/services/products ProductRepo

// ProductRepo represents the persistence interface for the catalog
type ProductRepo interface {
	// CreateProduct inserts the product and its analytics row in one transaction
	CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error)

	// SlugExists reports whether a slug is already taken
	SlugExists(ctx context.Context, slug string) (bool, error)

	// ListProducts returns a page of products plus the unpaginated total
	ListProducts(ctx context.Context, filter *models.ProductFilter) ([]*models.Product, int64, error)

	// GetProductByID loads a product by primary key; (nil, nil) when absent
	GetProductByID(ctx context.Context, id int64) (*models.Product, error)

	// IncrementViewCount bumps the analytics view counter for a product
	IncrementViewCount(ctx context.Context, productID int64) error
}
