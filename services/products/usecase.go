package products

import (
	"context"
	"mime/multipart"

	"github.com/xsnapster/backend/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/xsnapster/backend/services/products ProductUC

// ProductUC represents the product catalog usecase interface
type ProductUC interface {
	// CreateProduct uploads the images to object storage and persists the
	// product with the returned URLs and a deduplicated slug
	CreateProduct(ctx context.Context, req *models.CreateProductRequest, images []*multipart.FileHeader) (*models.Product, error)

	// ListProducts returns a filtered, sorted, paginated product page
	ListProducts(ctx context.Context, filter *models.ProductFilter) (*models.PaginatedProducts, error)

	// GetProduct fetches a product by id and increments its view counter
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
}
