package usecase

import (
	"github.com/xsnapster/backend/internal/pkg/models"
	"github.com/xsnapster/backend/services/products"
)

// ProductUC implements the catalog usecase
type ProductUC struct {
	productRepo products.ProductRepo
	storageGW   products.StorageGW
	cfg         *models.Config
}

// NewProductUC creates a new product usecase instance
func NewProductUC(cfg *models.Config, productRepo products.ProductRepo, storageGW products.StorageGW) *ProductUC {
	return &ProductUC{
		productRepo: productRepo,
		storageGW:   storageGW,
		cfg:         cfg,
	}
}
