package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"

	"github.com/xsnapster/backend/internal/pkg/apperrors"
	"github.com/xsnapster/backend/internal/pkg/logger"
	"github.com/xsnapster/backend/internal/pkg/models"
	"github.com/xsnapster/backend/internal/utils"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// CreateProduct uploads the images, resolves a unique slug and persists the
// product together with its zeroed analytics row.
func (uc *ProductUC) CreateProduct(ctx context.Context, req *models.CreateProductRequest, images []*multipart.FileHeader) (*models.Product, error) {
	if req.Title == "" {
		return nil, apperrors.BadRequest("Title is required")
	}
	if req.Price <= 0 {
		return nil, apperrors.BadRequest("Price must be greater than zero")
	}

	imageLinks := make([]string, 0, len(images))
	for _, file := range images {
		url, err := uc.storageGW.UploadImage(ctx, file)
		if err != nil {
			logger.Error("Failed to upload product image",
				logger.String("filename", file.Filename),
				logger.Err(err))
			return nil, apperrors.ImageUploadFailed(err)
		}
		imageLinks = append(imageLinks, url)
	}

	linksJSON, err := json.Marshal(imageLinks)
	if err != nil {
		return nil, apperrors.DatabaseOperation(err)
	}

	slug, err := uc.resolveSlug(ctx, req)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Title:           req.Title,
		Slug:            slug,
		OneLiner:        req.OneLiner,
		Description:     req.Description,
		ImageLinks:      linksJSON,
		Price:           req.Price,
		DiscountedPrice: req.DiscountedPrice,
		Category:        req.Category,
		Subcategory:     req.Subcategory,
		Dimensions:      req.Dimensions,
		IsActive:        true,
	}

	created, err := uc.productRepo.CreateProduct(ctx, product)
	if err != nil {
		return nil, err
	}

	logger.Info("Product created",
		logger.Int64("product_id", created.ID),
		logger.String("slug", created.Slug))

	return created, nil
}

// ListProducts returns a filtered, sorted, paginated product page
func (uc *ProductUC) ListProducts(ctx context.Context, filter *models.ProductFilter) (*models.PaginatedProducts, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	items, total, err := uc.productRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	pages := total / int64(filter.Limit)
	if total%int64(filter.Limit) != 0 {
		pages++
	}

	return &models.PaginatedProducts{
		Page:  filter.Page,
		Limit: filter.Limit,
		Total: total,
		Pages: pages,
		Data:  items,
	}, nil
}

// GetProduct fetches a product by id and increments its view counter
func (uc *ProductUC) GetProduct(ctx context.Context, id int64) (*models.Product, error) {
	product, err := uc.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Deactivated products are indistinguishable from absent ones
	if product == nil || !product.IsActive {
		return nil, apperrors.ErrProductNotFound
	}

	if err := uc.productRepo.IncrementViewCount(ctx, id); err != nil {
		// the counter is best-effort, the read path must not fail on it
		logger.Warn("Failed to increment view count",
			logger.Int64("product_id", id),
			logger.Err(err))
	}

	return product, nil
}

// resolveSlug uses the explicit slug when provided, otherwise derives one
// from the title, suffixing -2, -3, ... until it is unique.
func (uc *ProductUC) resolveSlug(ctx context.Context, req *models.CreateProductRequest) (string, error) {
	base := ""
	if req.Slug != nil && *req.Slug != "" {
		base = utils.Slugify(*req.Slug)
	} else {
		base = utils.Slugify(req.Title)
	}
	if base == "" {
		return "", apperrors.BadRequest("Cannot derive a slug from the title")
	}

	candidate := base
	for i := 2; ; i++ {
		taken, err := uc.productRepo.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
