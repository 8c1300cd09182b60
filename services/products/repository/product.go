package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/xsnapster/backend/internal/pkg/apperrors"
	"github.com/xsnapster/backend/internal/pkg/models"
)

const productColumns = `id, title, slug, one_liner, description, image_links, price,
	discounted_price, category, subcategory, dimensions, is_active, created_at, updated_at`

// CreateProduct inserts the product and its analytics row in one transaction
func (r *ProductRepo) CreateProduct(ctx context.Context, product *models.Product) (*models.Product, error) {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperrors.DatabaseOperation(err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO products (title, slug, one_liner, description, image_links, price,
			discounted_price, category, subcategory, dimensions, is_active, created_at, updated_at)
		VALUES (:title, :slug, :one_liner, :description, :image_links, :price,
			:discounted_price, :category, :subcategory, :dimensions, :is_active, :created_at, :updated_at)
		RETURNING id
	`
	rows, err := tx.NamedQuery(query, product)
	if err != nil {
		return nil, apperrors.DatabaseOperation(err)
	}
	if rows.Next() {
		if err := rows.Scan(&product.ID); err != nil {
			rows.Close()
			return nil, apperrors.DatabaseOperation(err)
		}
	}
	rows.Close()

	analytics := `
		INSERT INTO product_analytics (product_id, view_count, purchase_count, rating,
			review_count, stock_count, wishlist_count, created_at, updated_at)
		VALUES ($1, 0, 0, 0, 0, 0, 0, $2, $2)
	`
	if _, err := tx.ExecContext(ctx, analytics, product.ID, now); err != nil {
		return nil, apperrors.DatabaseOperation(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, apperrors.DatabaseOperation(err)
	}

	return product, nil
}

// SlugExists reports whether a slug is already taken
func (r *ProductRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM products WHERE slug = $1)`

	if err := r.db.GetContext(ctx, &exists, query, slug); err != nil {
		return false, apperrors.DatabaseOperation(err)
	}

	return exists, nil
}

// ListProducts returns a page of products plus the unpaginated total
func (r *ProductRepo) ListProducts(ctx context.Context, filter *models.ProductFilter) ([]*models.Product, int64, error) {
	where, args := buildListFilter(filter)

	countQuery := `SELECT COUNT(*) FROM products` + where
	var total int64
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, apperrors.DatabaseOperation(err)
	}

	offset := (filter.Page - 1) * filter.Limit
	listQuery := fmt.Sprintf(`SELECT %s FROM products%s%s LIMIT %d OFFSET %d`,
		productColumns, where, orderClause(filter.SortBy), filter.Limit, offset)

	products := []*models.Product{}
	if err := r.db.SelectContext(ctx, &products, listQuery, args...); err != nil {
		return nil, 0, apperrors.DatabaseOperation(err)
	}

	return products, total, nil
}

// GetProductByID loads a product by primary key; (nil, nil) when absent
func (r *ProductRepo) GetProductByID(ctx context.Context, id int64) (*models.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	var product models.Product
	err := r.db.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.DatabaseOperation(err)
	}

	return &product, nil
}

// IncrementViewCount bumps the analytics view counter for a product
func (r *ProductRepo) IncrementViewCount(ctx context.Context, productID int64) error {
	query := `
		UPDATE product_analytics
		SET view_count = view_count + 1, updated_at = $2
		WHERE product_id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, productID, time.Now()); err != nil {
		return apperrors.DatabaseOperation(err)
	}

	return nil
}

func buildListFilter(filter *models.ProductFilter) (string, []interface{}) {
	clauses := []string{}
	args := []interface{}{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Category != "" {
		clauses = append(clauses, "category = "+arg(filter.Category))
	}
	if filter.Subcategory != "" {
		clauses = append(clauses, "subcategory = "+arg(filter.Subcategory))
	}
	if filter.Search != "" {
		clauses = append(clauses, "title ILIKE "+arg("%"+filter.Search+"%"))
	}
	if filter.IsActive != nil {
		clauses = append(clauses, "is_active = "+arg(*filter.IsActive))
	}

	if len(clauses) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(clauses, " AND "), args
}

func orderClause(sortBy string) string {
	switch sortBy {
	case "price_asc":
		return " ORDER BY price ASC"
	case "price_desc":
		return " ORDER BY price DESC"
	case "rating":
		return ` ORDER BY (SELECT rating FROM product_analytics pa WHERE pa.product_id = products.id) DESC NULLS LAST`
	case "popularity":
		return ` ORDER BY (SELECT purchase_count FROM product_analytics pa WHERE pa.product_id = products.id) DESC NULLS LAST`
	default:
		return " ORDER BY created_at DESC"
	}
}
