package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Product represents a catalog item
type Product struct {
	ID              int64          `json:"id" db:"id"`
	Title           string         `json:"title" db:"title"`
	Slug            string         `json:"slug" db:"slug"`
	OneLiner        *string        `json:"one_liner" db:"one_liner"`
	Description     *string        `json:"description" db:"description"`
	ImageLinks      types.JSONText `json:"image_links" db:"image_links"`
	Price           float64        `json:"price" db:"price"`
	DiscountedPrice *float64       `json:"discounted_price" db:"discounted_price"`
	Category        *string        `json:"category" db:"category"`
	Subcategory     *string        `json:"subcategory" db:"subcategory"`
	Dimensions      *string        `json:"dimensions" db:"dimensions"`
	IsActive        bool           `json:"is_active" db:"is_active"`
	CreatedAt       time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at" db:"updated_at"`
}

// ProductAnalytics holds per-product counters updated outside the request path
type ProductAnalytics struct {
	ID              int64      `json:"id" db:"id"`
	ProductID       int64      `json:"product_id" db:"product_id"`
	ViewCount       int64      `json:"view_count" db:"view_count"`
	PurchaseCount   int64      `json:"purchase_count" db:"purchase_count"`
	LastPurchasedAt *time.Time `json:"last_purchased_at" db:"last_purchased_at"`
	Rating          float64    `json:"rating" db:"rating"`
	ReviewCount     int64      `json:"review_count" db:"review_count"`
	StockCount      int64      `json:"stock_count" db:"stock_count"`
	WishlistCount   int64      `json:"wishlist_count" db:"wishlist_count"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// CreateProductRequest carries the multipart form fields for product creation;
// image files are handled separately by the storage gateway.
type CreateProductRequest struct {
	Title           string   `form:"title" validate:"required"`
	OneLiner        *string  `form:"one_liner"`
	Description     *string  `form:"description"`
	Price           float64  `form:"price" validate:"required"`
	DiscountedPrice *float64 `form:"discounted_price"`
	Category        *string  `form:"category"`
	Subcategory     *string  `form:"subcategory"`
	Dimensions      *string  `form:"dimensions"`
	Slug            *string  `form:"slug"`
}

// ProductFilter captures listing filters, sorting and pagination
type ProductFilter struct {
	Category    string
	Subcategory string
	Search      string
	IsActive    *bool
	SortBy      string // price_asc, price_desc, rating, popularity; default newest
	Page        int
	Limit       int
}

// PaginatedProducts is the listing response shape
type PaginatedProducts struct {
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
	Total int64      `json:"total"`
	Pages int64      `json:"pages"`
	Data  []*Product `json:"data"`
}
