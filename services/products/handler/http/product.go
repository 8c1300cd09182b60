package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/xsnapster/backend/internal/pkg/models"
	"github.com/xsnapster/backend/internal/utils"
	"github.com/xsnapster/backend/services/products"
)

// ProductHandler handles HTTP requests for the product catalog
type ProductHandler struct {
	productUC products.ProductUC
	cfg       *models.Config
}

// NewProductHandler creates a new product handler
func NewProductHandler(productUC products.ProductUC, cfg *models.Config) *ProductHandler {
	return &ProductHandler{
		productUC: productUC,
		cfg:       cfg,
	}
}

// CreateProduct handles POST /products. The payload is a multipart form
// carrying the product fields plus zero or more image files under "images".
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req models.CreateProductRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Title == "" {
		return utils.BadRequestResponse(c, "Title is required")
	}

	form, err := c.MultipartForm()
	if err != nil {
		return utils.BadRequestResponse(c, "Expected a multipart form")
	}
	images := form.File["images"]

	product, err := h.productUC.CreateProduct(c.Request().Context(), &req, images)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusCreated, product)
}

// ListProducts handles GET /products
func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter := &models.ProductFilter{
		Category:    c.QueryParam("category"),
		Subcategory: c.QueryParam("subcategory"),
		Search:      c.QueryParam("search"),
		SortBy:      c.QueryParam("sort_by"),
	}

	if v := c.QueryParam("is_active"); v != "" {
		isActive, err := strconv.ParseBool(v)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid is_active value")
		}
		filter.IsActive = &isActive
	}
	if v := c.QueryParam("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return utils.BadRequestResponse(c, "Invalid page value")
		}
		filter.Page = page
	}
	if v := c.QueryParam("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 1 {
			return utils.BadRequestResponse(c, "Invalid limit value")
		}
		filter.Limit = limit
	}

	page, err := h.productUC.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, page)
}

// GetProduct handles GET /products/:id
func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return utils.BadRequestResponse(c, "Invalid product id")
	}

	product, err := h.productUC.GetProduct(c.Request().Context(), id)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, product)
}
