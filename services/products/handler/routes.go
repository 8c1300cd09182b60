package handler

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/xsnapster/backend/internal/pkg/apperrors"
	"github.com/xsnapster/backend/internal/pkg/models"
	"github.com/xsnapster/backend/internal/utils"
	httpHandler "github.com/xsnapster/backend/services/products/handler/http"
)

// Handler coordinates the HTTP handlers for the products service
type Handler struct {
	productHandler *httpHandler.ProductHandler
	cfg            *models.Config
}

// NewHandler creates and initializes the product handlers
func NewHandler(productHandler *httpHandler.ProductHandler, cfg *models.Config) *Handler {
	return &Handler{
		productHandler: productHandler,
		cfg:            cfg,
	}
}

// RegisterRoutes registers the catalog routes. Reads are public, writes
// require a valid access token.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	productGroup := e.Group("/products")

	productGroup.GET("", h.productHandler.ListProducts)
	productGroup.GET("/:id", h.productHandler.GetProduct)

	protected := productGroup.Group("")
	protected.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.AccessSecret),
		ErrorHandler: func(c echo.Context, err error) error {
			return utils.ErrorResponseHandler(c, http.StatusUnauthorized, apperrors.CodeTokenInvalid, "Invalid or missing access token")
		},
	}))
	protected.POST("", h.productHandler.CreateProduct)
}
