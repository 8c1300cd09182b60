package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/xsnapster/backend/internal/pkg/models"
	"github.com/xsnapster/backend/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler *http.AuthHandler
	cfg         *models.Config
}

// NewHandler creates and initializes the auth handlers
func NewHandler(authHandler *http.AuthHandler, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: authHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes registers the auth routes. The optional rate limiter sits
// in front of the OTP endpoints only; refresh is shielded by token expiry.
func (h *Handler) RegisterRoutes(e *echo.Echo, rateLimiter echo.MiddlewareFunc) {
	authGroup := e.Group("/auth")

	otpGroup := authGroup.Group("")
	if rateLimiter != nil {
		otpGroup.Use(rateLimiter)
	}
	otpGroup.POST("/request-otp", h.authHandler.RequestOTP)
	otpGroup.POST("/verify-otp", h.authHandler.VerifyOTP)

	authGroup.POST("/refresh", h.authHandler.Refresh)
}
