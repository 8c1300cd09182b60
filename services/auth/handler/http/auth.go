package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xsnapster/backend/internal/pkg/models"
	"github.com/xsnapster/backend/internal/utils"
	"github.com/xsnapster/backend/services/auth"
)

// refreshCookieName is the transport-level carrier for refresh tokens
const refreshCookieName = "refresh_token"

// AuthHandler handles HTTP requests for the OTP authentication flow
type AuthHandler struct {
	authUC auth.AuthUC
	cfg    *models.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC, cfg *models.Config) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		cfg:    cfg,
	}
}

// RequestOTP handles POST /auth/request-otp
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req models.RequestOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Identifier == "" {
		return utils.BadRequestResponse(c, "Identifier is required")
	}

	if err := h.authUC.RequestOTP(c.Request().Context(), req.Identifier); err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", nil)
}

// VerifyOTP handles POST /auth/verify-otp
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Identifier == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "Identifier and OTP are required")
	}

	accessToken, refreshToken, user, err := h.authUC.VerifyOTP(c.Request().Context(), req.Identifier, req.OTP)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	h.setRefreshCookie(c, refreshToken)

	return c.JSON(http.StatusOK, models.NewAuthResponse(accessToken, user))
}

// Refresh handles POST /auth/refresh. The refresh token arrives in an
// HTTP-only cookie, never in the request body.
func (h *AuthHandler) Refresh(c echo.Context) error {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie.Value == "" {
		return utils.UnauthorizedResponse(c, "Missing refresh token")
	}

	accessToken, refreshToken, user, err := h.authUC.RefreshTokens(c.Request().Context(), cookie.Value)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	// Rotation: every successful refresh re-issues the cookie
	h.setRefreshCookie(c, refreshToken)

	return c.JSON(http.StatusOK, models.NewAuthResponse(accessToken, user))
}

func (h *AuthHandler) setRefreshCookie(c echo.Context, token string) {
	maxAge := h.cfg.JWT.RefreshExpiration * 24 * 60 * 60

	c.SetCookie(&http.Cookie{
		Name:     refreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  time.Now().Add(time.Duration(maxAge) * time.Second),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	})
}
