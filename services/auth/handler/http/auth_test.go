package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xsnapster/backend/internal/pkg/apperrors"
	"github.com/xsnapster/backend/internal/pkg/models"
	"github.com/xsnapster/backend/services/auth/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			AccessSecret:      "access-secret-for-tests",
			RefreshSecret:     "refresh-secret-for-tests",
			AccessExpiration:  30,
			RefreshExpiration: 30,
		},
	}
}

func newRequest(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) (string, string) {
	t.Helper()
	var body struct {
		Success   bool   `json:"success"`
		ErrorCode string `json:"error_code"`
		Message   string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.ErrorCode, body.Message
}

func TestRequestOTP_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	mockUC.EXPECT().
		RequestOTP(gomock.Any(), "alice@example.com").
		Return(nil)

	c, rec := newRequest(t, http.MethodPost, "/auth/request-otp", `{"identifier":"alice@example.com"}`)
	require.NoError(t, h.RequestOTP(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "OTP sent successfully")
}

func TestRequestOTP_MissingIdentifier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAuthHandler(mocks.NewMockAuthUC(ctrl), testConfig())

	c, rec := newRequest(t, http.MethodPost, "/auth/request-otp", `{}`)
	require.NoError(t, h.RequestOTP(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	code, _ := decodeError(t, rec)
	assert.Equal(t, apperrors.CodeBadRequest, code)
}

func TestRequestOTP_ActiveOTPEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	mockUC.EXPECT().
		RequestOTP(gomock.Any(), "alice@example.com").
		Return(apperrors.OTPAlreadyActive(150))

	c, rec := newRequest(t, http.MethodPost, "/auth/request-otp", `{"identifier":"alice@example.com"}`)
	require.NoError(t, h.RequestOTP(c))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	code, message := decodeError(t, rec)
	assert.Equal(t, apperrors.CodeOTPAlreadySent, code)
	assert.Contains(t, message, "2m 30s")
}

func TestRequestOTP_DeliveryFailureEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	mockUC.EXPECT().
		RequestOTP(gomock.Any(), "alice@example.com").
		Return(apperrors.OTPDeliveryFailed("smtp unreachable", nil))

	c, rec := newRequest(t, http.MethodPost, "/auth/request-otp", `{"identifier":"alice@example.com"}`)
	require.NoError(t, h.RequestOTP(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	code, _ := decodeError(t, rec)
	assert.Equal(t, apperrors.CodeOTPDeliveryFailed, code)
}

func TestVerifyOTP_SuccessSetsRefreshCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	email := "alice@example.com"
	user := &models.User{Email: &email, IsVerified: true, IsActive: true}

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), "alice@example.com", "123456").
		Return("the-access-token", "the-refresh-token", user, nil)

	c, rec := newRequest(t, http.MethodPost, "/auth/verify-otp", `{"identifier":"alice@example.com","otp":"123456"}`)
	require.NoError(t, h.VerifyOTP(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "the-access-token", body.AccessToken)
	assert.Equal(t, "bearer", body.TokenType)
	require.NotNil(t, body.User.Email)
	assert.Equal(t, email, *body.User.Email)
	assert.NotContains(t, rec.Body.String(), "the-refresh-token")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "refresh_token", cookie.Name)
	assert.Equal(t, "the-refresh-token", cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 30*24*60*60, cookie.MaxAge)
}

func TestVerifyOTP_InvalidCodeEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	mockUC.EXPECT().
		VerifyOTP(gomock.Any(), "alice@example.com", "000000").
		Return("", "", nil, apperrors.ErrInvalidOTP)

	c, rec := newRequest(t, http.MethodPost, "/auth/verify-otp", `{"identifier":"alice@example.com","otp":"000000"}`)
	require.NoError(t, h.VerifyOTP(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	code, _ := decodeError(t, rec)
	assert.Equal(t, apperrors.CodeInvalidOTP, code)
	assert.Empty(t, rec.Result().Cookies())
}

func TestVerifyOTP_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAuthHandler(mocks.NewMockAuthUC(ctrl), testConfig())

	c, rec := newRequest(t, http.MethodPost, "/auth/verify-otp", `{"identifier":"alice@example.com"}`)
	require.NoError(t, h.VerifyOTP(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRefresh_MissingCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewAuthHandler(mocks.NewMockAuthUC(ctrl), testConfig())

	c, rec := newRequest(t, http.MethodPost, "/auth/refresh", "")
	require.NoError(t, h.Refresh(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	code, message := decodeError(t, rec)
	assert.Equal(t, apperrors.CodeTokenInvalid, code)
	assert.Equal(t, "Missing refresh token", message)
}

func TestRefresh_RotatesCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	email := "alice@example.com"
	user := &models.User{Email: &email, IsVerified: true, IsActive: true}

	mockUC.EXPECT().
		RefreshTokens(gomock.Any(), "old-refresh-token").
		Return("new-access-token", "new-refresh-token", user, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "old-refresh-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Refresh(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "new-access-token")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "new-refresh-token", cookies[0].Value)
}

func TestRefresh_ExpiredTokenEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockAuthUC(ctrl)
	h := NewAuthHandler(mockUC, testConfig())

	mockUC.EXPECT().
		RefreshTokens(gomock.Any(), "stale-token").
		Return("", "", nil, apperrors.ErrTokenExpired)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: "refresh_token", Value: "stale-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.Refresh(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	code, _ := decodeError(t, rec)
	assert.Equal(t, apperrors.CodeTokenExpired, code)
}
