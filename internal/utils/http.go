package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/xsnapster/backend/internal/pkg/apperrors"
	"github.com/xsnapster/backend/internal/pkg/logger"
)

// Response represents a standard success response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the uniform error envelope across all endpoints
type ErrorResponse struct {
	Success   bool   `json:"success"`
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error envelope with an explicit code
func ErrorResponseHandler(c echo.Context, statusCode int, errorCode, message string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success:   false,
		ErrorCode: errorCode,
		Message:   message,
	})
}

// AppErrorResponse translates a domain error to the envelope and logs it at
// the severity assigned to its class. Every raised domain error passes
// through here exactly once, at the boundary.
func AppErrorResponse(c echo.Context, err error) error {
	appErr := apperrors.FromError(err)

	fields := []logger.Field{
		logger.String("error_code", appErr.Code),
		logger.String("path", c.Request().URL.Path),
		logger.ErrorField(err),
	}

	switch appErr.Severity {
	case apperrors.SeverityInfo:
		logger.Info(appErr.Message, fields...)
	case apperrors.SeverityWarn:
		logger.Warn(appErr.Message, fields...)
	default:
		logger.Error(appErr.Message, fields...)
	}

	return ErrorResponseHandler(c, appErr.Status, appErr.Code, appErr.Message)
}

// BadRequestResponse sends a 400 Bad Request envelope
func BadRequestResponse(c echo.Context, message string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, apperrors.CodeBadRequest, message)
}

// UnauthorizedResponse sends a 401 Unauthorized envelope
func UnauthorizedResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, apperrors.CodeTokenInvalid, message)
}

// NotFoundResponse sends a 404 Not Found envelope
func NotFoundResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponseHandler(c, http.StatusNotFound, apperrors.CodeProductNotFound, message)
}

// InternalServerErrorResponse sends a 500 Internal Server Error envelope
func InternalServerErrorResponse(c echo.Context, message string) error {
	if message == "" {
		message = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, apperrors.CodeInternal, message)
}
