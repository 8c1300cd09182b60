// Package apperrors defines the domain error taxonomy and its mapping to
// HTTP statuses and client-visible error codes. Domain errors are raised at
// the point of detection and translated to the response envelope at the
// HTTP boundary; persistence internals never reach clients.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Client-visible error codes
const (
	CodeOTPAlreadySent    = "OTP_ALREADY_SENT"
	CodeOTPDeliveryFailed = "OTP_DELIVERY_FAILED"
	CodeInvalidOTP        = "INVALID_OTP"
	CodeTokenExpired      = "TOKEN_EXPIRED"
	CodeTokenInvalid      = "TOKEN_INVALID"
	CodeDatabaseFailed    = "DATABASE_OPERATION_FAILED"
	CodeProductNotFound   = "PRODUCT_NOT_FOUND"
	CodeBadRequest        = "BAD_REQUEST"
	CodeInternal          = "INTERNAL_SERVER_ERROR"
)

// Severity controls the log level a domain error is recorded at
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
	SeverityError
)

// AppError is a typed domain failure carrying its HTTP mapping
type AppError struct {
	Code     string
	Status   int
	Severity Severity
	Message  string
	cause    error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap exposes the wrapped cause for errors.Is/As chains
func (e *AppError) Unwrap() error {
	return e.cause
}

// Is matches AppErrors by code so sentinel comparisons work across wrapping
func (e *AppError) Is(target error) bool {
	var t *AppError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// Sentinel domain errors. InvalidOTP is deliberately a single value returned
// from every verification failure branch (unknown user, no OTP, mismatch,
// expired, already used) so clients cannot enumerate accounts.
var (
	ErrInvalidOTP = &AppError{
		Code:     CodeInvalidOTP,
		Status:   http.StatusBadRequest,
		Severity: SeverityWarn,
		Message:  "Invalid or expired OTP",
	}
	ErrTokenExpired = &AppError{
		Code:     CodeTokenExpired,
		Status:   http.StatusUnauthorized,
		Severity: SeverityWarn,
		Message:  "Token expired",
	}
	ErrTokenInvalid = &AppError{
		Code:     CodeTokenInvalid,
		Status:   http.StatusUnauthorized,
		Severity: SeverityWarn,
		Message:  "Invalid token",
	}
	ErrProductNotFound = &AppError{
		Code:     CodeProductNotFound,
		Status:   http.StatusNotFound,
		Severity: SeverityWarn,
		Message:  "Product not found",
	}
)

// OTPAlreadyActive reports that an unexpired, unused OTP already exists for
// the identifier. WaitSeconds is the remaining time to that OTP's expiry.
type OTPAlreadyActiveError struct {
	WaitSeconds int
}

func (e *OTPAlreadyActiveError) Error() string {
	return fmt.Sprintf("OTP already sent. Please wait %dm %ds.", e.WaitSeconds/60, e.WaitSeconds%60)
}

// OTPAlreadyActive builds the rate-limit class failure for a pending OTP
func OTPAlreadyActive(waitSeconds int) *AppError {
	inner := &OTPAlreadyActiveError{WaitSeconds: waitSeconds}
	return &AppError{
		Code:     CodeOTPAlreadySent,
		Status:   http.StatusTooManyRequests,
		Severity: SeverityInfo,
		Message:  inner.Error(),
		cause:    inner,
	}
}

// OTPDeliveryFailed reports an upstream delivery channel failure
func OTPDeliveryFailed(reason string, cause error) *AppError {
	return &AppError{
		Code:     CodeOTPDeliveryFailed,
		Status:   http.StatusInternalServerError,
		Severity: SeverityError,
		Message:  fmt.Sprintf("Failed to deliver OTP: %s", reason),
		cause:    cause,
	}
}

// ImageUploadFailed reports an object-storage upload failure
func ImageUploadFailed(cause error) *AppError {
	return &AppError{
		Code:     CodeInternal,
		Status:   http.StatusBadGateway,
		Severity: SeverityError,
		Message:  "Image upload failed. Please try again later.",
		cause:    cause,
	}
}

// DatabaseOperation wraps a persistence failure behind a generic message
func DatabaseOperation(cause error) *AppError {
	return &AppError{
		Code:     CodeDatabaseFailed,
		Status:   http.StatusInternalServerError,
		Severity: SeverityError,
		Message:  "Database operation failed. Please try again later.",
		cause:    cause,
	}
}

// BadRequest reports a malformed client request
func BadRequest(message string) *AppError {
	return &AppError{
		Code:     CodeBadRequest,
		Status:   http.StatusBadRequest,
		Severity: SeverityWarn,
		Message:  message,
	}
}

// FromError extracts an AppError from an error chain, falling back to a
// generic 500 so unhandled faults never leak internals to clients.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return &AppError{
		Code:     CodeInternal,
		Status:   http.StatusInternalServerError,
		Severity: SeverityError,
		Message:  "An unexpected error occurred. Please try again later.",
		cause:    err,
	}
}
