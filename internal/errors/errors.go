// Package errors provides custom error types for the fintrack API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable detail, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Detail     string `json:"detail"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Detail }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/detail/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Detail:     sentinel.Detail,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithDetail creates a new AppError with a custom detail string.
func WithDetail(sentinel *AppError, detail string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Detail:     detail,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Detail: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Detail: "Invalid email or password", StatusCode: http.StatusUnauthorized}
)

// General errors.
var (
	ErrValidation     = &AppError{Code: "VALIDATION_ERROR", Detail: "Invalid request payload", StatusCode: http.StatusUnprocessableEntity}
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Detail: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Detail: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Detail: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Detail: "A user with this email already exists", StatusCode: http.StatusConflict}
)

// Resource errors. The not-found details are fixed per resource and cover
// both a missing id and an id owned by another user, so that unauthorized
// access is indistinguishable from non-existence.
var (
	ErrCategoryNotFound    = &AppError{Code: "CATEGORY_NOT_FOUND", Detail: "Category not found", StatusCode: http.StatusNotFound}
	ErrTransactionNotFound = &AppError{Code: "TRANSACTION_NOT_FOUND", Detail: "Transaction not found", StatusCode: http.StatusNotFound}
	ErrBudgetNotFound      = &AppError{Code: "BUDGET_NOT_FOUND", Detail: "Budget not found", StatusCode: http.StatusNotFound}
)
