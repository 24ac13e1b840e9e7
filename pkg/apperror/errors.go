package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a field-level validation error.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidPhone() *AppError {
	return New("VAL_001", "Invalid phone number format. Use 07XXXXXXXX", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_002", "Amount must be at least 10", http.StatusBadRequest)
}

// ---- Gateway (GW) ----

// ErrGatewayUnavailable covers network/transport failures reaching the
// payment gateway. The initiation is not retried automatically.
func ErrGatewayUnavailable(err error) *AppError {
	return Wrap("GW_001", "Payment gateway unavailable", http.StatusBadGateway, err)
}

// ErrGatewayRejected covers a reachable gateway whose response indicates
// failure (non-success code or missing checkout identifier).
func ErrGatewayRejected(message string) *AppError {
	return New("GW_002", message, http.StatusBadGateway)
}

// ---- Checkout lifecycle (PAY) ----

func ErrCheckoutNotFound() *AppError {
	return New("PAY_001", "Checkout not found", http.StatusNotFound)
}

func ErrDuplicateCheckout(checkoutID string) *AppError {
	return New("PAY_002", fmt.Sprintf("Checkout %s already exists", checkoutID), http.StatusConflict)
}

// ---- Security (SEC) ----

func ErrInvalidSignature() *AppError {
	return New("SEC_001", "Invalid webhook signature", http.StatusUnauthorized)
}

func ErrInvalidToken() *AppError {
	return New("SEC_002", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrInvalidCredentials() *AppError {
	return New("SEC_003", "Invalid credentials", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_002", "Internal database error", http.StatusInternalServerError, err)
}
