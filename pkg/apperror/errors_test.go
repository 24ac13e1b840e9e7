package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := New("PAY_001", "Checkout not found", http.StatusNotFound)
	assert.Equal(t, "[PAY_001] Checkout not found", e.Error())

	inner := errors.New("connection refused")
	w := Wrap("GW_001", "Payment gateway unavailable", http.StatusBadGateway, inner)
	assert.Equal(t, "[GW_001] Payment gateway unavailable: connection refused", w.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("boom")
	w := Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, inner)

	assert.ErrorIs(t, w, inner)

	wrapped := fmt.Errorf("handler: %w", w)
	var appErr *AppError
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, "SYS_001", appErr.Code)
}

func TestConstructors_HTTPStatus(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
		code   string
	}{
		{Validation("phone is required"), http.StatusBadRequest, "VAL_001"},
		{ErrInvalidPhone(), http.StatusBadRequest, "VAL_001"},
		{ErrInvalidAmount(), http.StatusBadRequest, "VAL_002"},
		{ErrGatewayUnavailable(errors.New("timeout")), http.StatusBadGateway, "GW_001"},
		{ErrGatewayRejected("STK push failed"), http.StatusBadGateway, "GW_002"},
		{ErrCheckoutNotFound(), http.StatusNotFound, "PAY_001"},
		{ErrDuplicateCheckout("ws_X"), http.StatusConflict, "PAY_002"},
		{ErrInvalidSignature(), http.StatusUnauthorized, "SEC_001"},
		{ErrInvalidToken(), http.StatusUnauthorized, "SEC_002"},
		{ErrInvalidCredentials(), http.StatusUnauthorized, "SEC_003"},
		{ErrRateLimitExceeded(), http.StatusTooManyRequests, "RATE_001"},
		{InternalError(errors.New("x")), http.StatusInternalServerError, "SYS_001"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.HTTPStatus, tc.code)
		assert.Equal(t, tc.code, tc.err.Code)
	}
}
