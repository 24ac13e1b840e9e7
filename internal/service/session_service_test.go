package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dulllu/netsasa/internal/core/domain"
)

func paidCheckout() *domain.Checkout {
	return &domain.Checkout{
		CheckoutID:    "ws_CO_1",
		Phone:         "0712345678",
		Amount:        60,
		PackageID:     "p5",
		Status:        domain.StatusSuccess,
		ReceiptNumber: "QHX12ABC34",
	}
}

func TestPortalSessionActivator_Activate(t *testing.T) {
	var got activationPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := NewPortalSessionActivator(srv.URL, srv.Client(), zerolog.Nop())
	require.NoError(t, a.Activate(context.Background(), paidCheckout()))

	assert.Equal(t, "ws_CO_1", got.CheckoutID)
	assert.Equal(t, "0712345678", got.Phone)
	assert.Equal(t, "p5", got.PackageID)
	assert.Equal(t, "QHX12ABC34", got.ReceiptNumber)
}

func TestPortalSessionActivator_NoURLIsNoOp(t *testing.T) {
	a := NewPortalSessionActivator("", http.DefaultClient, zerolog.Nop())
	assert.NoError(t, a.Activate(context.Background(), paidCheckout()))
}

func TestPortalSessionActivator_ControllerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := NewPortalSessionActivator(srv.URL, srv.Client(), zerolog.Nop())

	// Cancel the context so retries bail out instead of sleeping.
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := a.Activate(ctx, paidCheckout())
	assert.Error(t, err)
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}
