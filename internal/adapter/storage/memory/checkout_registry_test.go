package memory

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dulllu/netsasa/internal/core/domain"
	"github.com/Dulllu/netsasa/pkg/apperror"
)

func newTestRegistry() *CheckoutRegistry {
	return NewCheckoutRegistry(0, zerolog.Nop())
}

func pendingCheckout(id string) *domain.Checkout {
	return &domain.Checkout{
		CheckoutID: id,
		Phone:      "0712345678",
		Amount:     20,
		PackageID:  "p3",
		Status:     domain.StatusPending,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestCheckoutRegistry_CreateAndGet(t *testing.T) {
	r := newTestRegistry()
	defer r.Close()

	require.NoError(t, r.Create(pendingCheckout("ws_CO_1")))

	got, err := r.Get("ws_CO_1")
	require.NoError(t, err)
	assert.Equal(t, "ws_CO_1", got.CheckoutID)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Nil(t, got.CompletedAt)
}

func TestCheckoutRegistry_CreateDuplicate(t *testing.T) {
	r := newTestRegistry()
	defer r.Close()

	require.NoError(t, r.Create(pendingCheckout("ws_CO_1")))
	err := r.Create(pendingCheckout("ws_CO_1"))

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PAY_002", appErr.Code)
}

func TestCheckoutRegistry_GetUnknown(t *testing.T) {
	r := newTestRegistry()
	defer r.Close()

	_, err := r.Get("ws_missing")
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "PAY_001", appErr.Code)
}

func TestCheckoutRegistry_GetReturnsSnapshot(t *testing.T) {
	r := newTestRegistry()
	defer r.Close()

	require.NoError(t, r.Create(pendingCheckout("ws_CO_1")))

	got, err := r.Get("ws_CO_1")
	require.NoError(t, err)
	got.Status = domain.StatusSuccess // caller mutation must not leak back

	again, err := r.Get("ws_CO_1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, again.Status)
}

func TestCheckoutRegistry_ApplyTerminal(t *testing.T) {
	r := newTestRegistry()
	defer r.Close()

	require.NoError(t, r.Create(pendingCheckout("ws_CO_1")))

	changed, snap := r.ApplyTerminal("ws_CO_1", domain.StatusSuccess, domain.TerminalFields{
		ReceiptNumber: "QHX12ABC34",
		ResultCode:    "0",
		ResultDesc:    "The service request is processed successfully.",
	})
	require.True(t, changed)
	require.NotNil(t, snap)
	assert.Equal(t, domain.StatusSuccess, snap.Status)
	assert.Equal(t, "QHX12ABC34", snap.ReceiptNumber)
	require.NotNil(t, snap.CompletedAt)

	// Second delivery of the same callback is a no-op.
	changed, snap = r.ApplyTerminal("ws_CO_1", domain.StatusFailed, domain.TerminalFields{ResultCode: "1"})
	assert.False(t, changed)
	assert.Nil(t, snap)

	got, err := r.Get("ws_CO_1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusSuccess, got.Status)
	assert.Equal(t, "0", got.ResultCode)
}

func TestCheckoutRegistry_ApplyTerminalUnknown(t *testing.T) {
	r := newTestRegistry()
	defer r.Close()

	changed, snap := r.ApplyTerminal("ws_missing", domain.StatusCancelled, domain.TerminalFields{})
	assert.False(t, changed)
	assert.Nil(t, snap)
}

func TestCheckoutRegistry_ApplyTerminalRejectsNonTerminal(t *testing.T) {
	r := newTestRegistry()
	defer r.Close()

	require.NoError(t, r.Create(pendingCheckout("ws_CO_1")))

	changed, _ := r.ApplyTerminal("ws_CO_1", domain.StatusProcessing, domain.TerminalFields{})
	assert.False(t, changed)

	got, err := r.Get("ws_CO_1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)
}

// A webhook and an auto-cancel firing at once must produce exactly one
// committed transition.
func TestCheckoutRegistry_ApplyTerminalRace(t *testing.T) {
	r := newTestRegistry()
	defer r.Close()

	const attempts = 64
	for i := 0; i < attempts; i++ {
		id := pendingCheckout("ws_CO_race").CheckoutID
		require.NoError(t, r.Create(&domain.Checkout{CheckoutID: id, Status: domain.StatusPending, CreatedAt: time.Now()}))

		var wg sync.WaitGroup
		results := make(chan domain.Status, 2)

		wg.Add(2)
		go func() {
			defer wg.Done()
			if changed, _ := r.ApplyTerminal(id, domain.StatusSuccess, domain.TerminalFields{ResultCode: "0"}); changed {
				results <- domain.StatusSuccess
			}
		}()
		go func() {
			defer wg.Done()
			if changed, _ := r.ApplyTerminal(id, domain.StatusCancelled, domain.TerminalFields{ResultDesc: "timeout"}); changed {
				results <- domain.StatusCancelled
			}
		}()
		wg.Wait()
		close(results)

		var winners []domain.Status
		for s := range results {
			winners = append(winners, s)
		}
		require.Len(t, winners, 1, "exactly one transition must win")

		got, err := r.Get(id)
		require.NoError(t, err)
		assert.Equal(t, winners[0], got.Status)

		// reset for next round
		r.mu.Lock()
		delete(r.entries, id)
		r.mu.Unlock()
	}
}

func TestCheckoutRegistry_Sweep(t *testing.T) {
	r := NewCheckoutRegistry(time.Minute, zerolog.Nop())
	defer r.Close()

	require.NoError(t, r.Create(pendingCheckout("ws_old")))
	require.NoError(t, r.Create(pendingCheckout("ws_live")))
	require.NoError(t, r.Create(pendingCheckout("ws_pending")))

	changed, _ := r.ApplyTerminal("ws_old", domain.StatusSuccess, domain.TerminalFields{})
	require.True(t, changed)
	changed, _ = r.ApplyTerminal("ws_live", domain.StatusFailed, domain.TerminalFields{})
	require.True(t, changed)

	// Age ws_old past the retention window.
	r.mu.Lock()
	old := time.Now().UTC().Add(-2 * time.Minute)
	r.entries["ws_old"].CompletedAt = &old
	r.mu.Unlock()

	r.sweep(time.Now().UTC())

	_, err := r.Get("ws_old")
	assert.Error(t, err)
	_, err = r.Get("ws_live")
	assert.NoError(t, err)
	_, err = r.Get("ws_pending")
	assert.NoError(t, err)
	assert.Equal(t, 2, r.Len())
}
