package ports

import (
	"context"

	"github.com/Dulllu/netsasa/internal/core/domain"
)

// CheckoutRegistry is the in-memory single source of truth for in-flight
// checkouts. Implementations must serialize mutation per key: a single
// checkout is only ever transitioned by one winner among a racing webhook
// and auto-cancel timer.
type CheckoutRegistry interface {
	// Create registers a new pending checkout. Fails with a duplicate
	// error if the id is already present.
	Create(checkout *domain.Checkout) error

	// Get returns a snapshot of the checkout, or a not-found error.
	Get(checkoutID string) (*domain.Checkout, error)

	// ApplyTerminal transitions the checkout into a terminal status if and
	// only if it is currently non-terminal (pending or processing). It
	// returns changed=false and mutates nothing when the record is absent
	// or already terminal, which makes duplicate webhook delivery and a
	// late auto-cancel both safe no-ops. On success the returned snapshot
	// reflects the committed state.
	ApplyTerminal(checkoutID string, status domain.Status, fields domain.TerminalFields) (changed bool, snapshot *domain.Checkout)
}

// TransactionRepository persists checkout history beyond the in-memory
// retention window.
type TransactionRepository interface {
	Create(ctx context.Context, checkout *domain.Checkout) error
	GetByCheckoutID(ctx context.Context, checkoutID string) (*domain.Checkout, error)
	// MarkTerminal records the terminal outcome for an existing history row.
	MarkTerminal(ctx context.Context, checkout *domain.Checkout) error
	ListByPhone(ctx context.Context, phone string, limit int) ([]domain.Checkout, error)
	// Reporting queries for the vendor dashboard.
	List(ctx context.Context, params CheckoutListParams) ([]domain.Checkout, int64, error)
	GetStats(ctx context.Context) (*CheckoutStats, error)
}

// CheckoutListParams holds filter + pagination for listing checkouts.
type CheckoutListParams struct {
	Status   *domain.Status
	Phone    *string
	Page     int
	PageSize int
}

// CheckoutStats holds aggregated statistics for the vendor dashboard.
type CheckoutStats struct {
	Total        int64
	Successful   int64
	Failed       int64
	Cancelled    int64
	TotalRevenue int64 // Sum of successful payment amounts
}

// LedgerRepository tracks per-customer loyalty points and lifetime spend.
// Updated as a best-effort downstream effect of a successful payment.
type LedgerRepository interface {
	RecordSpend(ctx context.Context, phone string, amount int64, points int64) error
}
