package integration

import (
	"context"
	"sync"

	"github.com/Dulllu/netsasa/internal/core/domain"
	"github.com/Dulllu/netsasa/internal/core/ports"
)

// In-memory stand-ins for the PostgreSQL repositories. They keep the tests
// self-contained while exercising the real HTTP layer, middleware, services,
// and registry end-to-end.

type inMemoryTransactionRepo struct {
	mu            sync.Mutex
	checkouts     map[string]*domain.Checkout
	order         []string
	terminalMarks map[string]int
}

func newInMemoryTransactionRepo() *inMemoryTransactionRepo {
	return &inMemoryTransactionRepo{
		checkouts:     make(map[string]*domain.Checkout),
		terminalMarks: make(map[string]int),
	}
}

func (r *inMemoryTransactionRepo) Create(ctx context.Context, checkout *domain.Checkout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *checkout
	r.checkouts[checkout.CheckoutID] = &cp
	r.order = append(r.order, checkout.CheckoutID)
	return nil
}

func (r *inMemoryTransactionRepo) GetByCheckoutID(ctx context.Context, checkoutID string) (*domain.Checkout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.checkouts[checkoutID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *inMemoryTransactionRepo) MarkTerminal(ctx context.Context, checkout *domain.Checkout) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *checkout
	r.checkouts[checkout.CheckoutID] = &cp
	r.terminalMarks[checkout.CheckoutID]++
	return nil
}

func (r *inMemoryTransactionRepo) ListByPhone(ctx context.Context, phone string, limit int) ([]domain.Checkout, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Checkout
	for i := len(r.order) - 1; i >= 0 && len(out) < limit; i-- {
		c := r.checkouts[r.order[i]]
		if c.Phone == phone {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *inMemoryTransactionRepo) List(ctx context.Context, params ports.CheckoutListParams) ([]domain.Checkout, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var matched []domain.Checkout
	for i := len(r.order) - 1; i >= 0; i-- {
		c := r.checkouts[r.order[i]]
		if params.Status != nil && c.Status != *params.Status {
			continue
		}
		if params.Phone != nil && c.Phone != *params.Phone {
			continue
		}
		matched = append(matched, *c)
	}
	total := int64(len(matched))
	start := (params.Page - 1) * params.PageSize
	if start >= len(matched) {
		return nil, total, nil
	}
	end := start + params.PageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *inMemoryTransactionRepo) GetStats(ctx context.Context) (*ports.CheckoutStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &ports.CheckoutStats{}
	for _, c := range r.checkouts {
		stats.Total++
		switch c.Status {
		case domain.StatusSuccess:
			stats.Successful++
			stats.TotalRevenue += c.Amount
		case domain.StatusFailed:
			stats.Failed++
		case domain.StatusCancelled:
			stats.Cancelled++
		}
	}
	return stats, nil
}

// TerminalMarks returns how many times MarkTerminal ran for a checkout.
func (r *inMemoryTransactionRepo) TerminalMarks(checkoutID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.terminalMarks[checkoutID]
}

type ledgerEntry struct {
	Spend  int64
	Points int64
	Visits int
}

type inMemoryLedgerRepo struct {
	mu      sync.Mutex
	entries map[string]*ledgerEntry
}

func newInMemoryLedgerRepo() *inMemoryLedgerRepo {
	return &inMemoryLedgerRepo{entries: make(map[string]*ledgerEntry)}
}

func (r *inMemoryLedgerRepo) RecordSpend(ctx context.Context, phone string, amount int64, points int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[phone]
	if !ok {
		e = &ledgerEntry{}
		r.entries[phone] = e
	}
	e.Spend += amount
	e.Points += points
	e.Visits++
	return nil
}

// Entry returns the ledger row for a phone, or a zero value.
func (r *inMemoryLedgerRepo) Entry(phone string) ledgerEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[phone]; ok {
		return *e
	}
	return ledgerEntry{}
}
