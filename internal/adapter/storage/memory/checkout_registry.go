package memory

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Dulllu/netsasa/internal/core/domain"
	"github.com/Dulllu/netsasa/internal/core/ports"
	"github.com/Dulllu/netsasa/pkg/apperror"
)

// CheckoutRegistry is the authoritative in-memory store for in-flight
// checkouts. All mutation happens under one mutex, so the racing webhook and
// auto-cancel timer resolve to exactly one terminal transition per checkout.
type CheckoutRegistry struct {
	mu      sync.RWMutex
	entries map[string]*domain.Checkout

	retention time.Duration
	stop      chan struct{}
	stopOnce  sync.Once
	log       zerolog.Logger
}

var _ ports.CheckoutRegistry = (*CheckoutRegistry)(nil)

// NewCheckoutRegistry creates a registry whose terminal entries are swept
// after the given retention window. A non-positive retention disables the
// janitor (useful in tests).
func NewCheckoutRegistry(retention time.Duration, log zerolog.Logger) *CheckoutRegistry {
	r := &CheckoutRegistry{
		entries:   make(map[string]*domain.Checkout),
		retention: retention,
		stop:      make(chan struct{}),
		log:       log.With().Str("component", "checkout_registry").Logger(),
	}
	if retention > 0 {
		go r.janitor()
	}
	return r
}

// Create registers a new pending checkout.
func (r *CheckoutRegistry) Create(checkout *domain.Checkout) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[checkout.CheckoutID]; exists {
		return apperror.ErrDuplicateCheckout(checkout.CheckoutID)
	}
	cp := *checkout
	r.entries[checkout.CheckoutID] = &cp
	return nil
}

// Get returns a snapshot of the checkout.
func (r *CheckoutRegistry) Get(checkoutID string) (*domain.Checkout, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[checkoutID]
	if !ok {
		return nil, apperror.ErrCheckoutNotFound()
	}
	cp := *entry
	return &cp, nil
}

// ApplyTerminal commits a terminal transition if the checkout is still
// non-terminal. Absent or already-terminal records return changed=false with
// no mutation, so duplicate callbacks and a late timer are both no-ops.
func (r *CheckoutRegistry) ApplyTerminal(checkoutID string, status domain.Status, fields domain.TerminalFields) (bool, *domain.Checkout) {
	if !status.IsTerminal() {
		return false, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[checkoutID]
	if !ok || entry.Status.IsTerminal() {
		return false, nil
	}

	now := time.Now().UTC()
	entry.Status = status
	entry.CompletedAt = &now
	if fields.GatewayTransactionID != "" {
		entry.GatewayTransactionID = fields.GatewayTransactionID
	}
	if fields.ReceiptNumber != "" {
		entry.ReceiptNumber = fields.ReceiptNumber
	}
	if fields.ResultCode != "" {
		entry.ResultCode = fields.ResultCode
	}
	if fields.ResultDesc != "" {
		entry.ResultDesc = fields.ResultDesc
	}
	if fields.RawCallback != nil {
		entry.RawCallback = fields.RawCallback
	}

	cp := *entry
	return true, &cp
}

// Len reports the number of tracked checkouts.
func (r *CheckoutRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Close stops the retention janitor.
func (r *CheckoutRegistry) Close() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *CheckoutRegistry) janitor() {
	interval := r.retention / 4
	if interval < time.Second {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.sweep(time.Now().UTC())
		}
	}
}

// sweep removes terminal entries whose retention window has elapsed. Pending
// entries are never swept here; the auto-cancel timer terminates them first.
func (r *CheckoutRegistry) sweep(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, entry := range r.entries {
		if entry.CompletedAt != nil && now.Sub(*entry.CompletedAt) > r.retention {
			delete(r.entries, id)
			removed++
		}
	}
	if removed > 0 {
		r.log.Debug().Int("removed", removed).Int("remaining", len(r.entries)).Msg("swept expired checkouts")
	}
}
