package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Dulllu/netsasa/internal/core/domain"
	"github.com/Dulllu/netsasa/internal/core/ports"
	"github.com/Dulllu/netsasa/pkg/apperror"
	"github.com/Dulllu/netsasa/pkg/phone"
)

const defaultCustomerMessage = "STK push sent to your phone. Please enter M-Pesa PIN."

// CheckoutService implements ports.CheckoutService. It owns the happy path
// (push, register, persist, arm timer) and the timer expiry path; the
// webhook path lives in WebhookService.
type CheckoutService struct {
	registry  ports.CheckoutRegistry
	repo      ports.TransactionRepository
	gateway   ports.GatewayClient
	scheduler ports.AutoCancelScheduler
	notifier  ports.StatusNotifier
	catalog   domain.Catalog
	reference string
	log       zerolog.Logger
}

var _ ports.CheckoutService = (*CheckoutService)(nil)

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	registry ports.CheckoutRegistry,
	repo ports.TransactionRepository,
	gateway ports.GatewayClient,
	scheduler ports.AutoCancelScheduler,
	notifier ports.StatusNotifier,
	catalog domain.Catalog,
	reference string,
	log zerolog.Logger,
) *CheckoutService {
	return &CheckoutService{
		registry:  registry,
		repo:      repo,
		gateway:   gateway,
		scheduler: scheduler,
		notifier:  notifier,
		catalog:   catalog,
		reference: reference,
		log:       log.With().Str("component", "checkout_service").Logger(),
	}
}

// Initiate sends the STK push and, once the gateway accepts it, registers a
// pending checkout keyed by the gateway-assigned checkout request id. No
// state exists before acceptance: a rejected push leaves nothing to clean up.
func (s *CheckoutService) Initiate(ctx context.Context, req ports.InitiateRequest) (*ports.InitiateResult, error) {
	description := "NETSASA WiFi"
	if req.PackageID != "" {
		pkg, ok := s.catalog.Find(req.PackageID)
		if !ok {
			return nil, apperror.Validation(fmt.Sprintf("Unknown package: %s", req.PackageID))
		}
		description = fmt.Sprintf("WiFi %s", pkg.Name)
	}

	ack, err := s.gateway.Push(ctx, phone.International(req.Phone), req.Amount, s.reference, description)
	if err != nil {
		return nil, err
	}

	checkout := &domain.Checkout{
		CheckoutID:           ack.CheckoutRequestID,
		GatewayTransactionID: ack.GatewayTransactionID,
		Phone:                req.Phone,
		Amount:               req.Amount,
		PackageID:            req.PackageID,
		Status:               domain.StatusPending,
		CreatedAt:            time.Now().UTC(),
	}

	if err := s.registry.Create(checkout); err != nil {
		// Gateway reused a checkout id; the existing record wins.
		s.log.Error().Err(err).Str("checkout_id", checkout.CheckoutID).Msg("duplicate checkout id from gateway")
		return nil, err
	}

	// History row is best-effort: losing it degrades the dashboard, not the
	// payment itself.
	if err := s.repo.Create(ctx, checkout); err != nil {
		s.log.Error().Err(err).Str("checkout_id", checkout.CheckoutID).Msg("failed to persist checkout history")
	}

	s.scheduler.Schedule(checkout.CheckoutID)

	s.log.Info().
		Str("checkout_id", checkout.CheckoutID).
		Str("phone", req.Phone).
		Int64("amount", req.Amount).
		Str("package_id", req.PackageID).
		Msg("payment initiated")

	message := ack.CustomerMessage
	if message == "" {
		message = defaultCustomerMessage
	}
	return &ports.InitiateResult{
		CheckoutRequestID:    ack.CheckoutRequestID,
		GatewayTransactionID: ack.GatewayTransactionID,
		Message:              message,
	}, nil
}

// Check returns the current state of a checkout. The registry is
// authoritative while the record is retained; older checkouts fall back to
// the persisted history.
func (s *CheckoutService) Check(ctx context.Context, checkoutID string) (*domain.Checkout, error) {
	checkout, err := s.registry.Get(checkoutID)
	if err == nil {
		return checkout, nil
	}

	persisted, repoErr := s.repo.GetByCheckoutID(ctx, checkoutID)
	if repoErr != nil {
		return nil, apperror.ErrDatabaseError(repoErr)
	}
	if persisted == nil {
		return nil, apperror.ErrCheckoutNotFound()
	}
	return persisted, nil
}

// ListByPhone returns the most recent checkouts for a customer phone.
func (s *CheckoutService) ListByPhone(ctx context.Context, phoneNumber string, limit int) ([]domain.Checkout, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	checkouts, err := s.repo.ListByPhone(ctx, phoneNumber, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(err)
	}
	return checkouts, nil
}

// Expire cancels a checkout whose auto-cancel timer fired. Racing against a
// concurrent webhook is resolved inside the registry: whoever commits first
// wins, the loser is a no-op.
func (s *CheckoutService) Expire(checkoutID string) {
	changed, snapshot := s.registry.ApplyTerminal(checkoutID, domain.StatusCancelled, domain.TerminalFields{
		ResultDesc: "Payment request timed out",
	})
	if !changed {
		return
	}

	s.log.Info().Str("checkout_id", checkoutID).Msg("checkout auto-cancelled")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.repo.MarkTerminal(ctx, snapshot); err != nil {
		s.log.Error().Err(err).Str("checkout_id", checkoutID).Msg("failed to persist auto-cancel")
	}

	s.notifier.Publish(checkoutID, domain.StatusEvent{
		Status: domain.StatusCancelled,
		Reason: domain.ReasonTimeout,
	})
}
