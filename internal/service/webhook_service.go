package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Dulllu/netsasa/internal/core/domain"
	"github.com/Dulllu/netsasa/internal/core/ports"
	"github.com/Dulllu/netsasa/pkg/apperror"
)

// One loyalty point per ten shillings paid.
const loyaltyPointsDivisor = 10

// WebhookService implements ports.WebhookService. It turns a gateway
// callback into at most one terminal transition and fires the downstream
// effects of a successful payment.
type WebhookService struct {
	registry  ports.CheckoutRegistry
	repo      ports.TransactionRepository
	scheduler ports.AutoCancelScheduler
	notifier  ports.StatusNotifier
	activator ports.SessionActivator
	ledger    ports.LedgerRepository
	sigSvc    ports.SignatureService

	secret          string
	verifySignature bool

	effects sync.WaitGroup
	log     zerolog.Logger
}

var _ ports.WebhookService = (*WebhookService)(nil)

// NewWebhookService creates a new webhook ingest service.
func NewWebhookService(
	registry ports.CheckoutRegistry,
	repo ports.TransactionRepository,
	scheduler ports.AutoCancelScheduler,
	notifier ports.StatusNotifier,
	activator ports.SessionActivator,
	ledger ports.LedgerRepository,
	sigSvc ports.SignatureService,
	secret string,
	verifySignature bool,
	log zerolog.Logger,
) *WebhookService {
	return &WebhookService{
		registry:        registry,
		repo:            repo,
		scheduler:       scheduler,
		notifier:        notifier,
		activator:       activator,
		ledger:          ledger,
		sigSvc:          sigSvc,
		secret:          secret,
		verifySignature: verifySignature,
		log:             log.With().Str("component", "webhook_service").Logger(),
	}
}

// Process ingests one gateway callback. The only surfaced error is an
// invalid signature; everything else is swallowed after logging so the
// provider never retries a payload we cannot use anyway.
func (s *WebhookService) Process(ctx context.Context, body []byte, signature string) error {
	if s.verifySignature {
		if signature == "" || !s.sigSvc.Verify(s.secret, body, signature) {
			s.log.Warn().Msg("webhook signature verification failed")
			return apperror.ErrInvalidSignature()
		}
	}

	cb, err := domain.ParseCallback(body)
	if err != nil {
		s.log.Warn().Err(err).Msg("malformed webhook payload")
		return nil
	}
	if cb.CheckoutRequestID == "" {
		s.log.Warn().Msg("webhook payload missing checkout request id")
		return nil
	}

	status := cb.TerminalStatus()
	changed, snapshot := s.registry.ApplyTerminal(cb.CheckoutRequestID, status, domain.TerminalFields{
		GatewayTransactionID: cb.GatewayTransactionID,
		ReceiptNumber:        cb.ReceiptNumber,
		ResultCode:           cb.ResultCode,
		ResultDesc:           cb.ResultDesc,
		RawCallback:          cb.Raw,
	})
	if !changed {
		// Unknown id, duplicate delivery, or the auto-cancel timer won.
		s.log.Info().
			Str("checkout_id", cb.CheckoutRequestID).
			Str("status", string(status)).
			Msg("webhook ignored, checkout absent or already terminal")
		return nil
	}

	s.scheduler.Stop(cb.CheckoutRequestID)

	if err := s.repo.MarkTerminal(ctx, snapshot); err != nil {
		s.log.Error().Err(err).Str("checkout_id", cb.CheckoutRequestID).Msg("failed to persist webhook outcome")
	}

	s.notifier.Publish(cb.CheckoutRequestID, domain.StatusEvent{
		Status:  status,
		Receipt: snapshot.ReceiptNumber,
	})

	s.log.Info().
		Str("checkout_id", cb.CheckoutRequestID).
		Str("status", string(status)).
		Str("receipt", snapshot.ReceiptNumber).
		Msg("webhook processed")

	if status == domain.StatusSuccess {
		s.effects.Add(1)
		go s.runSuccessEffects(context.WithoutCancel(ctx), snapshot)
	}
	return nil
}

// Flush waits for in-flight downstream effects. Called on shutdown and by
// tests.
func (s *WebhookService) Flush() {
	s.effects.Wait()
}

// runSuccessEffects activates the Wi-Fi session and credits the loyalty
// ledger. Both are best-effort: a failure here never reverses the payment.
func (s *WebhookService) runSuccessEffects(ctx context.Context, checkout *domain.Checkout) {
	defer s.effects.Done()

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if err := s.activator.Activate(ctx, checkout); err != nil {
		s.log.Error().Err(err).
			Str("checkout_id", checkout.CheckoutID).
			Str("phone", checkout.Phone).
			Msg("session activation failed")
	}

	points := checkout.Amount / loyaltyPointsDivisor
	if err := s.ledger.RecordSpend(ctx, checkout.Phone, checkout.Amount, points); err != nil {
		s.log.Error().Err(err).
			Str("checkout_id", checkout.CheckoutID).
			Msg("loyalty ledger update failed")
	}
}
