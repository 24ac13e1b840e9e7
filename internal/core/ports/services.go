package ports

import (
	"context"
	"time"

	"github.com/Dulllu/netsasa/internal/core/domain"
)

// GatewayAck is the gateway's acknowledgment of an accepted STK push.
type GatewayAck struct {
	CheckoutRequestID    string
	GatewayTransactionID string
	CustomerMessage      string
}

// GatewayClient initiates STK push prompts against the payment provider.
// It never touches the checkout registry; that is the caller's job. Repeated
// pushes are not assumed idempotent by the provider, so no retries happen
// here.
type GatewayClient interface {
	Push(ctx context.Context, phone string, amount int64, reference, description string) (*GatewayAck, error)
}

// StatusNotifier fans out checkout state changes to live stream subscribers.
// Zero, one, or many subscribers may be attached to a checkout at a time;
// with none attached the event is dropped, since a (re)connecting stream
// always reads the authoritative status from the registry first.
type StatusNotifier interface {
	// Subscribe attaches a subscriber and returns its event channel plus a
	// release func. The release func must be called exactly once.
	Subscribe(checkoutID string) (<-chan domain.StatusEvent, func())
	Publish(checkoutID string, event domain.StatusEvent)
}

// AutoCancelScheduler arms a per-checkout deferred cancellation. Stop is an
// optimization only: a timer that fires against an already-terminal checkout
// is a guaranteed no-op through the registry guard.
type AutoCancelScheduler interface {
	Schedule(checkoutID string)
	Stop(checkoutID string)
}

// SessionActivator grants network access on the captive-portal controller
// after a successful payment. Failures are an operational concern, never a
// payment failure.
type SessionActivator interface {
	Activate(ctx context.Context, checkout *domain.Checkout) error
}

// SignatureService handles HMAC-SHA256 signing of raw webhook bodies.
type SignatureService interface {
	Sign(secret string, body []byte) string
	// Verify uses constant-time comparison.
	Verify(secret string, body []byte, signature string) bool
}

// HashService handles password hashing (Argon2id) for the vendor login.
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations for the vendor dashboard.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
}

// --- Service Ports (Business Logic) ---

// InitiateRequest holds validated input for payment initiation. Phone is
// already normalized to the canonical local form.
type InitiateRequest struct {
	Phone     string
	Amount    int64
	PackageID string
}

// InitiateResult is returned to the portal client after a push is accepted.
type InitiateResult struct {
	CheckoutRequestID    string
	GatewayTransactionID string
	Message              string
}

// CheckoutService drives the checkout lifecycle.
type CheckoutService interface {
	Initiate(ctx context.Context, req InitiateRequest) (*InitiateResult, error)
	Check(ctx context.Context, checkoutID string) (*domain.Checkout, error)
	ListByPhone(ctx context.Context, phone string, limit int) ([]domain.Checkout, error)
}

// WebhookService ingests asynchronous gateway callbacks. The only error it
// surfaces is an invalid signature; every other failure is logged and
// swallowed so the provider's retry logic is never triggered.
type WebhookService interface {
	Process(ctx context.Context, body []byte, signature string) error
}

// HealthChecker verifies connectivity of an external dependency.
type HealthChecker interface {
	Ping(ctx context.Context) error
	Name() string
}
