package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Dulllu/netsasa/internal/core/domain"
	"github.com/Dulllu/netsasa/internal/core/ports"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// activationRetryIntervals backs off between attempts against the portal
// controller; it is on the same LAN, so the schedule is short.
var activationRetryIntervals = []time.Duration{5 * time.Second, 15 * time.Second}

// activationPayload is the JSON sent to the captive-portal controller.
type activationPayload struct {
	CheckoutID    string `json:"checkout_id"`
	Phone         string `json:"phone"`
	PackageID     string `json:"package_id,omitempty"`
	Amount        int64  `json:"amount"`
	ReceiptNumber string `json:"mpesa_receipt,omitempty"`
}

// PortalSessionActivator implements ports.SessionActivator by POSTing to the
// captive-portal controller's activation endpoint.
type PortalSessionActivator struct {
	url        string
	httpClient HTTPClient
	log        zerolog.Logger
}

var _ ports.SessionActivator = (*PortalSessionActivator)(nil)

// NewPortalSessionActivator creates a session activator. An empty URL
// disables activation (useful when the controller handles grants itself by
// polling /api/check).
func NewPortalSessionActivator(url string, httpClient HTTPClient, log zerolog.Logger) *PortalSessionActivator {
	return &PortalSessionActivator{
		url:        url,
		httpClient: httpClient,
		log:        log.With().Str("component", "session_activator").Logger(),
	}
}

// Activate grants network access for a paid checkout, retrying transient
// controller failures.
func (a *PortalSessionActivator) Activate(ctx context.Context, checkout *domain.Checkout) error {
	if a.url == "" {
		a.log.Debug().Str("checkout_id", checkout.CheckoutID).Msg("no activation URL configured, skipping")
		return nil
	}

	body, err := json.Marshal(activationPayload{
		CheckoutID:    checkout.CheckoutID,
		Phone:         checkout.Phone,
		PackageID:     checkout.PackageID,
		Amount:        checkout.Amount,
		ReceiptNumber: checkout.ReceiptNumber,
	})
	if err != nil {
		return fmt.Errorf("marshaling activation payload: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= len(activationRetryIntervals); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(activationRetryIntervals[attempt-1]):
			}
		}

		lastErr = a.post(ctx, body)
		if lastErr == nil {
			a.log.Info().
				Str("checkout_id", checkout.CheckoutID).
				Str("phone", checkout.Phone).
				Int("attempt", attempt+1).
				Msg("session activated")
			return nil
		}
		a.log.Warn().Err(lastErr).
			Str("checkout_id", checkout.CheckoutID).
			Int("attempt", attempt+1).
			Msg("session activation attempt failed")
	}
	return lastErr
}

func (a *PortalSessionActivator) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("controller returned status %d", resp.StatusCode)
	}
	return nil
}
