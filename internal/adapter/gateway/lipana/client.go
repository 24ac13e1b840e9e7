package lipana

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/Dulllu/netsasa/config"
	"github.com/Dulllu/netsasa/internal/core/ports"
	"github.com/Dulllu/netsasa/pkg/apperror"
)

// Client calls the Lipana STK push API. One POST per initiation; the
// terminal outcome arrives later on the webhook, never in this response.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a Lipana API client.
func NewClient(cfg config.GatewayConfig, log zerolog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With().Str("component", "lipana_client").Logger(),
	}
}

var _ ports.GatewayClient = (*Client)(nil)

type pushRequest struct {
	Amount           int64  `json:"amount"`
	Msisdn           string `json:"msisdn"`
	AccountReference string `json:"account_reference"`
	TransactionDesc  string `json:"transaction_desc"`
}

// pushResponse tolerates both casings Lipana has been observed to emit.
type pushResponse struct {
	Success              bool   `json:"success"`
	Message              string `json:"message"`
	CheckoutRequestIDUp  string `json:"CheckoutRequestID"`
	CheckoutRequestIDLow string `json:"checkoutRequestID"`
	TransactionID        string `json:"transactionId"`
	CustomerMessage      string `json:"customerMessage"`
}

func (r *pushResponse) checkoutID() string {
	if r.CheckoutRequestIDUp != "" {
		return r.CheckoutRequestIDUp
	}
	return r.CheckoutRequestIDLow
}

// Push initiates an STK push prompt on the customer's phone. The phone must
// already be in international 2547XXXXXXXX form.
func (c *Client) Push(ctx context.Context, phone string, amount int64, reference, description string) (*ports.GatewayAck, error) {
	body, err := json.Marshal(pushRequest{
		Amount:           amount,
		Msisdn:           phone,
		AccountReference: reference,
		TransactionDesc:  description,
	})
	if err != nil {
		return nil, apperror.InternalError(err)
	}

	url := c.baseURL + "/v1/stkpush"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, apperror.InternalError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("url", url).Msg("STK push request failed")
		return nil, apperror.ErrGatewayUnavailable(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, apperror.ErrGatewayUnavailable(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error().Int("status", resp.StatusCode).Bytes("body", respBody).Msg("STK push rejected")
		return nil, apperror.ErrGatewayRejected(fmt.Sprintf("gateway returned status %d", resp.StatusCode))
	}

	var parsed pushResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, apperror.ErrGatewayRejected("unparseable gateway response")
	}
	if !parsed.Success {
		msg := parsed.Message
		if msg == "" {
			msg = "STK push failed"
		}
		return nil, apperror.ErrGatewayRejected(msg)
	}

	checkoutID := parsed.checkoutID()
	if checkoutID == "" {
		return nil, apperror.ErrGatewayRejected("gateway response missing checkout request id")
	}

	c.log.Info().
		Str("checkout_id", checkoutID).
		Int64("amount", amount).
		Msg("STK push accepted")

	return &ports.GatewayAck{
		CheckoutRequestID:    checkoutID,
		GatewayTransactionID: parsed.TransactionID,
		CustomerMessage:      parsed.CustomerMessage,
	}, nil
}
