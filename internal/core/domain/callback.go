package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Callback is the canonical form of a gateway webhook payload. The gateway
// is inconsistent about field casing (CheckoutRequestID vs checkoutRequestID
// and the same for every other field), so all business logic works on this
// normalized record instead of the raw body.
type Callback struct {
	CheckoutRequestID    string
	MerchantRequestID    string
	GatewayTransactionID string
	ResultCode           string
	ResultDesc           string
	ReceiptNumber        string
	Status               string
	Raw                  []byte
}

// ParseCallback normalizes a raw webhook body. Unknown fields are ignored;
// absent fields stay empty. Numeric result codes are accepted alongside
// string ones.
func ParseCallback(raw []byte) (*Callback, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("decoding callback body: %w", err)
	}

	lower := make(map[string]json.RawMessage, len(fields))
	for k, v := range fields {
		lower[strings.ToLower(k)] = v
	}

	cb := &Callback{
		CheckoutRequestID:    scalarField(lower, "checkoutrequestid", "checkout_request_id", "checkoutid"),
		MerchantRequestID:    scalarField(lower, "merchantrequestid", "merchant_request_id"),
		GatewayTransactionID: scalarField(lower, "transactionid", "transaction_id"),
		ResultCode:           scalarField(lower, "resultcode", "result_code"),
		ResultDesc:           scalarField(lower, "resultdesc", "result_desc"),
		ReceiptNumber:        scalarField(lower, "mpesareceiptnumber", "mpesa_receipt_number", "receiptnumber"),
		Status:               scalarField(lower, "status"),
		Raw:                  raw,
	}
	return cb, nil
}

// scalarField returns the first present alias decoded as a string. JSON
// numbers are rendered in their literal form ("0" for 0).
func scalarField(fields map[string]json.RawMessage, aliases ...string) string {
	for _, alias := range aliases {
		rawVal, ok := fields[alias]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(rawVal, &s); err == nil {
			return s
		}
		var n json.Number
		if err := json.Unmarshal(rawVal, &n); err == nil {
			return n.String()
		}
	}
	return ""
}

// TerminalStatus maps the provider result to an internal terminal status.
// Unrecognized codes fail closed: a callback never leaves a record pending.
func (cb *Callback) TerminalStatus() Status {
	switch cb.ResultCode {
	case "0":
		return StatusSuccess
	case "1032", "1037":
		// User cancelled the prompt / prompt timed out on the handset.
		return StatusCancelled
	}
	if cb.ResultCode == "" && cb.Status != "" {
		// Some gateway variants send a textual status instead of a code.
		s := Status(strings.ToLower(cb.Status))
		if s.IsTerminal() {
			return s
		}
	}
	return StatusFailed
}
