package domain

import "time"

// Status represents the lifecycle state of a checkout.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusSuccess    Status = "success"
	StatusFailed     Status = "failed"
	StatusCancelled  Status = "cancelled"
	StatusRefunded   Status = "refunded"
)

// IsTerminal returns true if no further transition is permitted from s.
func (s Status) IsTerminal() bool {
	switch s {
	case StatusSuccess, StatusFailed, StatusCancelled, StatusRefunded:
		return true
	}
	return false
}

// Checkout represents one STK push payment attempt, tracked from initiation
// to terminal outcome. The gateway-assigned checkout id is the sole lookup
// key; the gateway transaction id is an opaque secondary attribute.
type Checkout struct {
	CheckoutID           string     `json:"checkout_id"`
	GatewayTransactionID string     `json:"transaction_id,omitempty"`
	Phone                string     `json:"phone"`
	Amount               int64      `json:"amount"`
	PackageID            string     `json:"package_id,omitempty"`
	Status               Status     `json:"status"`
	ResultCode           string     `json:"result_code,omitempty"`
	ResultDesc           string     `json:"result_desc,omitempty"`
	ReceiptNumber        string     `json:"mpesa_receipt,omitempty"`
	RawCallback          []byte     `json:"-"`
	CreatedAt            time.Time  `json:"created_at"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
}

// IsTerminal returns true if the checkout reached a final state.
func (c *Checkout) IsTerminal() bool {
	return c.Status.IsTerminal()
}

// TerminalFields carries the callback-supplied attributes applied together
// with a terminal transition. Zero values leave the record untouched.
type TerminalFields struct {
	GatewayTransactionID string
	ReceiptNumber        string
	ResultCode           string
	ResultDesc           string
	RawCallback          []byte
}

// Event reasons attached to pushed status changes.
const (
	ReasonTimeout = "timeout"
)

// StatusEvent is pushed to stream subscribers when a checkout changes state.
type StatusEvent struct {
	Status  Status `json:"status"`
	Reason  string `json:"reason,omitempty"`
	Receipt string `json:"mpesa_receipt,omitempty"`
}
