package dto

import (
	"time"

	"github.com/Dulllu/netsasa/internal/core/domain"
)

// PayRequest is the request body for payment initiation.
type PayRequest struct {
	Phone     string `json:"phone" binding:"required,msisdn"`
	Amount    int64  `json:"amount" binding:"required,gte=10"`
	PackageID string `json:"package_id,omitempty" binding:"omitempty,safe_id"`
}

// PayResponse is the response body for payment initiation. Initiation
// failures also use this shape with success=false, returned with HTTP 200 so
// the portal page can render the error inline.
type PayResponse struct {
	Success           bool   `json:"success"`
	CheckoutRequestID string `json:"checkout_request_id,omitempty"`
	TransactionID     string `json:"transaction_id,omitempty"`
	Message           string `json:"message,omitempty"`
	Error             string `json:"error,omitempty"`
}

// CheckResponse is the response body for a status poll.
type CheckResponse struct {
	CheckoutID    string `json:"checkout_id"`
	Status        string `json:"status"`
	Amount        int64  `json:"amount"`
	Phone         string `json:"phone"`
	PackageID     string `json:"package_id,omitempty"`
	ReceiptNumber string `json:"mpesa_receipt,omitempty"`
	ResultDesc    string `json:"result_desc,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
	CompletedAt   string `json:"completed_at,omitempty"`
}

// NewCheckResponse maps a domain checkout onto the wire shape.
func NewCheckResponse(c *domain.Checkout) CheckResponse {
	resp := CheckResponse{
		CheckoutID:    c.CheckoutID,
		Status:        string(c.Status),
		Amount:        c.Amount,
		Phone:         c.Phone,
		PackageID:     c.PackageID,
		ReceiptNumber: c.ReceiptNumber,
		ResultDesc:    c.ResultDesc,
	}
	if !c.CreatedAt.IsZero() {
		resp.CreatedAt = c.CreatedAt.Format(time.RFC3339)
	}
	if c.CompletedAt != nil {
		resp.CompletedAt = c.CompletedAt.Format(time.RFC3339)
	}
	return resp
}

// WebhookAck is the body returned to the gateway for every accepted webhook.
type WebhookAck struct {
	Received bool `json:"received"`
}

// TransactionItem is one row in a customer's transaction history.
type TransactionItem struct {
	CheckoutID    string `json:"checkout_id"`
	ReceiptNumber string `json:"mpesa_receipt,omitempty"`
	Amount        int64  `json:"amount"`
	Status        string `json:"status"`
	PackageID     string `json:"package,omitempty"`
	CreatedAt     string `json:"created_at,omitempty"`
}

// TransactionListResponse is the response for a customer history lookup.
type TransactionListResponse struct {
	Phone        string            `json:"phone"`
	Count        int               `json:"count"`
	Transactions []TransactionItem `json:"transactions"`
}

// NewTransactionList maps history rows onto the wire shape.
func NewTransactionList(phone string, checkouts []domain.Checkout) TransactionListResponse {
	items := make([]TransactionItem, 0, len(checkouts))
	for i := range checkouts {
		c := &checkouts[i]
		item := TransactionItem{
			CheckoutID:    c.CheckoutID,
			ReceiptNumber: c.ReceiptNumber,
			Amount:        c.Amount,
			Status:        string(c.Status),
			PackageID:     c.PackageID,
		}
		if !c.CreatedAt.IsZero() {
			item.CreatedAt = c.CreatedAt.Format(time.RFC3339)
		}
		items = append(items, item)
	}
	return TransactionListResponse{Phone: phone, Count: len(items), Transactions: items}
}

// PackageListResponse is the catalog returned to the portal page.
type PackageListResponse struct {
	Packages domain.Catalog `json:"packages"`
}

// ---- Vendor dashboard ----

// LoginRequest is the request body for vendor login.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// StatsResponse is the response for vendor dashboard statistics.
type StatsResponse struct {
	Total        int64 `json:"total"`
	Successful   int64 `json:"successful"`
	Failed       int64 `json:"failed"`
	Cancelled    int64 `json:"cancelled"`
	TotalRevenue int64 `json:"total_revenue"`
}

// VendorTransactionListResponse wraps the paginated vendor transaction list.
type VendorTransactionListResponse struct {
	Transactions []CheckResponse `json:"transactions"`
	Total        int64           `json:"total"`
	Page         int             `json:"page"`
	PageSize     int             `json:"page_size"`
}
