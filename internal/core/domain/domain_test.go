package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_IsTerminal(t *testing.T) {
	terminal := []Status{StatusSuccess, StatusFailed, StatusCancelled, StatusRefunded}
	for _, s := range terminal {
		assert.True(t, s.IsTerminal(), string(s))
	}
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusProcessing.IsTerminal())
	assert.False(t, Status("garbage").IsTerminal())
}

func TestCheckout_IsTerminal(t *testing.T) {
	c := &Checkout{CheckoutID: "ws_1", Status: StatusPending, CreatedAt: time.Now()}
	assert.False(t, c.IsTerminal())
	c.Status = StatusCancelled
	assert.True(t, c.IsTerminal())
}

func TestParseCallback_PascalCase(t *testing.T) {
	raw := []byte(`{
		"CheckoutRequestID": "ws_CO_123",
		"MerchantRequestID": "mr_1",
		"ResultCode": "0",
		"ResultDesc": "The service request is processed successfully.",
		"MpesaReceiptNumber": "QHX12ABC34",
		"TransactionID": "TXN_9"
	}`)
	cb, err := ParseCallback(raw)
	require.NoError(t, err)
	assert.Equal(t, "ws_CO_123", cb.CheckoutRequestID)
	assert.Equal(t, "mr_1", cb.MerchantRequestID)
	assert.Equal(t, "0", cb.ResultCode)
	assert.Equal(t, "QHX12ABC34", cb.ReceiptNumber)
	assert.Equal(t, "TXN_9", cb.GatewayTransactionID)
	assert.Equal(t, raw, cb.Raw)
}

func TestParseCallback_CamelCaseAndNumericCode(t *testing.T) {
	raw := []byte(`{
		"checkoutRequestID": "ws_CO_456",
		"resultCode": 1032,
		"resultDesc": "Request cancelled by user",
		"mpesaReceiptNumber": null,
		"someUnknownField": {"nested": true}
	}`)
	cb, err := ParseCallback(raw)
	require.NoError(t, err)
	assert.Equal(t, "ws_CO_456", cb.CheckoutRequestID)
	assert.Equal(t, "1032", cb.ResultCode)
	assert.Equal(t, "", cb.ReceiptNumber)
}

func TestParseCallback_Malformed(t *testing.T) {
	_, err := ParseCallback([]byte(`not json`))
	assert.Error(t, err)
}

func TestCallback_TerminalStatus(t *testing.T) {
	cases := []struct {
		code, status string
		want         Status
	}{
		{"0", "", StatusSuccess},
		{"1", "", StatusFailed},
		{"1032", "", StatusCancelled},
		{"1037", "", StatusCancelled},
		{"2001", "", StatusFailed},
		{"", "success", StatusSuccess},
		{"", "Cancelled", StatusCancelled},
		{"", "refunded", StatusRefunded},
		{"", "processing", StatusFailed}, // non-terminal text fails closed
		{"", "", StatusFailed},
	}
	for _, tc := range cases {
		cb := &Callback{ResultCode: tc.code, Status: tc.status}
		assert.Equal(t, tc.want, cb.TerminalStatus(), "code=%q status=%q", tc.code, tc.status)
	}
}

func TestCatalog_Find(t *testing.T) {
	cat := DefaultCatalog()
	p, ok := cat.Find("p5")
	require.True(t, ok)
	assert.Equal(t, "Siku 1 Day", p.Name)
	assert.Equal(t, int64(60), p.Price)

	_, ok = cat.Find("p99")
	assert.False(t, ok)
}
