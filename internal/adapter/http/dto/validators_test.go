package dto

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bindPayRequest(t *testing.T, body any) error {
	t.Helper()
	gin.SetMode(gin.TestMode)

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/api/pay", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")

	var req PayRequest
	return c.ShouldBindJSON(&req)
}

func TestPayRequest_Validation(t *testing.T) {
	cases := []struct {
		name    string
		body    map[string]any
		wantErr bool
	}{
		{"valid local phone", map[string]any{"phone": "0712345678", "amount": 20}, false},
		{"valid international phone", map[string]any{"phone": "+254712345678", "amount": 20}, false},
		{"valid with package", map[string]any{"phone": "0712345678", "amount": 60, "package_id": "p5"}, false},
		{"missing phone", map[string]any{"amount": 20}, true},
		{"short phone", map[string]any{"phone": "07123", "amount": 20}, true},
		{"alpha phone", map[string]any{"phone": "07abcdefgh", "amount": 20}, true},
		{"amount below minimum", map[string]any{"phone": "0712345678", "amount": 5}, true},
		{"zero amount", map[string]any{"phone": "0712345678", "amount": 0}, true},
		{"package id with injection", map[string]any{"phone": "0712345678", "amount": 20, "package_id": "p1; DROP TABLE"}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := bindPayRequest(t, tc.body)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
