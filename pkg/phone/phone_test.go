package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in    string
		want  string
		valid bool
	}{
		{"0712345678", "0712345678", true},
		{"0112345678", "0112345678", true},
		{"+254712345678", "0712345678", true},
		{"254712345678", "0712345678", true},
		{" 0712 345-678 ", "0712345678", true},
		{"712345678", "", false},   // missing prefix
		{"07123456789", "", false}, // too long
		{"071234567", "", false},   // too short
		{"07123A5678", "", false},  // non-digit
		{"25471234567", "", false}, // truncated international
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := Normalize(tc.in)
		assert.Equal(t, tc.valid, ok, "input %q", tc.in)
		assert.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestInternational(t *testing.T) {
	assert.Equal(t, "254712345678", International("0712345678"))
	assert.Equal(t, "254112345678", International("0112345678"))
}
