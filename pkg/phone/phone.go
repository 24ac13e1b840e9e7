// Package phone normalizes Kenyan MSISDNs. Records and API responses carry
// the local form (07XXXXXXXX); the payment gateway receives the
// international form (2547XXXXXXXX).
package phone

import "strings"

const countryCode = "254"

// Normalize converts any accepted input form (+2547..., 2547..., 07...,
// with optional spaces and dashes) into the canonical local form.
// Returns false if the input is not a valid Kenyan subscriber number.
func Normalize(raw string) (string, bool) {
	s := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(raw))
	s = strings.TrimPrefix(s, "+")

	if strings.HasPrefix(s, countryCode) && len(s) == 12 {
		s = "0" + s[len(countryCode):]
	}

	if len(s) != 10 || s[0] != '0' || !digitsOnly(s) {
		return "", false
	}
	return s, true
}

// International converts a canonical local number into the gateway wire
// format. The input must already be normalized.
func International(local string) string {
	return countryCode + local[1:]
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
