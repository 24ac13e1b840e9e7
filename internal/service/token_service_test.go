package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTTokenService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, "netsasa")

	token, expiresAt, err := svc.Generate("vendor")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "vendor", claims.Subject)
}

func TestJWTTokenService_ValidateRejectsWrongSecret(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, "netsasa")
	other := NewJWTTokenService("other-secret", time.Hour, "netsasa")

	token, _, err := svc.Generate("vendor")
	require.NoError(t, err)

	_, err = other.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_ValidateRejectsExpired(t *testing.T) {
	svc := NewJWTTokenService("test-secret", -time.Minute, "netsasa")

	token, _, err := svc.Generate("vendor")
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.Error(t, err)
}

func TestJWTTokenService_ValidateRejectsGarbage(t *testing.T) {
	svc := NewJWTTokenService("test-secret", time.Hour, "netsasa")

	_, err := svc.Validate("not.a.token")
	assert.Error(t, err)
}
