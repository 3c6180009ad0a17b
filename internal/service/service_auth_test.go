// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-invoice-gateway/internal/config"
	"github.com/MKhiriev/go-invoice-gateway/internal/logger"
)

func newTestAuthService(key string) AuthService {
	return NewAuthService(config.App{TokenSignKey: key, TokenIssuer: "invoice-gateway"}, logger.Nop())
}

func TestAuthService_Enabled(t *testing.T) {
	assert.True(t, newTestAuthService("secret").Enabled())
	assert.False(t, newTestAuthService("").Enabled())
}

func TestAuthService_CreateAndParse(t *testing.T) {
	svc := newTestAuthService("secret")
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, "esadad", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)

	source, err := parsed.GetSource()
	require.NoError(t, err)
	assert.Equal(t, "esadad", source)
	assert.Equal(t, "invoice-gateway", parsed.Issuer)
}

func TestAuthService_CreateTokenDisabled(t *testing.T) {
	_, err := newTestAuthService("").CreateToken(context.Background(), "esadad", time.Hour)

	assert.ErrorIs(t, err, ErrTokenAuthDisabled)
}

func TestAuthService_ParseToken_Rejects(t *testing.T) {
	ctx := context.Background()
	other, err := newTestAuthService("other-secret").CreateToken(ctx, "esadad", time.Hour)
	require.NoError(t, err)
	expired, err := newTestAuthService("secret").CreateToken(ctx, "esadad", -time.Minute)
	require.NoError(t, err)

	tests := map[string]string{
		"garbage":   "not-a-jwt",
		"wrong key": other.SignedString,
		"expired":   expired.SignedString,
		"empty":     "",
	}

	svc := newTestAuthService("secret")
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, raw)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
