// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a caller JWT.
//
// The "sub" claim names the calling source (for example "esadad"); a request
// carrying a token may only act on behalf of that source.
type Token struct {
	// Token is the underlying JWT, excluded from JSON.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS form.
	SignedString string `json:"-"`

	// Source is the cached subject claim.
	Source string `json:"-"`
}

// GetSource returns the subject claim.
func (t *Token) GetSource() (string, error) {
	source, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting source from token: %w", err)
	}
	if source == "" {
		return "", fmt.Errorf("error extracting source from token: empty subject")
	}

	return source, nil
}

// String implements fmt.Stringer.
func (t *Token) String() string {
	return t.SignedString
}
