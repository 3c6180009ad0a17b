// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetSourceFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), SourceCtxKey, "esadad")

	source, ok := GetSourceFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if source != "esadad" {
		t.Errorf("expected source=esadad, got %s", source)
	}
}

func TestGetSourceFromContext_Missing(t *testing.T) {
	if _, ok := GetSourceFromContext(context.Background()); ok {
		t.Error("expected ok=false for missing value")
	}
}

func TestGetSourceFromContext_WrongTypeOrEmpty(t *testing.T) {
	ctx := context.WithValue(context.Background(), SourceCtxKey, 42)
	if _, ok := GetSourceFromContext(ctx); ok {
		t.Error("expected ok=false for wrong type")
	}

	ctx = context.WithValue(context.Background(), SourceCtxKey, "")
	if _, ok := GetSourceFromContext(ctx); ok {
		t.Error("expected ok=false for empty source")
	}
}

func TestQueryNumberRoundTrip(t *testing.T) {
	ctx := WithQueryNumber(context.Background(), "q-1")

	got, ok := GetQueryNumberFromContext(ctx)
	if !ok || got != "q-1" {
		t.Errorf("expected q-1, got %q (ok=%v)", got, ok)
	}

	if _, ok = GetQueryNumberFromContext(context.Background()); ok {
		t.Error("expected ok=false without a query number")
	}
}
