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

func TestUserEmailCtxKey(t *testing.T) {
	if UserEmailCtxKey.String() != "userEmail" {
		t.Errorf("expected 'userEmail', got '%s'", UserEmailCtxKey.String())
	}
}

func TestGetUserEmailFromContext_Success(t *testing.T) {
	ctx := WithUserEmail(context.Background(), "jane@example.com")

	email, ok := GetUserEmailFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if email != "jane@example.com" {
		t.Errorf("expected jane@example.com, got %s", email)
	}
}

func TestGetUserEmailFromContext_Missing(t *testing.T) {
	email, ok := GetUserEmailFromContext(context.Background())

	if ok {
		t.Error("expected ok=false, got true")
	}
	if email != "" {
		t.Errorf("expected empty email, got %s", email)
	}
}

func TestGetUserEmailFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserEmailCtxKey, 42)

	if _, ok := GetUserEmailFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestGetUserEmailFromContext_Empty(t *testing.T) {
	ctx := WithUserEmail(context.Background(), "")

	if _, ok := GetUserEmailFromContext(ctx); ok {
		t.Error("expected ok=false for empty email")
	}
}
