// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/pet-haven/internal/utils"
	"github.com/MKhiriev/pet-haven/models"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedToken signs arbitrary claims with key.
func signedToken(t *testing.T, claims jwt.RegisteredClaims, key string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)
	return s
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	now := time.Now()
	valid := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "jane@example.com",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Minute))
	foreignIssuer := valid
	foreignIssuer.Issuer = "someone-else"

	tests := []struct {
		name       string
		cookie     *http.Cookie
		wantStatus int
		wantEmail  string
	}{
		{
			name:       "no cookie",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty cookie",
			cookie:     &http.Cookie{Name: tokenCookieName, Value: ""},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "garbage token",
			cookie:     &http.Cookie{Name: tokenCookieName, Value: "not-a-jwt"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			cookie:     &http.Cookie{Name: tokenCookieName, Value: signedToken(t, valid, "other-key")},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired token",
			cookie:     &http.Cookie{Name: tokenCookieName, Value: signedToken(t, expired, testSignKey)},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "foreign issuer",
			cookie:     &http.Cookie{Name: tokenCookieName, Value: signedToken(t, foreignIssuer, testSignKey)},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token",
			cookie:     &http.Cookie{Name: tokenCookieName, Value: signedToken(t, valid, testSignKey)},
			wantStatus: http.StatusOK,
			wantEmail:  "jane@example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouterHandler(newTestServices())

			var gotEmail string
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				gotEmail, _ = utils.GetUserEmailFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := withIdentity(httptest.NewRequest(http.MethodGet, "/pets", nil), "")
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantStatus == http.StatusOK, nextCalled)
			assert.Equal(t, tt.wantEmail, gotEmail)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"message":"unauthorized access"}`, rr.Body.String())
			}
		})
	}
}

func TestTokenFromCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := tokenFromCookie(req)
	assert.ErrorIs(t, err, ErrNoTokenCookie)

	req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: ""})
	_, err = tokenFromCookie(req)
	assert.ErrorIs(t, err, ErrEmptyToken)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: tokenCookieName, Value: "abc"})
	token, err := tokenFromCookie(req)
	require.NoError(t, err)
	assert.Equal(t, "abc", token)
}

func TestAdmin_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		isAdminFn  func(ctx context.Context, email string) (bool, error)
		wantStatus int
	}{
		{
			name:       "no identity in context",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "regular user is forbidden",
			email:      "user@example.com",
			isAdminFn:  func(ctx context.Context, email string) (bool, error) { return false, nil },
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin passes",
			email:      "admin@example.com",
			isAdminFn:  func(ctx context.Context, email string) (bool, error) { return email == "admin@example.com", nil },
			wantStatus: http.StatusOK,
		},
		{
			name:       "lookup failure",
			email:      "admin@example.com",
			isAdminFn:  func(ctx context.Context, email string) (bool, error) { return false, errors.New("db down") },
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svcs := newTestServices()
			svcs.UserService = &fakeUserService{isAdminFn: tt.isAdminFn}
			h := newTestRouterHandler(svcs)

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			req := withIdentity(httptest.NewRequest(http.MethodGet, "/users", nil), tt.email)
			rr := httptest.NewRecorder()

			h.admin(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

// A role change takes effect on the next request without a new token.
func TestAdmin_RoleLookedUpOnEveryRequest(t *testing.T) {
	calls := 0
	role := models.RoleUser

	svcs := newTestServices()
	svcs.UserService = &fakeUserService{
		isAdminFn: func(ctx context.Context, email string) (bool, error) {
			calls++
			return role == models.RoleAdmin, nil
		},
		listUsersFn: func(ctx context.Context) ([]models.User, error) {
			return []models.User{}, nil
		},
	}
	router := newTestRouterHandler(svcs).Init()
	cookie := tokenCookieFor(t, "jane@example.com")

	serve := func() int {
		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusForbidden, serve())
	role = models.RoleAdmin
	assert.Equal(t, http.StatusOK, serve())
	assert.Equal(t, 2, calls)
}

func TestSelf_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		identity   string
		pathEmail  string
		wantStatus int
	}{
		{name: "own email", identity: "jane@example.com", pathEmail: "jane@example.com", wantStatus: http.StatusOK},
		{name: "case differs", identity: "jane@example.com", pathEmail: "Jane@Example.com", wantStatus: http.StatusOK},
		{name: "someone else", identity: "jane@example.com", pathEmail: "john@example.com", wantStatus: http.StatusForbidden},
		{name: "no identity", identity: "", pathEmail: "john@example.com", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestRouterHandler(newTestServices())

			router := chi.NewRouter()
			router.With(h.self).Get("/pets/{email}", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := withIdentity(httptest.NewRequest(http.MethodGet, "/pets/"+tt.pathEmail, nil), tt.identity)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}

func TestIdentity(t *testing.T) {
	_, err := identity(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.ErrorIs(t, err, ErrNoIdentity)

	email, err := identity(withIdentity(httptest.NewRequest(http.MethodGet, "/", nil), "jane@example.com"))
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", email)
}
