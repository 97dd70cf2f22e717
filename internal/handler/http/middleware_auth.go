// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/pet-haven/internal/app"
	"github.com/MKhiriev/pet-haven/internal/logger"
	"github.com/MKhiriev/pet-haven/internal/utils"
	"github.com/go-chi/chi/v5"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It reads the "token" cookie, validates it via
// [service.AuthService.ParseToken] and, on success, stores the identity email
// in the request context under [utils.UserEmailCtxKey] before delegating to
// the next handler.
//
// The middleware rejects requests with HTTP 401 and
// {"message":"unauthorized access"} when the cookie is missing or empty, or
// when the token is expired, wrongly signed, or otherwise invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := tokenFromCookie(r)
		if err != nil {
			log.Debug().Err(err).Msg("request without token")
			utils.WriteError(w, app.MsgUnauthorizedAccess, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Debug().Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, app.MsgUnauthorizedAccess, http.StatusUnauthorized)
			return
		}

		ctx = log.WithUserEmail(token.Email()).WithContext(ctx)
		ctx = utils.WithUserEmail(ctx, token.Email())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(tokenCookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNoTokenCookie
		}
		return "", err
	}

	if cookie.Value == "" {
		return "", ErrEmptyToken
	}

	return cookie.Value, nil
}

// admin must be composed after auth. It looks the caller up by email on
// every request and responds 403 unless the stored role is admin. Lookup
// failures yield 500.
func (h *Handler) admin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		email, ok := utils.GetUserEmailFromContext(r.Context())
		if !ok {
			log.Error().Msg("admin middleware used without auth")
			utils.WriteError(w, app.MsgUnauthorizedAccess, http.StatusUnauthorized)
			return
		}

		isAdmin, err := h.services.UserService.IsAdmin(r.Context(), email)
		if err != nil {
			log.Err(err).Str("email", email).Msg("role lookup failed")
			utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
			return
		}
		if !isAdmin {
			log.Info().Str("email", email).Str("uri", r.RequestURI).Msg("non-admin access to admin route")
			utils.WriteError(w, app.MsgForbiddenAccess, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// self must be composed after auth on routes carrying an {email} parameter.
// It responds 403 unless the path email is the caller's own.
func (h *Handler) self(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		email, _ := utils.GetUserEmailFromContext(r.Context())
		pathEmail := chi.URLParam(r, "email")

		if email == "" || !strings.EqualFold(email, strings.TrimSpace(pathEmail)) {
			logger.FromRequest(r).Info().
				Str("email", email).
				Str("path_email", pathEmail).
				Msg("access to another user's listing")
			utils.WriteError(w, app.MsgForbiddenAccess, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// identity returns the authenticated caller's email.
func identity(r *http.Request) (string, error) {
	email, ok := utils.GetUserEmailFromContext(r.Context())
	if !ok {
		return "", ErrNoIdentity
	}
	return email, nil
}
