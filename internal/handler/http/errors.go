// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// token cookie. Callers can match against them with [errors.Is].
var (
	// ErrNoTokenCookie is returned when the request carries no "token" cookie.
	ErrNoTokenCookie = errors.New("no token cookie")

	// ErrEmptyToken is returned when the cookie is present but empty.
	ErrEmptyToken = errors.New("empty token cookie")

	// ErrNoIdentity is returned by handlers that require an authenticated
	// caller when the request context holds no identity email.
	ErrNoIdentity = errors.New("no identity in request context")
)
