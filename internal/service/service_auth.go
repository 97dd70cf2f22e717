// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/pet-haven/internal/config"
	"github.com/MKhiriev/pet-haven/internal/logger"
	"github.com/MKhiriev/pet-haven/internal/utils"
	"github.com/MKhiriev/pet-haven/internal/validators"
	"github.com/MKhiriev/pet-haven/models"
)

// authService is the concrete implementation of AuthService.
// It issues and verifies HS256 JWT tokens whose subject is the identity email.
// The identity itself is asserted by the client's external identity provider;
// no account has to exist for a token to be issued.
type authService struct {
	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with token parameters
// from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		validator:     validator,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// IssueToken issues a signed JWT for identity.
//
// The email is trimmed and lower-cased before signing so that every later
// lookup by email uses one canonical form.
//
// Returns:
//   - ErrInvalidDataProvided (wrapped) if the identity has no valid email.
//   - ErrTokenCreationFailed (wrapped) if signing fails.
func (a *authService) IssueToken(ctx context.Context, identity models.Identity) (models.Token, error) {
	log := logger.FromContext(ctx)

	identity.Email = normalizeEmail(identity.Email)
	identity.Name = strings.TrimSpace(identity.Name)
	if err := a.validator.Validate(ctx, &identity); err != nil {
		log.Debug().Err(err).Str("email", identity.Email).Msg("invalid identity provided")
		return models.Token{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, identity, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("email", identity.Email).Msg("token generation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
