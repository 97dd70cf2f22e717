// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/pet-haven/internal/app"
	"github.com/MKhiriev/pet-haven/internal/config"
	"github.com/MKhiriev/pet-haven/internal/logger"
	"github.com/MKhiriev/pet-haven/internal/service"
	"github.com/MKhiriev/pet-haven/internal/utils"
)

const tokenCookieName = "token"

// cookieSettings holds the attributes of the token cookie. Production
// deployments serve the web client from another site, so the cookie must be
// cross-site and therefore Secure.
type cookieSettings struct {
	maxAge   time.Duration
	secure   bool
	sameSite http.SameSite
}

func newCookieSettings(cfg config.App) cookieSettings {
	if cfg.IsProduction() {
		return cookieSettings{maxAge: cfg.TokenDuration, secure: true, sameSite: http.SameSiteNoneMode}
	}
	return cookieSettings{maxAge: cfg.TokenDuration, secure: false, sameSite: http.SameSiteStrictMode}
}

// tokenCookie builds the token cookie; an empty value yields the clearing
// variant with identical attributes.
func (c cookieSettings) tokenCookie(value string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     tokenCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: c.sameSite,
	}
	if value == "" {
		cookie.MaxAge = -1
	} else {
		cookie.MaxAge = int(c.maxAge.Seconds())
	}

	return cookie
}

type Handler struct {
	services *service.Services

	cookie         cookieSettings
	allowedOrigins []string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		cookie:         newCookieSettings(cfg.App),
		allowedOrigins: cfg.Server.AllowedOrigins,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}

// decodeBody decodes the request body into dst and answers 400 on failure.
// It reports whether the handler may proceed.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.DecodeJSON(r.Body, dst); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return false
	}
	return true
}
