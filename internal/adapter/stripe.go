// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/pet-haven/internal/config"
	"github.com/MKhiriev/pet-haven/internal/logger"
	"github.com/MKhiriev/pet-haven/internal/utils"
	"github.com/MKhiriev/pet-haven/models"
)

const paymentIntentsPath = "/v1/payment_intents"

type stripeGateway struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewStripeGateway constructs a Stripe REST implementation of
// [PaymentGateway]. The base URL from cfg.BaseURL is normalised and the
// underlying HTTP client is configured with the request timeout and the
// secret key as bearer token.
//
// Returns an error if cfg.BaseURL cannot be parsed as a valid URL.
func NewStripeGateway(cfg config.Payment, logger *logger.Logger) (PaymentGateway, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProviderAddr, err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetAuthToken(cfg.SecretKey)

	return &stripeGateway{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreatePaymentIntent implements [PaymentGateway]. It POSTs a form-encoded
// request to /v1/payment_intents with automatic payment methods enabled.
func (s *stripeGateway) CreatePaymentIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (models.PaymentIntent, error) {
	form := map[string]string{
		"amount":                             strconv.FormatInt(amountMinor, 10),
		"currency":                           strings.ToLower(currency),
		"automatic_payment_methods[enabled]": "true",
	}
	for k, v := range metadata {
		form["metadata["+k+"]"] = v
	}

	var intent models.PaymentIntent
	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(form).
		SetResult(&intent).
		Post(paymentIntentsPath)
	if err != nil {
		return models.PaymentIntent{}, fmt.Errorf("%w: create payment intent request: %w", ErrPaymentProvider, err)
	}
	if err = mapProviderError(resp); err != nil {
		s.logger.Err(err).Int64("amount", amountMinor).Msg("provider rejected payment intent")
		return models.PaymentIntent{}, err
	}

	return intent, nil
}

// GetPaymentIntent implements [PaymentGateway]. It GETs
// /v1/payment_intents/{id}.
func (s *stripeGateway) GetPaymentIntent(ctx context.Context, id string) (models.PaymentIntent, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return models.PaymentIntent{}, ErrEmptyPaymentIntent
	}

	var intent models.PaymentIntent
	resp, err := s.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		SetResult(&intent).
		Get(paymentIntentsPath + "/{id}")
	if err != nil {
		return models.PaymentIntent{}, fmt.Errorf("%w: get payment intent request: %w", ErrPaymentProvider, err)
	}
	if err = mapProviderError(resp); err != nil {
		return models.PaymentIntent{}, err
	}

	return intent, nil
}
