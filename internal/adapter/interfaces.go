// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides abstractions over outbound integrations of the
// pet-haven API.
//
// The primary abstraction is [PaymentGateway], which decouples the service
// layer from the payment provider. The package ships a Stripe REST
// implementation ([NewStripeGateway]).
//
// Provider failures are mapped by mapProviderError to [ErrPaymentProvider] so
// that callers can use [errors.Is] without inspecting provider payloads.
package adapter

import (
	"context"

	"github.com/MKhiriev/pet-haven/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/payment_gateway_mock.go -package=mock

// PaymentGateway defines communication with the payment provider.
// Amounts are always expressed in minor currency units.
type PaymentGateway interface {
	// CreatePaymentIntent registers a new payment intent for amountMinor in
	// currency. The metadata is stored on the provider side and returned
	// unchanged by GetPaymentIntent. The returned intent carries the client
	// secret the browser needs to confirm the payment.
	CreatePaymentIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (models.PaymentIntent, error)

	// GetPaymentIntent fetches the current state of the payment intent
	// identified by id.
	GetPaymentIntent(ctx context.Context, id string) (models.PaymentIntent, error)
}
