// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PaymentIntentStatusSucceeded is the provider status of a captured payment.
const PaymentIntentStatusSucceeded = "succeeded"

// PaymentIntent is the provider-side object representing an in-progress
// charge. Amount is expressed in minor currency units.
type PaymentIntent struct {
	ID           string            `json:"id"`
	ClientSecret string            `json:"client_secret"`
	Amount       int64             `json:"amount"`
	Currency     string            `json:"currency"`
	Status       string            `json:"status"`
	Metadata     map[string]string `json:"metadata"`
}

// PaymentIntentRequest is the body of POST /create-payment-intent.
type PaymentIntentRequest struct {
	// CampaignID references the campaign being donated to. The web client
	// sends it as "petId".
	CampaignID string `json:"petId" validate:"required"`

	// Amount is expressed in major currency units (e.g. 5.00).
	Amount float64 `json:"amount" validate:"gt=0"`
}

// PaymentIntentResponse carries only what the client needs to confirm the
// payment on its side.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
