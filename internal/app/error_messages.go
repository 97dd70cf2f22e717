// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// pet-haven HTTP handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// the "message" field of error response bodies or into log entries.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidIdentifier is returned when a path parameter is not a
	// well-formed record identifier.
	MsgInvalidIdentifier = "invalid identifier"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgUnauthorizedAccess is returned when the token cookie is missing,
	// expired, or cannot be verified.
	MsgUnauthorizedAccess = "unauthorized access"

	// MsgForbiddenAccess is returned when an authenticated caller lacks the
	// role or ownership required by the endpoint.
	MsgForbiddenAccess = "forbidden access"

	// MsgUserAlreadyExists is returned when a user with the same email has
	// already been stored.
	MsgUserAlreadyExists = "user already exists"

	// MsgAlreadyExists is returned when a unique field collides with a
	// stored record.
	MsgAlreadyExists = "already exists"

	// MsgDonationAlreadyRecorded is returned when a payment transaction has
	// already been turned into a donation.
	MsgDonationAlreadyRecorded = "donation is already recorded"

	// MsgNotFound is returned when the requested record does not exist.
	MsgNotFound = "not found"

	// MsgNothingToUpdate is returned when a partial update carries no
	// updatable fields.
	MsgNothingToUpdate = "nothing to update"

	// MsgSelfAdoption is returned when a user requests to adopt their own pet.
	MsgSelfAdoption = "cannot adopt your own pet"

	// MsgPetUnavailable is returned when an adoption is requested for a pet
	// that is no longer available.
	MsgPetUnavailable = "pet is not available for adoption"

	// MsgCampaignPaused is returned when a payment is attempted for a paused
	// donation campaign.
	MsgCampaignPaused = "donation campaign is paused"

	// MsgPaymentNotVerified is returned when a donation references a payment
	// that has not succeeded or does not match the donation.
	MsgPaymentNotVerified = "payment is not verified"

	// MsgPaymentProviderError is returned when the payment provider cannot be
	// reached or rejects the request.
	MsgPaymentProviderError = "payment provider error"

	// MsgRouteNotFound is returned for requests to unknown paths.
	MsgRouteNotFound = "route not found"

	// MsgMethodNotAllowed is returned when the path exists but the method is
	// not served.
	MsgMethodNotAllowed = "method not allowed"

	// MsgServerIsRunning is the body of the root liveness endpoint.
	MsgServerIsRunning = "SERVER IS RUNNING..."
)
