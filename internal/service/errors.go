// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrForbidden       = errors.New("forbidden")
	ErrNothingToUpdate = errors.New("nothing to update")

	ErrSelfAdoption   = errors.New("owner cannot adopt own pet")
	ErrPetUnavailable = errors.New("pet is not available for adoption")

	ErrCampaignPaused          = errors.New("donation campaign is paused")
	ErrPaymentNotVerified      = errors.New("payment could not be verified")
	ErrDonationAlreadyRecorded = errors.New("donation for this transaction is already recorded")
)
