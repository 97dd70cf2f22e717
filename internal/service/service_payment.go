// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/pet-haven/internal/adapter"
	"github.com/MKhiriev/pet-haven/internal/config"
	"github.com/MKhiriev/pet-haven/internal/logger"
	"github.com/MKhiriev/pet-haven/internal/store"
	"github.com/MKhiriev/pet-haven/internal/validators"
	"github.com/MKhiriev/pet-haven/models"
)

// metadataCampaignID is the payment intent metadata key that binds an intent
// to a campaign.
const metadataCampaignID = "campaignId"

type paymentService struct {
	campaignRepository store.CampaignRepository
	gateway            adapter.PaymentGateway
	validator          validators.Validator

	currency string

	logger *logger.Logger
}

func NewPaymentService(campaignRepository store.CampaignRepository, gateway adapter.PaymentGateway, validator validators.Validator, cfg config.Payment, logger *logger.Logger) PaymentService {
	return &paymentService{
		campaignRepository: campaignRepository,
		gateway:            gateway,
		validator:          validator,
		currency:           cfg.Currency,
		logger:             logger,
	}
}

// CreateIntent opens a payment intent for a donation to the campaign in
// request. The provider is not called unless the campaign exists and is
// active.
//
// Returns:
//   - store.ErrInvalidIdentifier for a malformed campaign id.
//   - ErrInvalidDataProvided (wrapped) for a non-positive amount.
//   - store.ErrNotFound when the campaign does not exist.
//   - ErrCampaignPaused when the campaign is paused.
//   - adapter.ErrPaymentProvider (wrapped) when the provider call fails.
func (s *paymentService) CreateIntent(ctx context.Context, request models.PaymentIntentRequest) (models.PaymentIntentResponse, error) {
	log := logger.FromContext(ctx)

	campaignID, err := store.ParseID(request.CampaignID)
	if err != nil {
		return models.PaymentIntentResponse{}, err
	}
	if err = s.validator.Validate(ctx, &request); err != nil {
		return models.PaymentIntentResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	amountMinor := toMinorUnits(request.Amount)
	if amountMinor <= 0 {
		return models.PaymentIntentResponse{}, fmt.Errorf("%w: amount is below the minor unit", ErrInvalidDataProvided)
	}

	campaign, err := s.campaignRepository.FindCampaignByID(ctx, campaignID)
	if err != nil {
		return models.PaymentIntentResponse{}, err
	}
	if campaign.Paused {
		return models.PaymentIntentResponse{}, ErrCampaignPaused
	}

	intent, err := s.gateway.CreatePaymentIntent(ctx, amountMinor, s.currency, map[string]string{
		metadataCampaignID: campaign.ID.Hex(),
	})
	if err != nil {
		log.Err(err).Str("campaign_id", campaign.ID.Hex()).Int64("amount", amountMinor).Msg("payment intent creation failed")
		return models.PaymentIntentResponse{}, fmt.Errorf("payment intent creation failed: %w", err)
	}

	log.Info().Str("campaign_id", campaign.ID.Hex()).Str("intent_id", intent.ID).Int64("amount", amountMinor).Msg("payment intent created")
	return models.PaymentIntentResponse{ClientSecret: intent.ClientSecret}, nil
}

// toMinorUnits converts a major-unit amount (5.00) to minor units (500).
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
