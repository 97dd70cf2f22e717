// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/pet-haven/internal/adapter"
	"github.com/MKhiriev/pet-haven/internal/logger"
	"github.com/MKhiriev/pet-haven/internal/store"
	"github.com/MKhiriev/pet-haven/internal/validators"
	"github.com/MKhiriev/pet-haven/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// donationService is the concrete implementation of DonationService.
//
// A donation is only stored after its payment intent has been retrieved from
// the provider and found succeeded, for the same campaign and the same amount.
// Stored donations adjust the campaign's donatedAmount atomically.
type donationService struct {
	donationRepository store.DonationRepository
	campaignRepository store.CampaignRepository
	userRepository     store.UserRepository
	gateway            adapter.PaymentGateway
	validator          validators.Validator

	logger *logger.Logger
}

func NewDonationService(
	donationRepository store.DonationRepository,
	campaignRepository store.CampaignRepository,
	userRepository store.UserRepository,
	gateway adapter.PaymentGateway,
	validator validators.Validator,
	logger *logger.Logger,
) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		campaignRepository: campaignRepository,
		userRepository:     userRepository,
		gateway:            gateway,
		validator:          validator,
		logger:             logger,
	}
}

// CreateDonation records a paid donation by donatorEmail.
//
// Returns:
//   - ErrInvalidDataProvided (wrapped) for a missing campaign, amount or
//     transaction id.
//   - store.ErrNotFound when the campaign does not exist.
//   - ErrDonationAlreadyRecorded when the transaction was already used.
//   - ErrPaymentNotVerified when the payment intent does not match.
//   - adapter.ErrPaymentProvider (wrapped) when the provider call fails.
func (s *donationService) CreateDonation(ctx context.Context, donatorEmail string, donation models.Donation) (models.Donation, error) {
	log := logger.FromContext(ctx)

	donation.TransactionID = strings.TrimSpace(donation.TransactionID)
	if donation.CampaignID.IsZero() {
		return models.Donation{}, fmt.Errorf("%w: campaign id is required", ErrInvalidDataProvided)
	}
	if err := s.validator.Validate(ctx, &donation); err != nil {
		log.Debug().Err(err).Msg("invalid donation provided")
		return models.Donation{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	campaign, err := s.campaignRepository.FindCampaignByID(ctx, donation.CampaignID)
	if err != nil {
		return models.Donation{}, err
	}

	_, err = s.donationRepository.FindDonationByTransactionID(ctx, donation.TransactionID)
	switch {
	case err == nil:
		return models.Donation{}, ErrDonationAlreadyRecorded
	case !errors.Is(err, store.ErrNotFound):
		return models.Donation{}, err
	}

	if err = s.verifyPayment(ctx, donation, campaign.ID); err != nil {
		return models.Donation{}, err
	}

	donation.ID = primitive.NilObjectID
	donation.Donator.Email = normalizeEmail(donatorEmail)
	donation.Donator.Name = strings.TrimSpace(donation.Donator.Name)
	donation.PetName = campaign.PetName
	donation.PetImage = campaign.PetImage

	created, err := s.donationRepository.CreateDonation(ctx, donation)
	if err != nil {
		if errors.Is(err, store.ErrDuplicateKey) {
			return models.Donation{}, ErrDonationAlreadyRecorded
		}
		return models.Donation{}, fmt.Errorf("donation creation ended with error: %w", err)
	}

	if _, err = s.campaignRepository.AddDonatedAmount(ctx, campaign.ID, created.Amount); err != nil {
		log.Err(err).Str("campaign_id", campaign.ID.Hex()).Str("donation_id", created.ID.Hex()).Msg("campaign total was not increased")
		return models.Donation{}, fmt.Errorf("campaign total update failed: %w", err)
	}

	log.Info().
		Str("campaign_id", campaign.ID.Hex()).
		Str("transaction_id", created.TransactionID).
		Float64("amount", created.Amount).
		Msg("donation recorded")
	return created, nil
}

func (s *donationService) verifyPayment(ctx context.Context, donation models.Donation, campaignID primitive.ObjectID) error {
	intent, err := s.gateway.GetPaymentIntent(ctx, donation.TransactionID)
	if err != nil {
		return fmt.Errorf("payment intent lookup failed: %w", err)
	}

	switch {
	case intent.Status != models.PaymentIntentStatusSucceeded:
		return fmt.Errorf("%w: intent status is %q", ErrPaymentNotVerified, intent.Status)
	case intent.Amount != toMinorUnits(donation.Amount):
		return fmt.Errorf("%w: paid %d, declared %d", ErrPaymentNotVerified, intent.Amount, toMinorUnits(donation.Amount))
	case intent.Metadata[metadataCampaignID] != campaignID.Hex():
		return fmt.Errorf("%w: intent belongs to another campaign", ErrPaymentNotVerified)
	}

	return nil
}

func (s *donationService) ListDonationsByDonator(ctx context.Context, email string) ([]models.Donation, error) {
	return s.donationRepository.ListDonationsByDonator(ctx, normalizeEmail(email))
}

func (s *donationService) ListDonationsByCampaign(ctx context.Context, campaignID string) ([]models.Donation, error) {
	objectID, err := store.ParseID(campaignID)
	if err != nil {
		return nil, err
	}

	return s.donationRepository.ListDonationsByCampaign(ctx, objectID)
}

// DeleteDonation removes a donation on behalf of its donator or an admin and
// subtracts its amount from the campaign total. A missing donation yields a
// zero-count result.
func (s *donationService) DeleteDonation(ctx context.Context, actorEmail, id string) (models.DeleteResult, error) {
	log := logger.FromContext(ctx)

	objectID, err := store.ParseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}

	donation, err := s.donationRepository.FindDonationByID(ctx, objectID)
	if errors.Is(err, store.ErrNotFound) {
		return models.DeleteResult{}, nil
	}
	if err != nil {
		return models.DeleteResult{}, err
	}

	if err = authorizeOwner(ctx, s.userRepository, actorEmail, donation.Donator.Email); err != nil {
		return models.DeleteResult{}, err
	}

	result, err := s.donationRepository.DeleteDonation(ctx, objectID)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("donation deletion ended with error: %w", err)
	}

	if result.DeletedCount > 0 {
		if _, err = s.campaignRepository.AddDonatedAmount(ctx, donation.CampaignID, -donation.Amount); err != nil {
			log.Err(err).Str("campaign_id", donation.CampaignID.Hex()).Msg("campaign total was not decreased")
			return models.DeleteResult{}, fmt.Errorf("campaign total update failed: %w", err)
		}
	}

	log.Info().Str("donation_id", id).Str("actor", actorEmail).Msg("donation deleted")
	return result, nil
}
