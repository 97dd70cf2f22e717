// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/pet-haven/internal/logger"
	"github.com/MKhiriev/pet-haven/internal/store"
	"github.com/MKhiriev/pet-haven/internal/validators"
	"github.com/MKhiriev/pet-haven/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type campaignService struct {
	campaignRepository store.CampaignRepository
	userRepository     store.UserRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewCampaignService(campaignRepository store.CampaignRepository, userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) CampaignService {
	return &campaignService{
		campaignRepository: campaignRepository,
		userRepository:     userRepository,
		validator:          validator,
		logger:             logger,
	}
}

// CreateCampaign opens a campaign owned by ownerEmail. The raised amount
// starts at zero and the campaign starts active.
func (s *campaignService) CreateCampaign(ctx context.Context, ownerEmail string, campaign models.Campaign) (models.Campaign, error) {
	campaign.ID = primitive.NilObjectID
	campaign.OwnerEmail = normalizeEmail(ownerEmail)
	campaign.DonatedAmount = 0
	campaign.Paused = false
	campaign.PetName = strings.TrimSpace(campaign.PetName)
	if err := s.validator.Validate(ctx, &campaign); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("invalid campaign data provided")
		return models.Campaign{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.campaignRepository.CreateCampaign(ctx, campaign)
	if err != nil {
		return models.Campaign{}, fmt.Errorf("campaign creation ended with error: %w", err)
	}

	return created, nil
}

func (s *campaignService) GetCampaign(ctx context.Context, id string) (models.Campaign, error) {
	objectID, err := store.ParseID(id)
	if err != nil {
		return models.Campaign{}, err
	}

	return s.campaignRepository.FindCampaignByID(ctx, objectID)
}

// ListCampaigns matches search case-insensitively against the pet name.
func (s *campaignService) ListCampaigns(ctx context.Context, search string) ([]models.Campaign, error) {
	return s.campaignRepository.ListCampaigns(ctx, strings.TrimSpace(search))
}

func (s *campaignService) ListCampaignsByOwner(ctx context.Context, ownerEmail string) ([]models.Campaign, error) {
	return s.campaignRepository.ListCampaignsByOwner(ctx, normalizeEmail(ownerEmail))
}

func (s *campaignService) UpdateCampaign(ctx context.Context, actorEmail, id string, update models.CampaignUpdate) (models.UpdateResult, error) {
	if update.IsEmpty() {
		return models.UpdateResult{}, ErrNothingToUpdate
	}

	objectID, err := store.ParseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	campaign, err := s.campaignRepository.FindCampaignByID(ctx, objectID)
	if err != nil {
		return models.UpdateResult{}, err
	}
	if err = authorizeOwner(ctx, s.userRepository, actorEmail, campaign.OwnerEmail); err != nil {
		return models.UpdateResult{}, err
	}

	if err = s.validator.Validate(ctx, &update); err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	result, err := s.campaignRepository.UpdateCampaign(ctx, objectID, update)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("campaign update ended with error: %w", err)
	}

	if update.Paused != nil {
		logger.FromContext(ctx).Info().Str("campaign_id", id).Bool("paused", *update.Paused).Msg("campaign pause state changed")
	}
	return result, nil
}

// DeleteCampaign removes a campaign. Callers are expected to be admins.
func (s *campaignService) DeleteCampaign(ctx context.Context, id string) (models.DeleteResult, error) {
	objectID, err := store.ParseID(id)
	if err != nil {
		return models.DeleteResult{}, err
	}

	return s.campaignRepository.DeleteCampaign(ctx, objectID)
}
