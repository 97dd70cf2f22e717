// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pet-haven/internal/logger"
	"github.com/MKhiriev/pet-haven/internal/store"
	"github.com/MKhiriev/pet-haven/internal/validators"
	"github.com/MKhiriev/pet-haven/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// adoptionService is the concrete implementation of AdoptionService.
// Pet details and the owner email are copied from the pet document at
// creation time; the client only supplies contact details.
type adoptionService struct {
	adoptionRepository store.AdoptionRepository
	petRepository      store.PetRepository
	validator          validators.Validator

	logger *logger.Logger
}

func NewAdoptionService(adoptionRepository store.AdoptionRepository, petRepository store.PetRepository, validator validators.Validator, logger *logger.Logger) AdoptionService {
	return &adoptionService{
		adoptionRepository: adoptionRepository,
		petRepository:      petRepository,
		validator:          validator,
		logger:             logger,
	}
}

// CreateRequest files a pending adoption request by requesterEmail.
//
// Returns:
//   - ErrInvalidDataProvided (wrapped) for a missing pet id or contact details.
//   - store.ErrNotFound when the pet does not exist.
//   - ErrPetUnavailable when the pet is not "available".
//   - ErrSelfAdoption when the requester owns the pet.
func (s *adoptionService) CreateRequest(ctx context.Context, requesterEmail string, request models.AdoptionRequest) (models.AdoptionRequest, error) {
	log := logger.FromContext(ctx)

	if request.PetID.IsZero() {
		return models.AdoptionRequest{}, fmt.Errorf("%w: pet id is required", ErrInvalidDataProvided)
	}
	if err := s.validator.Validate(ctx, &request); err != nil {
		log.Debug().Err(err).Msg("invalid adoption request provided")
		return models.AdoptionRequest{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	pet, err := s.petRepository.FindPetByID(ctx, request.PetID)
	if err != nil {
		return models.AdoptionRequest{}, err
	}

	requesterEmail = normalizeEmail(requesterEmail)
	if pet.OwnerEmail == requesterEmail {
		return models.AdoptionRequest{}, ErrSelfAdoption
	}
	if pet.Status != models.PetAvailable {
		return models.AdoptionRequest{}, ErrPetUnavailable
	}

	request.ID = primitive.NilObjectID
	request.RequesterEmail = requesterEmail
	request.PetName = pet.Name
	request.PetImage = pet.Image
	request.PetOwner = pet.OwnerEmail
	request.Status = models.AdoptionPending

	created, err := s.adoptionRepository.CreateAdoptionRequest(ctx, request)
	if err != nil {
		return models.AdoptionRequest{}, fmt.Errorf("adoption request creation ended with error: %w", err)
	}

	log.Info().Str("pet_id", pet.ID.Hex()).Str("requester", requesterEmail).Msg("adoption requested")
	return created, nil
}

// ListRequestsForOwner returns requests for pets owned by ownerEmail, newest
// first.
func (s *adoptionService) ListRequestsForOwner(ctx context.Context, ownerEmail string) ([]models.AdoptionRequest, error) {
	return s.adoptionRepository.ListAdoptionRequestsByPetOwner(ctx, normalizeEmail(ownerEmail))
}

// UpdateStatus lets the pet owner decide on a request. Accepting a request
// marks the pet as adopted; withdrawing an accepted request makes the pet
// available again.
//
// Returns ErrPetUnavailable when accepting a request for a pet that is no
// longer "available".
func (s *adoptionService) UpdateStatus(ctx context.Context, actorEmail, id string, update models.AdoptionRequestUpdate) (models.UpdateResult, error) {
	log := logger.FromContext(ctx)

	objectID, err := store.ParseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}
	if err = s.validator.Validate(ctx, &update); err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	request, err := s.adoptionRepository.FindAdoptionRequestByID(ctx, objectID)
	if err != nil {
		return models.UpdateResult{}, err
	}
	if request.PetOwner != normalizeEmail(actorEmail) {
		return models.UpdateResult{}, ErrForbidden
	}

	wasAccepted := request.Status == models.AdoptionAccepted
	accepting := update.Status == models.AdoptionAccepted && !wasAccepted
	withdrawing := wasAccepted && update.Status != models.AdoptionAccepted

	if accepting {
		pet, err := s.petRepository.FindPetByID(ctx, request.PetID)
		if err != nil {
			return models.UpdateResult{}, err
		}
		if pet.Status != models.PetAvailable {
			return models.UpdateResult{}, ErrPetUnavailable
		}
	}

	result, err := s.adoptionRepository.UpdateAdoptionRequest(ctx, objectID, update)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("adoption request update ended with error: %w", err)
	}

	switch {
	case accepting:
		if err = s.setPetStatus(ctx, request.PetID, models.PetAdopted); err != nil {
			return models.UpdateResult{}, err
		}
	case withdrawing:
		if err = s.setPetStatus(ctx, request.PetID, models.PetAvailable); err != nil {
			return models.UpdateResult{}, err
		}
	}

	log.Info().Str("request_id", id).Str("status", string(update.Status)).Msg("adoption request updated")
	return result, nil
}

func (s *adoptionService) setPetStatus(ctx context.Context, petID primitive.ObjectID, status models.PetStatus) error {
	if _, err := s.petRepository.UpdatePet(ctx, petID, models.PetUpdate{Status: &status}); err != nil {
		logger.FromContext(ctx).Err(err).Str("pet_id", petID.Hex()).Str("status", string(status)).Msg("updating pet status failed")
		return fmt.Errorf("marking pet as %s failed: %w", status, err)
	}
	return nil
}
