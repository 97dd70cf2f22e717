// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/pet-haven/internal/logger"
	"github.com/MKhiriev/pet-haven/internal/store"
	"github.com/MKhiriev/pet-haven/internal/validators"
	"github.com/MKhiriev/pet-haven/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// petService is the concrete implementation of PetService.
// Ownership checks fall back to a role lookup through userRepository so an
// admin can moderate any listing.
type petService struct {
	petRepository  store.PetRepository
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewPetService(petRepository store.PetRepository, userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) PetService {
	return &petService{
		petRepository:  petRepository,
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// CreatePet stores a new listing owned by ownerEmail. The owner and the
// initial "available" status are always set server-side.
func (s *petService) CreatePet(ctx context.Context, ownerEmail string, pet models.Pet) (models.Pet, error) {
	log := logger.FromContext(ctx)

	pet.ID = primitive.NilObjectID
	pet.OwnerEmail = normalizeEmail(ownerEmail)
	pet.Status = models.PetAvailable
	pet.Name = strings.TrimSpace(pet.Name)
	if err := s.validator.Validate(ctx, &pet); err != nil {
		log.Debug().Err(err).Msg("invalid pet data provided")
		return models.Pet{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.petRepository.CreatePet(ctx, pet)
	if err != nil {
		return models.Pet{}, fmt.Errorf("pet creation ended with error: %w", err)
	}

	return created, nil
}

func (s *petService) GetPet(ctx context.Context, id string) (models.Pet, error) {
	objectID, err := store.ParseID(id)
	if err != nil {
		return models.Pet{}, err
	}

	return s.petRepository.FindPetByID(ctx, objectID)
}

// ListPets returns pets matching every non-empty criterion of filter.
func (s *petService) ListPets(ctx context.Context, filter models.PetFilter) ([]models.Pet, error) {
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Category = strings.TrimSpace(filter.Category)
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidPetStatus)
	}

	return s.petRepository.ListPets(ctx, filter)
}

func (s *petService) ListPetsByOwner(ctx context.Context, ownerEmail string) ([]models.Pet, error) {
	return s.petRepository.ListPetsByOwner(ctx, normalizeEmail(ownerEmail))
}

func (s *petService) UpdatePet(ctx context.Context, actorEmail, id string, update models.PetUpdate) (models.UpdateResult, error) {
	if update.IsEmpty() {
		return models.UpdateResult{}, ErrNothingToUpdate
	}

	pet, err := s.findOwned(ctx, actorEmail, id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	if err = s.validator.Validate(ctx, &update); err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.petRepository.UpdatePet(ctx, pet.ID, update)
}

// DeletePet removes the listing. A missing pet yields a zero-count result.
func (s *petService) DeletePet(ctx context.Context, actorEmail, id string) (models.DeleteResult, error) {
	pet, err := s.findOwned(ctx, actorEmail, id)
	if errors.Is(err, store.ErrNotFound) {
		return models.DeleteResult{}, nil
	}
	if err != nil {
		return models.DeleteResult{}, err
	}

	result, err := s.petRepository.DeletePet(ctx, pet.ID)
	if err != nil {
		return models.DeleteResult{}, fmt.Errorf("pet deletion ended with error: %w", err)
	}

	logger.FromContext(ctx).Info().Str("pet_id", id).Str("actor", actorEmail).Msg("pet deleted")
	return result, nil
}

func (s *petService) findOwned(ctx context.Context, actorEmail, id string) (models.Pet, error) {
	objectID, err := store.ParseID(id)
	if err != nil {
		return models.Pet{}, err
	}

	pet, err := s.petRepository.FindPetByID(ctx, objectID)
	if err != nil {
		return models.Pet{}, err
	}

	if err = authorizeOwner(ctx, s.userRepository, actorEmail, pet.OwnerEmail); err != nil {
		return models.Pet{}, err
	}

	return pet, nil
}
