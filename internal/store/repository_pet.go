// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/pet-haven/internal/logger"
	"github.com/MKhiriev/pet-haven/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	fieldName       = "name"
	fieldCategory   = "category"
	fieldStatus     = "status"
	fieldOwnerEmail = "ownerEmail"
)

type petRepository struct {
	logger *logger.Logger
	pets   *Collection[models.Pet]
}

func NewPetRepository(db *DB, logger *logger.Logger) PetRepository {
	return newPetRepository(db.Collection(PetsCollection), logger)
}

func newPetRepository(coll *mongo.Collection, logger *logger.Logger) *petRepository {
	logger.Debug().Msg("creating pet repository")
	return &petRepository{
		pets:   NewCollection[models.Pet](coll),
		logger: logger,
	}
}

func (r *petRepository) CreatePet(ctx context.Context, pet models.Pet) (models.Pet, error) {
	if pet.Status == "" {
		pet.Status = models.PetAvailable
	}
	if pet.CreatedAt.IsZero() {
		pet.CreatedAt = time.Now().UTC()
	}

	id, err := r.pets.Create(ctx, &pet)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*petRepository.CreatePet").Msg("error inserting pet")
		return models.Pet{}, err
	}
	pet.ID = id

	return pet, nil
}

func (r *petRepository) FindPetByID(ctx context.Context, id primitive.ObjectID) (models.Pet, error) {
	return r.pets.FindOne(ctx, ByID(id))
}

// ListPets returns pets whose name contains filter.Search (case-insensitive)
// and whose category and status equal the given values. Empty criteria are
// ignored.
func (r *petRepository) ListPets(ctx context.Context, filter models.PetFilter) ([]models.Pet, error) {
	f := NewFilter().
		ContainsFold(fieldName, filter.Search).
		Eq(fieldCategory, filter.Category).
		Eq(fieldStatus, string(filter.Status))

	return r.pets.FindMany(ctx, f)
}

// ListPetsByOwner returns the owner's pets, newest first.
func (r *petRepository) ListPetsByOwner(ctx context.Context, ownerEmail string) ([]models.Pet, error) {
	return r.pets.FindMany(ctx, NewFilter().Eq(fieldOwnerEmail, ownerEmail), NewestFirst)
}

func (r *petRepository) UpdatePet(ctx context.Context, id primitive.ObjectID, update models.PetUpdate) (models.UpdateResult, error) {
	return r.pets.UpdateOne(ctx, ByID(id), update)
}

func (r *petRepository) DeletePet(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	return r.pets.DeleteOne(ctx, ByID(id))
}
