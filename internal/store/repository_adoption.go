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

const fieldPetOwner = "petOwner"

type adoptionRepository struct {
	logger   *logger.Logger
	requests *Collection[models.AdoptionRequest]
}

func NewAdoptionRepository(db *DB, logger *logger.Logger) AdoptionRepository {
	return newAdoptionRepository(db.Collection(AdoptionRequestsCollection), logger)
}

func newAdoptionRepository(coll *mongo.Collection, logger *logger.Logger) *adoptionRepository {
	logger.Debug().Msg("creating adoption request repository")
	return &adoptionRepository{
		requests: NewCollection[models.AdoptionRequest](coll),
		logger:   logger,
	}
}

func (r *adoptionRepository) CreateAdoptionRequest(ctx context.Context, request models.AdoptionRequest) (models.AdoptionRequest, error) {
	if request.Status == "" {
		request.Status = models.AdoptionPending
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now().UTC()
	}

	id, err := r.requests.Create(ctx, &request)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*adoptionRepository.CreateAdoptionRequest").Msg("error inserting adoption request")
		return models.AdoptionRequest{}, err
	}
	request.ID = id

	return request, nil
}

func (r *adoptionRepository) FindAdoptionRequestByID(ctx context.Context, id primitive.ObjectID) (models.AdoptionRequest, error) {
	return r.requests.FindOne(ctx, ByID(id))
}

// ListAdoptionRequestsByPetOwner returns requests addressed to the owner,
// newest first.
func (r *adoptionRepository) ListAdoptionRequestsByPetOwner(ctx context.Context, ownerEmail string) ([]models.AdoptionRequest, error) {
	return r.requests.FindMany(ctx, NewFilter().Eq(fieldPetOwner, ownerEmail), NewestFirst)
}

func (r *adoptionRepository) UpdateAdoptionRequest(ctx context.Context, id primitive.ObjectID, update models.AdoptionRequestUpdate) (models.UpdateResult, error) {
	return r.requests.UpdateOne(ctx, ByID(id), update)
}
