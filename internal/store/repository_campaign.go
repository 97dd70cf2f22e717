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
	fieldPetName       = "petName"
	fieldDonatedAmount = "donatedAmount"
)

type campaignRepository struct {
	logger    *logger.Logger
	campaigns *Collection[models.Campaign]
}

func NewCampaignRepository(db *DB, logger *logger.Logger) CampaignRepository {
	return newCampaignRepository(db.Collection(CampaignsCollection), logger)
}

func newCampaignRepository(coll *mongo.Collection, logger *logger.Logger) *campaignRepository {
	logger.Debug().Msg("creating campaign repository")
	return &campaignRepository{
		campaigns: NewCollection[models.Campaign](coll),
		logger:    logger,
	}
}

func (r *campaignRepository) CreateCampaign(ctx context.Context, campaign models.Campaign) (models.Campaign, error) {
	if campaign.CreatedAt.IsZero() {
		campaign.CreatedAt = time.Now().UTC()
	}

	id, err := r.campaigns.Create(ctx, &campaign)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*campaignRepository.CreateCampaign").Msg("error inserting campaign")
		return models.Campaign{}, err
	}
	campaign.ID = id

	return campaign, nil
}

func (r *campaignRepository) FindCampaignByID(ctx context.Context, id primitive.ObjectID) (models.Campaign, error) {
	return r.campaigns.FindOne(ctx, ByID(id))
}

// ListCampaigns returns campaigns whose pet name contains search
// (case-insensitive), or all campaigns when search is empty.
func (r *campaignRepository) ListCampaigns(ctx context.Context, search string) ([]models.Campaign, error) {
	return r.campaigns.FindMany(ctx, NewFilter().ContainsFold(fieldPetName, search))
}

// ListCampaignsByOwner returns the owner's campaigns, newest first.
func (r *campaignRepository) ListCampaignsByOwner(ctx context.Context, ownerEmail string) ([]models.Campaign, error) {
	return r.campaigns.FindMany(ctx, NewFilter().Eq(fieldOwnerEmail, ownerEmail), NewestFirst)
}

func (r *campaignRepository) UpdateCampaign(ctx context.Context, id primitive.ObjectID, update models.CampaignUpdate) (models.UpdateResult, error) {
	return r.campaigns.UpdateOne(ctx, ByID(id), update)
}

// AddDonatedAmount atomically adds delta (which may be negative) to the
// raised amount of the campaign.
func (r *campaignRepository) AddDonatedAmount(ctx context.Context, id primitive.ObjectID, delta float64) (models.UpdateResult, error) {
	return r.campaigns.Increment(ctx, ByID(id), fieldDonatedAmount, delta)
}

func (r *campaignRepository) DeleteCampaign(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	return r.campaigns.DeleteOne(ctx, ByID(id))
}
