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
	fieldDonatorEmail  = "donator.email"
	fieldCampaignID    = "campaignId"
	fieldTransactionID = "transactionId"
)

type donationRepository struct {
	logger    *logger.Logger
	donations *Collection[models.Donation]
}

func NewDonationRepository(db *DB, logger *logger.Logger) DonationRepository {
	return newDonationRepository(db.Collection(DonationsCollection), logger)
}

func newDonationRepository(coll *mongo.Collection, logger *logger.Logger) *donationRepository {
	logger.Debug().Msg("creating donation repository")
	return &donationRepository{
		donations: NewCollection[models.Donation](coll),
		logger:    logger,
	}
}

// CreateDonation stores a donation. A second donation carrying the same
// transaction id violates the unique index and yields [ErrDuplicateKey].
func (r *donationRepository) CreateDonation(ctx context.Context, donation models.Donation) (models.Donation, error) {
	if donation.CreatedAt.IsZero() {
		donation.CreatedAt = time.Now().UTC()
	}

	id, err := r.donations.Create(ctx, &donation)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*donationRepository.CreateDonation").Msg("error inserting donation")
		return models.Donation{}, err
	}
	donation.ID = id

	return donation, nil
}

func (r *donationRepository) FindDonationByID(ctx context.Context, id primitive.ObjectID) (models.Donation, error) {
	return r.donations.FindOne(ctx, ByID(id))
}

func (r *donationRepository) FindDonationByTransactionID(ctx context.Context, transactionID string) (models.Donation, error) {
	if transactionID == "" {
		return models.Donation{}, ErrNotFound
	}

	return r.donations.FindOne(ctx, NewFilter().Eq(fieldTransactionID, transactionID))
}

// ListDonationsByDonator matches the nested donator email, newest first.
func (r *donationRepository) ListDonationsByDonator(ctx context.Context, email string) ([]models.Donation, error) {
	return r.donations.FindMany(ctx, NewFilter().Eq(fieldDonatorEmail, email), NewestFirst)
}

func (r *donationRepository) ListDonationsByCampaign(ctx context.Context, campaignID primitive.ObjectID) ([]models.Donation, error) {
	return r.donations.FindMany(ctx, NewFilter().Eq(fieldCampaignID, campaignID), NewestFirst)
}

func (r *donationRepository) DeleteDonation(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error) {
	return r.donations.DeleteOne(ctx, ByID(id))
}
