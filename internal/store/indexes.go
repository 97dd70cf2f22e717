// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// collectionIndexes lists the indexes each collection needs. The unique
// indexes back the duplicate checks done by the repositories.
var collectionIndexes = map[string][]mongo.IndexModel{
	UsersCollection: {
		{Keys: bson.D{{Key: fieldEmail, Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
	},
	PetsCollection: {
		{Keys: bson.D{{Key: fieldOwnerEmail, Value: 1}, {Key: FieldCreatedAt, Value: -1}}},
		{Keys: bson.D{{Key: fieldCategory, Value: 1}}},
	},
	CampaignsCollection: {
		{Keys: bson.D{{Key: fieldOwnerEmail, Value: 1}, {Key: FieldCreatedAt, Value: -1}}},
	},
	AdoptionRequestsCollection: {
		{Keys: bson.D{{Key: fieldPetOwner, Value: 1}, {Key: FieldCreatedAt, Value: -1}}},
	},
	DonationsCollection: {
		{Keys: bson.D{{Key: fieldDonatorEmail, Value: 1}, {Key: FieldCreatedAt, Value: -1}}},
		{Keys: bson.D{{Key: fieldCampaignID, Value: 1}}},
		{Keys: bson.D{{Key: fieldTransactionID, Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_transaction_id")},
	},
}

// EnsureIndexes creates the indexes of every collection. Creating an index
// that already exists with the same definition is a no-op on the server.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	for name, indexModels := range collectionIndexes {
		if _, err := db.Collection(name).Indexes().CreateMany(ctx, indexModels); err != nil {
			db.logger.Err(err).Str("func", "*DB.EnsureIndexes").Str("collection", name).Msg("failed to create indexes")
			return fmt.Errorf("%w on %s: %w", ErrCreatingIndexes, name, err)
		}
	}

	db.logger.Info().Msg("database indexes are in place")
	return nil
}
