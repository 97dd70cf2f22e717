// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pet-haven/internal/config"
	"github.com/MKhiriev/pet-haven/internal/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Collection names used by the repositories.
const (
	UsersCollection            = "users"
	PetsCollection             = "pets"
	CampaignsCollection        = "campaigns"
	AdoptionRequestsCollection = "adoptionRequests"
	DonationsCollection        = "donations"
)

// DB is the process-wide document store handle. The underlying client is
// safe for concurrent use and is shared by every repository.
type DB struct {
	*mongo.Database
	client *mongo.Client
	logger *logger.Logger
}

// NewConnectMongo connects to MongoDB using the Stable API v1 in strict mode
// and pings the primary. Both steps are bounded by cfg.ConnectTimeout.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	serverAPI := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)
	clientOptions := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetServerAPIOptions(serverAPI).
		SetAppName("pet-haven")

	// establish connection
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occurred during database connection")
		return nil, fmt.Errorf("error occurred during database connection: %w", err)
	}

	// ping database
	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("db", cfg.Name).Msg("connected to database successfully")

	return newDB(client, cfg.Name, log), nil
}

func newDB(client *mongo.Client, name string, log *logger.Logger) *DB {
	return &DB{
		Database: client.Database(name),
		client:   client,
		logger:   log,
	}
}

// Close disconnects the underlying client.
func (db *DB) Close(ctx context.Context) error {
	if err := db.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("error disconnecting from database: %w", err)
	}

	db.logger.Info().Msg("disconnected from database")
	return nil
}
