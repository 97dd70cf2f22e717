// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/pet-haven/internal/logger"
	"github.com/MKhiriev/pet-haven/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const fieldEmail = "email"

// userRepository is the MongoDB-backed implementation of [UserRepository].
// It handles account creation, lookup and role changes against the "users"
// collection.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	users  *Collection[models.User]
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database handle and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	return newUserRepository(db.Collection(UsersCollection), logger)
}

func newUserRepository(coll *mongo.Collection, logger *logger.Logger) *userRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		users:  NewCollection[models.User](coll),
		logger: logger,
	}
}

// CreateUser persists a new user and returns it with the store-assigned ID.
//
// The email is looked up first and an existing account yields
// [ErrUserAlreadyExists] without any write. The unique index on "email"
// closes the window between lookup and insert; its duplicate-key error maps
// to the same sentinel.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	_, err := r.users.FindOne(ctx, NewFilter().Eq(fieldEmail, user.Email))
	switch {
	case err == nil:
		log.Debug().Str("func", "*userRepository.CreateUser").Str("email", user.Email).Msg("user already exists")
		return models.User{}, ErrUserAlreadyExists
	case !errors.Is(err, ErrNotFound):
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error looking up user by email")
		return models.User{}, err
	}

	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}

	id, err := r.users.Create(ctx, &user)
	if err != nil {
		if errors.Is(err, ErrDuplicateKey) {
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, err
	}
	user.ID = id

	return user, nil
}

// FindUserByEmail returns the user with the given email or [ErrNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if email == "" {
		return models.User{}, ErrNotFound
	}

	return r.users.FindOne(ctx, NewFilter().Eq(fieldEmail, email))
}

func (r *userRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return r.users.FindMany(ctx, NewFilter())
}

func (r *userRepository) UpdateUserRole(ctx context.Context, id primitive.ObjectID, role models.Role) (models.UpdateResult, error) {
	return r.users.UpdateOne(ctx, ByID(id), models.RoleUpdate{Role: role})
}
