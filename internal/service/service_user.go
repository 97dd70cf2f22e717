// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/pet-haven/internal/logger"
	"github.com/MKhiriev/pet-haven/internal/store"
	"github.com/MKhiriev/pet-haven/internal/validators"
	"github.com/MKhiriev/pet-haven/models"
)

type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		logger:         logger,
	}
}

// CreateUser registers an account. Every new account starts with the
// "user" role regardless of what the client sent.
//
// Returns store.ErrUserAlreadyExists when the email is taken.
func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.Email = normalizeEmail(user.Email)
	user.Role = models.RoleUser
	if err := s.validator.Validate(ctx, &user); err != nil {
		log.Debug().Err(err).Str("email", user.Email).Msg("invalid user data provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("email", created.Email).Msg("user registered")
	return created, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.userRepository.FindUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("user search by email failed: %w", err)
	}

	return &user, nil
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.userRepository.ListUsers(ctx)
}

// UpdateRole sets the role of the account identified by id. An empty role in
// update promotes the account to admin.
func (s *userService) UpdateRole(ctx context.Context, id string, update models.RoleUpdate) (models.UpdateResult, error) {
	objectID, err := store.ParseID(id)
	if err != nil {
		return models.UpdateResult{}, err
	}

	if update.Role == "" {
		update.Role = models.RoleAdmin
	}
	if err = s.validator.Validate(ctx, &update); err != nil {
		return models.UpdateResult{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	result, err := s.userRepository.UpdateUserRole(ctx, objectID, update.Role)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("role update failed: %w", err)
	}

	logger.FromContext(ctx).Info().
		Str("user_id", id).
		Str("role", string(update.Role)).
		Int64("matched", result.MatchedCount).
		Msg("user role updated")
	return result, nil
}

// IsAdmin looks the account up on every call; roles are never cached so a
// demotion takes effect on the next request.
func (s *userService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return isAdmin(ctx, s.userRepository, email)
}

func isAdmin(ctx context.Context, users store.UserRepository, email string) (bool, error) {
	if email == "" {
		return false, nil
	}

	user, err := users.FindUserByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("role lookup failed: %w", err)
	}

	return user.IsAdmin(), nil
}

// authorizeOwner permits actorEmail when it owns the resource or is an admin.
func authorizeOwner(ctx context.Context, users store.UserRepository, actorEmail, ownerEmail string) error {
	if actorEmail != "" && normalizeEmail(actorEmail) == normalizeEmail(ownerEmail) {
		return nil
	}

	admin, err := isAdmin(ctx, users, actorEmail)
	if err != nil {
		return err
	}
	if !admin {
		return ErrForbidden
	}

	return nil
}
