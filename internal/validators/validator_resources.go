// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/pet-haven/models"
	"github.com/go-playground/validator/v10"
)

// ResourceValidator validates request payloads of every resource exposed by
// the API. Field names passed to Validate restrict the struct-tag check to
// those fields (json names are not used; Go field names are).
type ResourceValidator struct {
	validate *validator.Validate
	now      func() time.Time
}

func NewResourceValidator() Validator {
	return &ResourceValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
}

func (v *ResourceValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case *models.Identity:
		return v.validateStruct(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.RoleUpdate:
		if !value.Role.IsValid() {
			return ErrInvalidRole
		}
		return nil
	case *models.Pet:
		return v.validatePet(ctx, value, fields...)
	case *models.PetUpdate:
		return v.validatePetUpdate(ctx, value, fields...)
	case *models.Campaign:
		return v.validateCampaign(ctx, value, fields...)
	case *models.CampaignUpdate:
		return v.validateCampaignUpdate(ctx, value, fields...)
	case *models.AdoptionRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.AdoptionRequestUpdate:
		if err := v.validateStruct(ctx, value, fields...); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAdoptionStatus, err)
		}
		return nil
	case *models.Donation:
		return v.validateStruct(ctx, value, fields...)
	case *models.PaymentIntentRequest:
		return v.validateStruct(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *ResourceValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, obj)
	} else {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	}
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		first := validationErrs[0]
		return fmt.Errorf("%w: field %s failed on %q", ErrValidation, first.Field(), first.Tag())
	}

	return fmt.Errorf("%w: %w", ErrValidation, err)
}

func (v *ResourceValidator) validateUser(ctx context.Context, user *models.User, fields ...string) error {
	if err := v.validateStruct(ctx, user, fields...); err != nil {
		return err
	}
	if user.Role != "" && !user.Role.IsValid() {
		return ErrInvalidRole
	}

	return nil
}

func (v *ResourceValidator) validatePet(ctx context.Context, pet *models.Pet, fields ...string) error {
	if err := v.validateStruct(ctx, pet, fields...); err != nil {
		return err
	}
	if pet.Status != "" && !pet.Status.IsValid() {
		return ErrInvalidPetStatus
	}

	return nil
}

func (v *ResourceValidator) validatePetUpdate(ctx context.Context, update *models.PetUpdate, fields ...string) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if err := v.validateStruct(ctx, update, fields...); err != nil {
		return err
	}
	if update.Status != nil && !update.Status.IsValid() {
		return ErrInvalidPetStatus
	}

	return nil
}

func (v *ResourceValidator) validateCampaign(ctx context.Context, campaign *models.Campaign, fields ...string) error {
	if err := v.validateStruct(ctx, campaign, fields...); err != nil {
		return err
	}
	if !campaign.LastDate.IsZero() && campaign.LastDate.Before(v.now()) {
		return ErrLastDateInPast
	}

	return nil
}

func (v *ResourceValidator) validateCampaignUpdate(ctx context.Context, update *models.CampaignUpdate, fields ...string) error {
	if update.IsEmpty() {
		return ErrNoFieldsToUpdate
	}
	if err := v.validateStruct(ctx, update, fields...); err != nil {
		return err
	}
	if update.LastDate != nil && update.LastDate.Before(v.now()) {
		return ErrLastDateInPast
	}

	return nil
}
