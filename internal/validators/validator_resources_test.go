// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/pet-haven/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func ptr[T any](v T) *T { return &v }

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestValidator() *ResourceValidator {
	v := NewResourceValidator().(*ResourceValidator)
	v.now = func() time.Time { return fixedNow }
	return v
}

func validPet() *models.Pet {
	return &models.Pet{
		Name:     "Rex",
		Age:      3,
		Category: "dog",
		Image:    "https://img.example/rex.png",
	}
}

func validCampaign() *models.Campaign {
	return &models.Campaign{
		PetName:   "Rex",
		MaxAmount: 500,
		LastDate:  fixedNow.Add(48 * time.Hour),
	}
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestValidate_UnsupportedType(t *testing.T) {
	err := newTestValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_ValuesMustBePointers(t *testing.T) {
	err := newTestValidator().Validate(context.Background(), *validPet())
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestValidate_Identity(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.Identity{Email: "jane@example.com"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.Identity{Email: "not-an-email"}), ErrValidation)
	assert.ErrorIs(t, v.Validate(ctx, &models.Identity{}), ErrValidation)
}

func TestValidate_User(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.User{Email: "jane@example.com"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.User{Email: "jane@example.com", Role: "root"}), ErrInvalidRole)
	assert.ErrorIs(t, v.Validate(ctx, &models.User{Name: "Jane"}), ErrValidation)
}

func TestValidate_RoleUpdate(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.RoleUpdate{Role: models.RoleAdmin}))
	assert.NoError(t, v.Validate(ctx, &models.RoleUpdate{Role: models.RoleUser}))
	assert.ErrorIs(t, v.Validate(ctx, &models.RoleUpdate{Role: "owner"}), ErrInvalidRole)
}

func TestValidate_Pet(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(p *models.Pet)
		wantErr error
	}{
		{name: "valid", mutate: func(*models.Pet) {}},
		{name: "missing name", mutate: func(p *models.Pet) { p.Name = "" }, wantErr: ErrValidation},
		{name: "negative age", mutate: func(p *models.Pet) { p.Age = -1 }, wantErr: ErrValidation},
		{name: "bad image url", mutate: func(p *models.Pet) { p.Image = "rex.png" }, wantErr: ErrValidation},
		{name: "unknown status", mutate: func(p *models.Pet) { p.Status = "lost" }, wantErr: ErrInvalidPetStatus},
		{name: "known status", mutate: func(p *models.Pet) { p.Status = models.PetPending }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pet := validPet()
			tt.mutate(pet)

			err := newTestValidator().Validate(context.Background(), pet)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_PetPartialFields(t *testing.T) {
	pet := validPet()
	pet.Category = ""

	err := newTestValidator().Validate(context.Background(), pet, "Name", "Age")
	assert.NoError(t, err)
}

func TestValidate_PetUpdate(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, &models.PetUpdate{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, &models.PetUpdate{Name: ptr("Max")}))
	assert.ErrorIs(t, v.Validate(ctx, &models.PetUpdate{Name: ptr("")}), ErrValidation)
	assert.ErrorIs(t, v.Validate(ctx, &models.PetUpdate{Status: ptr(models.PetStatus("gone"))}), ErrInvalidPetStatus)
	assert.NoError(t, v.Validate(ctx, &models.PetUpdate{Status: ptr(models.PetAdopted)}))
}

func TestValidate_Campaign(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, validCampaign()))

	zeroMax := validCampaign()
	zeroMax.MaxAmount = 0
	assert.ErrorIs(t, v.Validate(ctx, zeroMax), ErrValidation)

	expired := validCampaign()
	expired.LastDate = fixedNow.Add(-time.Hour)
	assert.ErrorIs(t, v.Validate(ctx, expired), ErrLastDateInPast)
}

func TestValidate_CampaignUpdate(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, &models.CampaignUpdate{}), ErrNoFieldsToUpdate)
	assert.NoError(t, v.Validate(ctx, &models.CampaignUpdate{Paused: ptr(false)}))
	assert.ErrorIs(t, v.Validate(ctx, &models.CampaignUpdate{MaxAmount: ptr(-5.0)}), ErrValidation)
	assert.ErrorIs(t, v.Validate(ctx, &models.CampaignUpdate{LastDate: ptr(fixedNow.Add(-time.Minute))}), ErrLastDateInPast)
}

func TestValidate_AdoptionRequestUpdate(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.AdoptionRequestUpdate{Status: models.AdoptionAccepted}))
	assert.ErrorIs(t, v.Validate(ctx, &models.AdoptionRequestUpdate{Status: "maybe"}), ErrInvalidAdoptionStatus)
	assert.ErrorIs(t, v.Validate(ctx, &models.AdoptionRequestUpdate{}), ErrValidation)
}

func TestValidate_AdoptionRequest(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.AdoptionRequest{Phone: "+1 555 0100", Address: "1 Main St"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.AdoptionRequest{Address: "1 Main St"}), ErrValidation)
}

func TestValidate_DonationAndPaymentRequest(t *testing.T) {
	v := newTestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.Donation{Amount: 5, TransactionID: "pi_123"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.Donation{Amount: 5}), ErrValidation)
	assert.ErrorIs(t, v.Validate(ctx, &models.Donation{TransactionID: "pi_123"}), ErrValidation)

	assert.NoError(t, v.Validate(ctx, &models.PaymentIntentRequest{CampaignID: "65f1c0ffee00000000000001", Amount: 5}))
	assert.ErrorIs(t, v.Validate(ctx, &models.PaymentIntentRequest{CampaignID: "65f1c0ffee00000000000001"}), ErrValidation)
}
