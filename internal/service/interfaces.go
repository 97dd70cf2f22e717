// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/pet-haven/models"
)

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// AuthService issues and verifies identity tokens.
type AuthService interface {
	IssueToken(ctx context.Context, identity models.Identity) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService manages accounts and roles. GetUserByEmail returns nil without
// error when no account exists.
type UserService interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateRole(ctx context.Context, id string, update models.RoleUpdate) (models.UpdateResult, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// PetService manages adoptable pets. actorEmail is the authenticated caller;
// mutations are allowed to the pet owner or an admin.
type PetService interface {
	CreatePet(ctx context.Context, ownerEmail string, pet models.Pet) (models.Pet, error)
	GetPet(ctx context.Context, id string) (models.Pet, error)
	ListPets(ctx context.Context, filter models.PetFilter) ([]models.Pet, error)
	ListPetsByOwner(ctx context.Context, ownerEmail string) ([]models.Pet, error)
	UpdatePet(ctx context.Context, actorEmail, id string, update models.PetUpdate) (models.UpdateResult, error)
	DeletePet(ctx context.Context, actorEmail, id string) (models.DeleteResult, error)
}

// CampaignService manages donation campaigns.
type CampaignService interface {
	CreateCampaign(ctx context.Context, ownerEmail string, campaign models.Campaign) (models.Campaign, error)
	GetCampaign(ctx context.Context, id string) (models.Campaign, error)
	ListCampaigns(ctx context.Context, search string) ([]models.Campaign, error)
	ListCampaignsByOwner(ctx context.Context, ownerEmail string) ([]models.Campaign, error)
	UpdateCampaign(ctx context.Context, actorEmail, id string, update models.CampaignUpdate) (models.UpdateResult, error)
	DeleteCampaign(ctx context.Context, id string) (models.DeleteResult, error)
}

// AdoptionService manages adoption requests between requesters and pet owners.
type AdoptionService interface {
	CreateRequest(ctx context.Context, requesterEmail string, request models.AdoptionRequest) (models.AdoptionRequest, error)
	ListRequestsForOwner(ctx context.Context, ownerEmail string) ([]models.AdoptionRequest, error)
	UpdateStatus(ctx context.Context, actorEmail, id string, update models.AdoptionRequestUpdate) (models.UpdateResult, error)
}

// DonationService records verified donations and keeps campaign totals in
// step with them.
type DonationService interface {
	CreateDonation(ctx context.Context, donatorEmail string, donation models.Donation) (models.Donation, error)
	ListDonationsByDonator(ctx context.Context, email string) ([]models.Donation, error)
	ListDonationsByCampaign(ctx context.Context, campaignID string) ([]models.Donation, error)
	DeleteDonation(ctx context.Context, actorEmail, id string) (models.DeleteResult, error)
}

// PaymentService brokers payment intents for campaign donations.
type PaymentService interface {
	CreateIntent(ctx context.Context, request models.PaymentIntentRequest) (models.PaymentIntentResponse, error)
}
