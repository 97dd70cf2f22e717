// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/pet-haven/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	UpdateUserRole(ctx context.Context, id primitive.ObjectID, role models.Role) (models.UpdateResult, error)
}

type PetRepository interface {
	CreatePet(ctx context.Context, pet models.Pet) (models.Pet, error)
	FindPetByID(ctx context.Context, id primitive.ObjectID) (models.Pet, error)
	ListPets(ctx context.Context, filter models.PetFilter) ([]models.Pet, error)
	ListPetsByOwner(ctx context.Context, ownerEmail string) ([]models.Pet, error)
	UpdatePet(ctx context.Context, id primitive.ObjectID, update models.PetUpdate) (models.UpdateResult, error)
	DeletePet(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
}

type CampaignRepository interface {
	CreateCampaign(ctx context.Context, campaign models.Campaign) (models.Campaign, error)
	FindCampaignByID(ctx context.Context, id primitive.ObjectID) (models.Campaign, error)
	ListCampaigns(ctx context.Context, search string) ([]models.Campaign, error)
	ListCampaignsByOwner(ctx context.Context, ownerEmail string) ([]models.Campaign, error)
	UpdateCampaign(ctx context.Context, id primitive.ObjectID, update models.CampaignUpdate) (models.UpdateResult, error)
	AddDonatedAmount(ctx context.Context, id primitive.ObjectID, delta float64) (models.UpdateResult, error)
	DeleteCampaign(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
}

type AdoptionRepository interface {
	CreateAdoptionRequest(ctx context.Context, request models.AdoptionRequest) (models.AdoptionRequest, error)
	FindAdoptionRequestByID(ctx context.Context, id primitive.ObjectID) (models.AdoptionRequest, error)
	ListAdoptionRequestsByPetOwner(ctx context.Context, ownerEmail string) ([]models.AdoptionRequest, error)
	UpdateAdoptionRequest(ctx context.Context, id primitive.ObjectID, update models.AdoptionRequestUpdate) (models.UpdateResult, error)
}

type DonationRepository interface {
	CreateDonation(ctx context.Context, donation models.Donation) (models.Donation, error)
	FindDonationByID(ctx context.Context, id primitive.ObjectID) (models.Donation, error)
	FindDonationByTransactionID(ctx context.Context, transactionID string) (models.Donation, error)
	ListDonationsByDonator(ctx context.Context, email string) ([]models.Donation, error)
	ListDonationsByCampaign(ctx context.Context, campaignID primitive.ObjectID) ([]models.Donation, error)
	DeleteDonation(ctx context.Context, id primitive.ObjectID) (models.DeleteResult, error)
}
