// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/pet-haven/internal/config"
	"github.com/MKhiriev/pet-haven/internal/logger"
	"github.com/MKhiriev/pet-haven/internal/service"
	"github.com/MKhiriev/pet-haven/internal/utils"
	"github.com/MKhiriev/pet-haven/internal/validators"
	"github.com/MKhiriev/pet-haven/models"
)

// ─────────────────────────────────────────────
// Service fakes. Each method field can be overridden per test case.
// ─────────────────────────────────────────────

type fakeAppInfoService struct {
	version string
}

func (f *fakeAppInfoService) GetAppVersion(ctx context.Context) string {
	return f.version
}

type fakeUserService struct {
	createUserFn     func(ctx context.Context, user models.User) (models.User, error)
	getUserByEmailFn func(ctx context.Context, email string) (*models.User, error)
	listUsersFn      func(ctx context.Context) ([]models.User, error)
	updateRoleFn     func(ctx context.Context, id string, update models.RoleUpdate) (models.UpdateResult, error)
	isAdminFn        func(ctx context.Context, email string) (bool, error)
}

func (f *fakeUserService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return f.createUserFn(ctx, user)
}

func (f *fakeUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.getUserByEmailFn(ctx, email)
}

func (f *fakeUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return f.listUsersFn(ctx)
}

func (f *fakeUserService) UpdateRole(ctx context.Context, id string, update models.RoleUpdate) (models.UpdateResult, error) {
	return f.updateRoleFn(ctx, id, update)
}

func (f *fakeUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	return f.isAdminFn(ctx, email)
}

type fakePetService struct {
	createPetFn       func(ctx context.Context, ownerEmail string, pet models.Pet) (models.Pet, error)
	getPetFn          func(ctx context.Context, id string) (models.Pet, error)
	listPetsFn        func(ctx context.Context, filter models.PetFilter) ([]models.Pet, error)
	listPetsByOwnerFn func(ctx context.Context, ownerEmail string) ([]models.Pet, error)
	updatePetFn       func(ctx context.Context, actorEmail, id string, update models.PetUpdate) (models.UpdateResult, error)
	deletePetFn       func(ctx context.Context, actorEmail, id string) (models.DeleteResult, error)
}

func (f *fakePetService) CreatePet(ctx context.Context, ownerEmail string, pet models.Pet) (models.Pet, error) {
	return f.createPetFn(ctx, ownerEmail, pet)
}

func (f *fakePetService) GetPet(ctx context.Context, id string) (models.Pet, error) {
	return f.getPetFn(ctx, id)
}

func (f *fakePetService) ListPets(ctx context.Context, filter models.PetFilter) ([]models.Pet, error) {
	return f.listPetsFn(ctx, filter)
}

func (f *fakePetService) ListPetsByOwner(ctx context.Context, ownerEmail string) ([]models.Pet, error) {
	return f.listPetsByOwnerFn(ctx, ownerEmail)
}

func (f *fakePetService) UpdatePet(ctx context.Context, actorEmail, id string, update models.PetUpdate) (models.UpdateResult, error) {
	return f.updatePetFn(ctx, actorEmail, id, update)
}

func (f *fakePetService) DeletePet(ctx context.Context, actorEmail, id string) (models.DeleteResult, error) {
	return f.deletePetFn(ctx, actorEmail, id)
}

type fakeCampaignService struct {
	createCampaignFn       func(ctx context.Context, ownerEmail string, campaign models.Campaign) (models.Campaign, error)
	getCampaignFn          func(ctx context.Context, id string) (models.Campaign, error)
	listCampaignsFn        func(ctx context.Context, search string) ([]models.Campaign, error)
	listCampaignsByOwnerFn func(ctx context.Context, ownerEmail string) ([]models.Campaign, error)
	updateCampaignFn       func(ctx context.Context, actorEmail, id string, update models.CampaignUpdate) (models.UpdateResult, error)
	deleteCampaignFn       func(ctx context.Context, id string) (models.DeleteResult, error)
}

func (f *fakeCampaignService) CreateCampaign(ctx context.Context, ownerEmail string, campaign models.Campaign) (models.Campaign, error) {
	return f.createCampaignFn(ctx, ownerEmail, campaign)
}

func (f *fakeCampaignService) GetCampaign(ctx context.Context, id string) (models.Campaign, error) {
	return f.getCampaignFn(ctx, id)
}

func (f *fakeCampaignService) ListCampaigns(ctx context.Context, search string) ([]models.Campaign, error) {
	return f.listCampaignsFn(ctx, search)
}

func (f *fakeCampaignService) ListCampaignsByOwner(ctx context.Context, ownerEmail string) ([]models.Campaign, error) {
	return f.listCampaignsByOwnerFn(ctx, ownerEmail)
}

func (f *fakeCampaignService) UpdateCampaign(ctx context.Context, actorEmail, id string, update models.CampaignUpdate) (models.UpdateResult, error) {
	return f.updateCampaignFn(ctx, actorEmail, id, update)
}

func (f *fakeCampaignService) DeleteCampaign(ctx context.Context, id string) (models.DeleteResult, error) {
	return f.deleteCampaignFn(ctx, id)
}

type fakeAdoptionService struct {
	createRequestFn        func(ctx context.Context, requesterEmail string, request models.AdoptionRequest) (models.AdoptionRequest, error)
	listRequestsForOwnerFn func(ctx context.Context, ownerEmail string) ([]models.AdoptionRequest, error)
	updateStatusFn         func(ctx context.Context, actorEmail, id string, update models.AdoptionRequestUpdate) (models.UpdateResult, error)
}

func (f *fakeAdoptionService) CreateRequest(ctx context.Context, requesterEmail string, request models.AdoptionRequest) (models.AdoptionRequest, error) {
	return f.createRequestFn(ctx, requesterEmail, request)
}

func (f *fakeAdoptionService) ListRequestsForOwner(ctx context.Context, ownerEmail string) ([]models.AdoptionRequest, error) {
	return f.listRequestsForOwnerFn(ctx, ownerEmail)
}

func (f *fakeAdoptionService) UpdateStatus(ctx context.Context, actorEmail, id string, update models.AdoptionRequestUpdate) (models.UpdateResult, error) {
	return f.updateStatusFn(ctx, actorEmail, id, update)
}

type fakeDonationService struct {
	createDonationFn          func(ctx context.Context, donatorEmail string, donation models.Donation) (models.Donation, error)
	listDonationsByDonatorFn  func(ctx context.Context, donatorEmail string) ([]models.Donation, error)
	listDonationsByCampaignFn func(ctx context.Context, campaignID string) ([]models.Donation, error)
	deleteDonationFn          func(ctx context.Context, actorEmail, id string) (models.DeleteResult, error)
}

func (f *fakeDonationService) CreateDonation(ctx context.Context, donatorEmail string, donation models.Donation) (models.Donation, error) {
	return f.createDonationFn(ctx, donatorEmail, donation)
}

func (f *fakeDonationService) ListDonationsByDonator(ctx context.Context, donatorEmail string) ([]models.Donation, error) {
	return f.listDonationsByDonatorFn(ctx, donatorEmail)
}

func (f *fakeDonationService) ListDonationsByCampaign(ctx context.Context, campaignID string) ([]models.Donation, error) {
	return f.listDonationsByCampaignFn(ctx, campaignID)
}

func (f *fakeDonationService) DeleteDonation(ctx context.Context, actorEmail, id string) (models.DeleteResult, error) {
	return f.deleteDonationFn(ctx, actorEmail, id)
}

type fakePaymentService struct {
	createIntentFn func(ctx context.Context, request models.PaymentIntentRequest) (models.PaymentIntentResponse, error)
}

func (f *fakePaymentService) CreateIntent(ctx context.Context, request models.PaymentIntentRequest) (models.PaymentIntentResponse, error) {
	return f.createIntentFn(ctx, request)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const (
	testSignKey = "test-sign-key"
	testIssuer  = "pet-haven-test"
)

func testConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		App: config.App{
			Environment:   config.EnvDevelopment,
			TokenSignKey:  testSignKey,
			TokenIssuer:   testIssuer,
			TokenDuration: time.Hour,
			Version:       "test",
		},
		Server: config.Server{
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	}
}

// newTestServices returns services with a real AuthService bound to the test
// signing key; the rest are left for the test to fill.
func newTestServices() *service.Services {
	cfg := testConfig()
	return &service.Services{
		AppInfoService: &fakeAppInfoService{version: cfg.App.Version},
		AuthService:    service.NewAuthService(validators.NewResourceValidator(), cfg.App, logger.Nop()),
	}
}

func newTestRouterHandler(svcs *service.Services) *Handler {
	return NewHandler(svcs, testConfig(), logger.Nop())
}

// tokenCookieFor signs a valid token cookie for email.
func tokenCookieFor(t *testing.T, email string) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateJWTToken(testIssuer, models.Identity{Email: email}, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return &http.Cookie{Name: tokenCookieName, Value: token.String()}
}

// withIdentity returns r carrying email as the authenticated caller and a
// nop logger.
func withIdentity(r *http.Request, email string) *http.Request {
	ctx := logger.Nop().Logger.WithContext(r.Context())
	return r.WithContext(utils.WithUserEmail(ctx, email))
}
