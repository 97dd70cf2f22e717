// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/pet-haven/internal/adapter"
	"github.com/MKhiriev/pet-haven/internal/config"
	"github.com/MKhiriev/pet-haven/internal/logger"
	"github.com/MKhiriev/pet-haven/internal/store"
	"github.com/MKhiriev/pet-haven/internal/validators"
)

type Services struct {
	AppInfoService  AppInfoService
	AuthService     AuthService
	UserService     UserService
	PetService      PetService
	CampaignService CampaignService
	AdoptionService AdoptionService
	DonationService DonationService
	PaymentService  PaymentService
}

func NewServices(storages *store.Storages, gateway adapter.PaymentGateway, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewResourceValidator()

	return &Services{
		AppInfoService:  appInfoService,
		AuthService:     NewAuthService(validator, cfg.App, logger),
		UserService:     NewUserService(storages.UserRepository, validator, logger),
		PetService:      NewPetService(storages.PetRepository, storages.UserRepository, validator, logger),
		CampaignService: NewCampaignService(storages.CampaignRepository, storages.UserRepository, validator, logger),
		AdoptionService: NewAdoptionService(storages.AdoptionRepository, storages.PetRepository, validator, logger),
		DonationService: NewDonationService(storages.DonationRepository, storages.CampaignRepository, storages.UserRepository, gateway, validator, logger),
		PaymentService:  NewPaymentService(storages.CampaignRepository, gateway, validator, cfg.Adapter.Payment, logger),
	}, nil
}
