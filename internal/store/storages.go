// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/pet-haven/internal/logger"

// Storages groups every repository so that the service layer receives a
// single dependency.
type Storages struct {
	UserRepository     UserRepository
	PetRepository      PetRepository
	CampaignRepository CampaignRepository
	AdoptionRepository AdoptionRepository
	DonationRepository DonationRepository
}

// NewStorages builds all repositories over one database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		PetRepository:      NewPetRepository(db, logger),
		CampaignRepository: NewCampaignRepository(db, logger),
		AdoptionRepository: NewAdoptionRepository(db, logger),
		DonationRepository: NewDonationRepository(db, logger),
	}
}
