// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Campaign is a donation-collection record tied to a specific pet.
type Campaign struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PetName          string             `bson:"petName" json:"petName" validate:"required,max=100"`
	PetCategory      string             `bson:"petCategory" json:"petCategory"`
	PetImage         string             `bson:"petImage" json:"petImage" validate:"omitempty,url"`
	MaxAmount        float64            `bson:"maxAmount" json:"maxAmount" validate:"gt=0"`
	DonatedAmount    float64            `bson:"donatedAmount" json:"donatedAmount"`
	LastDate         time.Time          `bson:"lastDate" json:"lastDate"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription" validate:"max=300"`
	LongDescription  string             `bson:"longDescription" json:"longDescription"`
	OwnerEmail       string             `bson:"ownerEmail" json:"ownerEmail"`

	// Paused campaigns stay visible but accept no new payment intents.
	Paused    bool      `bson:"paused" json:"paused"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// CampaignUpdate lists the campaign fields an owner may change.
// DonatedAmount is intentionally absent: it only moves with recorded donations.
type CampaignUpdate struct {
	PetName          *string    `bson:"petName,omitempty" json:"petName,omitempty" validate:"omitempty,min=1,max=100"`
	PetCategory      *string    `bson:"petCategory,omitempty" json:"petCategory,omitempty"`
	PetImage         *string    `bson:"petImage,omitempty" json:"petImage,omitempty" validate:"omitempty,url"`
	MaxAmount        *float64   `bson:"maxAmount,omitempty" json:"maxAmount,omitempty" validate:"omitempty,gt=0"`
	LastDate         *time.Time `bson:"lastDate,omitempty" json:"lastDate,omitempty"`
	ShortDescription *string    `bson:"shortDescription,omitempty" json:"shortDescription,omitempty" validate:"omitempty,max=300"`
	LongDescription  *string    `bson:"longDescription,omitempty" json:"longDescription,omitempty"`
	Paused           *bool      `bson:"paused,omitempty" json:"paused,omitempty"`
}

// IsEmpty reports whether the update would not change anything.
func (u CampaignUpdate) IsEmpty() bool {
	return u.PetName == nil && u.PetCategory == nil && u.PetImage == nil && u.MaxAmount == nil &&
		u.LastDate == nil && u.ShortDescription == nil && u.LongDescription == nil && u.Paused == nil
}
