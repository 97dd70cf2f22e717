// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Donator identifies the person behind a [Donation].
type Donator struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// Donation records a completed payment towards a [Campaign].
type Donation struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Donator    Donator            `bson:"donator" json:"donator"`
	Amount     float64            `bson:"amount" json:"amount" validate:"gt=0"`
	CampaignID primitive.ObjectID `bson:"campaignId" json:"campaignId"`
	PetName    string             `bson:"petName" json:"petName"`
	PetImage   string             `bson:"petImage" json:"petImage"`

	// TransactionID is the payment intent id returned by the provider. It is
	// used to verify the payment before the donation is stored.
	TransactionID string    `bson:"transactionId" json:"transactionId" validate:"required"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
