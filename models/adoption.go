// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdoptionStatus is the decision state of an [AdoptionRequest].
type AdoptionStatus string

const (
	AdoptionPending  AdoptionStatus = "pending"
	AdoptionAccepted AdoptionStatus = "accepted"
	AdoptionRejected AdoptionStatus = "rejected"
)

// AdoptionRequest is sent by a prospective adopter to the owner of a pet.
type AdoptionRequest struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PetID    primitive.ObjectID `bson:"petId" json:"petId"`
	PetName  string             `bson:"petName" json:"petName"`
	PetImage string             `bson:"petImage" json:"petImage"`

	RequesterName  string `bson:"requesterName" json:"requesterName"`
	RequesterEmail string `bson:"requesterEmail" json:"requesterEmail"`
	Phone          string `bson:"phone" json:"phone" validate:"required,max=30"`
	Address        string `bson:"address" json:"address" validate:"required,max=300"`

	// PetOwner is the email of the pet's owner, copied from the pet when the
	// request is created.
	PetOwner  string         `bson:"petOwner" json:"petOwner"`
	Status    AdoptionStatus `bson:"status" json:"status"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}

// AdoptionRequestUpdate is the only change a pet owner can make to a request.
type AdoptionRequestUpdate struct {
	Status AdoptionStatus `bson:"status" json:"status" validate:"required,oneof=pending accepted rejected"`
}
