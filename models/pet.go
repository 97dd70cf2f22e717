// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PetStatus is the adoption state of a [Pet].
type PetStatus string

const (
	PetAvailable PetStatus = "available"
	PetPending   PetStatus = "pending"
	PetAdopted   PetStatus = "adopted"
)

// IsValid reports whether s is one of the known adoption states.
func (s PetStatus) IsValid() bool {
	switch s {
	case PetAvailable, PetPending, PetAdopted:
		return true
	default:
		return false
	}
}

// Pet is a listing published by its owner for adoption.
type Pet struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name             string             `bson:"name" json:"name" validate:"required,max=100"`
	Age              int                `bson:"age" json:"age" validate:"gte=0,lte=100"`
	Category         string             `bson:"category" json:"category" validate:"required,max=50"`
	Location         string             `bson:"location" json:"location"`
	Image            string             `bson:"image" json:"image" validate:"omitempty,url"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription" validate:"max=300"`
	LongDescription  string             `bson:"longDescription" json:"longDescription"`

	// OwnerEmail is always the email of the authenticated creator; a value
	// sent by the client is overwritten.
	OwnerEmail string    `bson:"ownerEmail" json:"ownerEmail"`
	Status     PetStatus `bson:"status" json:"status"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
}

// PetFilter holds the optional query parameters of the public pet listing.
// Empty fields do not constrain the result.
type PetFilter struct {
	// Search is matched case-insensitively as a substring of the pet name.
	Search   string
	Category string
	Status   PetStatus
}

// PetUpdate lists the pet fields an owner may change. Nil fields are left
// untouched.
type PetUpdate struct {
	Name             *string    `bson:"name,omitempty" json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Age              *int       `bson:"age,omitempty" json:"age,omitempty" validate:"omitempty,gte=0,lte=100"`
	Category         *string    `bson:"category,omitempty" json:"category,omitempty" validate:"omitempty,min=1,max=50"`
	Location         *string    `bson:"location,omitempty" json:"location,omitempty"`
	Image            *string    `bson:"image,omitempty" json:"image,omitempty" validate:"omitempty,url"`
	ShortDescription *string    `bson:"shortDescription,omitempty" json:"shortDescription,omitempty" validate:"omitempty,max=300"`
	LongDescription  *string    `bson:"longDescription,omitempty" json:"longDescription,omitempty"`
	Status           *PetStatus `bson:"status,omitempty" json:"status,omitempty"`
}

// IsEmpty reports whether the update would not change anything.
func (u PetUpdate) IsEmpty() bool {
	return u.Name == nil && u.Age == nil && u.Category == nil && u.Location == nil &&
		u.Image == nil && u.ShortDescription == nil && u.LongDescription == nil && u.Status == nil
}
