// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the authorization level of a [User].
type Role string

const (
	// RoleUser is assigned to every newly registered account.
	RoleUser Role = "user"

	// RoleAdmin grants access to admin-gated routes (user listing, role
	// changes, campaign removal, moderation of pets and donations).
	RoleAdmin Role = "admin"
)

// IsValid reports whether r is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a registered account. Users authenticate with an external
// identity provider; this service only remembers who they are and which role
// they hold.
type User struct {
	// ID is the store-generated identifier.
	ID primitive.ObjectID `bson:"_id,omitempty" json:"_id"`

	// Name is the display name reported by the client at registration.
	Name string `bson:"name" json:"name"`

	// Email uniquely identifies the user and is the subject of issued tokens.
	Email string `bson:"email" json:"email" validate:"required,email"`

	// Photo is an optional avatar URL.
	Photo string `bson:"photo,omitempty" json:"photo,omitempty"`

	// Role is either "user" or "admin". New accounts always start as "user".
	Role Role `bson:"role" json:"role"`

	// CreatedAt is the registration timestamp.
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// RoleUpdate is the only partial update accepted for users.
type RoleUpdate struct {
	Role Role `bson:"role" json:"role"`
}
