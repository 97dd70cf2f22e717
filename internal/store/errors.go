// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrInvalidIdentifier is returned when a path parameter cannot be parsed
	// into a store identifier. It is raised before any database round-trip.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrNotFound is returned when a query expected to match exactly one
	// document produces no result.
	ErrNotFound = errors.New("document was not found")

	// ErrDuplicateKey is returned when an insert violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUserAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same email already exists.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// Low-level database operation errors. These wrap the driver error returned
// when a command fails before any domain logic can be applied.
var (
	ErrInsertingDocument = errors.New("error inserting document")
	ErrFindingDocuments  = errors.New("error finding documents")
	ErrDecodingDocuments = errors.New("error decoding documents")
	ErrUpdatingDocument  = errors.New("error updating document")
	ErrDeletingDocument  = errors.New("error deleting document")
	ErrCreatingIndexes   = errors.New("error creating indexes")
)
