// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrValidation      = errors.New("validation failed")

	ErrInvalidRole           = errors.New("invalid role")
	ErrInvalidPetStatus      = errors.New("invalid pet status")
	ErrInvalidAdoptionStatus = errors.New("invalid adoption status")
	ErrLastDateInPast        = errors.New("last date must be in the future")
	ErrNoFieldsToUpdate      = errors.New("at least one field must be provided for update")
)
