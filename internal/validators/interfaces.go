// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the store.
//
// [ResourceValidator] runs the `validate` struct tags declared on the models
// and then applies the rules tags cannot express: enumerated pet and
// adoption statuses, user roles and campaign deadlines.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
