// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid. The process refuses to
// start on any of them.
var (
	// ErrInvalidAppConfigs indicates missing token settings (sign key,
	// issuer, duration) or an unknown environment name.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates that neither a database URI nor a
	// full set of credentials was provided, or the database name is empty.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates an empty listen address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates a missing payment secret key,
	// base URL or currency.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
