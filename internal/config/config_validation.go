// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Secrets are required
// so that the server never issues tokens it cannot verify.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}
	if cfg.App.Environment != EnvDevelopment && cfg.App.Environment != EnvProduction {
		return fmt.Errorf("%w: unknown environment %q", ErrInvalidAppConfigs, cfg.App.Environment)
	}

	db := cfg.Storage.DB
	if db.URI == "" && (db.User == "" || db.Password == "" || db.Cluster == "") {
		return fmt.Errorf("%w: database URI or user/password/cluster are required", ErrInvalidStorageConfigs)
	}
	if db.Name == "" {
		return fmt.Errorf("%w: database name is required", ErrInvalidStorageConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	payment := cfg.Adapter.Payment
	if payment.SecretKey == "" || payment.BaseURL == "" || payment.Currency == "" {
		return fmt.Errorf("%w: payment secret key, base URL and currency are required", ErrInvalidAdapterConfigs)
	}

	return nil
}
