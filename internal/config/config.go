// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// Environment names accepted in App.Environment.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// StructuredConfig is the top-level configuration container for the
// pet-haven API. It aggregates all sub-configurations and is populated by
// merging values from environment variables (optionally read from a .env
// file), command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix:  prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:        direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is not set.
type StructuredConfig struct {
	// App holds token parameters, the runtime environment and the
	// application version.
	App App `envPrefix:"APP_"`

	// Storage holds the document database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address, CORS origins and request bound of
	// the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of outbound integrations (payment provider).
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Environment is either "development" or "production". It controls the
	// SameSite/Secure attributes of the token cookie.
	// Env: APP_ENV
	Environment string `env:"ENV" envDefault:"development"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER" envDefault:"pet-haven"`

	// TokenDuration specifies how long a token (and its cookie) stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION" envDefault:"24h"`

	// Version is exposed via GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION" envDefault:"dev"`

	// LogLevel is the minimum zerolog level written (trace..panic).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL" envDefault:"debug"`
}

// IsProduction reports whether the app runs in the production environment.
func (a App) IsProduction() bool {
	return a.Environment == EnvProduction
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds MongoDB connection settings. Either URI or the User/Password/
// Cluster triple must be provided.
type DB struct {
	// URI is a full MongoDB connection string.
	// Env: STORAGE_DB_URI
	URI string `env:"URI"`

	// User, Password and Cluster build a mongodb+srv URI when URI is empty.
	// Env: STORAGE_DB_USER, STORAGE_DB_PASS, STORAGE_DB_CLUSTER
	User     string `env:"USER"`
	Password string `env:"PASS"`
	Cluster  string `env:"CLUSTER"`

	// Name is the database holding all collections.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME" envDefault:"petHaven"`

	// ConnectTimeout bounds the initial connect and ping.
	// Env: STORAGE_DB_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
}

// ConnectionURI returns URI when set, otherwise a mongodb+srv URI assembled
// from the credentials and cluster host.
func (d DB) ConnectionURI() string {
	if d.URI != "" {
		return d.URI
	}

	return fmt.Sprintf("mongodb+srv://%s:%s@%s/?retryWrites=true&w=majority",
		url.QueryEscape(d.User), url.QueryEscape(d.Password), d.Cluster)
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens
	// (e.g. ":5000" or "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" envDefault:":5000"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before its context is cancelled.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`

	// AllowedOrigins lists the origins allowed to call the API with
	// credentials (comma-separated in the environment).
	// Env: SERVER_ALLOWED_ORIGINS
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`
}

// Adapter holds configuration for external integrations.
type Adapter struct {
	Payment Payment `envPrefix:"PAYMENT_"`
}

// Payment holds the payment provider settings.
type Payment struct {
	// SecretKey authenticates calls to the provider API.
	// Env: ADAPTER_PAYMENT_SECRET_KEY
	SecretKey string `env:"SECRET_KEY"`

	// BaseURL is the provider API root.
	// Env: ADAPTER_PAYMENT_BASE_URL
	BaseURL string `env:"BASE_URL" envDefault:"https://api.stripe.com"`

	// Currency is the fixed ISO currency code of every payment intent.
	// Env: ADAPTER_PAYMENT_CURRENCY
	Currency string `env:"CURRENCY" envDefault:"usd"`

	// RequestTimeout bounds every provider call.
	// Env: ADAPTER_PAYMENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Environment variables (a .env file in the working directory is loaded
//     first and never overrides variables already set)
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}
