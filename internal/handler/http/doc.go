// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the adoption and donation
// backend.
//
// Routes are registered on a chi router in three tiers: public reads,
// endpoints behind the token cookie, and endpoints that additionally require
// the admin role. Middleware covers tracing, access logging, CORS and
// response compression. Handlers decode requests, delegate to the service
// layer and map service errors onto HTTP status codes.
package http
