// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/pet-haven/internal/app"
	"github.com/MKhiriev/pet-haven/internal/utils"
)

// routeNotFound replaces chi's plain-text 404 with the JSON error body used by
// every other failure.
func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgRouteNotFound, http.StatusNotFound)
}

// methodNotAllowed replaces chi's plain-text 405.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgMethodNotAllowed, http.StatusMethodNotAllowed)
}
