// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/pet-haven/internal/utils"
	"github.com/MKhiriev/pet-haven/models"
)

// issueToken signs a token for the identity in the body and sets it as the
// "token" cookie.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	var identity models.Identity
	if !decodeBody(w, r, &identity) {
		return
	}

	token, err := h.services.AuthService.IssueToken(r.Context(), identity)
	if err != nil {
		writeServiceError(w, r, err, "token issuing failed")
		return
	}

	http.SetCookie(w, h.cookie.tokenCookie(token.String()))
	utils.WriteJSON(w, models.ResultResponse{Result: true}, http.StatusOK)
}

// logout clears the token cookie. It never fails.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.cookie.tokenCookie(""))
	utils.WriteJSON(w, models.ResultResponse{Result: true}, http.StatusOK)
}
