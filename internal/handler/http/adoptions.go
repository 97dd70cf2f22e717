// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/pet-haven/internal/utils"
	"github.com/MKhiriev/pet-haven/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createAdoptionRequest(w http.ResponseWriter, r *http.Request) {
	email, err := identity(r)
	if err != nil {
		writeServiceError(w, r, err, "adoption request without identity")
		return
	}

	var request models.AdoptionRequest
	if !decodeBody(w, r, &request) {
		return
	}

	created, err := h.services.AdoptionService.CreateRequest(r.Context(), email, request)
	if err != nil {
		writeServiceError(w, r, err, "adoption request failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// listOwnAdoptionRequests lists requests addressed to the caller as pet owner.
func (h *Handler) listOwnAdoptionRequests(w http.ResponseWriter, r *http.Request) {
	requests, err := h.services.AdoptionService.ListRequestsForOwner(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		writeServiceError(w, r, err, "adoption request listing failed")
		return
	}

	utils.WriteJSON(w, requests, http.StatusOK)
}

func (h *Handler) updateAdoptionRequest(w http.ResponseWriter, r *http.Request) {
	email, err := identity(r)
	if err != nil {
		writeServiceError(w, r, err, "adoption decision without identity")
		return
	}

	var update models.AdoptionRequestUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	result, err := h.services.AdoptionService.UpdateStatus(r.Context(), email, chi.URLParam(r, "id"), update)
	if err != nil {
		writeServiceError(w, r, err, "adoption decision failed")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
