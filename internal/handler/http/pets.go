// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/pet-haven/internal/utils"
	"github.com/MKhiriev/pet-haven/models"
	"github.com/go-chi/chi/v5"
)

// createPet stores a listing owned by the caller.
func (h *Handler) createPet(w http.ResponseWriter, r *http.Request) {
	email, err := identity(r)
	if err != nil {
		writeServiceError(w, r, err, "pet creation without identity")
		return
	}

	var pet models.Pet
	if !decodeBody(w, r, &pet) {
		return
	}

	created, err := h.services.PetService.CreatePet(r.Context(), email, pet)
	if err != nil {
		writeServiceError(w, r, err, "pet creation failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// listPets supports the optional query parameters search, category and status.
func (h *Handler) listPets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := models.PetFilter{
		Search:   query.Get("search"),
		Category: query.Get("category"),
		Status:   models.PetStatus(query.Get("status")),
	}

	pets, err := h.services.PetService.ListPets(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, "pet listing failed")
		return
	}

	utils.WriteJSON(w, pets, http.StatusOK)
}

func (h *Handler) listOwnPets(w http.ResponseWriter, r *http.Request) {
	pets, err := h.services.PetService.ListPetsByOwner(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		writeServiceError(w, r, err, "owner pet listing failed")
		return
	}

	utils.WriteJSON(w, pets, http.StatusOK)
}

func (h *Handler) getPet(w http.ResponseWriter, r *http.Request) {
	pet, err := h.services.PetService.GetPet(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "pet lookup failed")
		return
	}

	utils.WriteJSON(w, pet, http.StatusOK)
}

func (h *Handler) updatePet(w http.ResponseWriter, r *http.Request) {
	email, err := identity(r)
	if err != nil {
		writeServiceError(w, r, err, "pet update without identity")
		return
	}

	var update models.PetUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	result, err := h.services.PetService.UpdatePet(r.Context(), email, chi.URLParam(r, "id"), update)
	if err != nil {
		writeServiceError(w, r, err, "pet update failed")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) deletePet(w http.ResponseWriter, r *http.Request) {
	email, err := identity(r)
	if err != nil {
		writeServiceError(w, r, err, "pet deletion without identity")
		return
	}

	result, err := h.services.PetService.DeletePet(r.Context(), email, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "pet deletion failed")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
