// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/pet-haven/internal/utils"
	"github.com/MKhiriev/pet-haven/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createCampaign(w http.ResponseWriter, r *http.Request) {
	email, err := identity(r)
	if err != nil {
		writeServiceError(w, r, err, "campaign creation without identity")
		return
	}

	var campaign models.Campaign
	if !decodeBody(w, r, &campaign) {
		return
	}

	created, err := h.services.CampaignService.CreateCampaign(r.Context(), email, campaign)
	if err != nil {
		writeServiceError(w, r, err, "campaign creation failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.services.CampaignService.ListCampaigns(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeServiceError(w, r, err, "campaign listing failed")
		return
	}

	utils.WriteJSON(w, campaigns, http.StatusOK)
}

func (h *Handler) listOwnCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.services.CampaignService.ListCampaignsByOwner(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		writeServiceError(w, r, err, "owner campaign listing failed")
		return
	}

	utils.WriteJSON(w, campaigns, http.StatusOK)
}

func (h *Handler) getCampaign(w http.ResponseWriter, r *http.Request) {
	campaign, err := h.services.CampaignService.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "campaign lookup failed")
		return
	}

	utils.WriteJSON(w, campaign, http.StatusOK)
}

func (h *Handler) updateCampaign(w http.ResponseWriter, r *http.Request) {
	email, err := identity(r)
	if err != nil {
		writeServiceError(w, r, err, "campaign update without identity")
		return
	}

	var update models.CampaignUpdate
	if !decodeBody(w, r, &update) {
		return
	}

	result, err := h.services.CampaignService.UpdateCampaign(r.Context(), email, chi.URLParam(r, "id"), update)
	if err != nil {
		writeServiceError(w, r, err, "campaign update failed")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) deleteCampaign(w http.ResponseWriter, r *http.Request) {
	result, err := h.services.CampaignService.DeleteCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "campaign deletion failed")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
