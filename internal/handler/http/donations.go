// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/pet-haven/internal/utils"
	"github.com/MKhiriev/pet-haven/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	var request models.PaymentIntentRequest
	if !decodeBody(w, r, &request) {
		return
	}

	response, err := h.services.PaymentService.CreateIntent(r.Context(), request)
	if err != nil {
		writeServiceError(w, r, err, "payment intent creation failed")
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// createDonation records a donation whose payment the client has confirmed.
func (h *Handler) createDonation(w http.ResponseWriter, r *http.Request) {
	email, err := identity(r)
	if err != nil {
		writeServiceError(w, r, err, "donation without identity")
		return
	}

	var donation models.Donation
	if !decodeBody(w, r, &donation) {
		return
	}

	created, err := h.services.DonationService.CreateDonation(r.Context(), email, donation)
	if err != nil {
		writeServiceError(w, r, err, "donation recording failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listOwnDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := h.services.DonationService.ListDonationsByDonator(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		writeServiceError(w, r, err, "donator donation listing failed")
		return
	}

	utils.WriteJSON(w, donations, http.StatusOK)
}

func (h *Handler) listCampaignDonations(w http.ResponseWriter, r *http.Request) {
	donations, err := h.services.DonationService.ListDonationsByCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "campaign donation listing failed")
		return
	}

	utils.WriteJSON(w, donations, http.StatusOK)
}

func (h *Handler) deleteDonation(w http.ResponseWriter, r *http.Request) {
	email, err := identity(r)
	if err != nil {
		writeServiceError(w, r, err, "donation deletion without identity")
		return
	}

	result, err := h.services.DonationService.DeleteDonation(r.Context(), email, chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "donation deletion failed")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
