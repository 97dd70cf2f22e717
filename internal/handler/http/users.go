// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/pet-haven/internal/app"
	"github.com/MKhiriev/pet-haven/internal/logger"
	"github.com/MKhiriev/pet-haven/internal/utils"
	"github.com/MKhiriev/pet-haven/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if !decodeBody(w, r, &user) {
		return
	}

	created, err := h.services.UserService.CreateUser(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err, "user registration failed")
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// getUserByEmail answers with the user document or JSON null.
func (h *Handler) getUserByEmail(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetUserByEmail(r.Context(), chi.URLParam(r, "email"))
	if err != nil {
		writeServiceError(w, r, err, "user lookup failed")
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "user listing failed")
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// updateUserRole accepts an optional {"role": ...} body; an empty body
// promotes the user to admin.
func (h *Handler) updateUserRole(w http.ResponseWriter, r *http.Request) {
	var update models.RoleUpdate
	if err := utils.DecodeJSON(r.Body, &update); err != nil && !errors.Is(err, io.EOF) {
		logger.FromRequest(r).Debug().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	result, err := h.services.UserService.UpdateRole(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		writeServiceError(w, r, err, "role update failed")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}
