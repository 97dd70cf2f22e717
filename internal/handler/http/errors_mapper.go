// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/pet-haven/internal/adapter"
	"github.com/MKhiriev/pet-haven/internal/app"
	"github.com/MKhiriev/pet-haven/internal/logger"
	"github.com/MKhiriev/pet-haven/internal/service"
	"github.com/MKhiriev/pet-haven/internal/store"
	"github.com/MKhiriev/pet-haven/internal/utils"
	"github.com/MKhiriev/pet-haven/internal/validators"
)

type errorResponse struct {
	status  int
	message string
}

// errorStatusTable is matched top to bottom; the first sentinel found in
// the error chain wins.
var errorStatusTable = []struct {
	target  error
	status  int
	message string
}{
	{store.ErrInvalidIdentifier, http.StatusBadRequest, app.MsgInvalidIdentifier},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrValidation, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrNothingToUpdate, http.StatusBadRequest, app.MsgNothingToUpdate},
	{service.ErrSelfAdoption, http.StatusBadRequest, app.MsgSelfAdoption},
	{service.ErrPaymentNotVerified, http.StatusBadRequest, app.MsgPaymentNotVerified},

	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgUnauthorizedAccess},
	{ErrNoIdentity, http.StatusUnauthorized, app.MsgUnauthorizedAccess},

	{service.ErrForbidden, http.StatusForbidden, app.MsgForbiddenAccess},

	{store.ErrNotFound, http.StatusNotFound, app.MsgNotFound},

	{store.ErrUserAlreadyExists, http.StatusConflict, app.MsgUserAlreadyExists},
	{store.ErrDuplicateKey, http.StatusConflict, app.MsgAlreadyExists},
	{service.ErrPetUnavailable, http.StatusConflict, app.MsgPetUnavailable},
	{service.ErrCampaignPaused, http.StatusConflict, app.MsgCampaignPaused},
	{service.ErrDonationAlreadyRecorded, http.StatusConflict, app.MsgDonationAlreadyRecorded},

	{adapter.ErrPaymentProvider, http.StatusBadGateway, app.MsgPaymentProviderError},
}

func responseFromError(err error) errorResponse {
	for _, entry := range errorStatusTable {
		if errors.Is(err, entry.target) {
			return errorResponse{entry.status, entry.message}
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return responseFromError(err).status
}

// writeServiceError logs err and writes the mapped {"message": ...} body.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg(msg)
	} else {
		log.Debug().Err(err).Int("status", resp.status).Msg(msg)
	}

	utils.WriteError(w, resp.message, resp.status)
}
