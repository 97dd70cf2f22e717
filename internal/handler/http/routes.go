// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/flate"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	router.Use(h.cors)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}
	router.Use(middleware.Compress(flate.DefaultCompression))

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(methodNotAllowed)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.root)
		r.Get("/version", h.getServerVersion)

		r.Post("/jwt", h.issueToken)
		r.Get("/logout", h.logout)

		r.Post("/users", h.createUser)
		r.Get("/user/{email}", h.getUserByEmail)

		r.Get("/pets", h.listPets)
		r.Get("/pet/{id}", h.getPet)

		r.Get("/donationCampaigns", h.listCampaigns)
		r.Get("/campaign/{id}", h.getCampaign)
		r.Get("/donations/campaign/{id}", h.listCampaignDonations)
	})

	// routes for authenticated callers
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/pets", h.createPet)
		r.Patch("/pet/{id}", h.updatePet)
		r.Delete("/pet/{id}", h.deletePet)

		r.Post("/adopt-request", h.createAdoptionRequest)
		r.Patch("/adopt-request/{id}", h.updateAdoptionRequest)

		r.Post("/donation", h.createCampaign)
		r.Patch("/donationCampaign/{id}", h.updateCampaign)

		r.Post("/create-payment-intent", h.createPaymentIntent)
		r.Post("/all-donation", h.createDonation)
		r.Delete("/donations/{id}", h.deleteDonation)

		// listings of the caller's own records
		r.Group(func(r chi.Router) {
			r.Use(h.self)

			r.Get("/pets/{email}", h.listOwnPets)
			r.Get("/adopt-request/{email}", h.listOwnAdoptionRequests)
			r.Get("/donationCampaigns/{email}", h.listOwnCampaigns)
			r.Get("/my-donations/{email}", h.listOwnDonations)
		})
	})

	// routes for admins
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.admin)

		r.Get("/users", h.listUsers)
		r.Patch("/user/admin/{id}", h.updateUserRole)
		r.Delete("/campaigns/{id}", h.deleteCampaign)
	})

	return router
}
