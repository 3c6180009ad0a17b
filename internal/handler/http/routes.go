// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	// payment endpoints, token-protected when authentication is configured
	router.Group(func(r chi.Router) {
		r.Use(h.withQueryNumber)
		r.Use(h.auth)

		r.Post("/check_customer", h.checkCustomer)
		r.Post("/total_amount", h.totalAmount)
		r.Post("/pay_invoices", h.payInvoices)
	})

	// operational routes
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/build", h.getBuildInfo)
		r.Get("/healthz", h.healthz)
		r.Method("GET", "/metrics", h.metrics.Handler())
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
