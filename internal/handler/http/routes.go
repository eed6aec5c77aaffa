package http

import (
	"github.com/MKhiriev/go-estate/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// provider callbacks are signed over the raw body, so no gzip here
	router.With(h.webhookSignature).Post("/api/payments/webhook", h.paymentWebhook)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/version/", h.getServerVersion)

		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Get("/api/listings", h.searchListings)

		r.Group(func(r chi.Router) {
			r.Use(h.optionalAuth)
			r.Get("/api/listings/{id}", h.getListing)
			r.Get("/api/listings/{id}/contact", h.getContact)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/api/listings/{id}/unlock", h.unlockContact)
			r.Post("/api/payments/orders", h.createPaymentOrder)
			r.Post("/api/payments/verify", h.verifyPayment)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth, requireRole(models.RolePromoter))
			r.Post("/api/listings", h.createListing)
			r.Patch("/api/listings/{id}", h.editListing)
			r.Get("/api/promoter/listings", h.myListings)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth, requireRole(models.RoleAdmin))
			r.Get("/api/admin/listings", h.adminListings)
			r.Post("/api/admin/listings/{id}/approve", h.approveListing)
			r.Post("/api/admin/listings/{id}/reject", h.rejectListing)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
