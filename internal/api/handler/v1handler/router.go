package v1handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Router builds the v1 route tree. Everything except the Stripe webhook sits
// behind bearer authentication.
func Router(handler *Handler, sec *SecHandler) http.Handler {
	r := chi.NewRouter()

	r.Post("/billing/webhook", handler.StripeWebhook)

	r.Group(func(r chi.Router) {
		r.Use(sec.Middleware(handler.deps.Storage))

		r.Route("/businesses", func(r chi.Router) {
			r.Post("/", handler.CreateBusiness)
			r.Get("/", handler.ListBusinesses)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handler.GetBusiness)
				r.Delete("/", handler.DeleteBusiness)
				r.Post("/refresh", handler.RefreshBusiness)
				r.Get("/fingerprint", handler.GetFingerprint)
				r.Get("/fingerprints", handler.ListFingerprints)
				r.Get("/competitors", handler.ListCompetitors)
			})
		})

		r.Get("/team", handler.GetTeam)

		r.Post("/billing/checkout", handler.CreateCheckout)
		r.Post("/billing/portal", handler.CreatePortal)
	})

	return r
}
