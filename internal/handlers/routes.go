package handlers

import (
	"github.com/go-chi/chi/v5"

	"github.com/northbeam-capital/website/internal/config"
	"github.com/northbeam-capital/website/internal/session"
)

// RegisterRoutes registers the page and event routes. Everything except the
// health check runs inside a visitor session.
func RegisterRoutes(r *chi.Mux, h *Handler, store *session.Store, cfg *config.Config) {
	r.Get("/health", h.Health)

	r.Group(func(r chi.Router) {
		r.Use(store.Middleware(cfg))

		r.Get("/", h.Landing)

		r.Route("/contact/panel", func(r chi.Router) {
			r.Post("/toggle", h.PanelToggle)
			r.Post("/open", h.PanelOpen)
			r.Post("/close", h.PanelClose)
			r.Post("/escape", h.PanelEscape)
			r.Post("/dismiss", h.PanelDismiss)
			r.Post("/variant", h.PanelVariant)
			r.Post("/submit", h.PanelSubmit)
			r.Post("/reset", h.PanelReset)
			r.Post("/dismiss-error", h.PanelDismissError)
		})

		r.Route("/contact/page", func(r chi.Router) {
			r.Post("/submit", h.ContactSubmit)
			r.Post("/reset", h.ContactReset)
			r.Post("/dismiss-error", h.ContactDismissError)
		})

		r.Post("/testimonials/next", h.TestimonialNext)
		r.Post("/testimonials/previous", h.TestimonialPrevious)
	})
}
