package handlers

import (
	"net/http"

	"github.com/northbeam-capital/website/internal/contact"
	"github.com/northbeam-capital/website/pkg/logger"
)

const (
	contactFragment      = "#contact"
	testimonialsFragment = "#testimonials"
)

func (h *Handler) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	v, ok := h.visitor(w, r)
	if !ok || !parseForm(w, r) {
		return
	}

	var done <-chan contact.Result
	err := v.Contact.Update(postedValues(r, contact.PageFieldOrder))
	if err == nil {
		done, err = v.Contact.Submit(r.Context())
	}

	h.finishSubmit(w, r, done, err, contactFragment)
}

func (h *Handler) ContactReset(w http.ResponseWriter, r *http.Request) {
	v, ok := h.visitor(w, r)
	if !ok {
		return
	}
	if err := v.Contact.Reset(); err != nil {
		h.log.Debug("ignored reset", logger.Error(err))
	}
	redirect(w, r, contactFragment)
}

func (h *Handler) ContactDismissError(w http.ResponseWriter, r *http.Request) {
	if v, ok := h.visitor(w, r); ok {
		v.Contact.DismissFailure()
		redirect(w, r, contactFragment)
	}
}

func (h *Handler) TestimonialNext(w http.ResponseWriter, r *http.Request) {
	if v, ok := h.visitor(w, r); ok {
		v.Carousel.Next()
		redirect(w, r, testimonialsFragment)
	}
}

func (h *Handler) TestimonialPrevious(w http.ResponseWriter, r *http.Request) {
	if v, ok := h.visitor(w, r); ok {
		v.Carousel.Previous()
		redirect(w, r, testimonialsFragment)
	}
}
