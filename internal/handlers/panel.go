package handlers

import (
	"net/http"

	"github.com/northbeam-capital/website/internal/contact"
	"github.com/northbeam-capital/website/internal/widget"
	"github.com/northbeam-capital/website/pkg/apperror"
	"github.com/northbeam-capital/website/pkg/logger"
)

func (h *Handler) PanelToggle(w http.ResponseWriter, r *http.Request) {
	if v, ok := h.visitor(w, r); ok {
		v.Dropdown.Toggle()
		redirect(w, r, "")
	}
}

func (h *Handler) PanelOpen(w http.ResponseWriter, r *http.Request) {
	if v, ok := h.visitor(w, r); ok {
		v.Dropdown.Open()
		redirect(w, r, "")
	}
}

func (h *Handler) PanelClose(w http.ResponseWriter, r *http.Request) {
	if v, ok := h.visitor(w, r); ok {
		v.Dropdown.Close()
		redirect(w, r, "")
	}
}

func (h *Handler) PanelEscape(w http.ResponseWriter, r *http.Request) {
	if v, ok := h.visitor(w, r); ok {
		v.Dropdown.Escape()
		redirect(w, r, "")
	}
}

// PanelDismiss handles a pointer interaction reported by the page script.
// A missing target counts as outside.
func (h *Handler) PanelDismiss(w http.ResponseWriter, r *http.Request) {
	v, ok := h.visitor(w, r)
	if !ok || !parseForm(w, r) {
		return
	}

	target := widget.TargetOutside
	if raw := r.PostForm.Get("target"); raw != "" {
		t, err := widget.ParseTarget(raw)
		if err != nil {
			apperror.Write(w, apperror.NewBadRequest("unknown pointer target").
				WithInternal(err).
				WithDetails(map[string]any{"target": raw}))
			return
		}
		target = t
	}

	v.Dropdown.PointerDown(target)
	redirect(w, r, "")
}

func (h *Handler) PanelVariant(w http.ResponseWriter, r *http.Request) {
	v, ok := h.visitor(w, r)
	if !ok || !parseForm(w, r) {
		return
	}

	raw := r.PostForm.Get("variant")
	variant, err := contact.ParseVariant(raw)
	if err != nil {
		apperror.Write(w, apperror.NewBadRequest("unknown form variant").
			WithInternal(err).
			WithDetails(map[string]any{"variant": raw, "allowed": contact.Variants()}))
		return
	}
	if err := v.Dropdown.SelectVariant(variant); err != nil {
		apperror.Write(w, apperror.NewBadRequest("unknown form variant").WithInternal(err))
		return
	}
	redirect(w, r, "")
}

// PanelSubmit applies the posted fields to the selected variant and submits it
func (h *Handler) PanelSubmit(w http.ResponseWriter, r *http.Request) {
	v, ok := h.visitor(w, r)
	if !ok || !parseForm(w, r) {
		return
	}

	var (
		done <-chan contact.Result
		err  error
	)
	switch v.Dropdown.Variant() {
	case contact.VariantIndividual:
		form := v.Dropdown.Individual
		if err = form.Update(postedValues(r, contact.IndividualFieldOrder)); err == nil {
			done, err = form.Submit(r.Context())
		}
	default:
		form := v.Dropdown.Organization
		if err = form.Update(postedValues(r, contact.OrganizationFieldOrder)); err == nil {
			done, err = form.Submit(r.Context())
		}
	}

	h.finishSubmit(w, r, done, err, "")
}

// PanelReset returns the selected variant's form to idle after a success
func (h *Handler) PanelReset(w http.ResponseWriter, r *http.Request) {
	v, ok := h.visitor(w, r)
	if !ok {
		return
	}

	var err error
	switch v.Dropdown.Variant() {
	case contact.VariantIndividual:
		err = v.Dropdown.Individual.Reset()
	default:
		err = v.Dropdown.Organization.Reset()
	}
	if err != nil {
		h.log.Debug("ignored reset", logger.Error(err))
	}
	redirect(w, r, "")
}

func (h *Handler) PanelDismissError(w http.ResponseWriter, r *http.Request) {
	v, ok := h.visitor(w, r)
	if !ok {
		return
	}

	switch v.Dropdown.Variant() {
	case contact.VariantIndividual:
		v.Dropdown.Individual.DismissFailure()
	default:
		v.Dropdown.Organization.DismissFailure()
	}
	redirect(w, r, "")
}
