package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/northbeam-capital/website/internal/components"
	"github.com/northbeam-capital/website/internal/config"
	"github.com/northbeam-capital/website/internal/contact"
	"github.com/northbeam-capital/website/internal/content"
	"github.com/northbeam-capital/website/internal/session"
	"github.com/northbeam-capital/website/pkg/apperror"
	"github.com/northbeam-capital/website/pkg/logger"
)

// Handler renders the landing page and turns posted events into component
// state changes. Every event answers with a 303 redirect back to the page.
type Handler struct {
	site    content.Site
	store   *session.Store
	log     *slog.Logger
	wait    time.Duration
	startAt time.Time
}

// NewHandler creates the page handler. Submissions wait up to the relay timeout
// for an outcome before redirecting.
func NewHandler(cfg *config.Config, store *session.Store, log *slog.Logger) *Handler {
	return &Handler{
		site:    content.Default(),
		store:   store,
		log:     log.With(logger.Scope("handlers")),
		wait:    cfg.Relay.Timeout + time.Second,
		startAt: time.Now(),
	}
}

func (h *Handler) visitor(w http.ResponseWriter, r *http.Request) (*session.Visitor, bool) {
	v, ok := session.FromContext(r.Context())
	if !ok {
		apperror.Write(w, apperror.NewInternal("session missing", nil))
		return nil, false
	}
	return v, true
}

// Landing renders the page from the visitor's component state. A pending focus
// target is consumed so it applies to this render only.
func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	v, ok := h.visitor(w, r)
	if !ok {
		return
	}

	view := components.LandingView{
		Site: h.site,
		Panel: components.PanelView{
			State:        v.Dropdown.ConsumeFocus(),
			Organization: v.Dropdown.Organization.Snapshot(),
			Individual:   v.Dropdown.Individual.Snapshot(),
		},
		Contact:     v.Contact.Snapshot(),
		Testimonial: v.Carousel.Index(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := components.LandingPage(view).Render(w); err != nil {
		h.log.Error("render landing page", logger.Error(err))
	}
}

func redirect(w http.ResponseWriter, r *http.Request, fragment string) {
	http.Redirect(w, r, "/"+fragment, http.StatusSeeOther)
}

// postedValues picks the known field keys present in the posted form
func postedValues(r *http.Request, keys []string) map[string]string {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		if vals, ok := r.PostForm[k]; ok && len(vals) > 0 {
			out[k] = vals[0]
		}
	}
	return out
}

// finishSubmit waits for a started submission and redirects. Validation
// failures and refused submissions are already reflected in the form state.
func (h *Handler) finishSubmit(w http.ResponseWriter, r *http.Request, done <-chan contact.Result, err error, fragment string) {
	var invalid contact.ValidationErrors
	switch {
	case err == nil:
		h.await(r.Context(), done)
	case errors.As(err, &invalid):
		h.log.Debug("submission rejected by validation", slog.String("error", invalid.Error()))
	case errors.Is(err, contact.ErrSubmissionInFlight), errors.Is(err, contact.ErrAwaitingReset):
		h.log.Debug("submission refused", logger.Error(err))
	default:
		apperror.Write(w, apperror.NewInternal("submit contact form", err))
		return
	}
	redirect(w, r, fragment)
}

// await blocks until the relay outcome, the client leaving or the wait limit.
// The relay call itself keeps running in the last two cases.
func (h *Handler) await(ctx context.Context, done <-chan contact.Result) {
	timer := time.NewTimer(h.wait)
	defer timer.Stop()

	select {
	case res := <-done:
		if res.Err != nil {
			h.log.Info("submission finished with relay failure", slog.String("status", res.Status.String()))
		}
	case <-ctx.Done():
	case <-timer.C:
		h.log.Warn("submission still pending, redirecting", slog.Duration("waited", h.wait))
	}
}

func parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		apperror.Write(w, apperror.NewBadRequest("malformed form body").WithInternal(err))
		return false
	}
	return true
}
