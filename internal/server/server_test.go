package server

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, log *slog.Logger) http.Handler {
	t.Helper()
	r, err := NewRouter(RouterParams{Log: log})
	require.NoError(t, err)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })
	r.Get("/ok", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) })
	return r
}

func TestRouter_ServesStaticFiles(t *testing.T) {
	r := newTestRouter(t, slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/js/contact-panel.js", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/contact/panel/escape")
}

func TestContactPanelScript_LeavesLinkClicksAlone(t *testing.T) {
	r := newTestRouter(t, slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/js/contact-panel.js", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	js := rec.Body.String()
	assert.Contains(t, js, `closest("a, button")`)
	assert.Contains(t, js, `send("/contact/panel/dismiss", "outside", !interactive)`)
	assert.Contains(t, js, "keepalive: true")
	assert.Contains(t, js, "if (reload) {")
}

func TestRouter_ServesMetrics(t *testing.T) {
	r := newTestRouter(t, slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestRouter_RecoversPanics(t *testing.T) {
	r := newTestRouter(t, slog.New(slog.NewTextHandler(io.Discard, nil)))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := newTestRouter(t, slog.New(slog.NewTextHandler(&buf, nil)))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Contains(t, buf.String(), "level=INFO")
	assert.Contains(t, buf.String(), "scope=http")
	assert.Contains(t, buf.String(), "/ok")
	assert.Contains(t, buf.String(), " 204 ")

	buf.Reset()
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Empty(t, buf.String())
}
