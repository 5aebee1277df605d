package session

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/northbeam-capital/website/internal/config"
	"github.com/northbeam-capital/website/internal/relay"
)

type okRelay struct{}

func (okRelay) Send(context.Context, relay.Destination, relay.Payload) error { return nil }

func testConfig() *config.Config {
	return &config.Config{
		Session: config.SessionConfig{TTL: 10 * time.Minute, CookieName: "nb_session"},
		Relay:   config.RelayConfig{Provider: config.ProviderNoop},
	}
}

func newTestStore(t *testing.T) (*Store, *time.Time) {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testConfig()
	s := NewStore(cfg, NewFactory(okRelay{}, cfg, log), log)

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	return s, &now
}

func TestFactory_BuildsIndependentState(t *testing.T) {
	cfg := testConfig()
	f := NewFactory(okRelay{}, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	a, b := f("a"), f("b")
	require.NotNil(t, a.Dropdown)
	require.NotNil(t, a.Carousel)
	require.NotNil(t, a.Contact)
	assert.Equal(t, 4, a.Carousel.Len())

	a.Dropdown.Open()
	a.Carousel.Next()
	assert.False(t, b.Dropdown.IsOpen())
	assert.Equal(t, 0, b.Carousel.Index())
}

func TestStore_CreateAndGet(t *testing.T) {
	s, _ := newTestStore(t)

	v := s.Create()
	require.NotEmpty(t, v.ID)

	got, ok := s.Get(v.ID)
	require.True(t, ok)
	assert.Same(t, v, got)

	_, ok = s.Get("unknown")
	assert.False(t, ok)
}

func TestStore_ExpiresIdleVisitors(t *testing.T) {
	s, now := newTestStore(t)
	v := s.Create()

	*now = now.Add(9 * time.Minute)
	_, ok := s.Get(v.ID)
	require.True(t, ok, "access inside the TTL refreshes the timer")

	*now = now.Add(9 * time.Minute)
	_, ok = s.Get(v.ID)
	require.True(t, ok)

	*now = now.Add(11 * time.Minute)
	_, ok = s.Get(v.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, s.Len())
}

func TestStore_Sweep(t *testing.T) {
	s, now := newTestStore(t)
	s.Create()
	s.Create()
	require.Equal(t, 2, s.Len())

	assert.Equal(t, 0, s.Sweep())

	*now = now.Add(time.Hour)
	assert.Equal(t, 2, s.Sweep())
	assert.Equal(t, 0, s.Len())
}

func TestStore_StartStop(t *testing.T) {
	s, _ := newTestStore(t)

	require.NoError(t, s.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	assert.NoError(t, s.Stop(ctx))
}

func TestStore_StopWithoutStart(t *testing.T) {
	s, _ := newTestStore(t)
	assert.NoError(t, s.Stop(context.Background()))
}

func TestMiddleware_CreatesVisitorAndCookie(t *testing.T) {
	s, _ := newTestStore(t)
	cfg := testConfig()

	var seen *Visitor
	h := s.Middleware(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		v, ok := FromContext(r.Context())
		require.True(t, ok)
		seen = v
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, seen)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "nb_session", cookies[0].Name)
	assert.Equal(t, seen.ID, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	// the same cookie resolves to the same visitor
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	first := seen
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Same(t, first, seen)
	assert.Empty(t, rec.Result().Cookies())
}

func TestMiddleware_UnknownCookieGetsFreshVisitor(t *testing.T) {
	s, _ := newTestStore(t)

	var seen *Visitor
	h := s.Middleware(testConfig())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "nb_session", Value: "stale"})
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.NotNil(t, seen)
	assert.NotEqual(t, "stale", seen.ID)
	assert.Len(t, rec.Result().Cookies(), 1)
}

func TestFromContext_Missing(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)
}
