// Package session keeps per-visitor component state in memory.
//
// A visitor is created on the first request without a known cookie (mount) and
// evicted after the configured idle TTL (unmount). Nothing is persisted.
package session

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/northbeam-capital/website/internal/config"
	"github.com/northbeam-capital/website/internal/contact"
	"github.com/northbeam-capital/website/internal/content"
	"github.com/northbeam-capital/website/internal/relay"
	"github.com/northbeam-capital/website/internal/widget"
	"github.com/northbeam-capital/website/pkg/logger"
)

// Visitor owns the component state of one browser session
type Visitor struct {
	ID       string
	Dropdown *widget.Dropdown
	Carousel *widget.Carousel
	Contact  *contact.PageForm
}

// Factory builds the initial state of a new visitor
type Factory func(id string) *Visitor

// NewFactory wires new visitors to the relay and the configured destinations
func NewFactory(r relay.Relay, cfg *config.Config, log *slog.Logger) Factory {
	dropdownDest, pageDest := relay.Destinations(cfg)
	testimonials := len(content.Default().Testimonials)

	return func(id string) *Visitor {
		vlog := log.With(slog.String("visitor", id))
		return &Visitor{
			ID:       id,
			Dropdown: widget.NewDropdown(r, dropdownDest, vlog),
			Carousel: widget.NewCarousel(testimonials),
			Contact:  contact.NewPageForm(r, pageDest, vlog),
		}
	}
}

type entry struct {
	visitor  *Visitor
	lastSeen time.Time
}

// Store is an in-memory visitor registry with idle expiry
type Store struct {
	ttl     time.Duration
	factory Factory
	log     *slog.Logger
	now     func() time.Time

	mu       sync.Mutex
	visitors map[string]*entry

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewStore creates an empty store
func NewStore(cfg *config.Config, factory Factory, log *slog.Logger) *Store {
	return &Store{
		ttl:      cfg.Session.TTL,
		factory:  factory,
		log:      log.With(logger.Scope("session")),
		now:      time.Now,
		visitors: make(map[string]*entry),
	}
}

// Get returns a live visitor and refreshes its idle timer
func (s *Store) Get(id string) (*Visitor, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.visitors[id]
	if !ok {
		return nil, false
	}
	now := s.now()
	if now.Sub(e.lastSeen) > s.ttl {
		delete(s.visitors, id)
		return nil, false
	}
	e.lastSeen = now
	return e.visitor, true
}

// Create registers a new visitor with fresh component state
func (s *Store) Create() *Visitor {
	id := uuid.NewString()
	v := s.factory(id)

	s.mu.Lock()
	s.visitors[id] = &entry{visitor: v, lastSeen: s.now()}
	s.mu.Unlock()

	s.log.Debug("visitor created", slog.String("visitor", id))
	return v
}

// Len returns the number of tracked visitors
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// Sweep evicts visitors idle for longer than the TTL and returns how many
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	evicted := 0
	for id, e := range s.visitors {
		if now.Sub(e.lastSeen) > s.ttl {
			delete(s.visitors, id)
			evicted++
		}
	}
	return evicted
}

// Start runs the eviction loop until Stop
func (s *Store) Start(ctx context.Context) error {
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})

	interval := s.ttl / 2
	if interval < time.Second {
		interval = time.Second
	}

	go func() {
		defer close(s.doneCh)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-s.stopCh:
				return
			case <-ticker.C:
				if n := s.Sweep(); n > 0 {
					s.log.Debug("evicted idle visitors", slog.Int("count", n))
				}
			}
		}
	}()

	s.log.Info("session janitor started", slog.Duration("ttl", s.ttl), slog.Duration("interval", interval))
	return nil
}

// Stop ends the eviction loop
func (s *Store) Stop(ctx context.Context) error {
	if s.stopCh == nil {
		return nil
	}
	close(s.stopCh)

	select {
	case <-s.doneCh:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type contextKey struct{}

// WithVisitor returns a context carrying v
func WithVisitor(ctx context.Context, v *Visitor) context.Context {
	return context.WithValue(ctx, contextKey{}, v)
}

// FromContext returns the visitor attached by Middleware
func FromContext(ctx context.Context) (*Visitor, bool) {
	v, ok := ctx.Value(contextKey{}).(*Visitor)
	return v, ok
}

// Middleware resolves the visitor from the session cookie, creating one (and
// setting the cookie) when the cookie is missing or expired
func (s *Store) Middleware(cfg *config.Config) func(http.Handler) http.Handler {
	name := cfg.Session.CookieName
	secure := cfg.Session.Secure

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var v *Visitor
			if c, err := r.Cookie(name); err == nil {
				v, _ = s.Get(c.Value)
			}
			if v == nil {
				v = s.Create()
				http.SetCookie(w, &http.Cookie{
					Name:     name,
					Value:    v.ID,
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}
			next.ServeHTTP(w, r.WithContext(WithVisitor(r.Context(), v)))
		})
	}
}
