// Package relay delivers contact-form payloads to a transactional-email service.
//
// A Relay is given a Destination (the service + template pair that the email
// provider uses to route and format the message) and a flat Payload of template
// parameters. Send either succeeds or fails as a whole; retries, rate limits and
// authentication are owned by the provider.
package relay

import (
	"context"
	"fmt"
	"sort"
)

// Relay sends one payload to one destination
type Relay interface {
	Send(ctx context.Context, dest Destination, payload Payload) error
}

// Destination identifies where a payload is routed by the provider
type Destination struct {
	ServiceID  string
	TemplateID string
}

// Payload is the flat set of template parameters sent with a message
type Payload map[string]string

// Keys returns the payload keys in sorted order
func (p Payload) Keys() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Error is returned when a provider rejects a message
type Error struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s relay: %v", e.Provider, e.Err)
	case e.Body != "":
		return fmt.Sprintf("%s relay: status %d: %s", e.Provider, e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("%s relay: status %d", e.Provider, e.StatusCode)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
