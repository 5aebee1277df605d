package relay

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SendTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_relay_sends_total",
		Help: "Total number of contact payloads handed to the email relay",
	}, []string{"provider", "outcome"})

	SendDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "contact_relay_send_duration_seconds",
		Help:    "Time spent waiting for the email relay to accept or reject a payload",
		Buckets: prometheus.DefBuckets,
	}, []string{"provider"})
)

type instrumented struct {
	next     Relay
	provider string
}

// Instrument wraps r so every Send is counted and timed under provider
func Instrument(r Relay, provider string) Relay {
	return &instrumented{next: r, provider: provider}
}

func (r *instrumented) Send(ctx context.Context, dest Destination, payload Payload) error {
	start := time.Now()
	err := r.next.Send(ctx, dest, payload)
	SendDuration.WithLabelValues(r.provider).Observe(time.Since(start).Seconds())

	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	SendTotal.WithLabelValues(r.provider, outcome).Inc()
	return err
}
