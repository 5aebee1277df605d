package contact

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "contact_form_submissions_total",
	Help: "Submit attempts per contact form, by outcome (accepted, invalid, in_flight)",
}, []string{"form", "outcome"})
