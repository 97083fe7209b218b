// Package metrics declares the Prometheus collectors for roster activity.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values.
const (
	OutcomeSuccess           = "success"
	OutcomeNotFound          = "not_found"
	OutcomeAlreadyRegistered = "already_registered"
	OutcomeNotRegistered     = "not_registered"
	OutcomeInvalid           = "invalid"
)

// UnknownActivity replaces activity names that are not on the roster so
// arbitrary request paths cannot grow label cardinality.
const UnknownActivity = "unknown"

var (
	Signups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mergington",
			Name:      "signups_total",
			Help:      "Signup attempts by activity and outcome.",
		},
		[]string{"activity", "outcome"},
	)

	Unregistrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "mergington",
			Name:      "unregistrations_total",
			Help:      "Unregister attempts by activity and outcome.",
		},
		[]string{"activity", "outcome"},
	)

	Participants = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "mergington",
			Name:      "activity_participants",
			Help:      "Current number of participants per activity.",
		},
		[]string{"activity"},
	)
)
