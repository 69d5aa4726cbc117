// Package metrics defines the prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sitecms"

var (
	// ResolverLookups counts resolver reads. Labels: kind (menu, tabs), result (hit, miss, error).
	ResolverLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "resolver",
		Name:      "lookups_total",
		Help:      "Content group lookups by kind and result.",
	}, []string{"kind", "result"})

	// SanitizedWrites counts rich-text payloads cleaned before persistence.
	SanitizedWrites = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "sanitized_writes_total",
		Help:      "Rich-text payloads passed through the sanitizer.",
	})

	// Reorders counts committed reorder transactions. Labels: kind.
	Reorders = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "reorders_total",
		Help:      "Committed item reorders by group kind.",
	}, []string{"kind"})
)

const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
)
