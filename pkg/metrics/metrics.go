// Package metrics provides Prometheus metrics for the type layer: which
// formats are exercised, how often serialization fails, and how many types
// are registered. Metrics are registered automatically via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SerializationOps counts text serialization operations.
	// Labels: format (escaped/quoted/csv/plain/json/xml), direction
	// (serialize/deserialize), origin (domain/type)
	SerializationOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meridian_serialization_ops_total",
			Help: "Total number of text serialization operations",
		},
		[]string{"format", "direction", "origin"},
	)

	// SerializationErrors counts failed text serialization operations.
	// Labels: format, direction
	SerializationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "meridian_serialization_errors_total",
			Help: "Total number of failed text serialization operations",
		},
		[]string{"format", "direction"},
	)

	// TypesRegistered tracks the number of data types in the registry.
	// Labels: registry (default/custom)
	TypesRegistered = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "meridian_types_registered",
			Help: "Number of registered data types",
		},
		[]string{"registry"},
	)
)
