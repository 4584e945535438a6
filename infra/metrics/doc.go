// Package metrics exports tree shape and rebalancing counters to
// Prometheus.
package metrics
