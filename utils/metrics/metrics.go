package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "booking_capacity"

var (
	// CapacityMutations counts committed counter changes by operation
	// (reserve, release) and link role.
	CapacityMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "mutations_total",
		Help:      "Capacity counter changes applied, by operation and role.",
	}, []string{"operation", "role"})

	// InsufficientCapacity counts conditional decrements that matched no row.
	InsufficientCapacity = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "insufficient_total",
		Help:      "Conditional decrements rejected for lack of remaining capacity.",
	}, []string{"role"})

	RowNotFound = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "row_not_found_total",
		Help:      "Releases or resolutions that found no capacity row.",
	}, []string{"operation"})

	Materializations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "materializations_total",
		Help:      "Date rows created from weekday templates.",
	})

	Violations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sanity_violations_total",
		Help:      "Quantity changes refused by the sanity validator.",
	})

	GlobalSlotTasks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "global_slot_tasks_total",
		Help:      "Global timeslot tasks by outcome.",
	}, []string{"outcome"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method, route and status.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "status"})
)
