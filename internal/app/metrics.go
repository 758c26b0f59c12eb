package app

import "github.com/prometheus/client_golang/prometheus"

var (
	dispatchTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eventd",
			Subsystem: "dispatch",
			Name:      "total",
			Help:      "Dispatches of configured events",
		},
		[]string{"event"},
	)

	dispatchErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eventd",
			Subsystem: "dispatch",
			Name:      "errors_total",
			Help:      "Dispatches aborted by an error",
		},
		[]string{"reason"},
	)

	dispatchDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "eventd",
			Subsystem: "dispatch",
			Name:      "duration_seconds",
			Help:      "Duration of dispatches in seconds, nested dispatches included",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"event"},
	)

	observerInvocationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eventd",
			Subsystem: "observer",
			Name:      "invocations_total",
			Help:      "Observer bindings processed, by outcome (ok, failed, skipped)",
		},
		[]string{"event", "outcome"},
	)

	instancesCreated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "eventd",
			Subsystem: "factory",
			Name:      "instances_created_total",
			Help:      "Observer instances constructed",
		},
		[]string{"class"},
	)

	singletonsCached = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "eventd",
			Subsystem: "factory",
			Name:      "singletons",
			Help:      "Instances held in singleton caches",
		},
	)
)

func init() {
	prometheus.MustRegister(
		dispatchTotal,
		dispatchErrorsTotal,
		dispatchDuration,
		observerInvocationsTotal,
		instancesCreated,
		singletonsCached,
	)
}

const (
	outcomeOK      = "ok"
	outcomeFailed  = "failed"
	outcomeSkipped = "skipped"
)

func errorReason(err error) string {
	if r := reasonOf(err); r != "" {
		return string(r)
	}
	return "other"
}
