package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Метрики диспетчера.
var (
	// DispatchesTotal — количество обработанных сообщений по исходу
	// (skipped, invoked, error).
	DispatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "hare_dispatches_total",
			Help: "Processed messages by dispatch outcome.",
		},
		[]string{"outcome"},
	)

	// InvocationDuration — длительность выполнения скриптов.
	InvocationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "hare_invocation_duration_seconds",
			Help:    "Handler script execution time.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		},
	)

	// InflightInvocations — число скриптов, работающих прямо сейчас.
	InflightInvocations = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "hare_inflight_invocations",
			Help: "Handler scripts currently running.",
		},
	)
)

func init() {
	prometheus.MustRegister(
		DispatchesTotal,
		InvocationDuration,
		InflightInvocations,
	)
}
