package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the Prometheus instruments used by the attendant.
type Metrics struct {
	Events        *prometheus.CounterVec
	Actions       *prometheus.CounterVec
	MutedDrops    prometheus.Counter
	CallsRejected prometheus.Counter
	ActiveWorkers prometheus.Gauge
}

func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		Events: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_total",
			Help:      "Inbound conversational events by classified intent.",
		}, []string{"intent"}),
		Actions: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_total",
			Help:      "Outbound actions delivered by kind.",
		}, []string{"kind"}),
		MutedDrops: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "muted_drops_total",
			Help:      "Events dropped because the correspondent was muted.",
		}),
		CallsRejected: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls_rejected_total",
			Help:      "Incoming calls rejected by the call guard.",
		}),
		ActiveWorkers: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_workers",
			Help:      "Per-correspondent dispatch workers currently alive.",
		}),
	}
}

func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
