// Package metrics exposes ingestion and alerting counters in the Prometheus format.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"

	"locust/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "locust"

// Registry owns the collectors served on /metrics.
type Registry struct {
	registry   *prometheus.Registry
	fixes      *prometheus.CounterVec
	alerts     prometheus.Counter
	deliveries *prometheus.CounterVec
}

// NewRegistry creates a dedicated registry with process and Go runtime collectors.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r := &Registry{
		registry: reg,
		fixes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fixes_ingested_total",
			Help:      "Location fixes persisted, by geofence membership.",
		}, []string{"inside"}),
		alerts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_fired_total",
			Help:      "Geofence entry alerts created.",
		}),
		deliveries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alert_deliveries_total",
			Help:      "Alert notification attempts, by channel and outcome.",
		}, []string{"channel", "delivered"}),
	}
	reg.MustRegister(r.fixes, r.alerts, r.deliveries)

	return r
}

// NewIngestMetrics exposes the registry as the usecase-facing recorder.
func NewIngestMetrics(r *Registry) service.IngestMetrics {
	return r
}

func (r *Registry) ObserveFix(inside bool) {
	r.fixes.WithLabelValues(strconv.FormatBool(inside)).Inc()
}

func (r *Registry) ObserveAlert() {
	r.alerts.Inc()
}

func (r *Registry) ObserveDelivery(channel string, delivered bool) {
	r.deliveries.WithLabelValues(channel, strconv.FormatBool(delivered)).Inc()
}

// RegisterDBStats exports connection pool statistics for the named database.
func (r *Registry) RegisterDBStats(db *sql.DB, name string) error {
	return r.registry.Register(collectors.NewDBStatsCollector(db, name))
}

// Handler serves the registry in the exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
