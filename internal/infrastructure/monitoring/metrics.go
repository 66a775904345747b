// Package monitoring provides Prometheus metrics for home screen
// operations. The collector is optional; managers run without one.
package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/gridhome/springboard/internal/shared/errs"
)

// Metrics holds the springboard Prometheus collectors.
type Metrics struct {
	// OpsTotal counts public operations by name and outcome. The status
	// label is "ok" or the error type from the taxonomy.
	OpsTotal *prometheus.CounterVec

	AppsInstalled prometheus.Gauge
	FoldersActive prometheus.Gauge
	PagesActive   prometheus.Gauge
	AppsRunning   prometheus.Gauge
	DockItems     prometheus.Gauge
}

// NewMetrics creates a collector registered on the default registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith creates a collector registered on reg. Tests pass a
// fresh registry to avoid duplicate registration.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		OpsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "springboard_operations_total",
				Help: "Total home screen operations by name and outcome",
			},
			[]string{"operation", "status"},
		),
		AppsInstalled: factory.NewGauge(prometheus.GaugeOpts{
			Name: "springboard_apps_installed",
			Help: "Number of installed apps",
		}),
		FoldersActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "springboard_folders_active",
			Help: "Number of folders",
		}),
		PagesActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "springboard_pages_active",
			Help: "Number of home screen pages",
		}),
		AppsRunning: factory.NewGauge(prometheus.GaugeOpts{
			Name: "springboard_apps_running",
			Help: "Number of apps in the running queue",
		}),
		DockItems: factory.NewGauge(prometheus.GaugeOpts{
			Name: "springboard_dock_items",
			Help: "Number of items in the dock",
		}),
	}
}

// RecordOp records one operation outcome.
func (m *Metrics) RecordOp(operation string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
		if t := errs.TypeOf(err); t != "" {
			status = string(t)
		}
	}
	m.OpsTotal.WithLabelValues(operation, status).Inc()
}

// SetCounts updates the layout gauges in one shot.
func (m *Metrics) SetCounts(apps, folders, pages, running, dock int) {
	m.AppsInstalled.Set(float64(apps))
	m.FoldersActive.Set(float64(folders))
	m.PagesActive.Set(float64(pages))
	m.AppsRunning.Set(float64(running))
	m.DockItems.Set(float64(dock))
}
