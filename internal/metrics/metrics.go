package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ResolutionAttemptsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zoneintel_resolution_attempts_total",
		Help: "Total geo resolution attempts by outcome",
	}, []string{"outcome"})
	ResolutionSuccessRate = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "zoneintel_resolution_success_rate",
		Help: "Rolling resolution success rate over the trailing window",
	})
	HotspotsDetectedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "zoneintel_hotspots_detected_total",
		Help: "Total hotspots emitted by the detector",
	})
	ForecastsSkippedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "zoneintel_forecasts_skipped_total",
		Help: "Total zones skipped for insufficient forecast history",
	})
	AlertsFiredTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zoneintel_alerts_fired_total",
		Help: "Total alerts dispatched by tier",
	}, []string{"tier"})
	AlertsSuppressedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zoneintel_alerts_suppressed_total",
		Help: "Total alerts suppressed inside the cool-down window by tier",
	}, []string{"tier"})
	DispatchFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zoneintel_dispatch_failures_total",
		Help: "Total notification channel failures by channel",
	}, []string{"channel"})
	CycleDurationSeconds = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "zoneintel_cycle_duration_seconds",
		Help:    "Pipeline cycle duration in seconds",
		Buckets: []float64{0.1, 0.5, 1, 5, 15, 60, 300, 900},
	})
)

// Register registers all collectors on the default registry.
func Register() {
	prometheus.MustRegister(
		ResolutionAttemptsTotal,
		ResolutionSuccessRate,
		HotspotsDetectedTotal,
		ForecastsSkippedTotal,
		AlertsFiredTotal,
		AlertsSuppressedTotal,
		DispatchFailuresTotal,
		CycleDurationSeconds,
	)
}

// Handler returns the /metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
