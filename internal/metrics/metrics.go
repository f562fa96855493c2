package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	CityLookups    *prometheus.CounterVec
	Placements     *prometheus.CounterVec
	ProviderErrors prometheus.Counter
	RequestSeconds *prometheus.HistogramVec
	ActiveWorkers  prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		CityLookups: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "campusmap_city_lookups_total",
			Help: "Total number of city coordinate table lookups.",
		}, []string{"result"}),
		Placements: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "campusmap_placements_total",
			Help: "Total number of students placed on the map, by coordinate source.",
		}, []string{"source"}),
		ProviderErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "campusmap_provider_errors_total",
			Help: "Total number of errors received from the geocoding provider API.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "campusmap_provider_request_duration_seconds",
			Help:    "Duration of requests to the geocoding provider API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "campusmap_active_workers",
			Help: "Current number of workers resolving cities missing from the table.",
		}),
	}
}
