package geocoding

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "geocoding_requests_total",
		Help: "Outbound reverse geocoding requests by provider and outcome.",
	}, []string{"provider", "outcome"})

	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "geocoding_cache_hits_total",
		Help: "Reverse geocoding lookups served from the coordinate cache.",
	})

	cacheSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "geocoding_cache_entries",
		Help: "Current number of entries in the coordinate cache.",
	})
)
