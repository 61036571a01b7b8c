package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var samplesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tracking_samples_saved_total",
	Help: "Tracking samples persisted, by kind and geocoding status.",
}, []string{"kind", "status"})
