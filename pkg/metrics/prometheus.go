package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	providerRequests *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
	queueDepth       prometheus.Gauge
	queueWait        prometheus.Histogram
	lastPrice        *prometheus.GaugeVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		providerRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockdash_provider_requests_total",
				Help: "Provider calls by API function and outcome",
			},
			[]string{"function", "outcome"},
		),
		cacheLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "stockdash_cache_lookups_total",
				Help: "Payload cache lookups by result",
			},
			[]string{"result"},
		),
		queueDepth: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "stockdash_request_queue_depth",
				Help: "Number of provider calls waiting in the request queue",
			},
		),
		queueWait: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "stockdash_request_queue_wait_seconds",
				Help:    "Time a provider call spent queued before starting",
				Buckets: []float64{0.1, 1, 5, 12, 24, 36, 60, 120, 300},
			},
		),
		lastPrice: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "stockdash_last_price",
				Help: "Last quoted price for a symbol",
			},
			[]string{"symbol"},
		),
	}
}

// RecordProviderRequest records one provider call outcome.
func (r *Recorder) RecordProviderRequest(function, outcome string) {
	r.providerRequests.WithLabelValues(function, outcome).Inc()
}

// RecordCacheLookup records a payload cache hit or miss.
func (r *Recorder) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(result).Inc()
}

// RecordQueueDepth records the current request queue depth.
func (r *Recorder) RecordQueueDepth(depth int) {
	r.queueDepth.Set(float64(depth))
}

// RecordQueueWait records how long a call waited before execution.
func (r *Recorder) RecordQueueWait(seconds float64) {
	r.queueWait.Observe(seconds)
}

// RecordLastPrice records the last quoted price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}
