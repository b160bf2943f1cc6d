// Package observability holds the Prometheus instrumentation for outbound
// vendor calls.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	vendorRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "horizon_vendor_requests_total",
			Help: "Total number of requests sent to external vendors",
		},
		[]string{"vendor", "code", "method"},
	)

	vendorRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "horizon_vendor_request_duration_seconds",
			Help:    "Duration of requests sent to external vendors in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"vendor", "code", "method"},
	)
)

// InstrumentTransport records count and latency of every round trip made
// through next under the given vendor label.
func InstrumentTransport(vendor string, next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	labels := prometheus.Labels{"vendor": vendor}

	return promhttp.InstrumentRoundTripperCounter(
		vendorRequestsTotal.MustCurryWith(labels),
		promhttp.InstrumentRoundTripperDuration(vendorRequestDuration.MustCurryWith(labels), next),
	)
}

// NewHTTPClient returns an instrumented client for one vendor.
func NewHTTPClient(vendor string, timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: InstrumentTransport(vendor, nil),
	}
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
