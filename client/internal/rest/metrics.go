package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "aiexam_client",
			Name:      "requests_total",
			Help:      "Requests issued by the SDK, by method and HTTP status (\"error\" for transport failures).",
		},
		[]string{"method", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "aiexam_client",
			Name:      "request_duration_seconds",
			Help:      "Round-trip latency up to response headers.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

func observe(method string, resp *http.Response, d time.Duration) {
	requestsTotal.WithLabelValues(method, codeLabel(resp)).Inc()
	requestDuration.WithLabelValues(method).Observe(d.Seconds())
}

func codeLabel(resp *http.Response) string {
	if resp == nil {
		return "error"
	}
	return strconv.Itoa(resp.StatusCode)
}
