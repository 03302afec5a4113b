package chargify

import (
	"strconv"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chargify_client",
			Name:      "requests_total",
			Help:      "Responses received from Chargify by HTTP method and status code.",
		},
		[]string{"method", "code"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "chargify_client",
			Name:      "request_duration_seconds",
			Help:      "Time from sending a request to Chargify until its response was read.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	transportErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "chargify_client",
			Name:      "transport_errors_total",
			Help:      "Requests that failed before a response was received.",
		},
		[]string{"method"},
	)
)

func recordResponse(_ *resty.Client, r *resty.Response) error {
	method := r.Request.Method
	requestsTotal.WithLabelValues(method, strconv.Itoa(r.StatusCode())).Inc()
	requestDuration.WithLabelValues(method).Observe(r.Time().Seconds())
	return nil
}

func recordError(req *resty.Request, _ error) {
	transportErrorsTotal.WithLabelValues(req.Method).Inc()
}
