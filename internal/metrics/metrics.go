package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// GraphQL endpoint metrics
var (
	GraphQLRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphql_requests_total",
			Help: "Total number of GraphQL requests by HTTP method and outcome.",
		},
		[]string{"method", "status"},
	)

	GraphQLRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphql_request_duration_seconds",
			Help:    "Time spent executing GraphQL requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// Upstream API metrics
var (
	UpstreamRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of requests sent to the upstream API by route and status class.",
		},
		[]string{"route", "status"},
	)

	UpstreamRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Latency of upstream API requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

func init() {
	prometheus.MustRegister(
		GraphQLRequestsTotal,
		GraphQLRequestDuration,
		UpstreamRequestsTotal,
		UpstreamRequestDuration,
	)
}

// StatusClass buckets an HTTP status code into "2xx", "4xx", ... for low-cardinality labels.
// A zero code means the request never got a response.
func StatusClass(code int) string {
	switch {
	case code == 0:
		return "error"
	case code < 200:
		return "1xx"
	case code < 300:
		return "2xx"
	case code < 400:
		return "3xx"
	case code < 500:
		return "4xx"
	default:
		return "5xx"
	}
}
