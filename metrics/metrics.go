package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds the service's Prometheus collectors.
type Recorder struct {
	queriesTotal    *prometheus.CounterVec
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		queriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "datetime_api",
			Name:      "queries_total",
			Help:      "Date queries answered, by query type and outcome",
		}, []string{"query", "outcome"}),
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "datetime_api",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code",
		}, []string{"route", "code"}),
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "datetime_api",
			Name:      "http_request_duration_seconds",
			Help:      "Time spent serving HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}

	reg.MustRegister(r.queriesTotal, r.requestsTotal, r.requestDuration)
	return r
}

// ObserveQuery counts one answered query. A nil error is a success.
func (r *Recorder) ObserveQuery(query string, err error) {
	if r == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "invalid"
	}
	r.queriesTotal.WithLabelValues(query, outcome).Inc()
}

// ObserveRequest records a served HTTP request.
func (r *Recorder) ObserveRequest(route string, code int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.requestsTotal.WithLabelValues(route, strconv.Itoa(code)).Inc()
	r.requestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}
