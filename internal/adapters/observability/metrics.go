package observability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"youth_housing/internal/domain"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "youth_housing", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "youth_housing", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "youth_housing", Name: "external_requests_total", Help: "Outbound requests."},
		[]string{"source", "endpoint", "status"},
	)
	ExternalLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "youth_housing", Name: "external_request_duration_seconds",
			Help:    "Outbound request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source", "endpoint"},
	)
	SourceFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "youth_housing", Name: "source_failures_total", Help: "Failed source fetches by kind."},
		[]string{"source", "kind"}, // kind: see LabelErr
	)
)

// Serve exposes reg on a side server when addr is non-empty.
func Serve(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return // disabled
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, ExternalRequests, ExternalLatency, SourceFailures)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

// ObserveExternal records one outbound call. status 0 means no response arrived.
func ObserveExternal(source, endpoint string, status int, dur time.Duration) {
	ExternalRequests.WithLabelValues(source, endpoint, strconv.Itoa(status)).Inc()
	ExternalLatency.WithLabelValues(source, endpoint).Observe(dur.Seconds())
}

func ObserveFailure(source string, err error) {
	SourceFailures.WithLabelValues(source, LabelErr(err)).Inc()
}

// LabelErr maps err onto a bounded label set.
func LabelErr(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, domain.ErrUnknownSource):
		return "unknown_source"
	case errors.Is(err, domain.ErrResponseTooLarge):
		return "too_large"
	case errors.Is(err, domain.ErrFieldTypeMismatch):
		return "field_type"
	case errors.Is(err, domain.ErrMalformedResponse):
		return "malformed"
	case errors.Is(err, domain.ErrTransport):
		return "transport"
	default:
		return "other"
	}
}
