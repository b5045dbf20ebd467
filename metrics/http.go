package metrics

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// RequestMetrics tracks request counts and latency of the HTTP facade.
type RequestMetrics struct {
	requestCounter metric.Int64Counter
	errorCounter   metric.Int64Counter
	latency        metric.Float64Histogram
}

func NewRequestMetrics(meter metric.Meter) (*RequestMetrics, error) {
	requestCounter, err := meter.Int64Counter(
		"quoter.Requests",
		metric.WithDescription("Total number of handled requests"),
	)
	if err != nil {
		return nil, err
	}

	errorCounter, err := meter.Int64Counter(
		"quoter.RequestErrors",
		metric.WithDescription("Total number of requests answered with an error status"),
	)
	if err != nil {
		return nil, err
	}

	latency, err := meter.Float64Histogram(
		"quoter.RequestLatency",
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &RequestMetrics{
		requestCounter: requestCounter,
		errorCounter:   errorCounter,
		latency:        latency,
	}, nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (m *RequestMetrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		attrs := metric.WithAttributes(
			attribute.String("path", r.URL.Path),
			attribute.Int("status", recorder.status),
		)
		m.requestCounter.Add(r.Context(), 1, attrs)
		if recorder.status >= 400 {
			m.errorCounter.Add(r.Context(), 1, attrs)
		}
		m.latency.Record(r.Context(), float64(time.Since(start).Milliseconds()), attrs)
	})
}
