package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jobprep",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests received",
	}, []string{"service", "method", "path", "status"})

	httpLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "jobprep",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"service", "method", "path", "status"})

	httpInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "jobprep",
		Name:      "http_in_flight_requests",
		Help:      "Current number of in-flight HTTP requests",
	}, []string{"service"})

	// GenerationAttempts counts question-source calls by outcome
	// (ok, error, invalid).
	GenerationAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jobprep",
		Name:      "generation_attempts_total",
		Help:      "Question generation attempts by outcome",
	}, []string{"outcome"})

	// DuplicatesDiscarded counts candidates dropped by duplicate detection.
	DuplicatesDiscarded = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "jobprep",
		Name:      "duplicates_discarded_total",
		Help:      "Generated candidates discarded as near-duplicates",
	})

	// QuestionsPersisted counts new questions written to the bank.
	QuestionsPersisted = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "jobprep",
		Name:      "questions_persisted_total",
		Help:      "Newly generated questions persisted to the bank",
	})

	// QuestionsSampled counts existing questions reused for sessions.
	QuestionsSampled = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "jobprep",
		Name:      "questions_sampled_total",
		Help:      "Existing bank questions sampled into sessions",
	})

	// BankPersistFailures counts writes that failed after generation
	// succeeded; the in-memory result is still returned to the caller.
	BankPersistFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "jobprep",
		Name:      "bank_persist_failures_total",
		Help:      "Question bank writes that failed after generation",
	})
)

type responseRecorder struct {
	http.ResponseWriter
	status int
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

// Middleware records request metrics with Prometheus labels.
func Middleware(service string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
			start := time.Now()

			httpInFlight.WithLabelValues(service).Inc()
			defer httpInFlight.WithLabelValues(service).Dec()

			next.ServeHTTP(rec, r)

			status := strconv.Itoa(rec.status)
			httpRequests.WithLabelValues(service, r.Method, r.URL.Path, status).Inc()
			httpLatency.WithLabelValues(service, r.Method, r.URL.Path, status).Observe(time.Since(start).Seconds())
		})
	}
}
