// Package observability provides request logging and Prometheus metrics for
// the portal web surface.
package observability

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/lceo-rwanda/portal/internal/services/web/platform/httpx"
)

const namespace = "lceo"

// RequestLogger logs one line per request with status, size and latency.
func RequestLogger(logger *slog.Logger) httpx.Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := httpx.NewStatusRecorder(w)
			next.ServeHTTP(rec, r)
			level := slog.LevelInfo
			if rec.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			logger.Log(r.Context(), level, "http request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.Status,
				"bytes", rec.Bytes,
				"latency", time.Since(started),
				"request_id", httpx.RequestIDFrom(r),
			)
		})
	}
}

// Metrics owns the portal's Prometheus registry. A nil *Metrics is a valid
// no-op recorder.
type Metrics struct {
	registry      *prometheus.Registry
	requests      *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	logins        *prometheus.CounterVec
	donations     *prometheus.CounterVec
	donatedAmount prometheus.Counter
	formSubmits   *prometheus.CounterVec
	storagePrunes prometheus.Counter
}

// NewMetrics registers the portal collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "logins_total",
			Help:      "Login attempts by outcome.",
		}, []string{"outcome"}),
		donations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "donations_completed_total",
			Help:      "Donation wizards that reached confirmation, by donation type.",
		}, []string{"type"}),
		donatedAmount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "donations_pledged_amount_total",
			Help:      "Sum of confirmed wizard amounts.",
		}),
		formSubmits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "form_submissions_total",
			Help:      "Accepted form submissions by form name.",
		}, []string{"form"}),
		storagePrunes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "storage_pruned_values_total",
			Help:      "Browser storage values removed by the janitor.",
		}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.requests,
		m.latency,
		m.logins,
		m.donations,
		m.donatedAmount,
		m.formSubmits,
		m.storagePrunes,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware counts requests and observes their latency.
func (m *Metrics) Middleware() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := httpx.NewStatusRecorder(w)
			next.ServeHTTP(rec, r)
			m.requests.WithLabelValues(r.Method, strconv.Itoa(rec.Status)).Inc()
			m.latency.WithLabelValues(r.Method).Observe(time.Since(started).Seconds())
		})
	}
}

// LoginAttempt records a login outcome ("success" or "failure").
func (m *Metrics) LoginAttempt(outcome string) {
	if m == nil {
		return
	}
	m.logins.WithLabelValues(outcome).Inc()
}

// DonationCompleted records a confirmed wizard.
func (m *Metrics) DonationCompleted(donationType string, amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.donations.WithLabelValues(donationType).Inc()
	if amount.IsPositive() {
		m.donatedAmount.Add(amount.InexactFloat64())
	}
}

// FormSubmitted records an accepted simulated form.
func (m *Metrics) FormSubmitted(form string) {
	if m == nil {
		return
	}
	m.formSubmits.WithLabelValues(form).Inc()
}

// StoragePruned records janitor removals.
func (m *Metrics) StoragePruned(n int64) {
	if m == nil || n <= 0 {
		return
	}
	m.storagePrunes.Add(float64(n))
}
