package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tycoon_http_requests_total",
			Help: "Total number of HTTP requests processed, by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "tycoon_http_request_duration_seconds",
			Help:    "HTTP request latency distribution.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
		[]string{"method", "path"},
	)
)

// Engine Metrics
var (
	ClicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tycoon_clicks_total",
			Help: "Total manual taps processed.",
		},
	)

	CriticalClicksTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tycoon_critical_clicks_total",
			Help: "Total taps that rolled a critical hit.",
		},
	)

	BusinessesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tycoon_businesses_purchased_total",
			Help: "Business units purchased, by business id.",
		},
		[]string{"business"},
	)

	UpgradesPurchased = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tycoon_upgrades_purchased_total",
			Help: "Upgrades purchased, by kind.",
		},
		[]string{"kind"},
	)

	PassiveTicks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tycoon_passive_ticks_total",
			Help: "Passive income ticks applied.",
		},
	)

	AchievementsUnlocked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tycoon_achievements_unlocked_total",
			Help: "Achievements unlocked.",
		},
	)

	JobsClaimed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tycoon_jobs_claimed_total",
			Help: "Job rewards claimed.",
		},
	)

	MoneyEarned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tycoon_money_earned_total",
			Help: "Money earned across all sources.",
		},
	)

	MoneySpent = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tycoon_money_spent_total",
			Help: "Money spent on businesses and level upgrades.",
		},
	)

	SnapshotsSaved = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tycoon_snapshots_saved_total",
			Help: "Player snapshots written by the autosave loop.",
		},
	)
)

// Middleware records request counts and latency for every HTTP request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		HTTPRequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(rec.status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
