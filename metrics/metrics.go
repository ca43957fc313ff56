package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and path
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "minduel_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "minduel_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "minduel_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// RateLimiterRejections counts rejected requests due to rate limiting
	RateLimiterRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "minduel_rate_limiter_rejections_total",
			Help: "Total number of requests rejected by rate limiter",
		},
		[]string{"ip"},
	)

	// GamesStarted counts quickplay games started (persisted and anonymous)
	GamesStarted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "minduel_games_started_total",
			Help: "Total number of quickplay games started",
		},
	)

	// GamesCompleted counts quickplay games that reached a terminal state
	GamesCompleted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "minduel_games_completed_total",
			Help: "Total number of quickplay games completed",
		},
	)

	// QuestionsServed counts questions served to players by category
	QuestionsServed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "minduel_questions_served_total",
			Help: "Total number of questions served to players",
		},
		[]string{"category"},
	)

	// AnswersSubmitted counts submitted answers by correctness
	AnswersSubmitted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "minduel_answers_submitted_total",
			Help: "Total number of answers submitted",
		},
		[]string{"result"},
	)

	// AIQuestionsGenerated counts successfully generated AI questions
	AIQuestionsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "minduel_ai_questions_generated_total",
			Help: "Total number of AI questions generated and stored",
		},
		[]string{"category"},
	)

	// AIGenerationFailures counts failed generation attempts by reason
	AIGenerationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "minduel_ai_generation_failures_total",
			Help: "Total number of failed AI generation attempts",
		},
		[]string{"reason"},
	)

	// GeneratorRateLimited counts generator calls blocked by the window limiter
	GeneratorRateLimited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "minduel_generator_rate_limited_total",
			Help: "Total number of generator calls blocked by the rate limit window",
		},
	)

	// MemoryStats tracks memory usage stats
	MemoryStats = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "minduel_memory_stats_bytes",
			Help: "Memory statistics in bytes",
		},
		[]string{"type"},
	)

	// GoroutineCount tracks the number of goroutines
	GoroutineCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "minduel_goroutine_count",
			Help: "Number of goroutines",
		},
	)
)
