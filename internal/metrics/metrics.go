// Package metrics provides the centralized Prometheus metrics registry.
package metrics

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	DrawsIngestedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lotto_better",
		Name:      "draws_ingested_total",
		Help:      "Total number of draws ingested into the store",
	}, []string{"game", "source"})
	DrawsRejectedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lotto_better",
		Name:      "draws_rejected_total",
		Help:      "Total number of malformed draw records rejected at ingestion",
	}, []string{"game", "source"})
	BacktestsRunTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "lotto_better",
		Name:      "backtests_run_total",
		Help:      "Total number of backtest runs completed",
	})
	GeneratorFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lotto_better",
		Name:      "generator_failures_total",
		Help:      "Total number of strategy generator failures",
	}, []string{"strategy"})
	CombinationsGeneratedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lotto_better",
		Name:      "combinations_generated_total",
		Help:      "Total number of combinations produced by generators",
	}, []string{"game", "strategy"})
	ResultSyncsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lotto_better",
		Name:      "result_syncs_total",
		Help:      "Total number of draw-result sync attempts",
	}, []string{"game", "status"})
)

// Gauge metrics
var (
	StrategyAverageScore = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "lotto_better",
		Name:      "strategy_average_score",
		Help:      "Latest backtest average score per strategy",
	}, []string{"game", "strategy"})
	StoredDraws = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "lotto_better",
		Name:      "stored_draws",
		Help:      "Number of draws currently stored per game",
	}, []string{"game"})
)

// Histogram metrics
var (
	BacktestDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "lotto_better",
		Name:      "backtest_duration_seconds",
		Help:      "Duration of backtest runs in seconds",
		Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 300},
	})
	IngestionDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "lotto_better",
		Name:      "ingestion_duration_seconds",
		Help:      "Duration of draw ingestion batches in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(DrawsIngestedTotal)
		registry.MustRegister(DrawsRejectedTotal)
		registry.MustRegister(BacktestsRunTotal)
		registry.MustRegister(GeneratorFailuresTotal)
		registry.MustRegister(CombinationsGeneratedTotal)
		registry.MustRegister(ResultSyncsTotal)

		registry.MustRegister(StrategyAverageScore)
		registry.MustRegister(StoredDraws)

		registry.MustRegister(BacktestDuration)
		registry.MustRegister(IngestionDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordBacktestDuration records backtest duration.
func RecordBacktestDuration(durationSeconds float64) {
	BacktestDuration.Observe(durationSeconds)
}
