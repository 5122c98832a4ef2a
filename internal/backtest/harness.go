package backtest

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/logger"
	"github.com/yourusername/lotto-better/internal/metrics"
	"github.com/yourusername/lotto-better/internal/models"
	"github.com/yourusername/lotto-better/internal/strategy"
)

// Harness orchestrates backtest runs: it splits the historical draws,
// drives each strategy's generator over the training window and scores the
// resulting combinations against every draw in the evaluation window.
type Harness struct {
	config      HarnessConfig
	def         *game.Definition
	logger      *logrus.Logger
	strategyLog *logger.StrategyLogger
}

// StrategyResult holds the raw output for one strategy in one run
type StrategyResult struct {
	StrategyLabel string
	Combinations  []*models.Combination
	Matches       []models.MatchResult
}

// GeneratorFailure records a strategy whose generator errored or produced
// invalid combinations. Failed strategies are reported, never silently
// scored as zero.
type GeneratorFailure struct {
	StrategyLabel string `json:"strategy_label"`
	Reason        string `json:"reason"`
}

// Report is the complete outcome of one backtest run
type Report struct {
	RunID         uuid.UUID
	Game          string
	TrainingDraws int
	TestDraws     int
	Results       map[string]*StrategyResult
	Failures      []GeneratorFailure
	Rankings      []*models.StrategyPerformance
	StartedAt     time.Time
	Duration      time.Duration
}

// NewHarness creates a backtest harness for one game
func NewHarness(cfg HarnessConfig, def *game.Definition, log *logrus.Logger) (*Harness, error) {
	if def == nil {
		return nil, fmt.Errorf("game definition is required")
	}
	if log == nil {
		log = logrus.New()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Harness{
		config:      cfg,
		def:         def,
		logger:      log,
		strategyLog: logger.NewStrategyLogger(log),
	}, nil
}

// Config returns the harness configuration
func (h *Harness) Config() HarnessConfig {
	return h.config
}

// Run executes a full backtest over the given draws. Each strategy runs on
// its own goroutine; a strategy owns its combinations and match results
// exclusively until the final collection step, so no locking is needed
// beyond the closing join.
func (h *Harness) Run(ctx context.Context, draws []*models.Draw, strategies []strategy.Generator) (*Report, error) {
	startedAt := time.Now().UTC()

	split, err := NewSplit(draws, h.config.TestWindow)
	if err != nil {
		return nil, err
	}

	h.logger.WithFields(logrus.Fields{
		"game":           h.def.Name,
		"training_draws": len(split.Training),
		"test_draws":     len(split.Test),
		"strategies":     len(strategies),
		"combinations":   h.config.CombinationsPerStrategy,
		"seed":           h.config.Seed,
	}).Info("Starting backtest run")

	type outcome struct {
		result  *StrategyResult
		failure *GeneratorFailure
	}

	outcomes := make([]outcome, len(strategies))
	var wg sync.WaitGroup

	for i, strat := range strategies {
		wg.Add(1)
		go func(i int, strat strategy.Generator) {
			defer wg.Done()
			// Each strategy gets its own deterministic stream derived
			// from the run seed, so per-strategy work stays reproducible
			// regardless of scheduling order.
			rng := rand.New(rand.NewSource(h.config.Seed + int64(i)))
			result, failure := h.runStrategy(strat, split, rng)
			outcomes[i] = outcome{result: result, failure: failure}
		}(i, strat)
	}
	wg.Wait()

	report := &Report{
		RunID:         uuid.New(),
		Game:          h.def.Name,
		TrainingDraws: len(split.Training),
		TestDraws:     len(split.Test),
		Results:       make(map[string]*StrategyResult, len(strategies)),
		StartedAt:     startedAt,
	}
	for _, o := range outcomes {
		if o.failure != nil {
			report.Failures = append(report.Failures, *o.failure)
			continue
		}
		report.Results[o.result.StrategyLabel] = o.result
	}

	report.Rankings = Aggregate(report.Results, h.def)
	report.Duration = time.Since(startedAt)

	metrics.BacktestsRunTotal.Inc()
	for rank, perf := range report.Rankings {
		metrics.StrategyAverageScore.WithLabelValues(h.def.Name, perf.StrategyLabel).Set(perf.AverageScore)
		h.strategyLog.LogEvaluation(perf.StrategyLabel, h.def.Name, report.TestDraws, perf.TotalCombinations, perf.PrizeWins(), perf.AverageScore)
		h.strategyLog.LogRanking(perf.StrategyLabel, h.def.Name, rank+1, perf.AverageScore, perf.JackpotCount())
	}

	h.logger.WithFields(logrus.Fields{
		"run_id":   report.RunID,
		"ranked":   len(report.Rankings),
		"failures": len(report.Failures),
		"duration": report.Duration,
	}).Info("Backtest run complete")

	return report, nil
}

// runStrategy generates one strategy's candidate pool from the training
// window and replays it against every evaluation draw. The pool is fixed
// across the window: this models playing the same tickets for every draw.
func (h *Harness) runStrategy(strat strategy.Generator, split *Split, rng *rand.Rand) (*StrategyResult, *GeneratorFailure) {
	label := strat.Name()

	genStart := time.Now()
	combos, err := strat.Generate(split.Training, h.config.CombinationsPerStrategy, rng)
	if err != nil {
		metrics.GeneratorFailuresTotal.WithLabelValues(label).Inc()
		h.strategyLog.LogGenerationFailure(label, h.def.Name, err.Error())
		return nil, &GeneratorFailure{StrategyLabel: label, Reason: err.Error()}
	}
	if len(combos) == 0 {
		metrics.GeneratorFailuresTotal.WithLabelValues(label).Inc()
		h.strategyLog.LogGenerationFailure(label, h.def.Name, "generator returned no combinations")
		return nil, &GeneratorFailure{StrategyLabel: label, Reason: "generator returned no combinations"}
	}

	for _, combo := range combos {
		if err := combo.Validate(h.def.Spec); err != nil {
			metrics.GeneratorFailuresTotal.WithLabelValues(label).Inc()
			h.strategyLog.LogGenerationFailure(label, h.def.Name, err.Error())
			return nil, &GeneratorFailure{StrategyLabel: label, Reason: err.Error()}
		}
	}
	h.strategyLog.LogGeneration(label, h.def.Name, len(split.Training), len(combos), time.Since(genStart).Seconds()*1e3)

	result := &StrategyResult{
		StrategyLabel: label,
		Combinations:  combos,
		Matches:       make([]models.MatchResult, 0, len(combos)*len(split.Test)),
	}

	for _, draw := range split.Test {
		for _, combo := range combos {
			result.Matches = append(result.Matches, Evaluate(combo, draw, h.def.PrizeTable))
		}
	}

	return result, nil
}
