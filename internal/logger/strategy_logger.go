// Package logger provides strategy-specific logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// StrategyLogger provides dedicated logging for generator operations.
type StrategyLogger struct {
	*logrus.Entry
}

// NewStrategyLogger creates a new strategy logger.
func NewStrategyLogger(baseLogger *logrus.Logger) *StrategyLogger {
	return &StrategyLogger{
		Entry: baseLogger.WithField("component", "strategy"),
	}
}

// LogGeneration logs a completed combination generation.
func (sl *StrategyLogger) LogGeneration(strategyName, game string, trainingDraws, combinationsGenerated int, durationMs float64) {
	sl.WithFields(logrus.Fields{
		"strategy_name":          strategyName,
		"game":                   game,
		"training_draws":         trainingDraws,
		"combinations_generated": combinationsGenerated,
		"generation_duration_ms": durationMs,
	}).Info("Combination generation completed")
}

// LogGenerationFailure logs an isolated generator failure.
func (sl *StrategyLogger) LogGenerationFailure(strategyName, game, reason string) {
	sl.WithFields(logrus.Fields{
		"strategy_name": strategyName,
		"game":          game,
		"reason":        reason,
	}).Warn("Strategy generation failed")
}

// LogEvaluation logs a strategy's evaluation over the test window.
func (sl *StrategyLogger) LogEvaluation(strategyName, game string, testDraws, combinations, prizeWins int, averageScore float64) {
	sl.WithFields(logrus.Fields{
		"strategy_name": strategyName,
		"game":          game,
		"test_draws":    testDraws,
		"combinations":  combinations,
		"prize_wins":    prizeWins,
		"average_score": averageScore,
	}).Info("Strategy evaluation completed")
}

// LogRanking logs a strategy's final position in the leaderboard.
func (sl *StrategyLogger) LogRanking(strategyName, game string, rank int, averageScore float64, jackpots int) {
	sl.WithFields(logrus.Fields{
		"strategy_name": strategyName,
		"game":          game,
		"rank":          rank,
		"average_score": averageScore,
		"jackpots":      jackpots,
	}).Info("Strategy ranked")
}
