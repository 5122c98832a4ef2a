// Package logger provides audit logging.
package logger

import (
	"time"

	"github.com/sirupsen/logrus"
)

// AuditLogger provides dedicated audit trail logging for runs and syncs.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogBacktestRun logs a completed backtest run.
func (al *AuditLogger) LogBacktestRun(runID, game string, trainingDraws, testDraws, strategies, failures int, startedAt time.Time, durationMs float64) {
	al.WithFields(logrus.Fields{
		"run_id":         runID,
		"game":           game,
		"training_draws": trainingDraws,
		"test_draws":     testDraws,
		"strategies":     strategies,
		"failures":       failures,
		"started_at":     startedAt.Unix(),
		"duration_ms":    durationMs,
	}).Info("Backtest run recorded")
}

// LogResultSync logs a draw result synchronization event.
func (al *AuditLogger) LogResultSync(source, game string, drawsFetched, drawsStored, drawsRejected int) {
	al.WithFields(logrus.Fields{
		"source":         source,
		"game":           game,
		"draws_fetched":  drawsFetched,
		"draws_stored":   drawsStored,
		"draws_rejected": drawsRejected,
	}).Info("Result sync recorded")
}

// LogIngestion logs a historical file ingestion event.
func (al *AuditLogger) LogIngestion(source, game, file string, rowsRead, drawsStored, rowsRejected int) {
	al.WithFields(logrus.Fields{
		"source":        source,
		"game":          game,
		"file":          file,
		"rows_read":     rowsRead,
		"draws_stored":  drawsStored,
		"rows_rejected": rowsRejected,
	}).Info("Ingestion recorded")
}

// LogConfigChange logs configuration parameter changes between runs.
func (al *AuditLogger) LogConfigChange(parameterName string, oldValue, newValue interface{}, changedBy string) {
	al.WithFields(logrus.Fields{
		"parameter_name": parameterName,
		"old_value":      oldValue,
		"new_value":      newValue,
		"changed_by":     changedBy,
	}).Info("Configuration parameter changed")
}
