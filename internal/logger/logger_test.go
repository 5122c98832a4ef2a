package logger

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestLogger() (*logrus.Logger, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.DebugLevel)
	return log, buf
}

func parseLogOutput(buf *bytes.Buffer) map[string]interface{} {
	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	if err != nil {
		return nil
	}
	return logEntry
}

func TestNewLoggerInvalidLevelDefaultsToInfo(t *testing.T) {
	log := NewLogger("not-a-level")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestNewLoggerParsesLevel(t *testing.T) {
	log := NewLogger("debug")
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())
}

func TestStrategyLoggerGeneration(t *testing.T) {
	log, buf := setupTestLogger()
	strategyLogger := NewStrategyLogger(log)

	strategyLogger.LogGeneration("frequency", "euromillions", 900, 10, 12.5)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "frequency", logEntry["strategy_name"])
	assert.Equal(t, "strategy", logEntry["component"])
	assert.Equal(t, float64(10), logEntry["combinations_generated"])
}

func TestStrategyLoggerGenerationFailure(t *testing.T) {
	log, buf := setupTestLogger()
	strategyLogger := NewStrategyLogger(log)

	strategyLogger.LogGenerationFailure("markov", "loto", "insufficient data")

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "markov", logEntry["strategy_name"])
	assert.Equal(t, "insufficient data", logEntry["reason"])
	assert.Equal(t, "warning", logEntry["level"])
}

func TestStrategyLoggerEvaluation(t *testing.T) {
	log, buf := setupTestLogger()
	strategyLogger := NewStrategyLogger(log)

	strategyLogger.LogEvaluation("hotcold", "euromillions", 100, 10, 3, 1.42)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "hotcold", logEntry["strategy_name"])
	assert.Equal(t, float64(100), logEntry["test_draws"])
	assert.Equal(t, 1.42, logEntry["average_score"])
}

func TestAuditLoggerBacktestRun(t *testing.T) {
	log, buf := setupTestLogger()
	auditLogger := NewAuditLogger(log)

	auditLogger.LogBacktestRun(
		"run_123",
		"euromillions",
		900,
		100,
		6,
		1,
		time.Date(2026, 2, 3, 12, 0, 0, 0, time.UTC),
		1500.0,
	)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "run_123", logEntry["run_id"])
	assert.Equal(t, "audit", logEntry["component"])
	assert.Equal(t, float64(1), logEntry["failures"])
}

func TestAuditLoggerResultSync(t *testing.T) {
	log, buf := setupTestLogger()
	auditLogger := NewAuditLogger(log)

	auditLogger.LogResultSync("fdj_csv", "loto", 3, 2, 1)

	logEntry := parseLogOutput(buf)
	require.NotNil(t, logEntry)
	assert.Equal(t, "fdj_csv", logEntry["source"])
	assert.Equal(t, float64(2), logEntry["draws_stored"])
}

func TestLoggerJSONFormat(t *testing.T) {
	log, buf := setupTestLogger()
	strategyLogger := NewStrategyLogger(log)

	strategyLogger.LogRanking("frequency", "euromillions", 1, 1.42, 0)

	var logEntry map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logEntry)
	assert.NoError(t, err)
	assert.NotEmpty(t, logEntry)
}

func BenchmarkStrategyLoggerGeneration(b *testing.B) {
	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})
	strategyLogger := NewStrategyLogger(log)

	for i := 0; i < b.N; i++ {
		strategyLogger.LogGeneration("frequency", "euromillions", 900, 10, 12.5)
	}
}
