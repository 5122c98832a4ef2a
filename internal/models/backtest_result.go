package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// BacktestResult is a persisted summary of one backtest run
type BacktestResult struct {
	ID            uuid.UUID       `db:"id" json:"id" validate:"required,uuid4"`
	Game          string          `db:"game" json:"game" validate:"required"`
	RunDate       time.Time       `db:"run_date" json:"run_date"`
	TrainingDraws int             `db:"training_draws" json:"training_draws"`
	TestDraws     int             `db:"test_draws" json:"test_draws"`
	Combinations  int             `db:"combinations" json:"combinations"`
	Rankings      json.RawMessage `db:"rankings" json:"rankings"`
	Failures      json.RawMessage `db:"failures" json:"failures"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}
