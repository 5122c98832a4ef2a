package backtest

import (
	"encoding/json"
	"fmt"

	"github.com/yourusername/lotto-better/internal/models"
)

// ToModel converts a run report into its persisted form. Rankings and
// failures are stored as JSON documents so the schema stays stable as
// scoring evolves.
func (r *Report) ToModel() (*models.BacktestResult, error) {
	rankings, err := json.Marshal(r.Rankings)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rankings: %w", err)
	}

	failures, err := json.Marshal(r.Failures)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal failures: %w", err)
	}

	combinations := 0
	for _, result := range r.Results {
		combinations += len(result.Combinations)
	}

	return &models.BacktestResult{
		ID:            r.RunID,
		Game:          r.Game,
		RunDate:       r.StartedAt,
		TrainingDraws: r.TrainingDraws,
		TestDraws:     r.TestDraws,
		Combinations:  combinations,
		Rankings:      rankings,
		Failures:      failures,
	}, nil
}
