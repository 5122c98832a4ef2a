package backtest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GenerateConsoleReport formats a ranked leaderboard for terminal output
func GenerateConsoleReport(report *Report) string {
	var builder strings.Builder
	builder.WriteString("Backtest Report\n")
	builder.WriteString("================\n")
	builder.WriteString(fmt.Sprintf("Game: %s\n", report.Game))
	builder.WriteString(fmt.Sprintf("Training draws: %d  Evaluation draws: %d\n", report.TrainingDraws, report.TestDraws))
	builder.WriteString(fmt.Sprintf("%-5s %-15s %-12s %-12s %-12s %-12s\n",
		"Rank", "Strategy", "Avg Score", "Avg Main", "Avg Stars", "Prize Wins"))

	for i, perf := range report.Rankings {
		builder.WriteString(fmt.Sprintf("%-5d %-15s %-12.4f %-12.2f %-12.2f %-12d\n",
			i+1, perf.StrategyLabel, perf.AverageScore, perf.AvgMainMatches(), perf.AvgStarMatches(), perf.PrizeWins()))
	}

	for _, failure := range report.Failures {
		builder.WriteString(fmt.Sprintf("FAILED %-15s %s\n", failure.StrategyLabel, failure.Reason))
	}

	return builder.String()
}

// ExportToJSON writes the ranked report to a JSON file
func ExportToJSON(report *Report, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}

	payload := struct {
		RunID         string              `json:"run_id"`
		Game          string              `json:"game"`
		TrainingDraws int                 `json:"training_draws"`
		TestDraws     int                 `json:"test_draws"`
		Rankings      interface{}         `json:"rankings"`
		Failures      []GeneratorFailure  `json:"failures"`
		Combinations  map[string][]string `json:"combinations"`
	}{
		RunID:         report.RunID.String(),
		Game:          report.Game,
		TrainingDraws: report.TrainingDraws,
		TestDraws:     report.TestDraws,
		Rankings:      report.Rankings,
		Failures:      report.Failures,
		Combinations:  make(map[string][]string),
	}
	for label, result := range report.Results {
		for _, combo := range result.Combinations {
			payload.Combinations[label] = append(payload.Combinations[label], combo.String())
		}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	return os.WriteFile(outputPath, data, 0o644)
}

// GenerateCSVExport exports the leaderboard for spreadsheets
func GenerateCSVExport(report *Report, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return err
	}
	csv := "rank,strategy,average_score,avg_main_matches,avg_star_matches,prize_wins,expected_winnings\n"
	for i, perf := range report.Rankings {
		csv += fmt.Sprintf("%d,%s,%.4f,%.2f,%.2f,%d,%s\n",
			i+1, perf.StrategyLabel, perf.AverageScore, perf.AvgMainMatches(), perf.AvgStarMatches(),
			perf.PrizeWins(), perf.ExpectedWinnings.StringFixed(2))
	}
	return os.WriteFile(outputPath, []byte(csv), 0o644)
}
