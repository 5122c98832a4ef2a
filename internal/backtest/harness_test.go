package backtest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/models"
	"github.com/yourusername/lotto-better/internal/strategy"
)

// fixedGenerator always returns the same pool of combinations
type fixedGenerator struct {
	name   string
	combos []*models.Combination
}

func (g *fixedGenerator) Name() string { return g.name }

func (g *fixedGenerator) Generate(draws []*models.Draw, count int, rng *rand.Rand) ([]*models.Combination, error) {
	return g.combos, nil
}

// failingGenerator always errors
type failingGenerator struct{ name string }

func (g *failingGenerator) Name() string { return g.name }

func (g *failingGenerator) Generate(draws []*models.Draw, count int, rng *rand.Rand) ([]*models.Combination, error) {
	return nil, fmt.Errorf("training data rejected")
}

// rngGenerator samples main numbers from the injected rng
type rngGenerator struct {
	name string
	def  *game.Definition
}

func (g *rngGenerator) Name() string { return g.name }

func (g *rngGenerator) Generate(draws []*models.Draw, count int, rng *rand.Rand) ([]*models.Combination, error) {
	combos := make([]*models.Combination, 0, count)
	for i := 0; i < count; i++ {
		numbers := samplePool(rng, g.def.Spec.MainCount, g.def.Spec.MainMax)
		stars := samplePool(rng, g.def.Spec.StarCount, g.def.Spec.StarMax)
		combo, err := models.NewCombination(numbers, stars, g.name, 0, g.def.Spec)
		if err != nil {
			return nil, err
		}
		combos = append(combos, combo)
	}
	return combos, nil
}

func samplePool(rng *rand.Rand, count, max int) []int {
	pool := rng.Perm(max)
	out := make([]int, count)
	for i := 0; i < count; i++ {
		out[i] = pool[i] + 1
	}
	return out
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func harnessForTest(t *testing.T, def *game.Definition) *Harness {
	t.Helper()
	h, err := NewHarness(HarnessConfig{
		TestWindow:              TestWindow{Size: 3},
		CombinationsPerStrategy: 2,
		Seed:                    42,
	}, def, quietLogger())
	if err != nil {
		t.Fatalf("failed to create harness: %v", err)
	}
	return h
}

// TestHarnessFailureIsolation tests that one failing strategy does not
// prevent the others from being scored, and is reported rather than ranked
func TestHarnessFailureIsolation(t *testing.T) {
	def, err := game.ByName(game.Euromillions)
	if err != nil {
		t.Fatalf("failed to resolve game: %v", err)
	}
	h := harnessForTest(t, def)

	combo, err := models.NewCombination([]int{1, 2, 3, 4, 5}, []int{1, 2}, "alpha", 0, def.Spec)
	if err != nil {
		t.Fatalf("failed to build combination: %v", err)
	}

	report, err := h.Run(context.Background(), drawsForDays(10), []strategy.Generator{
		&fixedGenerator{name: "alpha", combos: []*models.Combination{combo}},
		&failingGenerator{name: "broken"},
		&fixedGenerator{name: "gamma", combos: []*models.Combination{combo}},
	})
	if err != nil {
		t.Fatalf("expected run to succeed, got %v", err)
	}

	if len(report.Rankings) != 2 {
		t.Errorf("expected 2 ranked strategies, got %d", len(report.Rankings))
	}
	if len(report.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(report.Failures))
	}
	if report.Failures[0].StrategyLabel != "broken" {
		t.Errorf("expected broken strategy in failures, got %s", report.Failures[0].StrategyLabel)
	}
	for _, perf := range report.Rankings {
		if perf.StrategyLabel == "broken" {
			t.Error("failed strategy must not appear in rankings")
		}
	}
}

// TestHarnessInvalidCombinationFails tests that out-of-spec output is a failure
func TestHarnessInvalidCombinationFails(t *testing.T) {
	def, err := game.ByName(game.Euromillions)
	if err != nil {
		t.Fatalf("failed to resolve game: %v", err)
	}
	h := harnessForTest(t, def)

	bad := &models.Combination{Numbers: []int{1, 2, 3, 4, 99}, Stars: []int{1, 2}, StrategyLabel: "bad"}
	report, err := h.Run(context.Background(), drawsForDays(10), []strategy.Generator{
		&fixedGenerator{name: "bad", combos: []*models.Combination{bad}},
	})
	if err != nil {
		t.Fatalf("expected run to succeed, got %v", err)
	}
	if len(report.Failures) != 1 || len(report.Rankings) != 0 {
		t.Errorf("expected invalid output to be reported as failure, got %d failures %d rankings",
			len(report.Failures), len(report.Rankings))
	}
}

// TestHarnessReproducible tests that a fixed seed yields identical rankings
func TestHarnessReproducible(t *testing.T) {
	def, err := game.ByName(game.Euromillions)
	if err != nil {
		t.Fatalf("failed to resolve game: %v", err)
	}

	run := func() *Report {
		h := harnessForTest(t, def)
		report, err := h.Run(context.Background(), drawsForDays(12), []strategy.Generator{
			&rngGenerator{name: "sampled-a", def: def},
			&rngGenerator{name: "sampled-b", def: def},
		})
		if err != nil {
			t.Fatalf("expected run to succeed, got %v", err)
		}
		return report
	}

	first := run()
	second := run()

	if len(first.Rankings) != len(second.Rankings) {
		t.Fatalf("ranking count differs: %d vs %d", len(first.Rankings), len(second.Rankings))
	}
	for i := range first.Rankings {
		a, b := first.Rankings[i], second.Rankings[i]
		if a.StrategyLabel != b.StrategyLabel || a.AverageScore != b.AverageScore {
			t.Errorf("position %d differs: %s=%v vs %s=%v", i, a.StrategyLabel, a.AverageScore, b.StrategyLabel, b.AverageScore)
		}
	}
}

// TestHarnessCountsWindows tests draw accounting in the report
func TestHarnessCountsWindows(t *testing.T) {
	def, err := game.ByName(game.Euromillions)
	if err != nil {
		t.Fatalf("failed to resolve game: %v", err)
	}
	h := harnessForTest(t, def)

	report, err := h.Run(context.Background(), drawsForDays(10), []strategy.Generator{
		&rngGenerator{name: "sampled", def: def},
	})
	if err != nil {
		t.Fatalf("expected run to succeed, got %v", err)
	}

	if report.TrainingDraws != 7 || report.TestDraws != 3 {
		t.Errorf("expected 7 training and 3 test draws, got %d/%d", report.TrainingDraws, report.TestDraws)
	}
	if report.Game != game.Euromillions {
		t.Errorf("expected game %s, got %s", game.Euromillions, report.Game)
	}

	// Fixed pool replayed over every test draw
	result := report.Results["sampled"]
	if result == nil {
		t.Fatal("expected result for sampled strategy")
	}
	wantMatches := len(result.Combinations) * report.TestDraws
	if len(result.Matches) != wantMatches {
		t.Errorf("expected %d match results, got %d", wantMatches, len(result.Matches))
	}
}

// TestHarnessEmitsStrategyLogEntries tests that generator failures and
// final rankings reach the dedicated strategy log channel
func TestHarnessEmitsStrategyLogEntries(t *testing.T) {
	def, err := game.ByName(game.Euromillions)
	if err != nil {
		t.Fatalf("failed to resolve game: %v", err)
	}

	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	h, err := NewHarness(HarnessConfig{
		TestWindow:              TestWindow{Size: 3},
		CombinationsPerStrategy: 2,
		Seed:                    42,
	}, def, log)
	if err != nil {
		t.Fatalf("failed to create harness: %v", err)
	}

	_, err = h.Run(context.Background(), drawsForDays(10), []strategy.Generator{
		&rngGenerator{name: "sampled", def: def},
		&failingGenerator{name: "broken"},
	})
	if err != nil {
		t.Fatalf("expected run to succeed, got %v", err)
	}

	var sawFailure, sawGeneration, sawRanking bool
	for _, line := range bytes.Split(buf.Bytes(), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var entry map[string]interface{}
		if err := json.Unmarshal(line, &entry); err != nil {
			t.Fatalf("log line is not JSON: %v", err)
		}
		if entry["component"] != "strategy" {
			continue
		}
		switch {
		case entry["strategy_name"] == "broken" && entry["level"] == "warning":
			sawFailure = true
		case entry["strategy_name"] == "sampled" && entry["combinations_generated"] != nil:
			sawGeneration = true
		case entry["strategy_name"] == "sampled" && entry["rank"] != nil:
			sawRanking = true
		}
	}

	if !sawFailure {
		t.Error("expected a strategy log entry for the failed generator")
	}
	if !sawGeneration {
		t.Error("expected a generation log entry for the scored generator")
	}
	if !sawRanking {
		t.Error("expected a ranking log entry for the scored generator")
	}
}

// TestReportToModel tests conversion to the persisted form
func TestReportToModel(t *testing.T) {
	def, err := game.ByName(game.Euromillions)
	if err != nil {
		t.Fatalf("failed to resolve game: %v", err)
	}
	h := harnessForTest(t, def)

	report, err := h.Run(context.Background(), drawsForDays(10), []strategy.Generator{
		&rngGenerator{name: "sampled", def: def},
		&failingGenerator{name: "broken"},
	})
	if err != nil {
		t.Fatalf("expected run to succeed, got %v", err)
	}

	result, err := report.ToModel()
	if err != nil {
		t.Fatalf("expected conversion to succeed, got %v", err)
	}
	if result.ID != report.RunID {
		t.Errorf("expected run id %s, got %s", report.RunID, result.ID)
	}
	if result.Combinations != 2 {
		t.Errorf("expected 2 combinations, got %d", result.Combinations)
	}
	if len(result.Rankings) == 0 || len(result.Failures) == 0 {
		t.Error("expected rankings and failures to be serialized")
	}
}
