package statistics

import (
	"testing"
	"time"

	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/models"
)

func analyzerDraw(day int, numbers, stars []int) *models.Draw {
	return &models.Draw{
		Date:    time.Date(2026, 2, day, 0, 0, 0, 0, time.UTC),
		Game:    game.Euromillions,
		Numbers: numbers,
		Stars:   stars,
	}
}

func newTestAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	def, err := game.ByName(game.Euromillions)
	if err != nil {
		t.Fatalf("failed to resolve game: %v", err)
	}
	return NewAnalyzer(def)
}

// TestFrequenciesFlatCount tests unweighted counting with recentWeight zero
func TestFrequenciesFlatCount(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	draws := []*models.Draw{
		analyzerDraw(1, []int{1, 2, 3, 4, 5}, []int{1, 2}),
		analyzerDraw(2, []int{1, 2, 3, 4, 6}, []int{1, 3}),
		analyzerDraw(3, []int{1, 10, 11, 12, 13}, []int{1, 4}),
	}

	table := analyzer.Frequencies(draws, 0)

	if table.Numbers[1] != 3 {
		t.Errorf("expected 1 to appear 3 times, got %v", table.Numbers[1])
	}
	if table.Numbers[5] != 1 {
		t.Errorf("expected 5 to appear once, got %v", table.Numbers[5])
	}
	if table.Stars[1] != 3 {
		t.Errorf("expected star 1 to appear 3 times, got %v", table.Stars[1])
	}
}

// TestFrequenciesRecencyWeighting tests that newer draws weigh more
func TestFrequenciesRecencyWeighting(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	// 40 appears only in the newest draw, 41 only in the oldest
	draws := []*models.Draw{
		analyzerDraw(1, []int{41, 2, 3, 4, 5}, []int{1, 2}),
		analyzerDraw(10, []int{40, 12, 13, 14, 15}, []int{3, 4}),
	}

	table := analyzer.Frequencies(draws, 1.0)

	if table.Numbers[40] <= table.Numbers[41] {
		t.Errorf("expected newest-draw number to weigh more: 40=%v 41=%v", table.Numbers[40], table.Numbers[41])
	}
	// Full recency weight makes the newest draw weigh twice the oldest
	if table.Numbers[40] != 2*table.Numbers[41] {
		t.Errorf("expected 2x weight ratio, got 40=%v 41=%v", table.Numbers[40], table.Numbers[41])
	}
}

// TestGaps tests draws-since-last-seen computation
func TestGaps(t *testing.T) {
	analyzer := newTestAnalyzer(t)

	draws := []*models.Draw{
		analyzerDraw(1, []int{20, 21, 22, 23, 24}, []int{5, 6}),
		analyzerDraw(2, []int{20, 31, 32, 33, 34}, []int{7, 8}),
		analyzerDraw(3, []int{10, 11, 12, 13, 14}, []int{1, 2}),
	}

	table := analyzer.Gaps(draws)

	if table.Numbers[10] != 0 {
		t.Errorf("expected gap 0 for number in newest draw, got %d", table.Numbers[10])
	}
	if table.Numbers[20] != 1 {
		t.Errorf("expected gap 1 for number last seen one draw back, got %d", table.Numbers[20])
	}
	if table.Numbers[21] != 2 {
		t.Errorf("expected gap 2 for number last seen in oldest draw, got %d", table.Numbers[21])
	}
	// Never drawn in the window
	if table.Numbers[49] != 3 {
		t.Errorf("expected gap equal to window length for unseen number, got %d", table.Numbers[49])
	}
}

// TestTopNumbersTieOrdering tests deterministic tie resolution
func TestTopNumbersTieOrdering(t *testing.T) {
	table := &FrequencyTable{
		Numbers: map[int]float64{7: 2, 3: 2, 11: 5, 9: 2},
	}

	top := table.TopNumbers(3)
	want := []int{11, 3, 7}
	for i, v := range want {
		if top[i] != v {
			t.Errorf("position %d: expected %d, got %d", i, v, top[i])
		}
	}
}

// TestBottomNumbers tests ascending-weight selection
func TestBottomNumbers(t *testing.T) {
	table := &FrequencyTable{
		Numbers: map[int]float64{1: 9, 2: 1, 3: 4},
	}

	bottom := table.BottomNumbers(2)
	if bottom[0] != 2 || bottom[1] != 3 {
		t.Errorf("expected [2 3], got %v", bottom)
	}
}

// TestFrequenciesCached tests that identical windows return the memoized table
func TestFrequenciesCached(t *testing.T) {
	analyzer := newTestAnalyzer(t)
	draws := []*models.Draw{
		analyzerDraw(1, []int{1, 2, 3, 4, 5}, []int{1, 2}),
		analyzerDraw(2, []int{6, 7, 8, 9, 10}, []int{3, 4}),
	}

	first := analyzer.Frequencies(draws, 0.5)
	second := analyzer.Frequencies(draws, 0.5)
	if first != second {
		t.Error("expected memoized table on identical window")
	}

	different := analyzer.Frequencies(draws, 0.9)
	if first == different {
		t.Error("expected distinct table for different weighting")
	}
}
