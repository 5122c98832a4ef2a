package backtest

import (
	"fmt"
	"sort"

	"github.com/yourusername/lotto-better/internal/models"
)

// Split holds a chronological train/test partition of historical draws.
// Training contains every draw strictly older than the oldest test draw,
// so generators can never see data from the evaluation window.
type Split struct {
	Training []*models.Draw
	Test     []*models.Draw
}

// TestWindow selects the evaluation window size: either an absolute count
// of most-recent draws, or a ratio of the total. Exactly one must be set.
type TestWindow struct {
	Size  int
	Ratio float64
}

// NewSplit partitions draws into training and evaluation sets. The input
// may arrive in any order; the split sorts by date descending and takes
// the k most recent draws as the evaluation set.
func NewSplit(draws []*models.Draw, window TestWindow) (*Split, error) {
	if len(draws) == 0 {
		return nil, fmt.Errorf("%w: no draws provided", models.ErrInsufficientData)
	}

	k, err := window.resolve(len(draws))
	if err != nil {
		return nil, err
	}

	sorted := make([]*models.Draw, len(draws))
	copy(sorted, draws)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	return &Split{
		Test:     sorted[:k],
		Training: sorted[k:],
	}, nil
}

func (w TestWindow) resolve(total int) (int, error) {
	k := w.Size
	if k == 0 && w.Ratio > 0 {
		k = int(float64(total) * w.Ratio)
		if k < 1 {
			k = 1
		}
	}
	if k < 1 {
		return 0, fmt.Errorf("%w: evaluation window resolves to %d draws", models.ErrInsufficientData, k)
	}
	if k >= total {
		return 0, fmt.Errorf("%w: evaluation window of %d leaves no training draws out of %d", models.ErrInsufficientData, k, total)
	}
	return k, nil
}

// Validate checks the no-leakage property: every training draw is strictly
// older than every evaluation draw.
func (s *Split) Validate() error {
	if len(s.Training) == 0 || len(s.Test) == 0 {
		return fmt.Errorf("%w: both sides of the split must be non-empty", models.ErrInsufficientData)
	}
	oldestTest := s.Test[0].Date
	for _, d := range s.Test {
		if d.Date.Before(oldestTest) {
			oldestTest = d.Date
		}
	}
	for _, d := range s.Training {
		if !d.Date.Before(oldestTest) {
			return fmt.Errorf("training draw %s is not older than evaluation window start %s",
				d.Date.Format("2006-01-02"), oldestTest.Format("2006-01-02"))
		}
	}
	return nil
}
