package backtest

import (
	"fmt"

	"github.com/yourusername/lotto-better/internal/config"
)

// HarnessConfig holds the parameters of one backtest run
type HarnessConfig struct {
	TestWindow              TestWindow
	CombinationsPerStrategy int
	Seed                    int64
}

// FromConfig converts app config to a harness config
func FromConfig(cfg *config.BacktestConfig) (HarnessConfig, error) {
	if cfg == nil {
		return HarnessConfig{}, fmt.Errorf("backtest config is required")
	}

	hc := HarnessConfig{
		TestWindow: TestWindow{
			Size:  cfg.TestWindowSize,
			Ratio: cfg.TestWindowRatio,
		},
		CombinationsPerStrategy: cfg.CombinationsPerStrategy,
		Seed:                    cfg.Seed,
	}

	return hc, hc.Validate()
}

// Validate validates harness config parameters
func (c HarnessConfig) Validate() error {
	if c.TestWindow.Size < 0 {
		return fmt.Errorf("test window size cannot be negative")
	}
	if c.TestWindow.Ratio < 0 || c.TestWindow.Ratio >= 1 {
		return fmt.Errorf("test window ratio must be in [0, 1)")
	}
	if c.TestWindow.Size == 0 && c.TestWindow.Ratio == 0 {
		return fmt.Errorf("either test window size or ratio must be set")
	}
	if c.TestWindow.Size > 0 && c.TestWindow.Ratio > 0 {
		return fmt.Errorf("test window size and ratio are mutually exclusive")
	}
	if c.CombinationsPerStrategy <= 0 {
		return fmt.Errorf("combinations per strategy must be positive")
	}
	return nil
}
