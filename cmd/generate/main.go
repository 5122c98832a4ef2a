// Package main provides the pick generation CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/yourusername/lotto-better/internal/config"
	"github.com/yourusername/lotto-better/internal/database"
	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/logger"
	"github.com/yourusername/lotto-better/internal/metrics"
	"github.com/yourusername/lotto-better/internal/repository"
	"github.com/yourusername/lotto-better/internal/service"
	"github.com/yourusername/lotto-better/internal/strategy"
)

var (
	configPath   string
	gameName     string
	strategyName string
	count        int
	seed         int64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate suggested combinations for the next draw",
		Long: "Trains a strategy on the full stored draw history and prints " +
			"suggested combinations. Suggestions are deterministic for a given " +
			"seed and history.",
		RunE: runGenerate,
	}

	rootCmd.Flags().StringVar(&configPath, "config", "config/config.yaml", "Path to config file")
	rootCmd.Flags().StringVar(&gameName, "game", "", "Game to generate for (euromillions, loto)")
	rootCmd.Flags().StringVar(&strategyName, "strategy", "frequency", "Strategy to use")
	rootCmd.Flags().IntVar(&count, "count", 5, "Number of combinations to generate")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 uses the current time)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List available strategies and games",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Strategies: %s\n", strings.Join(strategy.Known(), ", "))
			fmt.Printf("Games:      %s\n", strings.Join(game.Names(), ", "))
		},
	}
	rootCmd.AddCommand(listCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if gameName == "" {
		gameName = cfg.Backtest.Game
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	log := logger.NewLogger(cfg.App.LogLevel)
	metrics.InitRegistry()

	db, err := database.NewDB(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	picks := service.NewPickService(repository.NewPostgresDrawRepository(db), log)

	combos, err := picks.GeneratePicks(ctx, gameName, strategyName, count, seed)
	if err != nil {
		return err
	}

	fmt.Printf("%s picks for %s (seed %d):\n", strategyName, gameName, seed)
	for i, combo := range combos {
		fmt.Printf("  %2d. %s\n", i+1, combo.String())
	}

	return nil
}
