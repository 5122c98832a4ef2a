// Package main provides the entry point for the backtesting CLI tool.
package main

import (
	"context"
	"flag"
	stdlog "log"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/lotto-better/internal/backtest"
	"github.com/yourusername/lotto-better/internal/config"
	"github.com/yourusername/lotto-better/internal/database"
	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/logger"
	"github.com/yourusername/lotto-better/internal/metrics"
	"github.com/yourusername/lotto-better/internal/models"
	"github.com/yourusername/lotto-better/internal/repository"
	"github.com/yourusername/lotto-better/internal/strategy"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		gameName   = flag.String("game", "", "Override game to backtest (euromillions, loto)")
		seed       = flag.Int64("seed", 0, "Override random seed for the run")
		output     = flag.String("output", "", "Override output path for the JSON report")
		csvExport  = flag.String("csv", "", "Also export rankings as CSV to this path")
		noPersist  = flag.Bool("no-persist", false, "Skip storing the result in the database")
	)
	flag.Parse()

	cfg := loadConfigWithSecrets(*configPath)
	log := logger.NewLogger(cfg.App.LogLevel)
	audit := logger.NewAuditLogger(log)
	ctx := context.Background()

	metrics.InitRegistry()

	if *gameName != "" {
		audit.LogConfigChange("backtest.game", cfg.Backtest.Game, *gameName, "cli")
		cfg.Backtest.Game = *gameName
	}
	if *seed != 0 {
		audit.LogConfigChange("backtest.seed", cfg.Backtest.Seed, *seed, "cli")
		cfg.Backtest.Seed = *seed
	}
	if *output != "" {
		audit.LogConfigChange("backtest.output_path", cfg.Backtest.OutputPath, *output, "cli")
		cfg.Backtest.OutputPath = *output
	}

	def, err := game.ByName(cfg.Backtest.Game)
	if err != nil {
		log.Fatalf("Unknown game: %v", err)
	}

	db, err := database.NewDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	repos, err := repository.NewRepositories(db)
	if err != nil {
		log.Fatalf("Failed to create repositories: %v", err)
	}

	report := runBacktest(ctx, cfg, def, repos, log)

	strategies := len(report.Rankings) + len(report.Failures)
	audit.LogBacktestRun(report.RunID.String(), report.Game,
		report.TrainingDraws, report.TestDraws, strategies, len(report.Failures),
		report.StartedAt, report.Duration.Seconds()*1e3)

	log.Info(backtest.GenerateConsoleReport(report))

	if cfg.Backtest.OutputPath != "" {
		if err := backtest.ExportToJSON(report, cfg.Backtest.OutputPath); err != nil {
			log.Fatalf("Failed to export JSON report: %v", err)
		}
		log.WithField("path", cfg.Backtest.OutputPath).Info("Exported JSON report")
	}

	if *csvExport != "" {
		if err := backtest.GenerateCSVExport(report, *csvExport); err != nil {
			log.Fatalf("Failed to export CSV report: %v", err)
		}
		log.WithField("path", *csvExport).Info("Exported CSV report")
	}

	if !*noPersist {
		persistReport(ctx, report, repos.BacktestResult, log)
	}
}

func loadConfigWithSecrets(path string) *config.Config {
	cfg, err := config.Load(path)
	if err != nil {
		stdlog.Fatalf("Failed to load config: %v", err)
	}
	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			stdlog.Fatalf("AWS_REGION and AWS_SECRET_NAME environment variables must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			stdlog.Fatalf("Failed to load secrets: %v", err)
		}
	}
	if err := config.Validate(cfg); err != nil {
		stdlog.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func resolveStrategies(names []string, def *game.Definition, log *logrus.Logger) []strategy.Generator {
	generators := make([]strategy.Generator, 0, len(names))
	for _, name := range names {
		gen, err := strategy.Resolve(name, def)
		if err != nil {
			log.Fatalf("Unknown strategy %q (known: %v)", name, strategy.Known())
		}
		generators = append(generators, gen)
	}
	return generators
}

func runBacktest(ctx context.Context, cfg *config.Config, def *game.Definition, repos *repository.Repositories, log *logrus.Logger) *backtest.Report {
	harnessCfg, err := backtest.FromConfig(&cfg.Backtest)
	if err != nil {
		log.Fatalf("Invalid backtest config: %v", err)
	}

	draws, err := repos.Draw.GetAllByGame(ctx, def.Name)
	if err != nil {
		log.Fatalf("Failed to load draw history: %v", err)
	}
	if len(draws) == 0 {
		log.Fatalf("No stored draws for %s, ingest history first", def.Name)
	}

	generators := resolveStrategies(cfg.Strategies.Enabled, def, log)

	harness, err := backtest.NewHarness(harnessCfg, def, log)
	if err != nil {
		log.Fatalf("Failed to create harness: %v", err)
	}

	started := time.Now()
	report, err := harness.Run(ctx, draws, generators)
	if err != nil {
		log.Fatalf("Backtest run failed: %v", err)
	}
	metrics.RecordBacktestDuration(time.Since(started).Seconds())

	return report
}

func persistReport(ctx context.Context, report *backtest.Report, repo repository.BacktestResultRepository, log *logrus.Logger) {
	result, err := report.ToModel()
	if err != nil {
		log.Fatalf("Failed to prepare result for storage: %v", err)
	}
	result.CreatedAt = time.Now().UTC()

	if err := repo.Create(ctx, result); err != nil {
		log.WithError(err).Error("Failed to persist backtest result")
		return
	}
	logResultStored(result, log)
}

func logResultStored(result *models.BacktestResult, log *logrus.Logger) {
	log.WithFields(logrus.Fields{
		"run_id":       result.ID,
		"game":         result.Game,
		"combinations": result.Combinations,
	}).Info("Stored backtest result")
}
