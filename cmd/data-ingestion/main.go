// Package main provides the entry point for the draw ingestion service.
package main

import (
	"context"
	"flag"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/lotto-better/internal/backtest"
	"github.com/yourusername/lotto-better/internal/config"
	"github.com/yourusername/lotto-better/internal/database"
	"github.com/yourusername/lotto-better/internal/datasource"
	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/logger"
	"github.com/yourusername/lotto-better/internal/metrics"
	"github.com/yourusername/lotto-better/internal/repository"
	"github.com/yourusername/lotto-better/internal/scheduler"
	"github.com/yourusername/lotto-better/internal/service"
	"github.com/yourusername/lotto-better/internal/strategy"
)

func main() {
	var (
		configPath = flag.String("config", "config/config.yaml", "Path to config file")
		filePath   = flag.String("file", "", "One-shot: ingest a local FDJ CSV export and exit")
		gameName   = flag.String("game", "", "Game for one-shot file ingestion (euromillions, loto)")
		sourceName = flag.String("source", "", "One-shot: ingest history from this configured source and exit")
		startDate  = flag.String("start-date", "", "History start date for -source (YYYY-MM-DD)")
		endDate    = flag.String("end-date", "", "History end date for -source (YYYY-MM-DD)")
	)
	flag.Parse()

	cfg := loadConfig(*configPath)
	log := logger.NewLogger(cfg.App.LogLevel)
	ctx := context.Background()

	metrics.InitRegistry()

	db, err := database.Initialize(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	repos, err := repository.NewRepositories(db)
	if err != nil {
		log.Fatalf("Failed to create repositories: %v", err)
	}

	ingestionSvc := buildIngestionService(cfg, repos, log)

	switch {
	case *filePath != "":
		ingestFile(ctx, ingestionSvc, *filePath, *gameName, log)
	case *sourceName != "":
		ingestHistory(ctx, ingestionSvc, *sourceName, *startDate, *endDate, log)
	default:
		runService(ctx, cfg, repos, ingestionSvc, log)
	}
}

func loadConfig(path string) *config.Config {
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

func buildIngestionService(cfg *config.Config, repos *repository.Repositories, log *logrus.Logger) *service.IngestionService {
	srcLogger := stdlog.New(log.Writer(), "datasource: ", 0)

	httpClient := datasource.NewRateLimitedHTTPClient(datasource.DefaultHTTPClientConfig(), srcLogger)
	factory := datasource.NewFactory(cfg, srcLogger)

	sources, err := factory.NewDataSources(cfg.DataIngestion, httpClient)
	if err != nil {
		log.Fatalf("Failed to create data sources: %v", err)
	}

	batchSize := 0
	for _, src := range cfg.DataIngestion.Sources {
		if src.Enabled && src.BatchSize > batchSize {
			batchSize = src.BatchSize
		}
	}

	return service.NewIngestionService(
		sources,
		repos.Draw,
		service.NewDataValidator(log),
		service.NewDataNormalizer(log),
		log,
		batchSize,
	)
}

// ingestFile ingests a local FDJ CSV export, for bootstrapping history
// without hitting any remote source.
func ingestFile(ctx context.Context, svc *service.IngestionService, path, gameName string, log *logrus.Logger) {
	if gameName == "" {
		log.Fatalf("-game is required with -file")
	}
	if _, err := game.ByName(gameName); err != nil {
		log.Fatalf("Unknown game: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open export file: %v", err)
	}
	defer f.Close()

	ingestionMetrics, err := svc.IngestReader(ctx, gameName, f)
	if err != nil {
		log.Fatalf("File ingestion failed: %v", err)
	}

	logger.NewAuditLogger(log).LogIngestion("file", gameName, path,
		ingestionMetrics.TotalCount(), ingestionMetrics.StoredCount(), ingestionMetrics.RejectedCount())

	log.WithFields(logrus.Fields{
		"file":    path,
		"game":    gameName,
		"metrics": ingestionMetrics.String(),
	}).Info("File ingestion complete")
}

func ingestHistory(ctx context.Context, svc *service.IngestionService, sourceName, start, end string, log *logrus.Logger) {
	startDate, err := parseDateOr(start, time.Date(2004, 2, 13, 0, 0, 0, 0, time.UTC))
	if err != nil {
		log.Fatalf("Invalid start date: %v", err)
	}
	endDate, err := parseDateOr(end, time.Now().UTC())
	if err != nil {
		log.Fatalf("Invalid end date: %v", err)
	}

	ingestionMetrics, err := svc.IngestHistoricalData(ctx, sourceName, startDate, endDate)
	if err != nil {
		log.Fatalf("Historical ingestion failed: %v", err)
	}

	log.WithFields(logrus.Fields{
		"source":  sourceName,
		"metrics": ingestionMetrics.String(),
	}).Info("Historical ingestion complete")
}

func parseDateOr(value string, fallback time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}
	return time.Parse("2006-01-02", value)
}

// runService runs result syncs on the configured schedule until the process
// receives SIGINT or SIGTERM.
func runService(ctx context.Context, cfg *config.Config, repos *repository.Repositories, svc *service.IngestionService, log *logrus.Logger) {
	refreshStoredDrawGauges(ctx, repos, log)

	sched := scheduler.NewScheduler(svc, log)

	syncTimeout := time.Duration(cfg.DataIngestion.Schedule.SyncTimeoutSeconds) * time.Second
	if err := sched.ScheduleResultSync(cfg.DataIngestion.Schedule.ResultSync, syncTimeout); err != nil {
		log.Fatalf("Failed to schedule result sync: %v", err)
	}

	if cron := cfg.DataIngestion.Schedule.NightlyBacktest; cron != "" {
		timeout := time.Duration(cfg.DataIngestion.Schedule.BacktestTimeoutSeconds) * time.Second
		if timeout == 0 {
			timeout = 10 * time.Minute
		}
		if err := sched.ScheduleNightlyBacktest(cron, timeout, nightlyBacktest(cfg, repos, log)); err != nil {
			log.Fatalf("Failed to schedule nightly backtest: %v", err)
		}
	}

	if err := sched.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}

	metricsServer := startMetricsServer(cfg, log)

	log.WithFields(logrus.Fields{
		"environment": cfg.App.Environment,
		"next_run":    sched.GetNextRun(),
	}).Info("Data ingestion service started")

	waitForShutdown(log)

	if err := sched.Stop(); err != nil {
		log.WithError(err).Error("Failed to stop scheduler")
	}
	if metricsServer != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("Failed to stop metrics server")
		}
	}

	log.Info("Data ingestion service stopped")
}

// nightlyBacktest builds the scheduled backtest job. Every run re-reads the
// stored history so new draws picked up by result syncs are included.
func nightlyBacktest(cfg *config.Config, repos *repository.Repositories, log *logrus.Logger) scheduler.BacktestFunc {
	return func(ctx context.Context) error {
		def, err := game.ByName(cfg.Backtest.Game)
		if err != nil {
			return err
		}

		harnessCfg, err := backtest.FromConfig(&cfg.Backtest)
		if err != nil {
			return err
		}

		draws, err := repos.Draw.GetAllByGame(ctx, def.Name)
		if err != nil {
			return fmt.Errorf("failed to load draw history: %w", err)
		}

		generators := make([]strategy.Generator, 0, len(cfg.Strategies.Enabled))
		for _, name := range cfg.Strategies.Enabled {
			gen, err := strategy.Resolve(name, def)
			if err != nil {
				return err
			}
			generators = append(generators, gen)
		}

		harness, err := backtest.NewHarness(harnessCfg, def, log)
		if err != nil {
			return err
		}

		started := time.Now()
		report, err := harness.Run(ctx, draws, generators)
		if err != nil {
			return err
		}
		metrics.RecordBacktestDuration(time.Since(started).Seconds())

		result, err := report.ToModel()
		if err != nil {
			return err
		}
		result.CreatedAt = time.Now().UTC()

		if err := repos.BacktestResult.Create(ctx, result); err != nil {
			return fmt.Errorf("failed to persist backtest result: %w", err)
		}

		if cfg.Backtest.OutputPath != "" {
			if err := backtest.ExportToJSON(report, cfg.Backtest.OutputPath); err != nil {
				log.WithError(err).Warn("Failed to export nightly report")
			}
		}

		return nil
	}
}

// refreshStoredDrawGauges seeds the stored-draw gauges so dashboards show
// correct totals before the first sync runs.
func refreshStoredDrawGauges(ctx context.Context, repos *repository.Repositories, log *logrus.Logger) {
	for _, name := range game.Names() {
		count, err := repos.Draw.CountByGame(ctx, name)
		if err != nil {
			log.WithError(err).WithField("game", name).Warn("Failed to count stored draws")
			continue
		}
		metrics.StoredDraws.WithLabelValues(name).Set(float64(count))
	}
}

func startMetricsServer(cfg *config.Config, log *logrus.Logger) *http.Server {
	if !cfg.Metrics.Enabled {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle(cfg.Metrics.Path, metrics.Handler())

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
		Handler: mux,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Metrics server failed")
		}
	}()

	log.WithFields(logrus.Fields{
		"port": cfg.Metrics.Port,
		"path": cfg.Metrics.Path,
	}).Info("Metrics server started")

	return server
}

func waitForShutdown(log *logrus.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.WithField("signal", sig.String()).Info("Shutdown signal received")
}
