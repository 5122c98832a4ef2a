package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/lotto-better/internal/datasource"
	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/logger"
	"github.com/yourusername/lotto-better/internal/metrics"
	"github.com/yourusername/lotto-better/internal/models"
	"github.com/yourusername/lotto-better/internal/repository"
)

// IngestionService handles the draw ingestion workflow
type IngestionService struct {
	sources    []datasource.DataSource
	drawRepo   repository.DrawRepository
	validator  *DataValidator
	normalizer *DataNormalizer
	metrics    *IngestionMetrics
	logger     *logrus.Logger
	audit      *logger.AuditLogger
	batchSize  int
}

// NewIngestionService creates a new ingestion service
func NewIngestionService(
	sources []datasource.DataSource,
	drawRepo repository.DrawRepository,
	validator *DataValidator,
	normalizer *DataNormalizer,
	log *logrus.Logger,
	batchSize int,
) *IngestionService {
	if batchSize <= 0 {
		batchSize = 500
	}

	return &IngestionService{
		sources:    sources,
		drawRepo:   drawRepo,
		validator:  validator,
		normalizer: normalizer,
		metrics:    NewIngestionMetrics(),
		logger:     log,
		audit:      logger.NewAuditLogger(log),
		batchSize:  batchSize,
	}
}

// IngestHistoricalData fetches and ingests historical draws from a specific source
func (s *IngestionService) IngestHistoricalData(ctx context.Context, sourceName string, startDate, endDate time.Time) (*IngestionMetrics, error) {
	s.metrics.Reset()
	startTime := time.Now()

	s.logger.WithFields(logrus.Fields{
		"source": sourceName,
		"start":  startDate.Format("2006-01-02"),
		"end":    endDate.Format("2006-01-02"),
	}).Info("Starting historical draw ingestion")

	source, err := s.findSource(sourceName)
	if err != nil {
		return nil, err
	}

	draws, err := source.FetchDraws(ctx, startDate, endDate)
	if err != nil {
		s.metrics.RecordError()
		s.logger.WithError(err).WithField("source", sourceName).Error("Failed to fetch draws")
		return s.metrics, fmt.Errorf("failed to fetch draws: %w", err)
	}

	s.metrics.SetTotalDraws(len(draws))
	stored, rejected := s.ingestDraws(ctx, sourceName, draws)

	elapsed := time.Since(startTime)
	s.metrics.SetDuration(elapsed)
	metrics.IngestionDuration.Observe(elapsed.Seconds())

	s.logger.WithFields(logrus.Fields{
		"source":   sourceName,
		"stored":   stored,
		"rejected": rejected,
		"duration": elapsed,
	}).Info("Historical ingestion complete")

	return s.metrics, nil
}

// SyncLatest fetches the most recent results from every enabled source and
// stores any draws not yet present
func (s *IngestionService) SyncLatest(ctx context.Context, limit int) error {
	var syncErr error
	for _, source := range s.sources {
		if !source.IsEnabled() {
			continue
		}

		draws, err := source.FetchLatest(ctx, limit)
		if err != nil {
			metrics.ResultSyncsTotal.WithLabelValues(source.Game(), "error").Inc()
			s.logger.WithError(err).WithField("source", source.Name()).Warn("Result sync failed")
			syncErr = err
			continue
		}

		stored, rejected := s.ingestDraws(ctx, source.Name(), draws)
		s.audit.LogResultSync(source.Name(), source.Game(), len(draws), stored, rejected)
		metrics.ResultSyncsTotal.WithLabelValues(source.Game(), "success").Inc()
	}

	return syncErr
}

// IngestReader ingests draws from a local export file for the given game.
// The reader must contain an FDJ-format CSV.
func (s *IngestionService) IngestReader(ctx context.Context, gameName string, r io.Reader) (*IngestionMetrics, error) {
	s.metrics.Reset()
	startTime := time.Now()

	parser := datasource.NewFDJCSVParser(gameName, nil)
	draws, err := parser.Parse(r)
	if err != nil {
		return s.metrics, fmt.Errorf("failed to parse export: %w", err)
	}

	s.metrics.SetTotalDraws(len(draws))
	s.ingestDraws(ctx, "file", draws)

	elapsed := time.Since(startTime)
	s.metrics.SetDuration(elapsed)
	metrics.IngestionDuration.Observe(elapsed.Seconds())
	return s.metrics, nil
}

// ingestDraws validates, normalizes and stores fetched draws, writing them
// through the repository in transactional batches of batchSize. Returns the
// stored and rejected counts for the set.
func (s *IngestionService) ingestDraws(ctx context.Context, sourceName string, draws []datasource.DrawData) (int, int) {
	stored := 0
	rejected := 0
	batch := make([]*models.Draw, 0, s.batchSize)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		stored += s.storeBatch(ctx, sourceName, batch)
		batch = batch[:0]
	}

	for i := range draws {
		draw := s.prepareDraw(sourceName, &draws[i])
		if draw == nil {
			rejected++
			continue
		}
		batch = append(batch, draw)
		if len(batch) >= s.batchSize {
			flush()
		}
	}
	flush()

	return stored, rejected
}

// storeBatch inserts one batch atomically. Rows already present count as
// duplicates. If the batch itself fails, the draws are retried one by one so
// a single bad row cannot sink its whole batch.
func (s *IngestionService) storeBatch(ctx context.Context, sourceName string, batch []*models.Draw) int {
	inserted, err := s.drawRepo.InsertBatch(ctx, batch)
	if err != nil {
		s.logger.WithError(err).WithField("batch_size", len(batch)).Warn("Batch insert failed, retrying draws individually")
		return s.storeIndividually(ctx, sourceName, batch)
	}

	s.metrics.AddStored(inserted)
	s.metrics.AddDuplicates(len(batch) - inserted)
	metrics.DrawsIngestedTotal.WithLabelValues(batch[0].Game, sourceName).Add(float64(inserted))
	return inserted
}

// storeIndividually is the fallback path when a batch insert fails
func (s *IngestionService) storeIndividually(ctx context.Context, sourceName string, batch []*models.Draw) int {
	inserted := 0
	for _, draw := range batch {
		if err := s.drawRepo.Insert(ctx, draw); err != nil {
			if errors.Is(err, models.ErrDuplicateKey) {
				s.metrics.RecordDuplicate()
				continue
			}
			s.metrics.RecordError()
			s.logger.WithError(err).WithField("date", draw.Date.Format("2006-01-02")).Error("Failed to store draw")
			continue
		}
		s.metrics.RecordStored()
		metrics.DrawsIngestedTotal.WithLabelValues(draw.Game, sourceName).Inc()
		inserted++
	}
	return inserted
}

// prepareDraw validates and normalizes one fetched draw. A nil return means
// the draw was rejected and recorded.
func (s *IngestionService) prepareDraw(sourceName string, data *datasource.DrawData) *models.Draw {
	def, err := game.ByName(data.Game)
	if err != nil {
		s.metrics.RecordValidationError()
		metrics.DrawsRejectedTotal.WithLabelValues(data.Game, sourceName).Inc()
		s.logger.WithField("game", data.Game).Warn("Unknown game in fetched draw")
		return nil
	}

	if problems := s.validator.ValidateDraw(data, def); len(problems) > 0 {
		s.metrics.RecordValidationError()
		metrics.DrawsRejectedTotal.WithLabelValues(data.Game, sourceName).Inc()
		s.logger.WithFields(logrus.Fields{
			"date":     data.Date.Format("2006-01-02"),
			"problems": problems,
		}).Warn("Draw rejected by validation")
		return nil
	}

	draw, err := s.normalizer.NormalizeDraw(data, def)
	if err != nil {
		s.metrics.RecordValidationError()
		metrics.DrawsRejectedTotal.WithLabelValues(data.Game, sourceName).Inc()
		s.logger.WithError(err).Warn("Draw rejected by normalization")
		return nil
	}

	return draw
}

func (s *IngestionService) findSource(name string) (datasource.DataSource, error) {
	for _, src := range s.sources {
		if src.Name() == name {
			return src, nil
		}
	}
	return nil, fmt.Errorf("data source not found: %s", name)
}

// GetMetrics returns current ingestion metrics
func (s *IngestionService) GetMetrics() *IngestionMetrics {
	return s.metrics
}
