package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yourusername/lotto-better/internal/game"
	"github.com/yourusername/lotto-better/internal/models"
)

// recordingDrawRepo captures repository calls so tests can assert how the
// ingestion service writes draws.
type recordingDrawRepo struct {
	batchSizes  []int
	stored      []*models.Draw
	batchErr    error
	shortBatch  bool
	singleCalls int
}

func (r *recordingDrawRepo) Insert(ctx context.Context, draw *models.Draw) error {
	r.singleCalls++
	r.stored = append(r.stored, draw)
	return nil
}

func (r *recordingDrawRepo) InsertBatch(ctx context.Context, draws []*models.Draw) (int, error) {
	if r.batchErr != nil {
		return 0, r.batchErr
	}
	r.batchSizes = append(r.batchSizes, len(draws))
	inserted := len(draws)
	if r.shortBatch {
		inserted--
	}
	r.stored = append(r.stored, draws[:inserted]...)
	return inserted, nil
}

func (r *recordingDrawRepo) GetAllByGame(ctx context.Context, game string) ([]*models.Draw, error) {
	return nil, nil
}

func (r *recordingDrawRepo) GetMostRecent(ctx context.Context, game string, limit int) ([]*models.Draw, error) {
	return nil, nil
}

func (r *recordingDrawRepo) GetByDateRange(ctx context.Context, game string, start, end time.Time) ([]*models.Draw, error) {
	return nil, nil
}

func (r *recordingDrawRepo) CountByGame(ctx context.Context, game string) (int, error) {
	return len(r.stored), nil
}

func silentLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}

func ingestionServiceForTest(repo *recordingDrawRepo, batchSize int) *IngestionService {
	log := silentLogger()
	return NewIngestionService(nil, repo, NewDataValidator(log), NewDataNormalizer(log), log, batchSize)
}

const lotoExportCSV = "annee_numero_de_tirage;date_de_tirage;boule_1;boule_2;boule_3;boule_4;boule_5;numero_chance\n" +
	"2025005;11/01/2025;7;12;23;34;45;8\n" +
	"2025004;08/01/2025;1;5;19;28;44;3\n" +
	"2025003;06/01/2025;2;9;17;31;49;10\n" +
	"2025002;04/01/2025;4;11;22;33;46;1\n" +
	"2025001;02/01/2025;6;13;24;35;47;5\n"

// TestIngestReaderBatchesInserts tests that draws are written through the
// batch path in chunks of the configured batch size
func TestIngestReaderBatchesInserts(t *testing.T) {
	repo := &recordingDrawRepo{}
	svc := ingestionServiceForTest(repo, 2)

	ingestionMetrics, err := svc.IngestReader(context.Background(), game.FrenchLoto, strings.NewReader(lotoExportCSV))
	if err != nil {
		t.Fatalf("expected ingestion to succeed, got %v", err)
	}

	want := []int{2, 2, 1}
	if len(repo.batchSizes) != len(want) {
		t.Fatalf("expected %d batches, got %v", len(want), repo.batchSizes)
	}
	for i, size := range want {
		if repo.batchSizes[i] != size {
			t.Errorf("batch %d: expected size %d, got %d", i, size, repo.batchSizes[i])
		}
	}

	if repo.singleCalls != 0 {
		t.Errorf("expected no single inserts on the batch path, got %d", repo.singleCalls)
	}
	if ingestionMetrics.TotalCount() != 5 || ingestionMetrics.StoredCount() != 5 {
		t.Errorf("expected 5 fetched and 5 stored, got %d/%d",
			ingestionMetrics.TotalCount(), ingestionMetrics.StoredCount())
	}
}

// TestIngestReaderRetriesIndividually tests the per-draw fallback when a
// whole batch fails to insert
func TestIngestReaderRetriesIndividually(t *testing.T) {
	repo := &recordingDrawRepo{batchErr: fmt.Errorf("connection reset")}
	svc := ingestionServiceForTest(repo, 2)

	ingestionMetrics, err := svc.IngestReader(context.Background(), game.FrenchLoto, strings.NewReader(lotoExportCSV))
	if err != nil {
		t.Fatalf("expected ingestion to succeed, got %v", err)
	}

	if repo.singleCalls != 5 {
		t.Errorf("expected 5 individual inserts, got %d", repo.singleCalls)
	}
	if ingestionMetrics.StoredCount() != 5 {
		t.Errorf("expected 5 stored, got %d", ingestionMetrics.StoredCount())
	}
}

// TestIngestReaderCountsDuplicates tests that rows skipped by the batch
// insert are counted as duplicates, not losses
func TestIngestReaderCountsDuplicates(t *testing.T) {
	repo := &recordingDrawRepo{shortBatch: true}
	svc := ingestionServiceForTest(repo, 2)

	ingestionMetrics, err := svc.IngestReader(context.Background(), game.FrenchLoto, strings.NewReader(lotoExportCSV))
	if err != nil {
		t.Fatalf("expected ingestion to succeed, got %v", err)
	}

	// One row per batch conflicts: 3 batches over 5 rows
	if ingestionMetrics.StoredCount() != 2 {
		t.Errorf("expected 2 stored, got %d", ingestionMetrics.StoredCount())
	}
	if ingestionMetrics.Duplicates != 3 {
		t.Errorf("expected 3 duplicates, got %d", ingestionMetrics.Duplicates)
	}
}

// TestIngestReaderRejectsInvalidRows tests that out-of-range draws are
// rejected before reaching the repository
func TestIngestReaderRejectsInvalidRows(t *testing.T) {
	badRow := "2025006;13/01/2025;7;12;23;34;99;8\n"
	repo := &recordingDrawRepo{}
	svc := ingestionServiceForTest(repo, 10)

	ingestionMetrics, err := svc.IngestReader(context.Background(), game.FrenchLoto, strings.NewReader(lotoExportCSV+badRow))
	if err != nil {
		t.Fatalf("expected ingestion to succeed, got %v", err)
	}

	if ingestionMetrics.StoredCount() != 5 {
		t.Errorf("expected 5 stored, got %d", ingestionMetrics.StoredCount())
	}
	if ingestionMetrics.RejectedCount() == 0 {
		t.Error("expected the out-of-range row to be rejected")
	}
	if len(repo.stored) != 5 {
		t.Errorf("expected 5 draws in repository, got %d", len(repo.stored))
	}
}

// TestIngestionMetricsSetters tests that counter updates go through the
// guarded accessors
func TestIngestionMetricsSetters(t *testing.T) {
	m := NewIngestionMetrics()

	m.SetTotalDraws(10)
	m.AddStored(6)
	m.AddDuplicates(3)
	m.RecordValidationError()
	m.SetDuration(250 * time.Millisecond)

	if m.TotalCount() != 10 {
		t.Errorf("expected 10 total, got %d", m.TotalCount())
	}
	if m.StoredCount() != 6 {
		t.Errorf("expected 6 stored, got %d", m.StoredCount())
	}
	if m.RejectedCount() != 1 {
		t.Errorf("expected 1 rejected, got %d", m.RejectedCount())
	}
	if !strings.Contains(m.String(), "Duplicates=3") {
		t.Errorf("expected duplicates in summary, got %s", m.String())
	}

	m.Reset()
	if m.TotalCount() != 0 || m.StoredCount() != 0 {
		t.Error("expected counters to reset")
	}
}
