package seeding

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jwalitptl/health-indicators/internal/indicator"
	"github.com/jwalitptl/health-indicators/internal/ingest"
	"github.com/jwalitptl/health-indicators/internal/model"
	"github.com/jwalitptl/health-indicators/internal/repository"
	apperrors "github.com/jwalitptl/health-indicators/pkg/errors"
	"github.com/jwalitptl/health-indicators/pkg/logger"
	"github.com/jwalitptl/health-indicators/pkg/metrics"
)

const (
	ModeCSV    = "csv"
	ModeSample = "sample"

	// DefaultRecordsPerBarangay is how many records each input row yields.
	DefaultRecordsPerBarangay = 3
)

// ResidentSource resolves the residents generated indicators may point at.
type ResidentSource interface {
	ResidentIDs(ctx context.Context, barangay string) ([]uuid.UUID, error)
}

// Document is one rendered SQL document.
type Document struct {
	Mode       string
	SQL        string
	Statements int
}

type Service struct {
	generator          *indicator.Generator
	residents          ResidentSource
	indicators         repository.HealthIndicatorRepository
	logger             *logger.Logger
	metrics            *metrics.Metrics
	recordsPerBarangay int
}

type Option func(*Service)

// WithResidentSource links CSV records to existing residents.
func WithResidentSource(src ResidentSource) Option {
	return func(s *Service) { s.residents = src }
}

// WithIndicatorRepository enables Apply.
func WithIndicatorRepository(repo repository.HealthIndicatorRepository) Option {
	return func(s *Service) { s.indicators = repo }
}

func WithRecordsPerBarangay(n int) Option {
	return func(s *Service) { s.recordsPerBarangay = n }
}

func NewService(generator *indicator.Generator, log *logger.Logger, m *metrics.Metrics, opts ...Option) *Service {
	s := &Service{
		generator:          generator,
		logger:             log,
		metrics:            m,
		recordsPerBarangay: DefaultRecordsPerBarangay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromCSV builds the CSV-driven document. A missing or unreadable input file
// is reported and yields a nil document with a nil error; only resident
// lookups can fail the call.
func (s *Service) FromCSV(ctx context.Context, path string) (*Document, error) {
	barangays, stats, err := ingest.ReadBarangays(path)
	if err != nil {
		if apperrors.IsNotFound(err) {
			s.logger.Warn("CSV file not found", "path", path)
		} else {
			s.logger.Error(err, "Error parsing CSV", "path", path)
		}
		s.metrics.IngestRows.WithLabelValues("failed").Inc()
		return nil, nil
	}
	s.metrics.IngestRows.WithLabelValues("used").Add(float64(len(barangays)))
	s.metrics.IngestRows.WithLabelValues("skipped").Add(float64(stats.Skipped))
	s.logger.Debug("Read barangays", "path", path, "rows", stats.Rows, "skipped", stats.Skipped)

	var records []model.HealthIndicator
	for _, barangay := range barangays {
		var residentIDs []uuid.UUID
		if s.residents != nil {
			residentIDs, err = s.residents.ResidentIDs(ctx, barangay)
			if err != nil {
				return nil, fmt.Errorf("barangay %s: %w", barangay, err)
			}
		}

		// One recorder per input row, as if a different worker logged each barangay.
		recorderID := s.generator.NewID()
		records = append(records, s.generator.Records(barangay, residentIDs, recorderID, s.recordsPerBarangay)...)
	}

	return s.render(ModeCSV, indicator.CSVBanner, records), nil
}

// Sample builds the deterministic-shape sample document.
func (s *Service) Sample() *Document {
	return s.render(ModeSample, indicator.SampleBanner, s.generator.SampleRecords())
}

// Write stores the document at path in a single write.
func (s *Service) Write(path string, doc *Document) error {
	if err := os.WriteFile(path, []byte(doc.SQL), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	s.logger.Info("SQL document written", "path", path, "statements", doc.Statements)
	return nil
}

// Apply executes the document against the configured database and returns
// the resulting row count of public.health_indicators.
func (s *Service) Apply(ctx context.Context, doc *Document) (int, error) {
	if s.indicators == nil {
		return 0, apperrors.Internal(fmt.Errorf("no database configured"))
	}
	if err := s.indicators.ExecScript(ctx, doc.SQL); err != nil {
		return 0, fmt.Errorf("failed to apply %s document: %w", doc.Mode, err)
	}
	total, err := s.indicators.Count(ctx)
	if err != nil {
		return 0, err
	}
	s.logger.Info("SQL document applied", "mode", doc.Mode, "statements", doc.Statements, "table_rows", total)
	return total, nil
}

func (s *Service) render(mode string, banner []string, records []model.HealthIndicator) *Document {
	for _, rec := range records {
		s.metrics.StatementsGenerated.WithLabelValues(mode, string(rec.Status)).Inc()
		s.metrics.StatementsByIndicator.WithLabelValues(rec.IndicatorType).Inc()
	}

	sql := indicator.RenderDocument(banner, records)
	return &Document{
		Mode:       mode,
		SQL:        sql,
		Statements: indicator.CountInserts(sql),
	}
}
