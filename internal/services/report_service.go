// Package services orchestrates the extraction pipeline for the transport
// layer.
package services

import (
	"context"
	"log/slog"
	"sync"

	"distrep/internal/extraction"
	"distrep/internal/metrics"
	"distrep/internal/report"
	"distrep/pkg/contracts/domain"
)

// ReportService runs batches through the extraction engine and keeps the
// latest combined report in memory for the dashboard endpoints. Batches run
// one at a time; the files within a batch are processed sequentially.
type ReportService struct {
	engine     *extraction.Engine
	aggregator *report.Aggregator
	logger     *slog.Logger

	mu     sync.RWMutex
	latest *domain.Report
}

// NewReportService creates a report service with a wall-clock aggregator.
func NewReportService(logger *slog.Logger) *ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportService{
		engine:     extraction.NewEngine(logger),
		aggregator: report.NewAggregator(),
		logger:     logger.With(slog.String("component", "report_service")),
	}
}

// NewReportServiceWithAggregator creates a report service with a custom
// aggregator, letting tests pin the quarter stamp.
func NewReportServiceWithAggregator(logger *slog.Logger, agg *report.Aggregator) *ReportService {
	s := NewReportService(logger)
	s.aggregator = agg
	return s
}

// ProcessFiles runs the batch over the given paths and returns the stamped
// combined report. An empty report means no file yielded rows; that is a
// user-visible "no data" condition, not an error. The result is retained as
// the latest report.
func (s *ReportService) ProcessFiles(ctx context.Context, paths []string) *domain.Report {
	s.logger.InfoContext(ctx, "processing batch", slog.Int("file_count", len(paths)))

	rows := s.engine.ProcessBatch(paths)
	combined := s.aggregator.Combine(rows)
	metrics.BatchesProcessed.Inc()

	s.logger.InfoContext(ctx, "batch complete",
		slog.Int("row_count", len(combined.Rows)),
		slog.String("quarter", combined.Quarter))

	s.mu.Lock()
	s.latest = combined
	s.mu.Unlock()
	return combined
}

// Latest returns the most recent combined report, or nil when no batch has
// run yet.
func (s *ReportService) Latest() *domain.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest
}

// Summary returns the dashboard summary of the latest report, or nil when no
// batch has run yet.
func (s *ReportService) Summary() *report.Summary {
	latest := s.Latest()
	if latest == nil {
		return nil
	}
	return report.Summarize(latest)
}
