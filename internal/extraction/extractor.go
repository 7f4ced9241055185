package extraction

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"distrep/internal/grid"
	"distrep/internal/metrics"
	"distrep/pkg/contracts/domain"
)

// Engine runs the strategy cascade over distributor report files. Files are
// processed strictly one at a time; a failure in one file never aborts the
// rest of the batch.
type Engine struct {
	logger     *slog.Logger
	strategies []Strategy
}

// NewEngine creates an extraction engine with the standard strategy cascade.
func NewEngine(logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		logger:     logger.With(slog.String("component", "extraction")),
		strategies: Cascade(),
	}
}

// ProcessFile loads one report and tries each strategy in order. The first
// strategy returning rows wins; its output is normalized (distributor and
// source metadata attached) and returned. An error means the file
// contributed nothing, whether it failed to load or no strategy matched.
func (e *Engine) ProcessFile(path string) ([]domain.Row, error) {
	fileName := filepath.Base(path)

	loaded, err := grid.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", fileName, err)
	}

	e.logger.Info("processing report",
		slog.String("file", fileName),
		slog.String("sheet", loaded.SheetName),
		slog.Int("rows", loaded.Grid.NumRows()))

	for _, strategy := range e.strategies {
		rows := strategy.Extract(loaded.Grid, loaded.SheetName)
		if len(rows) == 0 {
			continue
		}

		e.logger.Info("strategy matched",
			slog.String("file", fileName),
			slog.String("strategy", strategy.Name),
			slog.Int("row_count", len(rows)))
		metrics.RowsExtracted.WithLabelValues(strategy.Name).Add(float64(len(rows)))

		normalize(rows, fileName, loaded.SheetName)
		return rows, nil
	}

	return nil, fmt.Errorf("no strategy extracted rows from %s", fileName)
}

// ProcessBatch runs the cascade over every file sequentially. Files that
// fail to load or yield no rows are logged and skipped; the batch always
// completes. The returned rows carry no time-period stamp yet; that is the
// aggregator's job.
func (e *Engine) ProcessBatch(paths []string) []domain.Row {
	var all []domain.Row
	for _, path := range paths {
		rows, err := e.ProcessFile(path)
		if err != nil {
			e.logger.Warn("skipping file",
				slog.String("file", filepath.Base(path)),
				slog.String("error", err.Error()))
			metrics.FilesSkipped.WithLabelValues("extraction_failed").Inc()
			continue
		}
		metrics.FilesProcessed.Inc()
		all = append(all, rows...)
	}
	return all
}

// normalize stamps every extracted row with the distributor label and source
// metadata. The distributor derives from the report's file name, never from
// any temp-storage path.
func normalize(rows []domain.Row, fileName, sheetName string) {
	distributor := DistributorName(fileName)
	for i := range rows {
		rows[i].Distributor = distributor
		rows[i].SourceFile = fileName
		rows[i].SheetName = sheetName
	}
}
