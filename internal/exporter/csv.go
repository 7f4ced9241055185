// Package exporter writes combined distributor reports to CSV for download
// and archival.
package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"distrep/pkg/contracts/domain"
)

// CSVWriter exports combined reports as CSV.
type CSVWriter struct {
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance.
func NewCSVWriter(logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{logger: logger.With(slog.String("component", "exporter"))}
}

// WriteReport writes the combined report to filePath. The column order is
// fixed; City and State appear only when at least one row in the report
// carries them.
func (w *CSVWriter) WriteReport(filePath string, report *domain.Report) error {
	w.logger.Info("writing report CSV",
		slog.String("file_path", filePath),
		slog.Int("row_count", len(report.Rows)))

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return w.Write(file, report)
}

// Write streams the report as CSV to an arbitrary writer. A UTF-8 BOM is
// emitted first so Excel opens the file with the right encoding.
func (w *CSVWriter) Write(out io.Writer, report *domain.Report) error {
	if _, err := out.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	withLocation := report.HasLocation()

	cw := csv.NewWriter(out)

	if err := cw.Write(Headers(withLocation)); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	for i, row := range report.Rows {
		if err := cw.Write(Record(row, withLocation)); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Headers returns the CSV column headers in their guaranteed order.
func Headers(withLocation bool) []string {
	h := []string{"Customer Name", "Product", "Quantity", "Source File", "Distributor", "Sheet Name"}
	if withLocation {
		h = append(h, "City", "State")
	}
	return append(h, "Month", "Year", "Quarter")
}

// Record renders one row in the same column order as Headers.
func Record(row domain.Row, withLocation bool) []string {
	r := []string{
		row.Customer,
		row.Product,
		strconv.Itoa(row.Quantity),
		row.SourceFile,
		row.Distributor,
		row.SheetName,
	}
	if withLocation {
		r = append(r, row.City, row.State)
	}
	return append(r, strconv.Itoa(row.Month), strconv.Itoa(row.Year), row.Quarter)
}
