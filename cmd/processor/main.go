// Command processor runs the extraction batch from the command line: it
// reads distributor report files, combines them, and writes the combined
// report as CSV.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"distrep/internal/config"
	"distrep/internal/exporter"
	"distrep/internal/extraction"
	"distrep/internal/files"
	"distrep/internal/infrastructure"
	"distrep/internal/report"
)

func main() {
	inDir := flag.String("in", "", "directory containing report files; positional file arguments are used instead when given")
	outPath := flag.String("out", "combined_report.csv", "output CSV path")
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logger, err := infrastructure.InitializeLogger(config.LoggingConfig{
		Level:  *logLevel,
		Format: "text",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		if *inDir == "" {
			fmt.Fprintln(os.Stderr, "usage: processor [-in dir | file...] [-out report.csv]")
			os.Exit(2)
		}
		paths, err = files.FindReportFiles(*inDir)
		if err != nil {
			logger.Error("failed to discover report files", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if len(paths) == 0 {
		logger.Warn("no report files found", slog.String("dir", *inDir))
		os.Exit(0)
	}

	logger.Info("starting batch", slog.Int("file_count", len(paths)))

	engine := extraction.NewEngine(logger)
	rows := engine.ProcessBatch(paths)
	combined := report.NewAggregator().Combine(rows)

	if combined.Empty() {
		logger.Warn("no data extracted from any file")
		os.Exit(0)
	}

	if err := exporter.NewCSVWriter(logger).WriteReport(*outPath, combined); err != nil {
		logger.Error("failed to write report", slog.String("error", err.Error()))
		os.Exit(1)
	}

	summary := report.Summarize(combined)
	logger.Info("batch complete",
		slog.String("output", *outPath),
		slog.String("quarter", combined.Quarter),
		slog.Int("rows", summary.TotalRows),
		slog.Int("customers", summary.TotalCustomers),
		slog.Int("products", summary.TotalProducts))
}
