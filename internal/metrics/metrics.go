// Package metrics exposes Prometheus counters for the extraction pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FilesProcessed counts input files that yielded at least one row.
	FilesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "distrep_files_processed_total",
		Help: "Number of input files successfully processed",
	})

	// FilesSkipped counts input files skipped per failure reason.
	FilesSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "distrep_files_skipped_total",
		Help: "Number of input files skipped, by reason",
	}, []string{"reason"})

	// RowsExtracted counts extracted rows per winning strategy.
	RowsExtracted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "distrep_rows_extracted_total",
		Help: "Number of rows extracted, by strategy",
	}, []string{"strategy"})

	// BatchesProcessed counts completed batch runs.
	BatchesProcessed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "distrep_batches_processed_total",
		Help: "Number of completed batch runs",
	})
)
