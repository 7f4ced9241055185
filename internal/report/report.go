// Package report combines per-file extraction results into the final
// distributor report table and derives the summaries the dashboard renders.
package report

import (
	"fmt"
	"time"

	"distrep/pkg/contracts/domain"
)

// Aggregator concatenates extracted rows across files and stamps them with
// the time period of the run. The clock is injectable so tests can pin the
// quarter label.
type Aggregator struct {
	now func() time.Time
}

// NewAggregator creates an aggregator using wall-clock time.
func NewAggregator() *Aggregator {
	return &Aggregator{now: time.Now}
}

// NewAggregatorWithClock creates an aggregator with a fixed time source.
func NewAggregatorWithClock(now func() time.Time) *Aggregator {
	return &Aggregator{now: now}
}

// Combine stamps every row with the current month, year, and quarter label
// and wraps them in a Report. Every row of one run carries the identical
// stamp. Zero rows is a valid outcome and produces an empty Report, never an
// error.
func (a *Aggregator) Combine(rows []domain.Row) *domain.Report {
	t := a.now()
	month := int(t.Month())
	year := t.Year()
	quarter := QuarterLabel(t)

	for i := range rows {
		rows[i].Month = month
		rows[i].Year = year
		rows[i].Quarter = quarter
	}

	return &domain.Report{
		Rows:    rows,
		Month:   month,
		Year:    year,
		Quarter: quarter,
	}
}

// QuarterLabel formats the quarter label for a point in time, e.g. "Q3 2026".
func QuarterLabel(t time.Time) string {
	return fmt.Sprintf("Q%d %d", (int(t.Month())-1)/3+1, t.Year())
}
