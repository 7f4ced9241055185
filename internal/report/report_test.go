package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distrep/pkg/contracts/domain"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestCombineStampsPeriod(t *testing.T) {
	agg := NewAggregatorWithClock(fixedClock(time.Date(2026, time.August, 24, 10, 0, 0, 0, time.UTC)))

	r := agg.Combine([]domain.Row{
		{Customer: "Acme Store", Product: "Widget", Quantity: 4},
		{Customer: "Globex", Product: "Gadget", Quantity: 2},
	})

	assert.Equal(t, 8, r.Month)
	assert.Equal(t, 2026, r.Year)
	assert.Equal(t, "Q3 2026", r.Quarter)
	require.Len(t, r.Rows, 2)
	for _, row := range r.Rows {
		assert.Equal(t, 8, row.Month)
		assert.Equal(t, 2026, row.Year)
		assert.Equal(t, "Q3 2026", row.Quarter)
	}
}

func TestCombineEmpty(t *testing.T) {
	agg := NewAggregatorWithClock(fixedClock(time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)))

	r := agg.Combine(nil)
	assert.True(t, r.Empty())
	assert.Equal(t, "Q1 2026", r.Quarter)
}

func TestQuarterLabel(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, "Q1 2025"},
		{time.March, "Q1 2025"},
		{time.April, "Q2 2025"},
		{time.June, "Q2 2025"},
		{time.July, "Q3 2025"},
		{time.October, "Q4 2025"},
		{time.December, "Q4 2025"},
	}
	for _, tt := range tests {
		got := QuarterLabel(time.Date(2025, tt.month, 15, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, tt.want, got, "month %s", tt.month)
	}
}
