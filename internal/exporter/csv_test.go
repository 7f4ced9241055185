package exporter

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distrep/pkg/contracts/domain"
)

func sampleReport(withLocation bool) *domain.Report {
	row := domain.Row{
		Customer:    "Acme Store",
		Product:     "Widget Pro * Blue",
		Quantity:    4,
		SourceFile:  "Northwind Report.csv",
		Distributor: "Northwind Report",
		SheetName:   "CSV",
		Month:       8,
		Year:        2026,
		Quarter:     "Q3 2026",
	}
	if withLocation {
		row.City = "Springfield"
		row.State = "IL"
	}
	return &domain.Report{Rows: []domain.Row{row}, Month: 8, Year: 2026, Quarter: "Q3 2026"}
}

// parseExport checks the UTF-8 BOM prefix and returns the parsed records.
func parseExport(t *testing.T, out []byte) [][]string {
	t.Helper()
	bom := []byte{0xEF, 0xBB, 0xBF}
	require.True(t, bytes.HasPrefix(out, bom), "export must start with a UTF-8 BOM")
	records, err := csv.NewReader(bytes.NewReader(out[len(bom):])).ReadAll()
	require.NoError(t, err)
	return records
}

func TestWriteColumnOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVWriter(nil).Write(&buf, sampleReport(true)))

	records := parseExport(t, buf.Bytes())
	require.Len(t, records, 2)

	assert.Equal(t, []string{
		"Customer Name", "Product", "Quantity", "Source File", "Distributor",
		"Sheet Name", "City", "State", "Month", "Year", "Quarter",
	}, records[0])
	assert.Equal(t, []string{
		"Acme Store", "Widget Pro * Blue", "4", "Northwind Report.csv",
		"Northwind Report", "CSV", "Springfield", "IL", "8", "2026", "Q3 2026",
	}, records[1])
}

// Location columns disappear entirely when no row carries a city or state.
func TestWriteWithoutLocation(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVWriter(nil).Write(&buf, sampleReport(false)))

	records := parseExport(t, buf.Bytes())
	assert.NotContains(t, records[0], "City")
	assert.NotContains(t, records[0], "State")
	assert.Len(t, records[0], 9)
}

func TestWriteReportCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "combined_report.csv")
	require.NoError(t, NewCSVWriter(nil).WriteReport(path, sampleReport(true)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Acme Store")
}
