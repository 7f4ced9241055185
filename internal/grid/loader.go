package grid

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/charmap"
)

// CSVSheetLabel is the sheet label attached to data loaded from delimited
// text files, which have no sheet of their own.
const CSVSheetLabel = "CSV"

// Loaded bundles a grid with the label of the sheet it came from.
type Loaded struct {
	Grid      *Grid
	SheetName string
}

// LoadFile reads a tabular input into a Grid. Format is chosen by extension:
// .csv is parsed as UTF-8 with a Latin-1 fallback on decode failure; anything
// else is treated as an Excel workbook and the first sheet (in stored order)
// is loaded. Legacy binary .xls files are accepted by discovery but cannot be
// opened by the workbook reader, so they always return an error here.
// Failures are per-file; callers log and move to the next file.
func LoadFile(path string) (*Loaded, error) {
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		return loadCSV(path)
	}
	return loadWorkbook(path)
}

func loadCSV(path string) (*Loaded, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	rows, err := parseCSV(data)
	if err != nil || !utf8.Valid(data) {
		// Legacy exports are frequently Latin-1 encoded; re-decode and retry.
		decoded, decErr := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if decErr != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", filepath.Base(path), decErr)
		}
		rows, err = parseCSV(decoded)
		if err != nil {
			return nil, fmt.Errorf("failed to parse CSV %s: %w", filepath.Base(path), err)
		}
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows in CSV file %s", filepath.Base(path))
	}
	return &Loaded{Grid: New(rows), SheetName: CSVSheetLabel}, nil
}

func parseCSV(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}

func loadWorkbook(path string) (*Loaded, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets in workbook %s", filepath.Base(path))
	}

	// Sheet order as stored; always the first one.
	sheetName := sheets[0]
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q in %s is empty", sheetName, filepath.Base(path))
	}

	return &Loaded{Grid: New(rows), SheetName: sheetName}, nil
}
