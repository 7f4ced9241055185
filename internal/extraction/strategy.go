package extraction

import (
	"strconv"
	"strings"

	"distrep/internal/grid"
	"distrep/pkg/contracts/domain"
)

// minMarkerLen is the shortest cell value (exclusive) accepted as an
// asterisk-marked product description.
const minMarkerLen = 5

// A Strategy extracts rows from one grid, returning an empty set when the
// layout does not match its heuristic. Strategies never see each other's
// output; the cascade takes the first non-empty result.
type Strategy struct {
	Name    string
	Extract func(g *grid.Grid, sheetName string) []domain.Row
}

// Cascade returns the extraction strategies in their fixed trial order.
// Order matters: header-driven extraction is the most precise and runs
// first; the positional fallback is the most permissive and runs last.
func Cascade() []Strategy {
	return []Strategy{
		{Name: "header", Extract: extractWithHeader},
		{Name: "customer-by-sku", Extract: extractCustomerBySKU},
		{Name: "marker-scan", Extract: extractMarkerProducts},
		{Name: "positional", Extract: extractPositional},
	}
}

// Placeholder vocabularies. A value matching one of these is a header echo
// or a summary line, never data.
var (
	customerSkipValues = map[string]bool{
		"customer name": true,
		"retailer name": true,
		"total":         true,
		"grand total":   true,
		"":              true,
	}
	productSkipValues = map[string]bool{
		"product":     true,
		"item":        true,
		"description": true,
		"mer/item":    true,
		"total":       true,
		"":            true,
	}
	cityPlaceholders = map[string]bool{
		"city":      true,
		"ship city": true,
		"n/a":       true,
		"-":         true,
	}
	statePlaceholders = map[string]bool{
		"state":      true,
		"ship state": true,
		"n/a":        true,
		"-":          true,
	}
	separatorTokens = map[string]bool{
		"": true, "-": true, "--": true, "---": true, "----": true,
	}
)

// isSeparatorRow reports whether every cell of the row is blank or a dash
// run. Such rows visually divide sections and carry no data.
func isSeparatorRow(cells []string) bool {
	for _, c := range cells {
		if !separatorTokens[strings.TrimSpace(c)] {
			return false
		}
	}
	return true
}

// isNumericValue reports whether a value is purely numeric once dots and
// hyphens are removed. Pure numbers are IDs or amounts, never customer or
// product names.
func isNumericValue(s string) bool {
	t := strings.NewReplacer(".", "", "-", "").Replace(strings.TrimSpace(s))
	if t == "" {
		return false
	}
	for _, r := range t {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseNumber parses a cell as a number after removing thousands separators.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// isMarkerProduct reports whether a cell value looks like a product
// description: distributors flag real descriptions with an asterisk.
func isMarkerProduct(s string) bool {
	return strings.Contains(s, "*") && len(s) > minMarkerLen
}

// cleanCity returns the value unless it is blank or a location placeholder.
func cleanCity(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || cityPlaceholders[strings.ToLower(v)] {
		return ""
	}
	return v
}

// cleanState returns the value unless it is blank or a location placeholder.
func cleanState(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || statePlaceholders[strings.ToLower(v)] {
		return ""
	}
	return v
}
