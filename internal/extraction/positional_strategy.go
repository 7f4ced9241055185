package extraction

import (
	"strings"

	"distrep/internal/grid"
	"distrep/pkg/contracts/domain"
)

// positionalSampleSize is how many data values per column are inspected when
// probing for a product column.
const positionalSampleSize = 15

// Well-known labels from marketplace CSV exports that lack an explicit
// product column.
const (
	retailerNameLabel = "Retailer Name"
	orderNumberLabel  = "Order Number"
	orderTotalLabel   = "Order Total"
)

// extractPositional is the last-resort strategy. It treats the first row as
// column labels, finds customer and product columns by name or by sampling
// values, and scans remaining columns for plausible quantities. Output is
// deduplicated by (customer, product).
func extractPositional(g *grid.Grid, sheetName string) []domain.Row {
	if g.NumRows() < 2 {
		return nil
	}
	headers := g.Row(0)

	customerCol, cityCol, stateCol := -1, -1, -1
	for j, h := range headers {
		hl := strings.ToLower(strings.TrimSpace(h))
		switch {
		case strings.Contains(hl, "retailer") && strings.Contains(hl, "name"),
			strings.Contains(hl, "customer") && strings.Contains(hl, "name"):
			customerCol = j
		case strings.Contains(hl, "city"):
			cityCol = j
		case strings.Contains(hl, "state"):
			stateCol = j
		}
	}

	productCol := findProductColumn(g, headers, customerCol)
	if customerCol < 0 {
		return nil
	}

	defaultProduct := "Distributor Product"
	if strings.Contains(strings.ToLower(sheetName), "hotpot") {
		defaultProduct = "Hotpot Queen Product"
	}
	orderTotalCol := findExactHeader(headers, orderTotalLabel)

	var rows []domain.Row
	seen := make(map[string]bool)
	for i := 1; i < g.NumRows(); i++ {
		customer := "Unknown"
		if v := g.Cell(i, customerCol); v != "" {
			if customerSkipValues[strings.ToLower(v)] {
				continue
			}
			customer = v
		}

		product := defaultProduct
		if productCol >= 0 {
			if v := g.Cell(i, productCol); v != "" {
				if productSkipValues[strings.ToLower(v)] {
					continue
				}
				// Pure numbers are identifiers, not product names; keep the
				// default unless a marked description overrides below.
				if !isNumericValue(v) {
					product = v
				}
				for j := range g.Row(i) {
					if j == productCol {
						continue
					}
					if alt := g.Cell(i, j); alt != "" && isMarkerProduct(alt) {
						product = alt
						break
					}
				}
			}
		}

		quantity := 1
		if orderTotalCol >= 0 && g.Cell(i, orderTotalCol) != "" {
			raw := strings.ReplaceAll(g.Cell(i, orderTotalCol), "$", "")
			if n, ok := parseNumber(raw); ok {
				quantity = int(n)
				if quantity < 1 {
					quantity = 1
				}
			}
		} else {
			// Column iteration order is significant here: the first value in
			// the plausible range wins.
			for j := range g.Row(i) {
				if j == productCol || j == customerCol {
					continue
				}
				v := g.Cell(i, j)
				if v == "" {
					continue
				}
				if n, ok := parseNumber(v); ok && n > 0 && n < 1000 {
					quantity = int(n)
					if quantity < 1 {
						quantity = 1
					}
					break
				}
			}
		}

		if customer == "Unknown" {
			continue
		}

		key := customer + "\x00" + product
		if seen[key] {
			continue
		}
		seen[key] = true

		row := domain.Row{Customer: customer, Product: product, Quantity: quantity}
		if cityCol >= 0 {
			row.City = cleanCity(g.Cell(i, cityCol))
		}
		if stateCol >= 0 {
			row.State = cleanState(g.Cell(i, stateCol))
		}
		rows = append(rows, row)
	}
	return rows
}

// findProductColumn probes for a product column in three passes: columns
// whose sampled values carry asterisk markers, then product-like header
// names backed by non-numeric samples, then marketplace-export special
// cases.
func findProductColumn(g *grid.Grid, headers []string, customerCol int) int {
	cols := g.NumCols()

	for j := 0; j < cols; j++ {
		for _, v := range sampleColumn(g, j) {
			if strings.Contains(v, "*") {
				return j
			}
		}
	}

	for j := 0; j < cols; j++ {
		hl := strings.ToLower(strings.TrimSpace(headerAt(headers, j)))
		if !containsAny(hl, "product", "item", "description", "sku", "mer/item") {
			continue
		}
		if !allNumericSamples(sampleColumn(g, j)) {
			return j
		}
	}

	// Marketplace exports label stores but not products; fall back to the
	// order number, else any column holding name-like strings.
	if customerCol >= 0 && findExactHeader(headers, retailerNameLabel) >= 0 {
		if j := findExactHeader(headers, orderNumberLabel); j >= 0 {
			return j
		}
		for j := 0; j < cols; j++ {
			if j == customerCol {
				continue
			}
			for _, v := range sampleColumn(g, j) {
				if len(v) > 3 && !isNumericValue(v) {
					return j
				}
			}
		}
	}
	return -1
}

// sampleColumn collects up to positionalSampleSize non-blank data values
// from a column, skipping the label row.
func sampleColumn(g *grid.Grid, col int) []string {
	var samples []string
	for i := 1; i < g.NumRows() && len(samples) < positionalSampleSize; i++ {
		if v := g.Cell(i, col); v != "" {
			samples = append(samples, v)
		}
	}
	return samples
}

// allNumericSamples reports whether every sampled value is purely numeric.
// An empty sample set counts as numeric so value-free columns are rejected.
func allNumericSamples(samples []string) bool {
	for _, v := range samples {
		if !isNumericValue(v) {
			return false
		}
	}
	return true
}

func findExactHeader(headers []string, label string) int {
	for j, h := range headers {
		if strings.TrimSpace(h) == label {
			return j
		}
	}
	return -1
}

func headerAt(headers []string, j int) string {
	if j < 0 || j >= len(headers) {
		return ""
	}
	return headers[j]
}
