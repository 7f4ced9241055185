package extraction

import (
	"strings"

	"distrep/internal/grid"
)

// headerScanRows caps how deep into a sheet the header search goes. Reports
// bury their label row under title and date banners, but never this deep.
const headerScanRows = 20

// FindHeaderRow scans the leading rows of a grid for one that plausibly
// labels the columns below it. A row qualifies when its joined lower-cased
// text mentions a customer/retailer name column or a product column. This is
// a heuristic; false positives and negatives are inherent to the inputs.
func FindHeaderRow(g *grid.Grid) (int, bool) {
	limit := g.NumRows()
	if limit > headerScanRows {
		limit = headerScanRows
	}
	for i := 0; i < limit; i++ {
		text := g.RowText(i)
		if text == "" {
			continue
		}
		switch {
		case strings.Contains(text, "customer") && strings.Contains(text, "name"),
			strings.Contains(text, "retailer") && strings.Contains(text, "name"),
			strings.Contains(text, "product") && containsAny(text, "name", "description", "sku", "item"):
			return i, true
		}
	}
	return 0, false
}

// columnRoles holds the column index inferred for each field role. -1 means
// the role was not found in the header row.
type columnRoles struct {
	customer int
	product  int
	quantity int
	city     int
	state    int
}

// mapHeaderRoles infers a role for each header cell by case-insensitive
// substring rules. A later column matching the same role wins, mirroring how
// distributors tend to put the authoritative column rightmost when both a
// code and a name column exist.
func mapHeaderRoles(headers []string) columnRoles {
	roles := columnRoles{customer: -1, product: -1, quantity: -1, city: -1, state: -1}
	for j, h := range headers {
		hl := strings.ToLower(strings.TrimSpace(h))
		if hl == "" {
			continue
		}
		switch {
		case strings.Contains(hl, "customer") && strings.Contains(hl, "name"):
			roles.customer = j
		case strings.Contains(hl, "retailer") && strings.Contains(hl, "name"):
			roles.customer = j
		case containsAny(hl, "product", "description", "item"):
			roles.product = j
		case strings.Contains(hl, "quantity") || strings.Contains(hl, "qty"):
			roles.quantity = j
		case strings.Contains(hl, "city"):
			roles.city = j
		case strings.Contains(hl, "state"):
			roles.state = j
		}
	}
	return roles
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
