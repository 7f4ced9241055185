package extraction

import (
	"strings"

	"distrep/internal/grid"
	"distrep/pkg/contracts/domain"
)

const (
	// markerColumnScanRows is how many leading rows are checked when
	// inferring city/state columns without a recognized header.
	markerColumnScanRows = 10
	// markerCustomerLookback is how many rows above a candidate value are
	// checked for a "customer"/"retailer" column label.
	markerCustomerLookback = 5
	// markerBackfillWindow is the row distance searched when a marked
	// product has no customer recorded on its own row.
	markerBackfillWindow = 3
)

// extractMarkerProducts is the header-agnostic fallback. It infers which
// rows carry customer names from column context, then attaches every
// asterisk-marked cell as a product to the customer recorded on (or near)
// its row. Products with no resolvable customer within the window are
// dropped.
func extractMarkerProducts(g *grid.Grid, sheetName string) []domain.Row {
	n := g.NumRows()

	cityCol, stateCol := -1, -1
	limit := n
	if limit > markerColumnScanRows {
		limit = markerColumnScanRows
	}
	for i := 0; i < limit; i++ {
		for j := range g.Row(i) {
			v := strings.ToLower(g.Cell(i, j))
			if v == "" {
				continue
			}
			if strings.Contains(v, "city") {
				cityCol = j
			} else if strings.Contains(v, "state") {
				stateCol = j
			}
		}
	}

	// Indexed by row so marked products can look up the nearest customer
	// by increasing offset.
	customerByRow := make(map[int]string)
	cityByRow := make(map[int]string)
	stateByRow := make(map[int]string)

	for i := 0; i < n; i++ {
		for j := range g.Row(i) {
			v := g.Cell(i, j)
			if v == "" {
				continue
			}
			if len(v) <= 3 || isNumericValue(v) {
				continue
			}
			if containsAny(strings.ToLower(v), "total", "---", "customer", "product", "sum", "qty") {
				continue
			}

			// The column is a customer column when one of the leading
			// cells above labels it as such.
			likely := false
			lookback := markerCustomerLookback
			if i < lookback {
				lookback = i
			}
			for k := 0; k < lookback; k++ {
				h := strings.ToLower(g.Cell(k, j))
				if strings.Contains(h, "customer") || strings.Contains(h, "retailer") {
					likely = true
					break
				}
			}
			if !likely {
				continue
			}

			customerByRow[i] = v
			if cityCol >= 0 {
				if c := cleanCity(g.Cell(i, cityCol)); c != "" {
					cityByRow[i] = c
				}
			}
			if stateCol >= 0 {
				if s := cleanState(g.Cell(i, stateCol)); s != "" {
					stateByRow[i] = s
				}
			}
			break
		}
	}

	var rows []domain.Row
	for i := 0; i < n; i++ {
		for j := range g.Row(i) {
			v := g.Cell(i, j)
			if v == "" || !isMarkerProduct(v) {
				continue
			}

			customer := customerByRow[i]
			if customer == "" {
				for off := 1; off <= markerBackfillWindow && customer == ""; off++ {
					if c, ok := customerByRow[i-off]; ok {
						customer = c
					} else if c, ok := customerByRow[i+off]; ok {
						customer = c
					}
				}
			}
			if customer == "" {
				continue
			}

			row := domain.Row{Customer: customer, Product: v, Quantity: 1}
			row.City = nearbyLocation(cityByRow, customerByRow, i, customer)
			row.State = nearbyLocation(stateByRow, customerByRow, i, customer)
			rows = append(rows, row)
		}
	}
	return rows
}

// nearbyLocation returns the location recorded for row i, or the nearest
// location within the backfill window whose row belongs to the same
// customer.
func nearbyLocation(locByRow, customerByRow map[int]string, i int, customer string) string {
	if loc, ok := locByRow[i]; ok {
		return loc
	}
	for off := 1; off <= markerBackfillWindow; off++ {
		if loc, ok := locByRow[i-off]; ok && customerByRow[i-off] == customer {
			return loc
		}
		if loc, ok := locByRow[i+off]; ok && customerByRow[i+off] == customer {
			return loc
		}
	}
	return ""
}
