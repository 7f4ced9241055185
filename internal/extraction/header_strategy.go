package extraction

import (
	"strings"

	"distrep/internal/grid"
	"distrep/pkg/contracts/domain"
)

// extractWithHeader is the header-driven strategy. It requires a located
// header row, maps columns to roles by substring rules, and walks the data
// rows below. Rows that cannot be resolved to both a real customer and a
// real product are dropped rather than emitted with placeholders.
func extractWithHeader(g *grid.Grid, sheetName string) []domain.Row {
	headerRow, ok := FindHeaderRow(g)
	if !ok {
		return nil
	}

	roles := mapHeaderRoles(g.Row(headerRow))
	if roles.customer < 0 && roles.product < 0 {
		return nil
	}

	var rows []domain.Row
	for i := headerRow + 1; i < g.NumRows(); i++ {
		if isSeparatorRow(g.Row(i)) {
			continue
		}

		customer := "Unknown"
		if roles.customer >= 0 {
			if v := g.Cell(i, roles.customer); v != "" {
				if customerSkipValues[strings.ToLower(v)] {
					continue
				}
				customer = v
			}
		}

		product := "Unknown Product"
		if roles.product >= 0 {
			if v := g.Cell(i, roles.product); v != "" {
				if productSkipValues[strings.ToLower(v)] {
					continue
				}
				product = v
			}
		}

		quantity := 1
		if roles.quantity >= 0 {
			if v := g.Cell(i, roles.quantity); v != "" {
				if n, ok := parseNumber(v); ok && n > 0 {
					// Fractional quantities in (0,1) truncate to zero; every
					// emitted row carries at least 1.
					quantity = int(n)
					if quantity < 1 {
						quantity = 1
					}
				}
			}
		}

		// Placeholders are exclusionary, not informative.
		if customer == "Unknown" || product == "Unknown Product" {
			continue
		}

		row := domain.Row{Customer: customer, Product: product, Quantity: quantity}
		if roles.city >= 0 {
			row.City = cleanCity(g.Cell(i, roles.city))
		}
		if roles.state >= 0 {
			row.State = cleanState(g.Cell(i, roles.state))
		}
		rows = append(rows, row)
	}
	return rows
}
