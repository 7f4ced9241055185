package extraction

import (
	"strings"

	"distrep/internal/grid"
	"distrep/pkg/contracts/domain"
)

// skuHeaderScanRows caps the search for the customer label row in
// customer-by-SKU sheets.
const skuHeaderScanRows = 15

// extractCustomerBySKU handles "by customer by SKU" layouts: one customer
// per row, asterisk-marked SKU descriptions spread across the remaining
// columns. Each marked cell becomes its own row with quantity 1.
func extractCustomerBySKU(g *grid.Grid, sheetName string) []domain.Row {
	if !isCustomerBySKULayout(g, sheetName) {
		return nil
	}

	headerRow := -1
	limit := g.NumRows()
	if limit > skuHeaderScanRows {
		limit = skuHeaderScanRows
	}
	for i := 0; i < limit; i++ {
		text := g.RowText(i)
		if strings.Contains(text, "customer") && strings.Contains(text, "name") {
			headerRow = i
			break
		}
	}
	if headerRow < 0 {
		return nil
	}

	customerCol, cityCol, stateCol := -1, -1, -1
	for j := range g.Row(headerRow) {
		v := strings.ToLower(g.Cell(headerRow, j))
		if v == "" {
			continue
		}
		switch {
		case strings.Contains(v, "customer") && strings.Contains(v, "name"):
			customerCol = j
		case strings.Contains(v, "city"):
			cityCol = j
		case strings.Contains(v, "state"):
			stateCol = j
		}
	}
	if customerCol < 0 {
		return nil
	}

	var rows []domain.Row
	for i := headerRow + 1; i < g.NumRows(); i++ {
		if g.RowEmpty(i) {
			continue
		}
		customer := g.Cell(i, customerCol)
		if customer == "" || customerSkipValues[strings.ToLower(customer)] || isNumericValue(customer) {
			continue
		}

		city := ""
		if cityCol >= 0 {
			city = cleanCity(g.Cell(i, cityCol))
		}
		state := ""
		if stateCol >= 0 {
			state = cleanState(g.Cell(i, stateCol))
		}

		for j := range g.Row(i) {
			if j == customerCol {
				continue
			}
			v := g.Cell(i, j)
			if v == "" || !isMarkerProduct(v) {
				continue
			}
			rows = append(rows, domain.Row{
				Customer: customer,
				Product:  v,
				Quantity: 1,
				City:     city,
				State:    state,
			})
		}
	}
	return rows
}

// isCustomerBySKULayout reports whether the sheet or its leading labels
// identify a by-customer-by-SKU export.
func isCustomerBySKULayout(g *grid.Grid, sheetName string) bool {
	if strings.Contains(strings.ToUpper(sheetName), "BY CUSTOMER BY SKU") {
		return true
	}
	for j := range g.Row(0) {
		v := strings.ToLower(g.Cell(0, j))
		if strings.Contains(v, "customer") && strings.Contains(v, "sku") {
			return true
		}
	}
	return false
}
