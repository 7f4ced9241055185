package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"distrep/internal/grid"
)

func TestExtractPositionalMarketplaceExport(t *testing.T) {
	g := grid.New([][]string{
		{"Retailer Name", "Order Number", "Order Total", "Notes"},
		{"Acme Store", "ORD-1001", "$1,234.50", ""},
		{"Globex", "ORD-1002", "$8.00", ""},
	})

	rows := extractPositional(g, "Sheet1")
	require.Len(t, rows, 2)

	assert.Equal(t, "Acme Store", rows[0].Customer)
	assert.Equal(t, "ORD-1001", rows[0].Product)
	assert.Equal(t, 1234, rows[0].Quantity)
	assert.Equal(t, 8, rows[1].Quantity)
}

func TestExtractPositionalDeduplicates(t *testing.T) {
	g := grid.New([][]string{
		{"Customer Name", "SKU", "Cases"},
		{"Acme Store", "WDG-BLUE", "4"},
		{"Acme Store", "WDG-BLUE", "9"},
		{"Acme Store", "WDG-RED", "2"},
	})

	rows := extractPositional(g, "Sheet1")
	require.Len(t, rows, 2)
	// First occurrence wins for a duplicate (customer, product) pair.
	assert.Equal(t, 4, rows[0].Quantity)
	assert.Equal(t, "WDG-RED", rows[1].Product)
}

func TestExtractPositionalMarkerColumnWins(t *testing.T) {
	g := grid.New([][]string{
		{"Customer Name", "Item", "Details"},
		{"Acme Store", "1001", "Widget Pro * Blue"},
	})

	rows := extractPositional(g, "Sheet1")
	require.Len(t, rows, 1)
	// The asterisk-bearing column is preferred over the numeric item code.
	assert.Equal(t, "Widget Pro * Blue", rows[0].Product)
}

func TestExtractPositionalNumericProductKeepsDefault(t *testing.T) {
	g := grid.New([][]string{
		{"Customer Name", "Item"},
		{"Acme Store", "1001"},
	})

	rows := extractPositional(g, "Sheet1")
	require.Len(t, rows, 1)
	assert.Equal(t, "Distributor Product", rows[0].Product)
	// The item code doubles as the first in-range numeric quantity.
	assert.Equal(t, 1, rows[0].Quantity)
}

func TestExtractPositionalDefaultProductBySheet(t *testing.T) {
	g := grid.New([][]string{
		{"Customer Name", "Item"},
		{"Acme Store", "1001"},
	})

	rows := extractPositional(g, "Hotpot Queen Q3")
	require.Len(t, rows, 1)
	assert.Equal(t, "Hotpot Queen Product", rows[0].Product)
}

func TestExtractPositionalQuantityScan(t *testing.T) {
	g := grid.New([][]string{
		{"Customer Name", "SKU", "Weight", "Cases"},
		{"Acme Store", "WDG-BLUE", "2500", "7"},
	})

	rows := extractPositional(g, "Sheet1")
	require.Len(t, rows, 1)
	// 2500 is outside the plausible range; the scan moves on to 7.
	assert.Equal(t, 7, rows[0].Quantity)
}

func TestExtractPositionalFractionalQuantity(t *testing.T) {
	g := grid.New([][]string{
		{"Customer Name", "SKU", "Cases"},
		{"Acme Store", "WDG-BLUE", "0.25"},
	})

	rows := extractPositional(g, "Sheet1")
	require.Len(t, rows, 1)
	// 0.25 is in range but truncates to zero; the row keeps the minimum of 1.
	assert.Equal(t, 1, rows[0].Quantity)
}

func TestExtractPositionalNoCustomerColumn(t *testing.T) {
	g := grid.New([][]string{
		{"Store", "SKU"},
		{"Acme", "WDG-BLUE"},
	})

	assert.Empty(t, extractPositional(g, "Sheet1"))
}

func TestExtractPositionalSkipsSummaryRows(t *testing.T) {
	g := grid.New([][]string{
		{"Customer Name", "SKU", "Cases"},
		{"Acme Store", "WDG-BLUE", "4"},
		{"Grand Total", "", "13"},
	})

	rows := extractPositional(g, "Sheet1")
	require.Len(t, rows, 1)
	assert.Equal(t, "Acme Store", rows[0].Customer)
}
