package report

import (
	"sort"

	"distrep/pkg/contracts/domain"
)

// QuantityTotal is one bar of a dashboard chart: a label with its summed
// order quantity.
type QuantityTotal struct {
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
}

// CityTotal extends QuantityTotal with the number of distinct stores
// ordering from that city.
type CityTotal struct {
	City     string `json:"city"`
	Quantity int    `json:"quantity"`
	Stores   int    `json:"stores"`
}

// Summary holds the aggregate views the dashboard renders: totals grouped
// by customer, city, and distributor, plus distinct counts.
type Summary struct {
	Quarter        string          `json:"quarter"`
	TotalRows      int             `json:"total_rows"`
	TotalCustomers int             `json:"total_customers"`
	TotalProducts  int             `json:"total_products"`
	ByCustomer     []QuantityTotal `json:"by_customer"`
	ByCity         []CityTotal     `json:"by_city"`
	ByDistributor  []QuantityTotal `json:"by_distributor"`
}

// Summarize computes the dashboard summary for a combined report. Rows
// without a city are omitted from the by-city view. Groups are sorted by
// quantity descending, label ascending on ties, so output order is stable.
func Summarize(r *domain.Report) *Summary {
	s := &Summary{}
	if r == nil {
		return s
	}
	s.Quarter = r.Quarter
	s.TotalRows = len(r.Rows)

	byCustomer := make(map[string]int)
	byDistributor := make(map[string]int)
	byCity := make(map[string]int)
	storesByCity := make(map[string]map[string]bool)
	products := make(map[string]bool)

	for _, row := range r.Rows {
		byCustomer[row.Customer] += row.Quantity
		byDistributor[row.Distributor] += row.Quantity
		products[row.Product] = true

		if row.City != "" {
			byCity[row.City] += row.Quantity
			if storesByCity[row.City] == nil {
				storesByCity[row.City] = make(map[string]bool)
			}
			storesByCity[row.City][row.Customer] = true
		}
	}

	s.TotalCustomers = len(byCustomer)
	s.TotalProducts = len(products)
	s.ByCustomer = sortedTotals(byCustomer)
	s.ByDistributor = sortedTotals(byDistributor)

	for city, qty := range byCity {
		s.ByCity = append(s.ByCity, CityTotal{
			City:     city,
			Quantity: qty,
			Stores:   len(storesByCity[city]),
		})
	}
	sort.Slice(s.ByCity, func(i, j int) bool {
		if s.ByCity[i].Quantity != s.ByCity[j].Quantity {
			return s.ByCity[i].Quantity > s.ByCity[j].Quantity
		}
		return s.ByCity[i].City < s.ByCity[j].City
	})

	return s
}

func sortedTotals(totals map[string]int) []QuantityTotal {
	out := make([]QuantityTotal, 0, len(totals))
	for label, qty := range totals {
		out = append(out, QuantityTotal{Label: label, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Quantity != out[j].Quantity {
			return out[i].Quantity > out[j].Quantity
		}
		return out[i].Label < out[j].Label
	})
	return out
}
