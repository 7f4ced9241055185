package domain

// Row is the canonical unit of extracted distributor data. One Row is produced
// per (customer, product) line item found in an input report. Customer and
// Product are always non-empty, non-placeholder values; Quantity is at least 1.
type Row struct {
	Distributor string `json:"distributor" csv:"Distributor"`
	Customer    string `json:"customer" csv:"Customer Name"`
	Product     string `json:"product" csv:"Product"`
	Quantity    int    `json:"quantity" csv:"Quantity"`
	SourceFile  string `json:"source_file" csv:"Source File"`
	SheetName   string `json:"sheet_name" csv:"Sheet Name"`
	City        string `json:"city,omitempty" csv:"City"`
	State       string `json:"state,omitempty" csv:"State"`
	Month       int    `json:"month" csv:"Month"`
	Year        int    `json:"year" csv:"Year"`
	Quarter     string `json:"quarter" csv:"Quarter"`
}

// HasLocation reports whether the row carries city or state information.
func (r Row) HasLocation() bool {
	return r.City != "" || r.State != ""
}

// Report is the combined result of one batch run across all input files.
// Every row carries the same Month/Year/Quarter stamp, derived from the clock
// at aggregation time. An empty Report (zero rows) is the "no data" outcome,
// not an error.
type Report struct {
	Rows    []Row  `json:"rows"`
	Month   int    `json:"month"`
	Year    int    `json:"year"`
	Quarter string `json:"quarter"`
}

// Empty reports whether the batch yielded no rows at all.
func (r *Report) Empty() bool {
	return r == nil || len(r.Rows) == 0
}

// HasLocation reports whether at least one row in the report carries city or
// state information. Consumers only render the City/State columns when true.
func (r *Report) HasLocation() bool {
	if r == nil {
		return false
	}
	for _, row := range r.Rows {
		if row.HasLocation() {
			return true
		}
	}
	return false
}
