package structs

// Read-view response shapes for the aggregated endpoints. Totals are
// rendered back to text here (number or "N/A") because these are the
// presentation edge; the aggregation engine itself never sees strings.

type OrderLineView struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
}

type ClientSummaryView struct {
	Client string          `json:"client"`
	Items  []OrderLineView `json:"items"`
	Total  string          `json:"total"`
}

type DateSummaryResponse struct {
	Date       string              `json:"date"`
	Clients    []ClientSummaryView `json:"clients"`
	GrandTotal string              `json:"grand_total"`
}

type DashboardResponse struct {
	MonthTotal float64           `json:"month_total"`
	WeekTotal  float64           `json:"week_total"`
	DateTotals map[string]string `json:"date_totals"`
}
