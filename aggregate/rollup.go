package aggregate

import (
	"ordertrack_server/structs"
	"ordertrack_server/structs/tables"
	"time"
)

// dateLayout is the business date format on the wire and in storage.
const dateLayout = "2006-01-02"

// Rollup carries the dashboard figures: month-to-date and trailing-week
// order value.
type Rollup struct {
	MonthTotal float64
	WeekTotal  float64
}

// Rollups sums order values into the calendar-month and trailing-7-day
// windows around now. Unlike the receipt totals, rollups do not poison:
// an unpriced order simply contributes zero. These are informational
// dashboard figures, not line-item receipts.
//
// The month window is calendar month and year of now, not a rolling 30
// days. The week window is everything dated within 7x24 hours before
// now, endpoints inclusive. Orders with unparseable dates contribute to
// neither.
func Rollups(orders []tables.Order, now time.Time) Rollup {
	var r Rollup
	for _, o := range orders {
		d, err := time.Parse(dateLayout, o.Date)
		if err != nil {
			continue
		}

		value := orderValue(o)

		if d.Month() == now.Month() && d.Year() == now.Year() {
			r.MonthTotal += value
		}
		if now.Sub(d) <= 7*24*time.Hour {
			r.WeekTotal += value
		}
	}
	return r
}

// orderValue is quantity x price with unpriced treated as zero.
func orderValue(o tables.Order) float64 {
	price := structs.ParsePrice(o.Price)
	if !price.Known {
		return 0
	}
	return price.Amount * float64(structs.ParseQuantity(o.Quantity))
}
