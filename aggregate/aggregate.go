// Package aggregate computes derived views over a snapshot of orders:
// per-client-per-date groups, poisoning totals, per-date totals and
// time-windowed rollups. Every function is pure; the snapshot is owned
// by the caller and never mutated.
package aggregate

import (
	"ordertrack_server/structs"
	"ordertrack_server/structs/tables"
	"strconv"
)

// GroupKey identifies one receipt: one client on one business date.
// Equality is exact string match on both parts. "Acme" and "Acme " are
// different clients here on purpose; the identity key works the same way.
type GroupKey struct {
	Client string
	Date   string
}

// LineItem is one order line inside a group, with price already lifted
// into its parsed form.
type LineItem struct {
	Product  string
	Quantity int
	Price    structs.Price
}

// Total is a sum that may be poisoned: one unpriced line item makes its
// containing total unknown as a whole.
type Total struct {
	Value float64
	Known bool
}

// String renders a total for the presentation edge: the amount, or the
// unpriced sentinel.
func (t Total) String() string {
	if !t.Known {
		return structs.UnpricedSentinel
	}
	return strconv.FormatFloat(t.Value, 'f', -1, 64)
}

// GroupByClientAndDate buckets orders into receipts. Line item order
// within a group follows the input order.
func GroupByClientAndDate(orders []tables.Order) map[GroupKey][]LineItem {
	groups := make(map[GroupKey][]LineItem)
	for _, o := range orders {
		key := GroupKey{Client: o.Client, Date: o.Date}
		groups[key] = append(groups[key], LineItem{
			Product:  o.Product,
			Quantity: structs.ParseQuantity(o.Quantity),
			Price:    structs.ParsePrice(o.Price),
		})
	}
	return groups
}

// ClientTotal sums quantity x price across a group's line items. Any
// unpriced item poisons the whole group total.
func ClientTotal(items []LineItem) Total {
	total := Total{Known: true}
	for _, item := range items {
		if !item.Price.Known {
			return Total{}
		}
		total.Value += item.Price.Amount * float64(item.Quantity)
	}
	return total
}

// GrandTotal sums group totals, with the same poisoning rule one level
// up: one unknown group total makes the grand total unknown.
func GrandTotal(totals []Total) Total {
	grand := Total{Known: true}
	for _, t := range totals {
		if !t.Known {
			return Total{}
		}
		grand.Value += t.Value
	}
	return grand
}

// DateIndex computes one poisoning total per distinct date, across all of
// that date's orders regardless of client.
func DateIndex(orders []tables.Order) map[string]Total {
	index := make(map[string]Total)
	for _, o := range orders {
		total, ok := index[o.Date]
		if !ok {
			total = Total{Known: true}
		}

		price := structs.ParsePrice(o.Price)
		if !price.Known {
			total = Total{}
		} else if total.Known {
			total.Value += price.Amount * float64(structs.ParseQuantity(o.Quantity))
		}

		index[o.Date] = total
	}
	return index
}
