package aggregate

import (
	"ordertrack_server/structs"
	"ordertrack_server/structs/tables"
	"testing"

	"github.com/stretchr/testify/assert"
)

func order(client, product, quantity, price, date string) tables.Order {
	return tables.Order{
		Client:   client,
		Product:  product,
		Quantity: quantity,
		Price:    price,
		Date:     date,
	}
}

func TestGroupByClientAndDate(t *testing.T) {
	orders := []tables.Order{
		order("Acme", "Roses", "2", "10", "2024-03-01"),
		order("Acme", "Tulips", "1", "5", "2024-03-01"),
		order("Acme", "Roses", "3", "10", "2024-03-02"),
		order("Bloom", "Roses", "1", "10", "2024-03-01"),
	}

	groups := GroupByClientAndDate(orders)

	assert.Len(t, groups, 3)
	assert.Len(t, groups[GroupKey{Client: "Acme", Date: "2024-03-01"}], 2)
	assert.Len(t, groups[GroupKey{Client: "Acme", Date: "2024-03-02"}], 1)
	assert.Len(t, groups[GroupKey{Client: "Bloom", Date: "2024-03-01"}], 1)
}

func TestGroupByClientAndDateExactMatch(t *testing.T) {
	// Trailing whitespace makes a distinct client; no normalization.
	orders := []tables.Order{
		order("Acme", "Roses", "1", "10", "2024-03-01"),
		order("Acme ", "Roses", "1", "10", "2024-03-01"),
	}

	groups := GroupByClientAndDate(orders)

	assert.Len(t, groups, 2)
}

func TestClientTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []LineItem
		want  Total
	}{
		{
			name: "all priced",
			items: []LineItem{
				{Product: "Roses", Quantity: 2, Price: structs.KnownPrice(100)},
				{Product: "Tulips", Quantity: 1, Price: structs.KnownPrice(50)},
			},
			want: Total{Value: 250, Known: true},
		},
		{
			name: "one unpriced item poisons the total",
			items: []LineItem{
				{Product: "Roses", Quantity: 2, Price: structs.KnownPrice(100)},
				{Product: "Tulips", Quantity: 1, Price: structs.Unpriced()},
			},
			want: Total{},
		},
		{
			name:  "empty group sums to zero",
			items: nil,
			want:  Total{Value: 0, Known: true},
		},
		{
			name: "zero quantity contributes nothing but stays known",
			items: []LineItem{
				{Product: "Roses", Quantity: 0, Price: structs.KnownPrice(100)},
			},
			want: Total{Value: 0, Known: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClientTotal(tt.items))
		})
	}
}

func TestGrandTotal(t *testing.T) {
	known := []Total{
		{Value: 100, Known: true},
		{Value: 150, Known: true},
	}
	assert.Equal(t, Total{Value: 250, Known: true}, GrandTotal(known))

	poisoned := append(known, Total{})
	assert.Equal(t, Total{}, GrandTotal(poisoned))

	assert.Equal(t, Total{Value: 0, Known: true}, GrandTotal(nil))
}

func TestDateIndex(t *testing.T) {
	orders := []tables.Order{
		order("Acme", "Roses", "2", "100", "2024-03-01"),
		order("Bloom", "Tulips", "1", "50", "2024-03-01"),
		order("Acme", "Lilies", "1", "N/A", "2024-03-02"),
		order("Acme", "Roses", "1", "25", "2024-03-02"),
		order("Bloom", "Roses", "3", "10", "2024-03-03"),
	}

	index := DateIndex(orders)

	assert.Len(t, index, 3)
	assert.Equal(t, Total{Value: 250, Known: true}, index["2024-03-01"])
	// One unpriced order poisons the date even when later orders are priced.
	assert.Equal(t, Total{}, index["2024-03-02"])
	assert.Equal(t, Total{Value: 30, Known: true}, index["2024-03-03"])
}

func TestTotalString(t *testing.T) {
	assert.Equal(t, "250", Total{Value: 250, Known: true}.String())
	assert.Equal(t, "N/A", Total{}.String())
}
