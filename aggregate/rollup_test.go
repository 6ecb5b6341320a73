package aggregate

import (
	"ordertrack_server/structs/tables"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRollups(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		orders    []tables.Order
		wantMonth float64
		wantWeek  float64
	}{
		{
			name: "same month outside the week window counts for month only",
			orders: []tables.Order{
				order("Acme", "Roses", "2", "100", "2024-03-01"),
			},
			wantMonth: 200,
			wantWeek:  0,
		},
		{
			name: "within seven days counts for both windows",
			orders: []tables.Order{
				order("Acme", "Roses", "1", "50", "2024-03-14"),
			},
			wantMonth: 50,
			wantWeek:  50,
		},
		{
			name: "previous month counts for neither",
			orders: []tables.Order{
				order("Acme", "Roses", "1", "50", "2024-02-28"),
			},
		},
		{
			name: "same month last year does not count",
			orders: []tables.Order{
				order("Acme", "Roses", "1", "50", "2023-03-14"),
			},
		},
		{
			name: "unpriced orders contribute zero without poisoning",
			orders: []tables.Order{
				order("Acme", "Roses", "1", "N/A", "2024-03-14"),
				order("Acme", "Tulips", "2", "30", "2024-03-14"),
			},
			wantMonth: 60,
			wantWeek:  60,
		},
		{
			name: "unparseable dates are skipped",
			orders: []tables.Order{
				order("Acme", "Roses", "1", "50", "not-a-date"),
				order("Acme", "Roses", "1", "50", "2024-03-15"),
			},
			wantMonth: 50,
			wantWeek:  50,
		},
		{
			name: "future date within the window still counts for the week",
			orders: []tables.Order{
				order("Acme", "Roses", "1", "50", "2024-03-20"),
			},
			wantMonth: 50,
			wantWeek:  50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Rollups(tt.orders, now)
			assert.Equal(t, tt.wantMonth, r.MonthTotal)
			assert.Equal(t, tt.wantWeek, r.WeekTotal)
		})
	}
}
