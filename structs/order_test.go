package structs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Price
	}{
		{name: "plain number", input: "12.50", want: KnownPrice(12.50)},
		{name: "integer", input: "250", want: KnownPrice(250)},
		{name: "sentinel", input: "N/A", want: Unpriced()},
		{name: "empty string", input: "", want: Unpriced()},
		{name: "currency symbol stripped", input: "€12.50", want: KnownPrice(12.50)},
		{name: "dollar and spaces stripped", input: "$ 1200", want: KnownPrice(1200)},
		{name: "letters only", input: "free", want: Unpriced()},
		{name: "negative amount", input: "-5", want: KnownPrice(-5)},
		{name: "zero is a known price", input: "0", want: KnownPrice(0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePrice(tt.input))
		})
	}
}

func TestParseQuantity(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "plain integer", input: "5", want: 5},
		{name: "leading integer with suffix", input: "12x", want: 12},
		{name: "leading whitespace", input: "  7", want: 7},
		{name: "no leading integer", input: "abc", want: 0},
		{name: "empty string", input: "", want: 0},
		{name: "decimal truncates at the dot", input: "3.9", want: 3},
		{name: "negative", input: "-2", want: -2},
		{name: "explicit plus sign", input: "+4", want: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseQuantity(tt.input))
		})
	}
}

func TestPriceString(t *testing.T) {
	assert.Equal(t, "250", KnownPrice(250).String())
	assert.Equal(t, "12.5", KnownPrice(12.5).String())
	assert.Equal(t, "N/A", Unpriced().String())
}
