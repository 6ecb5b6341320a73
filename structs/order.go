package structs

import (
	"strconv"
	"strings"
)

// UnpricedSentinel is the literal stored when an order has no known price.
const UnpricedSentinel = "N/A"

// Price is the parsed form of the textual price field: either a known
// amount or the explicit unpriced state. The text representation stays at
// the persistence edge; everything past the model boundary works with this.
type Price struct {
	Amount float64
	Known  bool
}

// KnownPrice wraps an amount as a known price.
func KnownPrice(amount float64) Price {
	return Price{Amount: amount, Known: true}
}

// Unpriced returns the sentinel price state.
func Unpriced() Price {
	return Price{}
}

// String renders the price for the presentation edge: the amount, or the
// unpriced sentinel.
func (p Price) String() string {
	if !p.Known {
		return UnpricedSentinel
	}
	return strconv.FormatFloat(p.Amount, 'f', -1, 64)
}

// ParsePrice converts a textual price into its Price form. The literal
// sentinel maps to Unpriced. Otherwise every rune that is not a digit,
// minus sign or decimal point is stripped (users paste currency symbols
// and thousand separators) and the rest is parsed; anything that still
// fails to parse degrades to Unpriced. Never returns an error.
func ParsePrice(text string) Price {
	if text == UnpricedSentinel {
		return Unpriced()
	}

	var b strings.Builder
	for _, r := range text {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}

	amount, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return Unpriced()
	}
	return KnownPrice(amount)
}

// ParseQuantity parses the leading integer of a textual quantity, so
// "12x" still reads as 12. Anything without a leading integer is 0.
//
// TODO: the silent 0 default masks typo'd quantities as no-op line items;
// switching to strict rejection needs a product decision first.
func ParseQuantity(text string) int {
	s := strings.TrimSpace(text)

	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	j := i
	for j < len(s) && s[j] >= '0' && s[j] <= '9' {
		j++
	}
	if j == i {
		return 0
	}

	n, err := strconv.Atoi(s[:j])
	if err != nil {
		return 0
	}
	return n
}

// OrderDraft is one entry of the create batch.
type OrderDraft struct {
	Client   string `json:"client" validate:"required"`
	Product  string `json:"product" validate:"required"`
	Quantity string `json:"quantity"`
	Price    string `json:"price"`
	Date     string `json:"date" validate:"required"`
}

// OrderKey is the identity triple addressing updates and deletes. Matching
// is exact string equality: case-sensitive, no trimming.
type OrderKey struct {
	Client  string `json:"client"`
	Product string `json:"product"`
	Date    string `json:"date"`
}

// OrderPatch carries the mutable fields of an order; nil means "leave as is".
type OrderPatch struct {
	Quantity *string `json:"quantity,omitempty"`
	Price    *string `json:"price,omitempty"`
}

type UpdateOrderRequest struct {
	Client   string  `json:"client" validate:"required"`
	Product  string  `json:"product" validate:"required"`
	Date     string  `json:"date" validate:"required"`
	Quantity *string `json:"quantity"`
	Price    *string `json:"price"`
}

type DeleteOrderRequest struct {
	Client  string `json:"client" validate:"required"`
	Product string `json:"product" validate:"required"`
	Date    string `json:"date" validate:"required"`
}
