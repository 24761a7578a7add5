// Package pricing derives unit prices from catalog products and formats
// currency amounts for display.
package pricing

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/thomas/popcorn-terminal/internal/catalog"
)

// Size is a popcorn bag size.
type Size string

const (
	SizeBase  Size = "64oz"
	SizeMid   Size = "105oz"
	SizeLarge Size = "170oz"
)

// Sizes lists the selectable sizes in display order.
var Sizes = []Size{SizeBase, SizeMid, SizeLarge}

// Display placeholders.
const (
	PlaceholderNoSelection = "$--.--"
	PlaceholderError       = "$Error"
	PlaceholderNaN         = "$NaN"
)

// surcharges are added to the base price, not multiplied.
var surcharges = map[Size]decimal.Decimal{
	SizeBase:  decimal.Zero,
	SizeMid:   decimal.RequireFromString("0.50"),
	SizeLarge: decimal.RequireFromString("1.00"),
}

// ParseSize returns the size for a radio value.
func ParseSize(v string) (Size, bool) {
	s := Size(v)
	_, ok := surcharges[s]
	return s, ok
}

// CalculatePrice returns the per-unit price of product in the given size.
// Products without size selection ignore size. A nil product prices at zero.
func CalculatePrice(product *catalog.Product, size Size) decimal.Decimal {
	if product == nil {
		return decimal.Zero
	}
	price := product.BasePrice
	if product.HasSizeSelection {
		if extra, ok := surcharges[size]; ok {
			price = price.Add(extra)
		}
	}
	return price
}

// FormatPrice renders amount with a dollar sign and two decimals.
// NaN renders as PlaceholderNaN and infinities as $Infinity or $-Infinity.
func FormatPrice(amount float64) string {
	switch {
	case math.IsNaN(amount):
		return PlaceholderNaN
	case math.IsInf(amount, 1):
		return "$Infinity"
	case math.IsInf(amount, -1):
		return "$-Infinity"
	}
	return fmt.Sprintf("$%.2f", amount)
}

// Money formats a decimal amount through FormatPrice.
func Money(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return FormatPrice(f)
}
