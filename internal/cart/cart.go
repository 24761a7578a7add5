// Package cart persists a visitor's shopping cart as a JSON snapshot and
// implements the add-to-cart merge rules.
package cart

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/thomas/popcorn-terminal/internal/pricing"
)

func init() {
	// Prices are stored as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// DefaultKey is the store key of a cart that has no visitor identity.
const DefaultKey = "shoppingCart"

// LineItem is one cart entry. The JSON layout is the persisted format.
type LineItem struct {
	ProductID       string          `json:"id"`
	Name            string          `json:"name"`
	Image           string          `json:"image"`
	Size            *pricing.Size   `json:"size"`
	Quantity        int             `json:"quantity"`
	PricePerItem    decimal.Decimal `json:"pricePerItem"`
	IsDealComponent bool            `json:"isDealComponent"`
}

// SizeLabel returns the size, or "Standard" for unsized items.
func (i LineItem) SizeLabel() string {
	if i.Size == nil {
		return "Standard"
	}
	return string(*i.Size)
}

// Total returns price per item times quantity.
func (i LineItem) Total() decimal.Decimal {
	return i.PricePerItem.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart maps a composite item id to its line item.
type Cart map[string]LineItem

// ItemKey returns the composite id for a product and optional size.
func ItemKey(productID string, size *pricing.Size) string {
	if size == nil {
		return productID
	}
	return productID + "-" + string(*size)
}

// ItemCount returns the total quantity across all lines.
func (c Cart) ItemCount() int {
	n := 0
	for _, item := range c {
		n += item.Quantity
	}
	return n
}

// Subtotal returns the sum of all line totals.
func (c Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c {
		total = total.Add(item.Total())
	}
	return total
}

// Keys returns the composite ids in sorted order.
func (c Cart) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
