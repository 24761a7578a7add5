package productpage

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/thomas/popcorn-terminal/internal/catalog"
	"github.com/thomas/popcorn-terminal/internal/pricing"
)

// SelectFlavorLabel is the label of the empty flavor option.
const SelectFlavorLabel = "-- Select Flavor --"

// Selection is the option picker state: either nothing selected or one
// product selected.
type Selection struct {
	productID string
}

// NoSelection is the initial state.
var NoSelection = Selection{}

// Selected returns the state with productID chosen.
func Selected(productID string) Selection { return Selection{productID: productID} }

// ProductID returns the selected product id and whether one is selected.
func (s Selection) ProductID() (string, bool) {
	return s.productID, s.productID != ""
}

// Selector is the option picker state machine. Size and quantity values
// live in the surface and are read when needed.
type Selector struct {
	products []catalog.Product
	catalog  *catalog.Catalog
	surface  *Surface
	state    Selection
}

// NewSelector returns a selector offering products.
func NewSelector(cat *catalog.Catalog, products []catalog.Product, surface *Surface) *Selector {
	return &Selector{
		products: products,
		catalog:  cat,
		surface:  surface,
	}
}

// State returns the current selection.
func (s *Selector) State() Selection { return s.state }

// Product returns the selected product, or nil.
func (s *Selector) Product() *catalog.Product {
	id, ok := s.state.ProductID()
	if !ok {
		return nil
	}
	return s.catalog.ProductByID(id)
}

// Init fills the flavor options, hides the size and quantity controls and
// shows the price placeholder.
func (s *Selector) Init() {
	if s.surface.Flavor != nil {
		opts := make([]Option, 0, len(s.products)+1)
		opts = append(opts, Option{Label: SelectFlavorLabel})
		for _, p := range s.products {
			opts = append(opts, Option{Label: p.Name, Value: p.ID})
		}
		s.surface.Flavor.SetOptions(opts)
	}
	s.showControls(false, false)
	s.UpdateDisplayedPrice()
}

// ChooseFlavor handles a flavor selector change. An empty value clears the
// selection.
func (s *Selector) ChooseFlavor(value string) {
	if value == "" {
		s.state = NoSelection
		s.showControls(false, false)
		s.UpdateDisplayedPrice()
		return
	}

	s.state = Selected(value)
	product := s.catalog.ProductByID(value)
	if product == nil {
		s.showControls(false, false)
		s.UpdateDisplayedPrice()
		return
	}

	if s.surface.SizeOptions != nil {
		s.surface.SizeOptions.SetVisible(product.HasSizeSelection)
		if product.HasSizeSelection {
			s.surface.SizeOptions.Check(pricing.SizeBase)
		}
	}
	if s.surface.QuantityPicker != nil {
		s.surface.QuantityPicker.SetVisible(product.HasQuantitySelection)
		if s.surface.Quantity != nil {
			s.surface.Quantity.SetValue("1")
		}
	}
	s.UpdateDisplayedPrice()
}

// FlavorChanged reads the flavor selector and applies its value.
func (s *Selector) FlavorChanged() {
	if s.surface.Flavor == nil {
		return
	}
	s.ChooseFlavor(s.surface.Flavor.Value())
}

// SizeChanged handles a size radio change.
func (s *Selector) SizeChanged() {
	if _, ok := s.state.ProductID(); ok {
		s.UpdateDisplayedPrice()
	}
}

// QuantityInput handles an edit of the quantity field. A non-empty numeric
// value below 1 is rewritten to 1.
func (s *Selector) QuantityInput() {
	if _, ok := s.state.ProductID(); !ok || s.surface.Quantity == nil {
		return
	}
	raw := s.surface.Quantity.Value()
	if v, err := strconv.ParseFloat(raw, 64); err == nil && v < 1 {
		s.surface.Quantity.SetValue("1")
	}
	s.UpdateDisplayedPrice()
}

// Increment adds one to the quantity. The quantity element may refuse a
// value it cannot hold.
func (s *Selector) Increment() {
	if _, ok := s.state.ProductID(); !ok || s.surface.Quantity == nil {
		return
	}
	n := ParseQuantity(s.surface.Quantity.Value())
	if n == math.MaxInt {
		return
	}
	s.surface.Quantity.SetValue(strconv.Itoa(n + 1))
	s.UpdateDisplayedPrice()
}

// Decrement removes one from the quantity, never going below 1.
func (s *Selector) Decrement() {
	if _, ok := s.state.ProductID(); !ok || s.surface.Quantity == nil {
		return
	}
	n, ok := parseLeadingInt(s.surface.Quantity.Value())
	if !ok || n <= 1 {
		return
	}
	s.surface.Quantity.SetValue(strconv.Itoa(n - 1))
	s.UpdateDisplayedPrice()
}

// UpdateDisplayedPrice renders the price of the current selection.
func (s *Selector) UpdateDisplayedPrice() {
	if s.surface.Price == nil {
		return
	}
	id, ok := s.state.ProductID()
	if !ok {
		s.surface.Price.SetText(pricing.PlaceholderNoSelection)
		return
	}
	product := s.catalog.ProductByID(id)
	if product == nil {
		s.surface.Price.SetText(pricing.PlaceholderError)
		return
	}

	unit := pricing.CalculatePrice(product, s.checkedSize(product))
	qty := 1
	if s.surface.Quantity != nil {
		qty = ParseQuantity(s.surface.Quantity.Value())
	}
	s.surface.Price.SetText(pricing.Money(unit.Mul(decimal.NewFromInt(int64(qty)))))
}

// checkedSize returns the checked size of a sized product, defaulting to the
// base size. Unsized products get no size.
func (s *Selector) checkedSize(product *catalog.Product) pricing.Size {
	if !product.HasSizeSelection {
		return ""
	}
	if s.surface.SizeOptions != nil {
		if size, ok := s.surface.SizeOptions.Checked(); ok {
			return size
		}
	}
	return pricing.SizeBase
}

func (s *Selector) showControls(size, quantity bool) {
	if s.surface.SizeOptions != nil {
		s.surface.SizeOptions.SetVisible(size)
	}
	if s.surface.QuantityPicker != nil {
		s.surface.QuantityPicker.SetVisible(quantity)
	}
}

// ParseQuantity reads a quantity field value. Anything that is not a
// positive integer reads as 1.
func ParseQuantity(raw string) int {
	n, ok := parseLeadingInt(raw)
	if !ok || n < 1 {
		return 1
	}
	return n
}
