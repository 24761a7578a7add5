package productpage

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thomas/popcorn-terminal/internal/catalog"
	"github.com/thomas/popcorn-terminal/internal/pricing"
)

func newTestSelector(screen *fakeScreen, page string) *Selector {
	cat := catalog.Default()
	s := NewSelector(cat, cat.ByDetailPage(page), screen.surface())
	s.Init()
	return s
}

func TestSelectorInit(t *testing.T) {
	screen := newFakeScreen()
	s := newTestSelector(screen, "products_A")

	require.Len(t, screen.flavor.opts, 5)
	assert.Equal(t, Option{Label: SelectFlavorLabel}, screen.flavor.opts[0])
	assert.Equal(t, Option{Label: "Buttery Classic", Value: "pop001"}, screen.flavor.opts[1])
	assert.False(t, screen.sizes.visible)
	assert.False(t, screen.picker.visible)
	assert.Equal(t, pricing.PlaceholderNoSelection, screen.price.text)
	assert.Equal(t, NoSelection, s.State())
}

func TestSelectorChooseFlavor(t *testing.T) {
	screen := newFakeScreen()
	s := newTestSelector(screen, "products_A")

	s.ChooseFlavor("pop001")
	assert.Equal(t, Selected("pop001"), s.State())
	assert.True(t, screen.sizes.visible)
	assert.Equal(t, pricing.SizeBase, screen.sizes.checked)
	assert.True(t, screen.picker.visible)
	assert.Equal(t, "1", screen.quantity.value)
	assert.Equal(t, "$0.99", screen.price.text)

	screen.sizes.checked = pricing.SizeMid
	s.SizeChanged()
	assert.Equal(t, "$1.49", screen.price.text)

	screen.quantity.value = "3"
	s.QuantityInput()
	assert.Equal(t, "$4.47", screen.price.text)

	s.ChooseFlavor("")
	assert.Equal(t, NoSelection, s.State())
	assert.False(t, screen.sizes.visible)
	assert.False(t, screen.picker.visible)
	assert.Equal(t, pricing.PlaceholderNoSelection, screen.price.text)
}

func TestSelectorUnsizedProduct(t *testing.T) {
	screen := newFakeScreen()
	s := newTestSelector(screen, "products_B")

	screen.sizes.checked = pricing.SizeLarge
	s.ChooseFlavor("diy001")
	assert.False(t, screen.sizes.visible)
	assert.True(t, screen.picker.visible)
	assert.Equal(t, "$0.99", screen.price.text)
}

func TestSelectorUnknownProduct(t *testing.T) {
	screen := newFakeScreen()
	s := newTestSelector(screen, "products_A")

	s.ChooseFlavor("ghost")
	assert.Equal(t, pricing.PlaceholderError, screen.price.text)
	assert.Nil(t, s.Product())
}

func TestSelectorQuantityInput(t *testing.T) {
	tests := []struct {
		name      string
		typed     string
		wantValue string
		wantPrice string
	}{
		{"zero", "0", "1", "$0.99"},
		{"negative", "-3", "1", "$0.99"},
		{"fraction below one", "0.5", "1", "$0.99"},
		{"valid", "2", "2", "$1.98"},
		{"leading digits", "4x", "4x", "$3.96"},
		{"non-numeric", "abc", "abc", "$0.99"},
		{"empty", "", "", "$0.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := newFakeScreen()
			s := newTestSelector(screen, "products_A")
			s.ChooseFlavor("pop001")

			screen.quantity.value = tt.typed
			s.QuantityInput()
			assert.Equal(t, tt.wantValue, screen.quantity.value)
			assert.Equal(t, tt.wantPrice, screen.price.text)
		})
	}
}

func TestSelectorStepper(t *testing.T) {
	screen := newFakeScreen()
	s := newTestSelector(screen, "products_A")

	s.Increment()
	assert.Equal(t, "", screen.quantity.value, "inert without a selection")

	s.ChooseFlavor("pop004")
	s.Decrement()
	assert.Equal(t, "1", screen.quantity.value)

	s.Increment()
	s.Increment()
	assert.Equal(t, "3", screen.quantity.value)
	assert.Equal(t, "$2.97", screen.price.text)

	s.Decrement()
	assert.Equal(t, "2", screen.quantity.value)

	screen.quantity.value = "abc"
	s.Increment()
	assert.Equal(t, "2", screen.quantity.value)
}

func TestSelectorIncrementAtMaxInt(t *testing.T) {
	screen := newFakeScreen()
	s := newTestSelector(screen, "products_B")
	s.ChooseFlavor("diy002")

	top := strconv.Itoa(math.MaxInt)
	screen.quantity.value = top
	s.Increment()
	assert.Equal(t, top, screen.quantity.value)
}

func TestSelectorFlavorChanged(t *testing.T) {
	screen := newFakeScreen()
	s := newTestSelector(screen, "products_A")

	screen.flavor.value = "pop002"
	s.FlavorChanged()
	assert.Equal(t, Selected("pop002"), s.State())
	assert.True(t, screen.sizes.visible)

	screen.flavor.value = ""
	s.FlavorChanged()
	assert.Equal(t, NoSelection, s.State())
	assert.Equal(t, pricing.PlaceholderNoSelection, screen.price.text)
}

func TestSelectorWithoutElements(t *testing.T) {
	cat := catalog.Default()
	s := NewSelector(cat, cat.ByDetailPage("products_A"), &Surface{})

	assert.NotPanics(t, func() {
		s.Init()
		s.FlavorChanged()
		s.ChooseFlavor("pop001")
		s.SizeChanged()
		s.QuantityInput()
		s.Increment()
		s.Decrement()
	})
	assert.Equal(t, Selected("pop001"), s.State())
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 1, ParseQuantity(""))
	assert.Equal(t, 1, ParseQuantity("0"))
	assert.Equal(t, 1, ParseQuantity("-2"))
	assert.Equal(t, 7, ParseQuantity("7"))
	assert.Equal(t, 3, ParseQuantity("3 bags"))
}
