package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	require.Len(t, c.Products(), 6)
	require.Len(t, c.Pages(), 3)

	p := c.ProductByID("pop001")
	require.NotNil(t, p)
	assert.Equal(t, "Buttery Classic", p.Name)
	assert.Equal(t, CategoryPopcorn, p.Category)
	assert.Equal(t, "0.99", p.BasePrice.String())
	assert.True(t, p.HasSizeSelection)

	kit := c.ProductByID("diy001")
	require.NotNil(t, kit)
	assert.False(t, kit.HasSizeSelection)
	assert.True(t, kit.HasQuantitySelection)
}

func TestProductByIDMiss(t *testing.T) {
	assert.Nil(t, Default().ProductByID("nope"))
	assert.Nil(t, Default().ProductByID(""))
}

func TestProductByIDReturnsCopy(t *testing.T) {
	c := Default()
	p := c.ProductByID("pop002")
	p.Name = "changed"

	assert.Equal(t, "Caramel Bliss", c.ProductByID("pop002").Name)
}

func TestByDetailPage(t *testing.T) {
	c := Default()

	popcorn := c.ByDetailPage("products_A")
	require.Len(t, popcorn, 4)
	for _, p := range popcorn {
		assert.Equal(t, CategoryPopcorn, p.Category)
	}

	assert.Len(t, c.ByDetailPage("products_C"), 1)
	assert.Empty(t, c.ByDetailPage("products_Z"))
}

func TestPage(t *testing.T) {
	c := Default()

	page := c.Page("products_A")
	require.NotNil(t, page)
	assert.Len(t, page.Images, 4)
	assert.Nil(t, c.Page("missing"))
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "malformed json", data: `{"products": [`},
		{name: "empty id", data: `{"products": [{"id": ""}]}`},
		{name: "duplicate id", data: `{"products": [{"id": "a"}, {"id": "a"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}
