// Package catalog holds the static product table shipped with the binary.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

//go:embed catalog.json
var defaultCatalog []byte

// Category groups products on the storefront.
type Category string

const (
	CategoryPopcorn Category = "popcorn"
	CategoryDIY     Category = "diy"
)

// Product is an immutable catalog entry.
type Product struct {
	ID                   string          `json:"id"`
	Category             Category        `json:"category"`
	Name                 string          `json:"name"`
	Description          string          `json:"description"` // may contain light HTML
	BasePrice            decimal.Decimal `json:"basePrice"`
	Image                string          `json:"image"`
	HasSizeSelection     bool            `json:"hasSizeSelection"`
	HasQuantitySelection bool            `json:"hasQuantitySelection"`
	DetailPage           string          `json:"detailPage"`
}

// Image is one gallery picture of a detail page.
type Image struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

// Page describes a product detail page and its gallery.
type Page struct {
	Ref    string  `json:"ref"`
	Title  string  `json:"title"`
	Images []Image `json:"images"`
}

// Catalog is a read-only lookup table of products and pages.
type Catalog struct {
	products []Product
	pages    []Page
	byID     map[string]int
}

type document struct {
	Pages    []Page    `json:"pages"`
	Products []Product `json:"products"`
}

// Load parses a catalog document.
func Load(data []byte) (*Catalog, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return New(doc.Products, doc.Pages)
}

// New builds a catalog from products and pages. Product IDs must be unique.
func New(products []Product, pages []Page) (*Catalog, error) {
	c := &Catalog{
		products: products,
		pages:    pages,
		byID:     make(map[string]int, len(products)),
	}
	for i, p := range products {
		if p.ID == "" {
			return nil, errors.New("product with empty id")
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %q", p.ID)
		}
		c.byID[p.ID] = i
	}
	return c, nil
}

// Default returns the embedded storefront catalog.
func Default() *Catalog {
	c, err := Load(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("embedded catalog is invalid: %v", err))
	}
	return c
}

// ProductByID returns the product with the given id, or nil if not found.
func (c *Catalog) ProductByID(id string) *Product {
	i, ok := c.byID[id]
	if !ok {
		return nil
	}
	p := c.products[i]
	return &p
}

// Products returns all products in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// ByDetailPage returns the products shown on the given detail page.
func (c *Catalog) ByDetailPage(ref string) []Product {
	var out []Product
	for _, p := range c.products {
		if p.DetailPage == ref {
			out = append(out, p)
		}
	}
	return out
}

// Pages returns all detail pages in catalog order.
func (c *Catalog) Pages() []Page {
	out := make([]Page, len(c.pages))
	copy(out, c.pages)
	return out
}

// Page returns the detail page with the given ref, or nil.
func (c *Catalog) Page(ref string) *Page {
	for i := range c.pages {
		if c.pages[i].Ref == ref {
			p := c.pages[i]
			return &p
		}
	}
	return nil
}
