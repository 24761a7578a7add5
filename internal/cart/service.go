package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/thomas/popcorn-terminal/internal/catalog"
	"github.com/thomas/popcorn-terminal/internal/pricing"
)

// ErrProductNotFound is returned when an add names an unknown product.
var ErrProductNotFound = errors.New("product not found")

// AddOptions are the choices made on the product page.
type AddOptions struct {
	Quantity int          // values below 1 become 1
	Size     pricing.Size // empty means the product default
}

// Service reads, merges and writes one visitor's cart.
type Service struct {
	store   Store
	key     string
	catalog *catalog.Catalog
	log     zerolog.Logger
}

// NewService returns a cart service for the cart stored under key.
func NewService(store Store, key string, cat *catalog.Catalog, log zerolog.Logger) *Service {
	return &Service{
		store:   store,
		key:     key,
		catalog: cat,
		log:     log.With().Str("cart_key", key).Logger(),
	}
}

// GetCart reads the persisted cart. Missing, unreadable or malformed data
// yields an empty cart; the failure is logged, never returned.
func (s *Service) GetCart(ctx context.Context) Cart {
	data, err := s.store.Load(ctx, s.key)
	if err != nil {
		s.log.Error().Err(err).Msg("loading cart")
		return Cart{}
	}
	if len(data) == 0 {
		return Cart{}
	}

	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		s.log.Error().Err(err).Msg("error parsing cart json")
		return Cart{}
	}
	if c == nil {
		c = Cart{}
	}
	return c
}

// SaveCart overwrites the persisted cart with c.
func (s *Service) SaveCart(ctx context.Context, c Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding cart: %w", err)
	}
	if err := s.store.Save(ctx, s.key, data); err != nil {
		return fmt.Errorf("saving cart: %w", err)
	}
	return nil
}

// AddToCart merges productID into the cart and persists it. It returns the
// confirmation message for the visitor. An existing line keeps the price it
// was first added at.
func (s *Service) AddToCart(ctx context.Context, productID string, opts AddOptions) (string, error) {
	product := s.catalog.ProductByID(productID)
	if product == nil {
		s.log.Error().Str("product_id", productID).Msg("product not found")
		return "", fmt.Errorf("%w: %s", ErrProductNotFound, productID)
	}

	quantity := opts.Quantity
	if quantity < 1 {
		quantity = 1
	}

	var size *pricing.Size
	price := product.BasePrice
	if product.HasSizeSelection {
		sz := opts.Size
		if sz == "" {
			sz = pricing.SizeBase
		}
		size = &sz
		price = pricing.CalculatePrice(product, sz)
	}
	id := ItemKey(product.ID, size)

	c := s.GetCart(ctx)
	if item, ok := c[id]; ok {
		item.Quantity += quantity
		c[id] = item
	} else {
		c[id] = LineItem{
			ProductID:    product.ID,
			Name:         product.Name,
			Image:        product.Image,
			Size:         size,
			Quantity:     quantity,
			PricePerItem: price,
		}
	}

	if err := s.SaveCart(ctx, c); err != nil {
		return "", err
	}
	s.log.Debug().Str("item", id).Int("quantity", c[id].Quantity).Msg("cart updated")

	return fmt.Sprintf("Added %d x %s (%s) to cart!", quantity, product.Name, c[id].SizeLabel()), nil
}
