package productpage

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/thomas/popcorn-terminal/internal/cart"
	"github.com/thomas/popcorn-terminal/internal/pricing"
)

// NoSelectionMessage is shown when adding to cart with no flavor chosen.
const NoSelectionMessage = "Please select a flavor/item first."

// CartAdder merges a product into the visitor's cart.
type CartAdder interface {
	AddToCart(ctx context.Context, productID string, opts cart.AddOptions) (string, error)
}

// Submitter handles the add-to-cart form.
type Submitter struct {
	selector *Selector
	cart     CartAdder
	surface  *Surface
	notice   *notice
	log      zerolog.Logger
}

// Submit adds the current selection to the cart and reports the outcome.
// A failed add is logged and leaves the message area untouched.
func (s *Submitter) Submit(ctx context.Context) {
	id, ok := s.selector.State().ProductID()
	if !ok {
		s.notice.show(NoSelectionMessage, MessageError, true)
		return
	}
	product := s.selector.Product()
	if product == nil {
		s.log.Error().Str("product_id", id).Msg("selected product not found")
		return
	}

	var opts cart.AddOptions
	if product.HasSizeSelection {
		opts.Size = pricing.SizeBase
		if s.surface.SizeOptions != nil {
			if size, ok := s.surface.SizeOptions.Checked(); ok {
				opts.Size = size
			}
		}
	}
	opts.Quantity = 1
	if product.HasQuantitySelection && s.surface.Quantity != nil {
		opts.Quantity = ParseQuantity(s.surface.Quantity.Value())
	}

	msg, err := s.cart.AddToCart(ctx, id, opts)
	if err != nil {
		s.log.Error().Err(err).Str("product_id", id).Msg("add to cart failed")
		return
	}
	s.notice.show(msg, MessageSuccess, true)
}
