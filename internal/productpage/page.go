package productpage

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/thomas/popcorn-terminal/internal/catalog"
	"github.com/thomas/popcorn-terminal/internal/timer"
)

// Options configures a Page.
type Options struct {
	Catalog   *catalog.Catalog
	Products  []catalog.Product // offered in the flavor selector
	Cart      CartAdder
	Scheduler timer.Scheduler
	Logger    zerolog.Logger

	// FadeDelay and ClearDelay fall back to the defaults when zero.
	FadeDelay  time.Duration
	ClearDelay time.Duration
}

// Page is the logic of one product detail page.
type Page struct {
	Gallery  *Gallery
	Selector *Selector

	submitter *Submitter
	reviewer  *Reviewer
}

// New wires a page to surface. Call Init before use.
func New(surface *Surface, opts Options) *Page {
	if opts.FadeDelay <= 0 {
		opts.FadeDelay = DefaultFadeDelay
	}
	if opts.ClearDelay <= 0 {
		opts.ClearDelay = DefaultClearDelay
	}
	log := opts.Logger.With().Str("component", "productpage").Logger()

	selector := NewSelector(opts.Catalog, opts.Products, surface)
	return &Page{
		Gallery:  NewGallery(surface.MainImage, surface.Thumbnails, opts.Scheduler, opts.FadeDelay, log),
		Selector: selector,
		submitter: &Submitter{
			selector: selector,
			cart:     opts.Cart,
			surface:  surface,
			notice: &notice{
				area:  surface.CartMessage,
				alert: surface.Alert,
				sched: opts.Scheduler,
				delay: opts.ClearDelay,
			},
			log: log,
		},
		reviewer: &Reviewer{
			form: surface.ReviewForm,
			notice: &notice{
				area:  surface.ReviewMessage,
				sched: opts.Scheduler,
				delay: opts.ClearDelay,
			},
			log: log,
		},
	}
}

// Init shows the first image and resets the option picker.
func (p *Page) Init() {
	p.Gallery.Init()
	p.Selector.Init()
}

// AddToCart submits the option form.
func (p *Page) AddToCart(ctx context.Context) { p.submitter.Submit(ctx) }

// SubmitReview submits the review form and reports whether it was accepted.
func (p *Page) SubmitReview() bool { return p.reviewer.Submit() }
