package tui

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/rs/zerolog"

	"github.com/thomas/popcorn-terminal/internal/cart"
	"github.com/thomas/popcorn-terminal/internal/catalog"
	"github.com/thomas/popcorn-terminal/internal/pricing"
	"github.com/thomas/popcorn-terminal/internal/productpage"
	"github.com/thomas/popcorn-terminal/internal/timer"
)

// ViewState represents the current view in the application.
type ViewState int

const (
	ViewPageList ViewState = iota
	ViewProduct
	ViewReview
	ViewCart
)

// CartService is the visitor's cart as the TUI uses it.
type CartService interface {
	productpage.CartAdder
	GetCart(ctx context.Context) cart.Cart
	SaveCart(ctx context.Context, c cart.Cart) error
}

// Options configures a Model.
type Options struct {
	Catalog *catalog.Catalog
	Cart    CartService
	Logger  zerolog.Logger
	// Context bounds cart store calls; defaults to context.Background.
	Context context.Context

	FadeDelay  time.Duration
	ClearDelay time.Duration
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	// Dependencies
	ctx     context.Context
	catalog *catalog.Catalog
	cart    CartService
	log     zerolog.Logger
	queue   *timer.Queue
	fade    time.Duration
	clear   time.Duration

	// View state
	viewState ViewState
	width     int
	height    int
	styles    Styles

	// Page list view
	pageList list.Model

	// Product page view
	page   *catalog.Page
	logic  *productpage.Page
	screen *screen

	// Cart view
	cartLines  cart.Cart
	cartKeys   []string
	cartIdx    int
	cartCount  int
	cartReturn ViewState

	err error
}

// pageItem implements list.Item for product pages.
type pageItem struct {
	page     catalog.Page
	products []catalog.Product
}

func (i pageItem) Title() string { return i.page.Title }

func (i pageItem) Description() string {
	if len(i.products) == 0 {
		return "Coming soon"
	}
	from := i.products[0].BasePrice
	for _, p := range i.products[1:] {
		if p.BasePrice.LessThan(from) {
			from = p.BasePrice
		}
	}
	noun := "items"
	if len(i.products) == 1 {
		noun = "item"
	}
	return fmt.Sprintf("%d %s • from %s", len(i.products), noun, pricing.Money(from))
}

func (i pageItem) FilterValue() string { return i.page.Title }

// timerFiredMsg delivers a scheduled page task back to the update loop.
type timerFiredMsg struct {
	id uint64
}

// NewModel creates a new TUI model.
func NewModel(opts Options) Model {
	styles := DefaultStyles()
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(colorHighlight).
		BorderLeftForeground(colorStripe)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(colorCaramel).
		BorderLeftForeground(colorStripe)

	var items []list.Item
	for _, p := range opts.Catalog.Pages() {
		items = append(items, pageItem{page: p, products: opts.Catalog.ByDetailPage(p.Ref)})
	}
	pageList := list.New(items, delegate, 0, 0)
	pageList.Title = "Popcorn Terminal"
	pageList.SetShowHelp(false)
	pageList.SetFilteringEnabled(true)
	pageList.Styles.Title = styles.ListTitle

	m := Model{
		ctx:       ctx,
		catalog:   opts.Catalog,
		cart:      opts.Cart,
		log:       opts.Logger,
		queue:     timer.NewQueue(),
		fade:      opts.FadeDelay,
		clear:     opts.ClearDelay,
		viewState: ViewPageList,
		styles:    styles,
		pageList:  pageList,
	}
	m.cartCount = m.cart.GetCart(ctx).ItemCount()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// GetViewState returns the current view.
func (m Model) GetViewState() ViewState { return m.viewState }

// GetPage returns the open product page, or nil on the page list.
func (m Model) GetPage() *catalog.Page { return m.page }

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.pageList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKeyMsg(msg)
		cmds = append(cmds, cmd)

	case timerFiredMsg:
		m.queue.Fire(msg.id)

	default:
		// Blinks, list filtering and form internals.
		switch m.viewState {
		case ViewPageList:
			var cmd tea.Cmd
			m.pageList, cmd = m.pageList.Update(msg)
			cmds = append(cmds, cmd)
		case ViewReview:
			var cmd tea.Cmd
			m, cmd = m.updateReviewForm(msg)
			cmds = append(cmds, cmd)
		}
	}

	cmds = append(cmds, m.scheduleTimers())
	return m, tea.Batch(cmds...)
}

// scheduleTimers turns tasks queued since the last update into ticks.
func (m Model) scheduleTimers() tea.Cmd {
	tickets := m.queue.Flush()
	if len(tickets) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(tickets))
	for _, t := range tickets {
		id := t.ID
		cmds = append(cmds, tea.Tick(t.Delay, func(time.Time) tea.Msg {
			return timerFiredMsg{id: id}
		}))
	}
	return tea.Batch(cmds...)
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.viewState {
	case ViewPageList:
		return m.handlePageListKeys(msg)
	case ViewProduct:
		return m.handleProductKeys(msg)
	case ViewReview:
		return m.handleReviewKeys(msg)
	case ViewCart:
		return m.handleCartKeys(msg)
	}
	return m, nil
}

func (m Model) handlePageListKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.pageList.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.pageList, cmd = m.pageList.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "c":
		m.openCart()
		return m, nil

	case "enter":
		if item, ok := m.pageList.SelectedItem().(pageItem); ok {
			m.openPage(item.page)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.pageList, cmd = m.pageList.Update(msg)
	return m, cmd
}

// openPage builds the page logic over a fresh screen.
func (m *Model) openPage(p catalog.Page) {
	page := p
	m.page = &page
	m.screen = newScreen(page)
	m.logic = productpage.New(m.screen.surface(), productpage.Options{
		Catalog:    m.catalog,
		Products:   m.catalog.ByDetailPage(page.Ref),
		Cart:       m.cart,
		Scheduler:  m.queue,
		Logger:     m.log,
		FadeDelay:  m.fade,
		ClearDelay: m.clear,
	})
	m.logic.Init()
	m.screen.setFocus(fieldFlavor)
	m.viewState = ViewProduct
	m.log.Debug().Str("page", page.Ref).Msg("page opened")
}

func (m Model) handleProductKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	s := m.screen
	key := msg.String()

	switch key {
	case "esc":
		m.viewState = ViewPageList
		m.page, m.logic, m.screen = nil, nil, nil
		return m, nil

	case "tab":
		s.moveFocus(1)
		return m, nil

	case "shift+tab":
		s.moveFocus(-1)
		return m, nil

	case "left", "right":
		delta := 1
		if key == "left" {
			delta = -1
		}
		switch s.focus {
		case fieldFlavor:
			m.cycleFlavor(delta)
		case fieldSize:
			m.cycleSize(delta)
		}
		return m, nil

	case "[":
		m.logic.Gallery.Prev()
		return m, nil

	case "]":
		m.logic.Gallery.Next()
		return m, nil

	case "-":
		m.logic.Selector.Decrement()
		return m, nil

	case "+", "=":
		m.logic.Selector.Increment()
		return m, nil

	case "enter", "a":
		m.logic.AddToCart(m.ctx)
		m.cartCount = m.cart.GetCart(m.ctx).ItemCount()
		return m, nil

	case "r":
		m.viewState = ViewReview
		return m, s.reviewForm.Init()

	case "c":
		m.openCart()
		return m, nil
	}

	if s.focus == fieldQuantity {
		if isDigit(key) || key == "backspace" || key == "delete" {
			before := s.quantity.Value()
			var cmd tea.Cmd
			s.quantity, cmd = s.quantity.Update(msg)
			if s.quantity.Value() != before {
				m.logic.Selector.QuantityInput()
			}
			return m, cmd
		}
		return m, nil
	}

	if isDigit(key) && key != "0" {
		n, _ := strconv.Atoi(key)
		if n <= len(s.thumbs) {
			m.logic.Gallery.SelectThumbnail(s.thumbs[n-1].DataIndex())
		}
	}
	return m, nil
}

func (m Model) cycleFlavor(delta int) {
	s := m.screen
	if len(s.flavors) == 0 {
		return
	}
	s.flavorIdx = (s.flavorIdx + delta + len(s.flavors)) % len(s.flavors)
	m.logic.Selector.FlavorChanged()
	s.ensureFocusVisible()
}

func (m Model) cycleSize(delta int) {
	s := m.screen
	cur := 0
	for i, size := range pricing.Sizes {
		if size == s.checkedSize {
			cur = i
		}
	}
	n := len(pricing.Sizes)
	s.checkedSize = pricing.Sizes[(cur+delta+n)%n]
	m.logic.Selector.SizeChanged()
}

func (m Model) handleReviewKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.viewState = ViewProduct
		m.screen.resetReviewForm()
		return m, nil
	}
	return m.updateReviewForm(msg)
}

// updateReviewForm feeds msg to the review form and submits the review
// once the form completes.
func (m Model) updateReviewForm(msg tea.Msg) (Model, tea.Cmd) {
	s := m.screen
	form, cmd := s.reviewForm.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.reviewForm = f
	}

	switch s.reviewForm.State {
	case huh.StateCompleted:
		if !m.logic.SubmitReview() {
			// keep what was typed for the next attempt
			s.resetReviewForm()
		}
		m.viewState = ViewProduct
		return m, nil
	case huh.StateAborted:
		s.resetReviewForm()
		m.viewState = ViewProduct
		return m, nil
	}
	return m, cmd
}

// openCart snapshots the stored cart for display.
func (m *Model) openCart() {
	if m.viewState != ViewCart {
		m.cartReturn = m.viewState
	}
	m.cartLines = m.cart.GetCart(m.ctx)
	m.cartKeys = m.cartLines.Keys()
	m.cartCount = m.cartLines.ItemCount()
	if m.cartIdx >= len(m.cartKeys) {
		m.cartIdx = max(len(m.cartKeys)-1, 0)
	}
	m.viewState = ViewCart
}

func (m Model) handleCartKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.viewState = m.cartReturn
		m.err = nil
		return m, nil

	case "up", "k":
		if m.cartIdx > 0 {
			m.cartIdx--
		}
		return m, nil

	case "down", "j":
		if m.cartIdx < len(m.cartKeys)-1 {
			m.cartIdx++
		}
		return m, nil

	case "d", "delete":
		if len(m.cartKeys) == 0 {
			return m, nil
		}
		c := m.cart.GetCart(m.ctx)
		delete(c, m.cartKeys[m.cartIdx])
		if err := m.cart.SaveCart(m.ctx, c); err != nil {
			m.log.Error().Err(err).Msg("removing cart line")
			m.err = err
			return m, nil
		}
		m.openCart()
		return m, nil
	}
	return m, nil
}

func isDigit(key string) bool {
	return len(key) == 1 && key[0] >= '0' && key[0] <= '9'
}
