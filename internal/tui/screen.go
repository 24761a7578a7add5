package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/huh"

	"github.com/thomas/popcorn-terminal/internal/catalog"
	"github.com/thomas/popcorn-terminal/internal/pricing"
	"github.com/thomas/popcorn-terminal/internal/productpage"
)

// field is a focusable control of the option form.
type field int

const (
	fieldFlavor field = iota
	fieldSize
	fieldQuantity
)

// screen is the terminal rendition of one product page. The page logic
// mutates it through the element adapters below; View reads it.
type screen struct {
	mainSrc     string
	mainAlt     string
	mainVisible bool

	thumbs []*thumbnail

	flavors   []productpage.Option
	flavorIdx int

	sizesVisible bool
	checkedSize  pricing.Size

	quantityVisible bool
	quantity        textinput.Model

	price string

	cartMsg   message
	reviewMsg message
	alert     string

	reviewName    string
	reviewComment string
	reviewForm    *huh.Form

	focus field
}

type message struct {
	text string
	kind productpage.MessageKind
}

func newScreen(page catalog.Page) *screen {
	qty := textinput.New()
	qty.CharLimit = 4
	qty.Width = 5
	qty.Prompt = ""

	s := &screen{quantity: qty}
	for i, img := range page.Images {
		s.thumbs = append(s.thumbs, &thumbnail{src: img.Src, alt: img.Alt, index: strconv.Itoa(i)})
	}
	s.resetReviewForm()
	return s
}

// surface exposes the screen to the page logic.
func (s *screen) surface() *productpage.Surface {
	thumbs := make([]productpage.Thumbnail, len(s.thumbs))
	for i, t := range s.thumbs {
		thumbs[i] = t
	}
	return &productpage.Surface{
		MainImage:      mainImage{s},
		Thumbnails:     thumbs,
		Flavor:         flavorSelect{s},
		SizeOptions:    sizeOptions{s},
		QuantityPicker: quantityPicker{s},
		Quantity:       quantityField{s},
		Price:          priceText{s},
		CartMessage:    messageArea{&s.cartMsg},
		ReviewForm:     reviewForm{s},
		ReviewMessage:  messageArea{&s.reviewMsg},
		Alert:          func(text string) { s.alert = text },
	}
}

// resetReviewForm builds a fresh review form bound to the current name and
// comment values.
func (s *screen) resetReviewForm() {
	s.reviewForm = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Your name").
				Value(&s.reviewName),
			huh.NewText().
				Title("Your review").
				Lines(4).
				Value(&s.reviewComment),
		),
	).WithShowHelp(true)
}

// focusable returns the fields that can take focus right now.
func (s *screen) focusable() []field {
	fields := []field{fieldFlavor}
	if s.sizesVisible {
		fields = append(fields, fieldSize)
	}
	if s.quantityVisible {
		fields = append(fields, fieldQuantity)
	}
	return fields
}

// moveFocus cycles focus by delta among the visible fields.
func (s *screen) moveFocus(delta int) {
	fields := s.focusable()
	cur := 0
	for i, f := range fields {
		if f == s.focus {
			cur = i
		}
	}
	next := (cur + delta + len(fields)) % len(fields)
	s.setFocus(fields[next])
}

func (s *screen) setFocus(f field) {
	s.focus = f
	if f == fieldQuantity {
		s.quantity.Focus()
	} else {
		s.quantity.Blur()
	}
}

// ensureFocusVisible moves focus back to the flavor selector when the
// focused control was hidden.
func (s *screen) ensureFocusVisible() {
	for _, f := range s.focusable() {
		if f == s.focus {
			return
		}
	}
	s.setFocus(fieldFlavor)
}

type mainImage struct{ s *screen }

func (e mainImage) SetSource(src, alt string) { e.s.mainSrc, e.s.mainAlt = src, alt }
func (e mainImage) SetVisible(v bool)         { e.s.mainVisible = v }

type thumbnail struct {
	src, alt, index string
	active          bool
}

func (t *thumbnail) Source() string    { return t.src }
func (t *thumbnail) Alt() string       { return t.alt }
func (t *thumbnail) DataIndex() string { return t.index }
func (t *thumbnail) SetActive(a bool)  { t.active = a }

type flavorSelect struct{ s *screen }

func (e flavorSelect) SetOptions(opts []productpage.Option) {
	e.s.flavors = opts
	e.s.flavorIdx = 0
}

func (e flavorSelect) Value() string {
	if e.s.flavorIdx < 0 || e.s.flavorIdx >= len(e.s.flavors) {
		return ""
	}
	return e.s.flavors[e.s.flavorIdx].Value
}

type sizeOptions struct{ s *screen }

func (e sizeOptions) SetVisible(v bool)       { e.s.sizesVisible = v }
func (e sizeOptions) Check(size pricing.Size) { e.s.checkedSize = size }
func (e sizeOptions) Checked() (pricing.Size, bool) {
	return e.s.checkedSize, e.s.checkedSize != ""
}

type quantityPicker struct{ s *screen }

func (e quantityPicker) SetVisible(v bool) { e.s.quantityVisible = v }

type quantityField struct{ s *screen }

func (e quantityField) Value() string { return e.s.quantity.Value() }

// SetValue ignores values longer than the field can hold.
func (e quantityField) SetValue(v string) {
	if limit := e.s.quantity.CharLimit; limit > 0 && len(v) > limit {
		return
	}
	e.s.quantity.SetValue(v)
}

type priceText struct{ s *screen }

func (e priceText) SetText(text string) { e.s.price = text }

type messageArea struct{ m *message }

func (e messageArea) Show(text string, kind productpage.MessageKind) {
	*e.m = message{text: text, kind: kind}
}
func (e messageArea) Clear() { *e.m = message{} }

type reviewForm struct{ s *screen }

func (e reviewForm) Name() string    { return e.s.reviewName }
func (e reviewForm) Comment() string { return e.s.reviewComment }
func (e reviewForm) Reset() {
	e.s.reviewName, e.s.reviewComment = "", ""
	e.s.resetReviewForm()
}
