// Package productpage drives a product detail page: gallery, option picker,
// price display, add-to-cart and the review form. It talks to the screen
// only through Surface, whose elements are all optional.
package productpage

import "github.com/thomas/popcorn-terminal/internal/pricing"

// MessageKind styles a form message.
type MessageKind int

const (
	MessageNone MessageKind = iota
	MessageSuccess
	MessageError
)

// Option is one entry of the flavor selector. An empty Value is the
// "nothing selected" entry.
type Option struct {
	Label string
	Value string
}

// MainImage is the large gallery picture.
type MainImage interface {
	SetSource(src, alt string)
	SetVisible(visible bool)
}

// Thumbnail is one small gallery picture.
type Thumbnail interface {
	Source() string
	Alt() string
	// DataIndex is the raw index attribute of the thumbnail.
	DataIndex() string
	SetActive(active bool)
}

// FlavorSelect lists the products of the page.
type FlavorSelect interface {
	SetOptions(opts []Option)
	Value() string
}

// SizeOptions is the group of size radio buttons.
type SizeOptions interface {
	SetVisible(visible bool)
	// Checked returns the checked size, if any.
	Checked() (pricing.Size, bool)
	Check(size pricing.Size)
}

// Container is an element that can only be shown or hidden.
type Container interface {
	SetVisible(visible bool)
}

// TextInput is an editable text field.
type TextInput interface {
	Value() string
	SetValue(v string)
}

// Text is a read-only text element.
type Text interface {
	SetText(s string)
}

// Message is an inline form message area.
type Message interface {
	Show(text string, kind MessageKind)
	Clear()
}

// ReviewForm is the name/comment review form.
type ReviewForm interface {
	Name() string
	Comment() string
	Reset()
}

// Surface is the set of screen elements the page logic drives. Any element
// may be nil, which makes the feature relying on it inert.
type Surface struct {
	MainImage      MainImage
	Thumbnails     []Thumbnail
	Flavor         FlavorSelect
	SizeOptions    SizeOptions
	QuantityPicker Container
	Quantity       TextInput
	Price          Text
	CartMessage    Message
	ReviewForm     ReviewForm
	ReviewMessage  Message

	// Alert shows a message when CartMessage is absent.
	Alert func(text string)
}
