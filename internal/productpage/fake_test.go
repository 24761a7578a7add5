package productpage

import (
	"strconv"

	"github.com/thomas/popcorn-terminal/internal/pricing"
)

type fakeImage struct {
	src, alt string
	visible  bool
}

func (f *fakeImage) SetSource(src, alt string) { f.src, f.alt = src, alt }
func (f *fakeImage) SetVisible(v bool)         { f.visible = v }

type fakeThumb struct {
	src, alt, index string
	active          bool
}

func (f *fakeThumb) Source() string    { return f.src }
func (f *fakeThumb) Alt() string       { return f.alt }
func (f *fakeThumb) DataIndex() string { return f.index }
func (f *fakeThumb) SetActive(a bool)  { f.active = a }

type fakeSelect struct {
	opts  []Option
	value string
}

func (f *fakeSelect) SetOptions(opts []Option) { f.opts = opts }
func (f *fakeSelect) Value() string            { return f.value }

type fakeSizes struct {
	visible bool
	checked pricing.Size
}

func (f *fakeSizes) SetVisible(v bool) { f.visible = v }
func (f *fakeSizes) Checked() (pricing.Size, bool) {
	return f.checked, f.checked != ""
}
func (f *fakeSizes) Check(s pricing.Size) { f.checked = s }

type fakeContainer struct{ visible bool }

func (f *fakeContainer) SetVisible(v bool) { f.visible = v }

type fakeInput struct{ value string }

func (f *fakeInput) Value() string     { return f.value }
func (f *fakeInput) SetValue(v string) { f.value = v }

type fakeText struct{ text string }

func (f *fakeText) SetText(s string) { f.text = s }

type fakeMessage struct {
	text string
	kind MessageKind
}

func (f *fakeMessage) Show(text string, kind MessageKind) { f.text, f.kind = text, kind }
func (f *fakeMessage) Clear()                             { f.text, f.kind = "", MessageNone }

type fakeReview struct {
	name, comment string
	resets        int
}

func (f *fakeReview) Name() string    { return f.name }
func (f *fakeReview) Comment() string { return f.comment }
func (f *fakeReview) Reset() {
	f.name, f.comment = "", ""
	f.resets++
}

type fakeScreen struct {
	main      *fakeImage
	thumbs    []*fakeThumb
	flavor    *fakeSelect
	sizes     *fakeSizes
	picker    *fakeContainer
	quantity  *fakeInput
	price     *fakeText
	cartMsg   *fakeMessage
	review    *fakeReview
	reviewMsg *fakeMessage
	alerts    []string
}

func newFakeScreen(images ...string) *fakeScreen {
	s := &fakeScreen{
		main:      &fakeImage{},
		flavor:    &fakeSelect{},
		sizes:     &fakeSizes{},
		picker:    &fakeContainer{},
		quantity:  &fakeInput{},
		price:     &fakeText{},
		cartMsg:   &fakeMessage{},
		review:    &fakeReview{},
		reviewMsg: &fakeMessage{},
	}
	for i, src := range images {
		s.thumbs = append(s.thumbs, &fakeThumb{src: src, alt: "alt " + src, index: strconv.Itoa(i)})
	}
	return s
}

func (s *fakeScreen) surface() *Surface {
	thumbs := make([]Thumbnail, len(s.thumbs))
	for i, t := range s.thumbs {
		thumbs[i] = t
	}
	return &Surface{
		MainImage:      s.main,
		Thumbnails:     thumbs,
		Flavor:         s.flavor,
		SizeOptions:    s.sizes,
		QuantityPicker: s.picker,
		Quantity:       s.quantity,
		Price:          s.price,
		CartMessage:    s.cartMsg,
		ReviewForm:     s.review,
		ReviewMessage:  s.reviewMsg,
		Alert:          func(text string) { s.alerts = append(s.alerts, text) },
	}
}

func (s *fakeScreen) activeThumbs() []int {
	var out []int
	for i, t := range s.thumbs {
		if t.active {
			out = append(out, i)
		}
	}
	return out
}
