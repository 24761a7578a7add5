package productpage

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/thomas/popcorn-terminal/internal/timer"
)

// DefaultFadeDelay is how long the main image stays hidden while swapping.
const DefaultFadeDelay = 150 * time.Millisecond

// Gallery cycles the main image through the thumbnails present at
// construction.
type Gallery struct {
	main    MainImage
	thumbs  []Thumbnail
	sources []string
	current int

	sched      timer.Scheduler
	fade       time.Duration
	cancelSwap timer.Cancel
	log        zerolog.Logger
}

// NewGallery captures the image sources of thumbs.
func NewGallery(main MainImage, thumbs []Thumbnail, sched timer.Scheduler, fade time.Duration, log zerolog.Logger) *Gallery {
	sources := make([]string, len(thumbs))
	for i, t := range thumbs {
		sources[i] = t.Source()
	}
	return &Gallery{
		main:    main,
		thumbs:  thumbs,
		sources: sources,
		sched:   sched,
		fade:    fade,
		log:     log,
	}
}

// Init shows the first image, or logs why it cannot.
func (g *Gallery) Init() {
	switch {
	case g.main == nil:
		g.log.Error().Msg("main gallery image element not found")
	case len(g.sources) == 0:
		g.log.Warn().Msg("no thumbnail images found")
	default:
		g.Update(0)
	}
}

// Current returns the index of the image being shown.
func (g *Gallery) Current() int { return g.current }

// Len returns the number of gallery images.
func (g *Gallery) Len() int { return len(g.sources) }

// Update shows the image at index. Out-of-range indexes and a missing main
// image are ignored.
func (g *Gallery) Update(index int) {
	if g.main == nil || len(g.thumbs) == 0 || index < 0 || index >= len(g.sources) {
		return
	}
	g.current = index
	g.main.SetVisible(false)

	if g.cancelSwap != nil {
		g.cancelSwap()
	}
	g.cancelSwap = g.sched.Schedule(g.fade, func() {
		g.cancelSwap = nil
		g.main.SetSource(g.sources[g.current], g.thumbs[g.current].Alt())
		g.main.SetVisible(true)
	})

	for i, t := range g.thumbs {
		t.SetActive(i == g.current)
	}
}

// Prev moves to the previous image, wrapping to the last.
func (g *Gallery) Prev() {
	if n := len(g.sources); n > 0 {
		g.Update((g.current - 1 + n) % n)
	}
}

// Next moves to the next image, wrapping to the first.
func (g *Gallery) Next() {
	if n := len(g.sources); n > 0 {
		g.Update((g.current + 1) % n)
	}
}

// SelectThumbnail jumps to the index held in a thumbnail's data attribute.
// Non-numeric values are ignored.
func (g *Gallery) SelectThumbnail(dataIndex string) {
	index, ok := parseLeadingInt(dataIndex)
	if !ok {
		return
	}
	g.Update(index)
}

// parseLeadingInt reads an optionally signed run of digits at the start of
// s, ignoring leading whitespace and any trailing text.
func parseLeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
