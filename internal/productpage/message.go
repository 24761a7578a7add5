package productpage

import (
	"time"

	"github.com/thomas/popcorn-terminal/internal/timer"
)

// DefaultClearDelay is how long a timed form message stays up.
const DefaultClearDelay = 3000 * time.Millisecond

// notice shows messages in one message area and clears timed ones.
type notice struct {
	area   Message
	alert  func(string)
	sched  timer.Scheduler
	delay  time.Duration
	cancel timer.Cancel
}

// show displays text. With autoClear the message is removed after the
// delay. Any pending clear of the previous message is dropped.
func (n *notice) show(text string, kind MessageKind, autoClear bool) {
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	if n.area == nil {
		if n.alert != nil {
			n.alert(text)
		}
		return
	}

	n.area.Show(text, kind)
	if !autoClear {
		return
	}
	n.cancel = n.sched.Schedule(n.delay, func() {
		n.cancel = nil
		n.area.Clear()
	})
}
