package tui

import (
	"time"

	"github.com/vovakirdan/falldown/internal/falldown"
)

// heldKeys emulates key release. Terminals only report presses, and a held
// key arrives as a stream of auto-repeated presses. A direction counts as
// released once no repeat has arrived for the release window.
type heldKeys struct {
	after time.Duration
	last  map[falldown.Direction]time.Time
}

func newHeldKeys(after time.Duration) *heldKeys {
	return &heldKeys{
		after: after,
		last:  make(map[falldown.Direction]time.Time, 2),
	}
}

func (h *heldKeys) press(dir falldown.Direction, now time.Time) {
	h.last[dir] = now
}

// expire forgets and returns the directions whose last press is older than
// the release window.
func (h *heldKeys) expire(now time.Time) []falldown.Direction {
	var released []falldown.Direction
	for dir, at := range h.last {
		if now.Sub(at) >= h.after {
			released = append(released, dir)
			delete(h.last, dir)
		}
	}
	return released
}

// releaseAll forgets every held direction and returns them.
func (h *heldKeys) releaseAll() []falldown.Direction {
	released := make([]falldown.Direction, 0, len(h.last))
	for dir := range h.last {
		released = append(released, dir)
	}
	clear(h.last)
	return released
}
