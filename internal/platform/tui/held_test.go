package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/falldown/internal/falldown"
)

func TestHeldKeysExpire(t *testing.T) {
	h := newHeldKeys(300 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	h.press(falldown.DirectionLeft, t0)
	if got := h.expire(t0.Add(299 * time.Millisecond)); len(got) != 0 {
		t.Fatalf("released too early: %v", got)
	}

	// A repeat keeps the key held
	h.press(falldown.DirectionLeft, t0.Add(200*time.Millisecond))
	if got := h.expire(t0.Add(400 * time.Millisecond)); len(got) != 0 {
		t.Fatalf("repeat did not extend hold: %v", got)
	}

	got := h.expire(t0.Add(500 * time.Millisecond))
	if len(got) != 1 || got[0] != falldown.DirectionLeft {
		t.Fatalf("expire() = %v, want [left]", got)
	}

	if got := h.expire(t0.Add(time.Second)); len(got) != 0 {
		t.Errorf("released twice: %v", got)
	}
}

func TestHeldKeysReleaseAll(t *testing.T) {
	h := newHeldKeys(time.Second)
	now := time.Unix(1000, 0)

	h.press(falldown.DirectionLeft, now)
	h.press(falldown.DirectionRight, now)

	if got := h.releaseAll(); len(got) != 2 {
		t.Errorf("releaseAll() = %v, want both directions", got)
	}
	if got := h.releaseAll(); len(got) != 0 {
		t.Errorf("second releaseAll() = %v", got)
	}
}
