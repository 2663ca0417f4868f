package falldown

import (
	"strings"
	"sync/atomic"
	"time"
)

// Direction is a strafe direction.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection maps an input tag to a direction.
// Unknown tags report false.
func ParseDirection(tag string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "left", "arrowleft":
		return DirectionLeft, true
	case "right", "arrowright":
		return DirectionRight, true
	default:
		return DirectionNone, false
	}
}

// Controls holds the two direction latches. Each latch is the press time in
// Unix nanoseconds, zero while released. Writers may run on any goroutine;
// the latest write wins.
type Controls struct {
	left     atomic.Int64
	right    atomic.Int64
	attached atomic.Bool
}

func (c *Controls) latch(dir Direction) *atomic.Int64 {
	switch dir {
	case DirectionLeft:
		return &c.left
	case DirectionRight:
		return &c.right
	default:
		return nil
	}
}

// Press latches dir at ts. A zero ts means now.
func (c *Controls) Press(dir Direction, ts time.Time) {
	if !c.attached.Load() {
		return
	}
	l := c.latch(dir)
	if l == nil {
		return
	}
	if ts.IsZero() {
		ts = time.Now()
	}
	n := ts.UnixNano()
	if n == 0 {
		n = 1 // zero is the released sentinel
	}
	l.Store(n)
}

// Release clears the latch for dir.
func (c *Controls) Release(dir Direction) {
	if !c.attached.Load() {
		return
	}
	if l := c.latch(dir); l != nil {
		l.Store(0)
	}
}

// Heading resolves the latches to -1 (left), +1 (right) or 0 (neither held).
// Left wins only when pressed strictly later than right.
func (c *Controls) Heading() int {
	left, right := c.left.Load(), c.right.Load()
	if left == 0 && right == 0 {
		return 0
	}
	if left > right {
		return -1
	}
	return 1
}

func (c *Controls) attach() {
	c.attached.Store(true)
}

// detach drops both latches and ignores input until the next attach.
func (c *Controls) detach() {
	c.attached.Store(false)
	c.left.Store(0)
	c.right.Store(0)
}
