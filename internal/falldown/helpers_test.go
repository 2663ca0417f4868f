package falldown

import (
	"math/rand"
	"time"
)

// specBoard is the 200x600 board with a 20 unit player used by the scenarios.
var specBoard = Bounds{Width: 200, Height: 600, PlayerSize: 20}

func newTestSession(opts ...Option) *Session {
	opts = append([]Option{WithRand(rand.New(rand.NewSource(7)))}, opts...)
	return New(DefaultParams(), specBoard, opts...)
}

// place replaces the board contents with a single block and positions the player.
func place(s *Session, block Block, x, y float64) {
	s.blocks = []Block{block}
	s.player.X = x
	s.player.Y = y
}

// fixedRand returns the same fraction forever.
type fixedRand float64

func (f fixedRand) Float64() float64 { return float64(f) }

// recordingSink tracks which entities are alive and how often each hook fired.
type recordingSink struct {
	live    map[EntityID]EntityKind
	last    map[EntityID]Entity
	added   int
	removed int
	moved   int
}

func newRecordingSink() *recordingSink {
	return &recordingSink{
		live: make(map[EntityID]EntityKind),
		last: make(map[EntityID]Entity),
	}
}

func (r *recordingSink) Added(e Entity) {
	r.live[e.ID] = e.Kind
	r.last[e.ID] = e
	r.added++
}

func (r *recordingSink) Removed(id EntityID) {
	delete(r.live, id)
	delete(r.last, id)
	r.removed++
}

func (r *recordingSink) Moved(e Entity) {
	r.last[e.ID] = e
	r.moved++
}

func (r *recordingSink) count(kind EntityKind) int {
	n := 0
	for _, k := range r.live {
		if k == kind {
			n++
		}
	}
	return n
}

var epoch = time.Unix(1_700_000_000, 0)
