package falldown

import "github.com/vovakirdan/falldown/internal/core"

// EntityID identifies a simulated entity for the lifetime of a session.
// Visual layers key their handles by it.
type EntityID uint64

// PlayerID is the identity of the player square. Blocks are numbered from 1
// and identities are never reused within a Session.
const PlayerID EntityID = 0

// EntityKind distinguishes the two entity types.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindBlock
)

func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindBlock:
		return "block"
	default:
		return "unknown"
	}
}

// Board is the play area. It is fixed for the duration of a session.
type Board struct {
	Width  float64
	Height float64
}

// Player is the falling square.
type Player struct {
	X, Y float64
	Size float64
}

// Box returns the player's bounding box.
func (p Player) Box() core.Box {
	return core.BoxAt(p.X, p.Y, p.Size, p.Size)
}

// Block is a horizontal bar with a single gap.
type Block struct {
	ID           EntityID
	Y            float64
	HolePosition float64 // left edge of the gap
	Cleared      bool    // the player has passed through the gap
}

// Gap returns the passable span of the block.
func (b Block) Gap(gapWidth float64) core.Span {
	return core.Span{Left: b.HolePosition, Right: b.HolePosition + gapWidth}
}

// Entity is the renderable view of a player or block.
// For blocks X is the gap offset; blocks always span the full board width.
type Entity struct {
	ID   EntityID
	Kind EntityKind
	X, Y float64
}
