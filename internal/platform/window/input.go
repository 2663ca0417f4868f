package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/falldown/internal/falldown"
)

// keyEvents reports edge-triggered key state for the current tick.
type keyEvents interface {
	JustPressed(ebiten.Key) bool
	JustReleased(ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

// steering maps keys to directions. Windows report real releases, so a
// latch is held exactly as long as the key.
var steering = map[ebiten.Key]falldown.Direction{
	ebiten.KeyArrowLeft:  falldown.DirectionLeft,
	ebiten.KeyA:          falldown.DirectionLeft,
	ebiten.KeyArrowRight: falldown.DirectionRight,
	ebiten.KeyD:          falldown.DirectionRight,
}
