package falldown

import "github.com/vovakirdan/falldown/internal/core"

// Signal tells the frame scheduler whether to keep ticking.
type Signal int

const (
	Continue Signal = iota
	Stop            // the session is over and must be restarted
)

func (s Signal) String() string {
	if s == Stop {
		return "stop"
	}
	return "continue"
}

// FrameResult describes what happened during one frame.
type FrameResult struct {
	State  core.GameState
	Signal Signal

	Cleared bool // a block was cleared this frame
	Landed  bool // the player is resting on a block

	// Set by Loop when the frame was spent restarting the session.
	Restarted  bool
	FinalScore int
}

// Advance runs one frame. The order of the phases matters: blocks move
// first, then the player strafes, then the fall is resolved against the
// block nearest to where the player would end up.
//
// Only the nearest block is tested. With the default spacing no two blocks
// can be in range in the same frame; faster fall rates or tighter spacing
// can break that assumption.
//
// Once the game is over Advance does nothing and returns Stop.
func (s *Session) Advance() FrameResult {
	if s.gameOver {
		return FrameResult{State: s.State(), Signal: Stop}
	}
	s.frames++

	var res FrameResult

	s.scrollBlocks()
	s.strafe()

	size := s.player.Size
	next := s.player.Box().Offset(0, s.params.FallRate)

	blocked := false
	var nearest *Block
	if i := s.nearestBlock(next.Bottom); i >= 0 {
		nearest = &s.blocks[i]
		gap := nearest.Gap(s.params.GapWidth)

		// Crossing the block's top plane this frame
		if next.Top < nearest.Y && next.Bottom >= nearest.Y {
			if !gap.Fits(next) {
				blocked = true
			} else if !nearest.Cleared {
				nearest.Cleared = true
				s.score++
				res.Cleared = true
			}
		}

		// Keep the player inside the gap while passing through it
		if nearest.Cleared && next.Top < nearest.Y+s.params.BlockHeight {
			if next.Left < gap.Left {
				s.player.X = gap.Left
			}
			if next.Right > gap.Right {
				s.player.X = gap.Right - size
			}
		}
	}

	if blocked && !nearest.Cleared {
		s.player.Y = nearest.Y - size
		res.Landed = true
	} else {
		s.player.Y += s.params.FallRate
	}

	if s.player.Y+size > s.board.Height {
		s.player.Y = s.board.Height - size
	}
	if s.player.X+size > s.board.Width {
		s.player.X = s.board.Width - size
	}
	if s.player.X < 0 {
		s.player.X = 0
	}

	if s.player.Y < 0 {
		s.gameOver = true
	}

	s.emit()

	res.State = s.State()
	if s.gameOver {
		res.Signal = Stop
	}
	return res
}

// strafe moves the player toward the most recently pressed direction.
func (s *Session) strafe() {
	switch s.controls.Heading() {
	case -1:
		s.player.X -= s.params.StrafeRate
	case 1:
		s.player.X += s.params.StrafeRate
	}
}

// emit publishes post-frame positions of every entity.
func (s *Session) emit() {
	for _, b := range s.blocks {
		s.visual.Moved(blockEntity(b))
	}
	s.visual.Moved(s.playerEntity())
}
