package falldown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassThroughGapScores(t *testing.T) {
	s := newTestSession()
	place(s, Block{ID: 100, Y: 100, HolePosition: 80}, 90, 80)

	res := s.Advance()

	require.Len(t, s.blocks, 1)
	b := s.blocks[0]
	assert.Equal(t, 98.5, b.Y, "block rises before collision is resolved")
	assert.True(t, b.Cleared)
	assert.True(t, res.Cleared)
	assert.False(t, res.Landed)
	assert.Equal(t, 1, s.Score())
	assert.Equal(t, 83.5, s.player.Y, "player keeps falling through the gap")
	assert.Equal(t, 90.0, s.player.X)
	assert.Equal(t, Continue, res.Signal)
}

func TestClearingIsIdempotent(t *testing.T) {
	s := newTestSession()
	place(s, Block{ID: 100, Y: 100, HolePosition: 80}, 90, 80)

	for i := 0; i < 10; i++ {
		s.Advance()
	}

	assert.Equal(t, 1, s.Score())
	assert.True(t, s.blocks[0].Cleared)
}

func TestSolidBlockStopsPlayer(t *testing.T) {
	s := newTestSession()
	place(s, Block{ID: 100, Y: 100, HolePosition: 80}, 10, 80)

	res := s.Advance()

	b := s.blocks[0]
	assert.False(t, b.Cleared)
	assert.True(t, res.Landed)
	assert.Equal(t, b.Y-20, s.player.Y, "player rests on top of the block")
	assert.Equal(t, 78.5, s.player.Y)
	assert.Equal(t, 0, s.Score())

	// The block carries the player upward on later frames
	s.Advance()
	assert.Equal(t, s.blocks[0].Y-20, s.player.Y)
	assert.Equal(t, 0, s.Score())
}

func TestTouchingGapEdgeIsAHit(t *testing.T) {
	tests := []struct {
		name string
		x    float64
	}{
		{"left edge", 80},
		{"right edge", 100},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession()
			place(s, Block{ID: 100, Y: 100, HolePosition: 80}, tc.x, 80)

			res := s.Advance()

			assert.True(t, res.Landed)
			assert.False(t, s.blocks[0].Cleared)
			assert.Equal(t, 0, s.Score())
		})
	}
}

func TestNoCollisionBeforeCrossing(t *testing.T) {
	s := newTestSession()
	place(s, Block{ID: 100, Y: 300, HolePosition: 80}, 10, 80)

	res := s.Advance()

	assert.False(t, res.Landed)
	assert.Equal(t, 83.5, s.player.Y)
}

func TestGapEdgeClampWhilePassing(t *testing.T) {
	s := newTestSession()
	place(s, Block{ID: 100, Y: 90, HolePosition: 80, Cleared: true}, 82, 80)

	// Strafe left while inside the gap
	s.OnPress(DirectionLeft, epoch)
	for i := 0; i < 3; i++ {
		s.Advance()
		assert.GreaterOrEqual(t, s.player.X, 80.0, "frame %d", i)
	}
	assert.Equal(t, 80.0, s.player.X, "left edge snaps to the gap's left edge")

	s.OnRelease(DirectionLeft)
	s.OnPress(DirectionRight, epoch.Add(time.Second))
	place(s, Block{ID: 101, Y: 90, HolePosition: 80, Cleared: true}, 99, 80)
	s.Advance()

	assert.Equal(t, 100.0, s.player.X, "right edge snaps to the gap's right edge")
}

func TestGameOverWhenPushedAboveTop(t *testing.T) {
	s := newTestSession()
	place(s, Block{ID: 100, Y: 10, HolePosition: 80}, 10, 0)

	res := s.Advance()

	assert.True(t, s.GameOver())
	assert.Less(t, s.player.Y, 0.0)
	assert.Equal(t, Stop, res.Signal)
	assert.True(t, res.State.GameOver)

	// Further frames are no-ops
	y := s.player.Y
	frames := s.Frames()
	res = s.Advance()
	assert.Equal(t, Stop, res.Signal)
	assert.Equal(t, y, s.player.Y)
	assert.Equal(t, frames, s.Frames())
}

func TestBoardEdgeClamping(t *testing.T) {
	s := newTestSession()
	s.blocks = nil
	s.player.X = 195
	s.player.Y = 590

	s.OnPress(DirectionRight, epoch)
	s.Advance()

	assert.Equal(t, 180.0, s.player.X)
	assert.Equal(t, 580.0, s.player.Y)

	s.OnRelease(DirectionRight)
	s.OnPress(DirectionLeft, epoch.Add(time.Second))
	s.player.X = 1
	s.Advance()

	assert.Equal(t, 0.0, s.player.X)
}

func TestNearestBlockIsTheOnlyOneTested(t *testing.T) {
	s := newTestSession()
	s.blocks = []Block{
		{ID: 1, Y: 100, HolePosition: 0},   // solid under the player
		{ID: 2, Y: 400, HolePosition: 150}, // far away
	}
	s.player.X = 100
	s.player.Y = 80

	res := s.Advance()

	assert.True(t, res.Landed)
	assert.Equal(t, s.blocks[0].Y-20, s.player.Y)
}

func TestNearestBlockTieGoesToLater(t *testing.T) {
	s := newTestSession()
	s.blocks = []Block{
		{ID: 1, Y: 50},
		{ID: 2, Y: 150},
	}

	assert.Equal(t, 1, s.nearestBlock(100))
	assert.Equal(t, -1, (&Session{}).nearestBlock(100))
}

func TestStrafeMostRecentWins(t *testing.T) {
	tests := []struct {
		name        string
		left, right time.Time
		dx          float64
	}{
		{"right pressed later", epoch, epoch.Add(time.Millisecond), 2},
		{"left pressed later", epoch.Add(time.Millisecond), epoch, -2},
		{"same instant resolves right", epoch, epoch, 2},
		{"left only", epoch, time.Time{}, -2},
		{"right only", time.Time{}, epoch, 2},
		{"neither", time.Time{}, time.Time{}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession()
			s.blocks = nil
			s.player.X = 100
			s.player.Y = 0

			if !tc.left.IsZero() {
				s.OnPress(DirectionLeft, tc.left)
			}
			if !tc.right.IsZero() {
				s.OnPress(DirectionRight, tc.right)
			}
			s.Advance()

			assert.Equal(t, 100+tc.dx, s.player.X)
		})
	}
}

func TestEmitPublishesPositions(t *testing.T) {
	sink := newRecordingSink()
	s := newTestSession(WithVisualSink(sink))
	sink.moved = 0

	s.Advance()

	assert.Equal(t, len(s.blocks)+1, sink.moved)
	assert.Equal(t, s.player.Y, sink.last[PlayerID].Y)
	for _, b := range s.blocks {
		assert.Equal(t, b.Y, sink.last[b.ID].Y)
		assert.Equal(t, b.HolePosition, sink.last[b.ID].X)
	}
}
