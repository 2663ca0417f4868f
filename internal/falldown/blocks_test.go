package falldown

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialBlocksEvenlySpaced(t *testing.T) {
	s := newTestSession()

	// round(600 / (20 + 100)) = 5 blocks, (600/5 + 10) apart
	require.Len(t, s.blocks, 5)
	for i, b := range s.blocks {
		assert.Equal(t, float64(i+1)*130, b.Y)
		assert.False(t, b.Cleared)
		assert.Equal(t, EntityID(i+1), b.ID)
	}
}

func TestInitialPlayerPosition(t *testing.T) {
	s := newTestSession()

	assert.Equal(t, 90.0, s.player.X)
	assert.Equal(t, 580.0, s.player.Y)
	assert.Equal(t, 20.0, s.player.Size)
}

func TestTinyBoardStillHasABlock(t *testing.T) {
	s := New(DefaultParams(), Bounds{Width: 200, Height: 30, PlayerSize: 20}, WithSeed(1))
	assert.Len(t, s.blocks, 1)
}

func TestRecycleReplacesOneForOne(t *testing.T) {
	sink := newRecordingSink()
	s := newTestSession(WithVisualSink(sink))
	s.blocks[0].Y = -19 // bottom edge at 1, leaves the board this frame
	oldID := s.blocks[0].ID

	s.Advance()

	require.Len(t, s.blocks, 5)
	assert.Equal(t, 5, sink.count(KindBlock))
	_, alive := sink.live[oldID]
	assert.False(t, alive, "recycled block is removed from the visual sink")

	fresh := s.blocks[len(s.blocks)-1]
	assert.Equal(t, 600.0, fresh.Y, "replacement spawns at the bottom")
	assert.Greater(t, fresh.ID, oldID)
	assert.False(t, fresh.Cleared)
}

func TestBlockPartiallyAboveTopIsKept(t *testing.T) {
	s := newTestSession()
	s.blocks[0].Y = -17 // bottom edge at 1.5 after scrolling
	id := s.blocks[0].ID

	s.Advance()

	assert.Equal(t, id, s.blocks[0].ID)
	assert.Equal(t, -18.5, s.blocks[0].Y)
}

func TestHolePositionWithinBounds(t *testing.T) {
	for _, f := range []float64{0, 0.25, 0.5, 0.999999} {
		s := New(DefaultParams(), specBoard, WithRand(fixedRand(f)))
		for _, b := range s.blocks {
			assert.GreaterOrEqual(t, b.HolePosition, 0.0)
			assert.LessOrEqual(t, b.HolePosition, 160.0)
			assert.InDelta(t, f*160, b.HolePosition, 1e-9)
		}
	}
}

func TestHolePositionNarrowBoard(t *testing.T) {
	s := New(DefaultParams(), Bounds{Width: 30, Height: 600, PlayerSize: 20}, WithRand(fixedRand(0.9)))
	for _, b := range s.blocks {
		assert.Equal(t, 0.0, b.HolePosition)
	}
}

// TestInvariantsUnderRandomPlay drives a long game with random input and
// checks the per-frame invariants across restarts.
func TestInvariantsUnderRandomPlay(t *testing.T) {
	sink := newRecordingSink()
	s := New(DefaultParams(), specBoard, WithSeed(99), WithVisualSink(sink))
	loop := NewLoop(s)
	input := rand.New(rand.NewSource(3))
	count := len(s.blocks)

	now := epoch
	for frame := 0; frame < 5000; frame++ {
		now = now.Add(16 * time.Millisecond)
		switch input.Intn(8) {
		case 0:
			s.OnPress(DirectionLeft, now)
		case 1:
			s.OnPress(DirectionRight, now)
		case 2:
			s.OnRelease(DirectionLeft)
		case 3:
			s.OnRelease(DirectionRight)
		}

		prevScore := s.Score()
		res := loop.Tick()

		require.Len(t, s.blocks, count, "frame %d", frame)
		require.Equal(t, count, sink.count(KindBlock), "frame %d", frame)
		require.Equal(t, 1, sink.count(KindPlayer), "frame %d", frame)

		for _, b := range s.blocks {
			require.GreaterOrEqual(t, b.HolePosition, 0.0)
			require.LessOrEqual(t, b.HolePosition, specBoard.Width-s.params.GapWidth)
		}

		p := s.Player()
		require.GreaterOrEqual(t, p.X, 0.0, "frame %d", frame)
		require.LessOrEqual(t, p.X, specBoard.Width-p.Size, "frame %d", frame)
		require.LessOrEqual(t, p.Y, specBoard.Height-p.Size, "frame %d", frame)

		if !res.Restarted {
			require.GreaterOrEqual(t, s.Score(), prevScore, "score is monotonic within a session")
			if !s.GameOver() {
				require.GreaterOrEqual(t, p.Y, 0.0)
			}
		}
	}
}
