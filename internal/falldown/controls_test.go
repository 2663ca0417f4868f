package falldown

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDirection(t *testing.T) {
	tests := []struct {
		tag  string
		dir  Direction
		isOK bool
	}{
		{"left", DirectionLeft, true},
		{"Right", DirectionRight, true},
		{"ArrowLeft", DirectionLeft, true},
		{" right ", DirectionRight, true},
		{"up", DirectionNone, false},
		{"", DirectionNone, false},
	}

	for _, tc := range tests {
		dir, ok := ParseDirection(tc.tag)
		assert.Equal(t, tc.dir, dir, tc.tag)
		assert.Equal(t, tc.isOK, ok, tc.tag)
	}
}

func TestPressRelease(t *testing.T) {
	var c Controls
	c.attach()

	assert.Equal(t, 0, c.Heading())

	c.Press(DirectionLeft, epoch)
	assert.Equal(t, -1, c.Heading())

	c.Press(DirectionRight, epoch.Add(time.Millisecond))
	assert.Equal(t, 1, c.Heading())

	// Re-pressing left refreshes its timestamp and takes over
	c.Press(DirectionLeft, epoch.Add(2*time.Millisecond))
	assert.Equal(t, -1, c.Heading())

	c.Release(DirectionLeft)
	assert.Equal(t, 1, c.Heading())

	c.Release(DirectionRight)
	assert.Equal(t, 0, c.Heading())
}

func TestUnknownDirectionIgnored(t *testing.T) {
	s := newTestSession()
	s.blocks = nil
	x := s.player.X

	s.OnPress(Direction(42), epoch)
	s.OnRelease(Direction(-1))
	s.OnPress(DirectionNone, epoch)
	s.Advance()

	assert.Equal(t, x, s.player.X)
}

func TestDetachedControlsIgnoreInput(t *testing.T) {
	var c Controls
	c.attach()
	c.Press(DirectionRight, epoch)

	c.detach()
	assert.Equal(t, 0, c.Heading(), "detach drops latches")

	c.Press(DirectionLeft, epoch)
	assert.Equal(t, 0, c.Heading())

	c.attach()
	c.Press(DirectionLeft, epoch)
	assert.Equal(t, -1, c.Heading())
}

func TestZeroTimestampMeansNow(t *testing.T) {
	var c Controls
	c.attach()

	c.Press(DirectionRight, epoch)
	c.Press(DirectionLeft, time.Time{})
	assert.Equal(t, -1, c.Heading(), "a press without a timestamp is the latest")
}

func TestConcurrentPresses(t *testing.T) {
	s := newTestSession()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				ts := epoch.Add(time.Duration(i*100+j) * time.Microsecond)
				if j%2 == 0 {
					s.OnPress(DirectionLeft, ts)
				} else {
					s.OnPress(DirectionRight, ts)
				}
			}
		}(i)
	}
	wg.Wait()

	assert.Contains(t, []int{-1, 1}, s.controls.Heading())
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "left", DirectionLeft.String())
	assert.Equal(t, "right", DirectionRight.String())
	assert.Equal(t, "none", Direction(9).String())
}
