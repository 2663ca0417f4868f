package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/falldown/internal/falldown"
)

// capture returns cues that record what they would play instead of
// touching an audio device.
func capture(t *testing.T) (*Cues, *[]beep.Streamer) {
	t.Helper()
	var played []beep.Streamer
	c := NewCues(0.5)
	c.initialized = true
	c.play = func(s beep.Streamer) { played = append(played, s) }
	return c, &played
}

func drain(t *testing.T, s beep.Streamer) (n int, peak float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	for {
		k, ok := s.Stream(buf)
		for i := 0; i < k; i++ {
			v := buf[i][0]
			if v < 0 {
				v = -v
			}
			if v > peak {
				peak = v
			}
		}
		n += k
		if !ok || k == 0 {
			return n, peak
		}
	}
}

func TestGeneratorsStayInRange(t *testing.T) {
	span := sampleRate.N(200 * time.Millisecond)
	gens := map[string]beep.Streamer{
		"chime": NewChimeGenerator(sampleRate, 880),
		"thud":  NewThudGenerator(sampleRate, 90),
		"fall":  NewFallGenerator(sampleRate, 440, 110, span),
	}

	for name, g := range gens {
		t.Run(name, func(t *testing.T) {
			n, peak := drain(t, beep.Take(span, g))
			if n != span {
				t.Errorf("streamed %d samples, want %d", n, span)
			}
			if peak > 1 {
				t.Errorf("peak %f out of range", peak)
			}
			if peak == 0 {
				t.Error("generator is silent")
			}
			if g.Err() != nil {
				t.Errorf("unexpected error: %v", g.Err())
			}
		})
	}
}

func TestCuesSilentUntilInitialized(t *testing.T) {
	c := NewCues(1)
	var played int
	c.play = func(beep.Streamer) { played++ }

	c.PlayClear()
	c.PlayLand()
	c.PlayGameOver()
	c.Cleanup()

	if played != 0 {
		t.Errorf("uninitialized cues played %d sounds", played)
	}
}

func TestObserveFrame(t *testing.T) {
	c, played := capture(t)

	c.ObserveFrame(falldown.FrameResult{})
	if len(*played) != 0 {
		t.Fatal("quiet frame made a sound")
	}

	c.ObserveFrame(falldown.FrameResult{Cleared: true})
	if len(*played) != 1 {
		t.Fatalf("clear: %d sounds, want 1", len(*played))
	}

	// Resting on a block sounds once, not every frame
	c.ObserveFrame(falldown.FrameResult{Landed: true})
	c.ObserveFrame(falldown.FrameResult{Landed: true})
	c.ObserveFrame(falldown.FrameResult{Landed: true})
	if len(*played) != 2 {
		t.Fatalf("landing: %d sounds, want 2", len(*played))
	}

	c.ObserveFrame(falldown.FrameResult{Restarted: true})
	if len(*played) != 3 {
		t.Fatalf("game over: %d sounds, want 3", len(*played))
	}

	c.ObserveFrame(falldown.FrameResult{Landed: true})
	if len(*played) != 4 {
		t.Errorf("landing after restart: %d sounds, want 4", len(*played))
	}
}

func TestVolumeScalesOutput(t *testing.T) {
	loud, loudPlayed := capture(t)
	loud.volume = 1
	quiet, quietPlayed := capture(t)
	quiet.volume = 0.25

	loud.PlayClear()
	quiet.PlayClear()

	_, loudPeak := drain(t, (*loudPlayed)[0])
	_, quietPeak := drain(t, (*quietPlayed)[0])
	if quietPeak >= loudPeak {
		t.Errorf("quiet peak %f should be below loud peak %f", quietPeak, loudPeak)
	}
}

func TestNewCuesClampsVolume(t *testing.T) {
	if v := NewCues(3).volume; v != 1 {
		t.Errorf("volume = %f, want 1", v)
	}
	if v := NewCues(-1).volume; v != 0 {
		t.Errorf("volume = %f, want 0", v)
	}
}
