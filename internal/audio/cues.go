// Package audio plays short procedural sound cues for game events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/falldown/internal/falldown"
)

const sampleRate = beep.SampleRate(44100)

// Cues turns frame results into sounds: a chime when a block is cleared, a
// thud when the player lands on a block and a falling tone on game over.
// Until Initialize succeeds every method is silent.
type Cues struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	landed      bool

	// play hands a finished cue to the output.
	play func(beep.Streamer)
}

// NewCues creates a cue player. Volume is clamped to [0, 1].
func NewCues(volume float64) *Cues {
	c := &Cues{
		mixer:  &beep.Mixer{},
		volume: min(max(volume, 0), 1),
	}
	c.play = func(s beep.Streamer) { c.mixer.Add(s) }
	return c
}

// Initialize opens the default audio device.
func (c *Cues) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Cleanup silences everything.
func (c *Cues) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	c.mixer.Clear()
	speaker.Unlock()
	c.initialized = false
}

// ObserveFrame plays the cues for one frame. Landing only sounds on the
// frame the player first comes to rest.
func (c *Cues) ObserveFrame(res falldown.FrameResult) {
	if res.Cleared {
		c.PlayClear()
	}
	if res.Landed && !c.landed {
		c.PlayLand()
	}
	c.landed = res.Landed
	if res.Restarted {
		c.landed = false
		c.PlayGameOver()
	}
}

// PlayClear plays the block-cleared chime.
func (c *Cues) PlayClear() {
	c.emit(beep.Take(sampleRate.N(250*time.Millisecond), NewChimeGenerator(sampleRate, 880)))
}

// PlayLand plays the landing thud.
func (c *Cues) PlayLand() {
	c.emit(beep.Take(sampleRate.N(120*time.Millisecond), NewThudGenerator(sampleRate, 90)))
}

// PlayGameOver plays the falling game-over tone.
func (c *Cues) PlayGameOver() {
	span := sampleRate.N(600 * time.Millisecond)
	c.emit(beep.Take(span, NewFallGenerator(sampleRate, 440, 110, span)))
}

func (c *Cues) emit(s beep.Streamer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	gained := &effects.Gain{Streamer: s, Gain: c.volume - 1}
	speaker.Lock()
	c.play(gained)
	speaker.Unlock()
}
