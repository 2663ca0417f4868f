package audio

import (
	"math"

	"github.com/gopxl/beep"
)

// ChimeGenerator is a bell-like sine pair with an exponential decay.
type ChimeGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewChimeGenerator creates a chime at freq Hz.
func NewChimeGenerator(sr beep.SampleRate, freq float64) *ChimeGenerator {
	return &ChimeGenerator{sr: sr, freq: freq}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		envelope := math.Exp(-t * 12)

		sample := 0.25*math.Sin(2*math.Pi*g.freq*t) + 0.1*math.Sin(2*math.Pi*g.freq*2.01*t)
		sample *= envelope

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// ThudGenerator is a short low square-ish thump.
type ThudGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

// NewThudGenerator creates a thud at freq Hz.
func NewThudGenerator(sr beep.SampleRate, freq float64) *ThudGenerator {
	return &ThudGenerator{sr: sr, freq: freq}
}

func (g *ThudGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.3*math.Sin(2*math.Pi*g.freq*t) +
			0.15*math.Sin(2*math.Pi*g.freq*3*t) +
			0.05*math.Sin(2*math.Pi*g.freq*5*t)

		// 5ms attack, then decay
		attack := math.Min(t/0.005, 1)
		sample *= attack * math.Exp(-t*20)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ThudGenerator) Err() error {
	return nil
}

// FallGenerator sweeps down from a start pitch while fading out.
type FallGenerator struct {
	sr    beep.SampleRate
	from  float64
	to    float64
	span  int
	pos   int
	phase float64
}

// NewFallGenerator sweeps from one pitch to another over span samples.
func NewFallGenerator(sr beep.SampleRate, from, to float64, span int) *FallGenerator {
	return &FallGenerator{sr: sr, from: from, to: to, span: max(span, 1)}
}

func (g *FallGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.span), 1)
		freq := g.from + (g.to-g.from)*progress

		// Integrate the phase so the sweep has no clicks
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		sample := 0.3 * math.Sin(g.phase) * (1 - progress)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *FallGenerator) Err() error {
	return nil
}
