package config

import (
	_ "embed"
)

//go:embed defaults/falldown.yaml
var defaultFalldownYAML []byte

// DefaultFalldownConfig returns the built-in configuration. The values match
// the embedded defaults/falldown.yaml.
func DefaultFalldownConfig() FalldownConfig {
	return FalldownConfig{
		Physics: Physics{
			RiseRate:   1.5,
			FallRate:   3.5,
			StrafeRate: 2,
		},
		Blocks: Blocks{
			Height:   20,
			Spacing:  100,
			GapWidth: 40,
		},
		Player: Player{
			Size: 20,
		},
		Board: Board{
			Border:     2,
			CellWidth:  10,
			CellHeight: 20,
		},
		Input: Input{
			ReleaseAfterMS: 350,
		},
		Window: Window{
			Width:  400,
			Height: 600,
		},
		Audio: AudioOptions{
			Enabled: false,
			Volume:  0.5,
		},
	}
}
