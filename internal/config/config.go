// Package config provides YAML-based configuration loading for falldown.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FalldownConfig contains all tunables of the game and its frontends.
type FalldownConfig struct {
	Physics Physics      `yaml:"physics"`
	Blocks  Blocks       `yaml:"blocks"`
	Player  Player       `yaml:"player"`
	Board   Board        `yaml:"board"`
	Input   Input        `yaml:"input"`
	Window  Window       `yaml:"window"`
	Audio   AudioOptions `yaml:"audio"`
}

// Physics defines per-tick movement rates. All rates are positive magnitudes;
// direction is applied by the simulation.
type Physics struct {
	RiseRate   float64 `yaml:"rise_rate"`
	FallRate   float64 `yaml:"fall_rate"`
	StrafeRate float64 `yaml:"strafe_rate"`
}

// Blocks defines block geometry.
type Blocks struct {
	Height   float64 `yaml:"height"`
	Spacing  float64 `yaml:"spacing"`
	GapWidth float64 `yaml:"gap_width"`
}

// Player defines the player square.
type Player struct {
	Size float64 `yaml:"size"`
}

// Board defines how a rendering surface maps onto board units.
type Board struct {
	Border     float64 `yaml:"border"`
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// Input defines terminal input emulation.
type Input struct {
	// ReleaseAfterMS releases a held direction when the terminal has not
	// repeated the key for this long. Terminals never report key release.
	ReleaseAfterMS int `yaml:"release_after_ms"`
}

// ReleaseAfter returns the release window as a duration.
func (i Input) ReleaseAfter() time.Duration {
	return time.Duration(i.ReleaseAfterMS) * time.Millisecond
}

// Window defines the size of the windowed frontend in pixels.
type Window struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// AudioOptions controls the audio cues.
type AudioOptions struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Validate checks that every geometry value and rate is usable.
func (c FalldownConfig) Validate() error {
	var errs []error

	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("physics.rise_rate", c.Physics.RiseRate)
	positive("physics.fall_rate", c.Physics.FallRate)
	positive("physics.strafe_rate", c.Physics.StrafeRate)
	positive("blocks.height", c.Blocks.Height)
	positive("blocks.gap_width", c.Blocks.GapWidth)
	positive("player.size", c.Player.Size)
	positive("board.cell_width", c.Board.CellWidth)
	positive("board.cell_height", c.Board.CellHeight)

	if c.Blocks.Spacing < 0 {
		errs = append(errs, fmt.Errorf("blocks.spacing must not be negative, got %v", c.Blocks.Spacing))
	}
	if c.Board.Border < 0 {
		errs = append(errs, fmt.Errorf("board.border must not be negative, got %v", c.Board.Border))
	}
	if c.Input.ReleaseAfterMS <= 0 {
		errs = append(errs, fmt.Errorf("input.release_after_ms must be positive, got %d", c.Input.ReleaseAfterMS))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %v", c.Audio.Volume))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
