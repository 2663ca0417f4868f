package falldown

import "github.com/vovakirdan/falldown/internal/config"

// Params holds the fixed rates and block geometry of a session.
// Rates are positive magnitudes in board units per frame.
type Params struct {
	RiseRate     float64 // blocks move up by this much
	FallRate     float64 // the player falls by this much
	StrafeRate   float64 // the player moves sideways by this much
	BlockHeight  float64
	BlockSpacing float64
	GapWidth     float64
}

// DefaultParams returns the classic tuning.
func DefaultParams() Params {
	return ParamsFrom(config.DefaultFalldownConfig())
}

// ParamsFrom extracts simulation parameters from the game configuration.
func ParamsFrom(cfg config.FalldownConfig) Params {
	return Params{
		RiseRate:     cfg.Physics.RiseRate,
		FallRate:     cfg.Physics.FallRate,
		StrafeRate:   cfg.Physics.StrafeRate,
		BlockHeight:  cfg.Blocks.Height,
		BlockSpacing: cfg.Blocks.Spacing,
		GapWidth:     cfg.Blocks.GapWidth,
	}
}
