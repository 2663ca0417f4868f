// Package falldown implements the simulation core of Falldown: a square
// falls through a shaft of rising blocks and must steer through their gaps.
//
// A Session is a single-threaded state machine advanced once per frame by
// an external scheduler. Input drivers only touch the direction latches,
// which are safe to write from other goroutines. Rendering reads positions
// through a VisualSink or the snapshot accessors; the session holds no
// visual state of its own.
package falldown

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/falldown/internal/core"
)

// Session owns all state of one game: board, player, blocks, latches,
// score and the game-over flag.
type Session struct {
	params    Params
	surface   Surface
	rng       RandSource
	visual    VisualSink
	presenter Presenter

	board    Board
	player   Player
	blocks   []Block
	nextID   EntityID
	controls Controls
	score    int
	gameOver bool
	frames   int
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the gap source. Use a seeded *rand.Rand for reproducible games.
func WithRand(r RandSource) Option {
	return func(s *Session) {
		s.rng = r
	}
}

// WithSeed seeds a private math/rand source.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithVisualSink routes entity updates to v.
func WithVisualSink(v VisualSink) Option {
	return func(s *Session) {
		s.visual = v
	}
}

// WithPresenter routes final scores to p.
func WithPresenter(p Presenter) Option {
	return func(s *Session) {
		s.presenter = p
	}
}

// New creates a session in the Active state with a freshly populated board.
func New(params Params, surface Surface, opts ...Option) *Session {
	s := &Session{
		params:    params,
		surface:   surface,
		visual:    nopSink{},
		presenter: nopPresenter{},
		nextID:    PlayerID + 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s.start()
	return s
}

// start measures the surface, places the player at the bottom centre,
// spawns the opening blocks and attaches input.
func (s *Session) start() {
	b := s.surface.Bounds()
	s.board = Board{Width: b.Width, Height: b.Height}
	s.player = Player{
		Size: b.PlayerSize,
		X:    b.Width/2 - b.PlayerSize/2,
		Y:    b.Height - b.PlayerSize,
	}
	s.visual.Added(s.playerEntity())

	s.blocks = make([]Block, 0, s.initialBlockCount())
	s.spawnInitialBlocks()

	s.controls.attach()
}

// Restart ends the current session and begins a new one: the final score
// goes to the presenter, input is detached, every entity is removed and the
// board is rebuilt from the surface before input is attached again.
func (s *Session) Restart() {
	s.presenter.Report(s.score)
	s.controls.detach()

	for _, b := range s.blocks {
		s.visual.Removed(b.ID)
	}
	s.visual.Removed(PlayerID)
	s.blocks = nil

	s.score = 0
	s.gameOver = false
	s.frames = 0
	s.start()
}

// OnPress latches a direction at ts. Unknown directions are ignored.
func (s *Session) OnPress(dir Direction, ts time.Time) {
	s.controls.Press(dir, ts)
}

// OnRelease clears a direction latch. Unknown directions are ignored.
func (s *Session) OnRelease(dir Direction) {
	s.controls.Release(dir)
}

// Score returns the number of blocks cleared this session.
func (s *Session) Score() int {
	return s.score
}

// GameOver reports whether the session has reached its terminal state.
func (s *Session) GameOver() bool {
	return s.gameOver
}

// Frames returns the number of frames advanced this session.
func (s *Session) Frames() int {
	return s.frames
}

// Board returns the play area.
func (s *Session) Board() Board {
	return s.board
}

// Player returns the player's current position.
func (s *Session) Player() Player {
	return s.player
}

// Params returns the session's fixed rates and geometry.
func (s *Session) Params() Params {
	return s.params
}

// Blocks returns a copy of the active blocks, ordered by spawn.
func (s *Session) Blocks() []Block {
	out := make([]Block, len(s.blocks))
	copy(out, s.blocks)
	return out
}

// State returns the externally visible status.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.gameOver,
	}
}

func (s *Session) playerEntity() Entity {
	return Entity{ID: PlayerID, Kind: KindPlayer, X: s.player.X, Y: s.player.Y}
}
