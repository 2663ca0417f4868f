package falldown

import (
	"time"

	"github.com/vovakirdan/falldown/internal/config"
	"github.com/vovakirdan/falldown/internal/core"
)

// GameID identifies Falldown in the score history.
const GameID = "falldown"

// hudRows is the number of terminal rows above the board.
const hudRows = 1

// cellSurface maps a terminal of cols x rows onto board units.
type cellSurface struct {
	cols, rows int
	cfg        config.FalldownConfig
}

func (c cellSurface) Bounds() Bounds {
	w := float64(c.cols)*c.cfg.Board.CellWidth - c.cfg.Board.Border
	h := float64(c.rows-hudRows)*c.cfg.Board.CellHeight - c.cfg.Board.Border
	return Bounds{
		Width:      max(w, 0),
		Height:     max(h, 0),
		PlayerSize: c.cfg.Player.Size,
	}
}

// Game runs sessions on a character screen. It drives a Loop, tracks the
// last and best scores for the HUD and holds the board behind a report
// banner after every game over until the player acknowledges it.
type Game struct {
	cfg       config.FalldownConfig
	runtime   core.RuntimeConfig
	loop      *Loop
	presenter Presenter

	paused    bool
	reporting bool // a finished session's score is on screen
	lastScore int
	bestScore int
	played    int
}

// NewGame creates a game with the given configuration. Reset must be
// called before the first Step.
func NewGame(cfg config.FalldownConfig) *Game {
	return &Game{
		cfg:       cfg,
		presenter: nopPresenter{},
	}
}

// ID returns the identifier used for score storage.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Falldown"
}

// SetPresenter forwards final scores to p in addition to the HUD.
func (g *Game) SetPresenter(p Presenter) {
	if p == nil {
		p = nopPresenter{}
	}
	g.presenter = p
}

// SetBestScore seeds the best score shown in the HUD, e.g. from storage.
func (g *Game) SetBestScore(score int) {
	g.bestScore = score
}

// Reset starts a fresh session sized to the runtime screen. Scores already
// reported are kept.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}
	g.runtime = rc
	g.paused = false
	g.reporting = false

	surface := cellSurface{cols: rc.ScreenW, rows: rc.ScreenH, cfg: g.cfg}
	session := New(ParamsFrom(g.cfg), surface,
		WithSeed(rc.Seed),
		WithPresenter(PresenterFunc(g.report)),
	)
	g.loop = NewLoop(session)
}

// report records a finished session before passing it on.
func (g *Game) report(score int) {
	g.lastScore = score
	g.played++
	if score > g.bestScore {
		g.bestScore = score
	}
	g.presenter.Report(score)
}

// Step advances one frame unless the game is paused or showing a report.
func (g *Game) Step() FrameResult {
	if g.paused || g.reporting {
		return FrameResult{State: g.State()}
	}
	res := g.loop.Tick()
	if res.Restarted {
		g.reporting = true
	}
	res.State = g.State()
	return res
}

// Press latches a direction.
func (g *Game) Press(dir Direction, ts time.Time) {
	g.loop.Session().OnPress(dir, ts)
}

// Release clears a direction latch.
func (g *Game) Release(dir Direction) {
	g.loop.Session().OnRelease(dir)
}

// TogglePause pauses or resumes ticking.
func (g *Game) TogglePause() {
	if g.reporting {
		return
	}
	g.paused = !g.paused
}

// Reporting reports whether the game-over banner is showing.
func (g *Game) Reporting() bool {
	return g.reporting
}

// Acknowledge dismisses the game-over banner and resumes play.
func (g *Game) Acknowledge() {
	g.reporting = false
}

// Session returns the current session.
func (g *Game) Session() *Session {
	return g.loop.Session()
}

// LastScore returns the score of the most recently finished session.
func (g *Game) LastScore() int {
	return g.lastScore
}

// BestScore returns the best score seen so far.
func (g *Game) BestScore() int {
	return g.bestScore
}

// State returns the current game state. GameOver stays set while the
// report banner is showing, even though the next session is already built.
func (g *Game) State() core.GameState {
	s := g.loop.Session()
	return core.GameState{
		Score:    s.Score(),
		GameOver: g.reporting || s.GameOver(),
		Paused:   g.paused,
	}
}
