// Package window runs Falldown in a desktop window with Ebitengine.
package window

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/falldown/internal/config"
	"github.com/vovakirdan/falldown/internal/falldown"
)

// bannerFrames is how long the final score stays up after a game over.
const bannerFrames = 120

var (
	backgroundColor = color.RGBA{16, 18, 28, 255}
	blockColor      = color.RGBA{70, 170, 200, 255}
	playerColor     = color.RGBA{250, 210, 80, 255}
	bannerColor     = color.RGBA{0, 0, 0, 180}
)

// Observer is told about every frame, e.g. for sound.
type Observer interface {
	ObserveFrame(falldown.FrameResult)
}

// Option configures a Game.
type Option func(*Game)

// WithObserver forwards frame results to o.
func WithObserver(o Observer) Option {
	return func(g *Game) {
		g.observer = o
	}
}

// WithPresenter forwards final scores to p.
func WithPresenter(p falldown.Presenter) Option {
	return func(g *Game) {
		g.presenter = p
	}
}

// WithBestScore seeds the best score shown in the HUD.
func WithBestScore(score int) Option {
	return func(g *Game) {
		g.best = score
	}
}

// Game is an ebiten.Game driving one falldown loop at the window's tick rate.
type Game struct {
	cfg       config.FalldownConfig
	loop      *falldown.Loop
	sprites   *spriteTable
	keys      keyEvents
	observer  Observer
	presenter falldown.Presenter

	paused bool
	banner int // frames left on the game-over banner
	last   int
	best   int
}

// New builds a game whose board is the configured window size.
func New(cfg config.FalldownConfig, seed int64, opts ...Option) *Game {
	g := &Game{
		cfg:     cfg,
		sprites: newSpriteTable(),
		keys:    ebitenKeys{},
	}
	for _, opt := range opts {
		opt(g)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	surface := falldown.Bounds{
		Width:      float64(cfg.Window.Width),
		Height:     float64(cfg.Window.Height),
		PlayerSize: cfg.Player.Size,
	}
	session := falldown.New(falldown.ParamsFrom(cfg), surface,
		falldown.WithSeed(seed),
		falldown.WithVisualSink(g.sprites),
		falldown.WithPresenter(falldown.PresenterFunc(g.report)),
	)
	g.loop = falldown.NewLoop(session)
	return g
}

func (g *Game) report(score int) {
	g.last = score
	if score > g.best {
		g.best = score
	}
	if g.presenter != nil {
		g.presenter.Report(score)
	}
}

// Update polls input and advances one frame.
func (g *Game) Update() error {
	if g.keys.JustPressed(ebiten.KeyEscape) || g.keys.JustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.keys.JustPressed(ebiten.KeyP) && g.banner == 0 {
		g.paused = !g.paused
	}

	session := g.loop.Session()
	now := time.Now()
	for k, dir := range steering {
		if g.keys.JustPressed(k) {
			session.OnPress(dir, now)
		}
		if g.keys.JustReleased(k) {
			session.OnRelease(dir)
		}
	}

	if g.banner > 0 {
		g.banner--
		return nil
	}
	if g.paused {
		return nil
	}

	res := g.loop.Tick()
	if res.Restarted {
		g.banner = bannerFrames
	}
	if g.observer != nil {
		g.observer.ObserveFrame(res)
	}
	return nil
}

// Draw renders the sprites, HUD and banners.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	session := g.loop.Session()
	board := session.Board()
	params := session.Params()
	size := float32(g.cfg.Player.Size)

	g.sprites.each(func(_ falldown.EntityID, s sprite) bool {
		x, y := float32(s.x), float32(s.y)
		switch s.kind {
		case falldown.KindBlock:
			h := float32(params.BlockHeight)
			gapEnd := x + float32(params.GapWidth)
			vector.DrawFilledRect(screen, 0, y, x, h, blockColor, false)
			vector.DrawFilledRect(screen, gapEnd, y, float32(board.Width)-gapEnd, h, blockColor, false)
		case falldown.KindPlayer:
			vector.DrawFilledRect(screen, x, y, size, size, playerColor, false)
		}
		return true
	})

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d  Last: %d  Best: %d", session.Score(), g.last, g.best), 4, 4)

	switch {
	case g.banner > 0:
		g.drawBanner(screen, fmt.Sprintf("GAME OVER\nYou scored: %d", g.last))
	case g.paused:
		g.drawBanner(screen, "PAUSED\nPress P to resume")
	}
}

func (g *Game) drawBanner(screen *ebiten.Image, text string) {
	w, h := float32(g.cfg.Window.Width), float32(g.cfg.Window.Height)
	vector.DrawFilledRect(screen, 0, h/2-30, w, 60, bannerColor, false)
	ebitenutil.DebugPrintAt(screen, text, int(w/2)-40, int(h/2)-16)
}

// Layout fixes the logical screen to the board size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Run opens the window and blocks until it is closed. tps is the frame
// rate of the simulation.
func Run(g *Game, tps int) error {
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle("Falldown")
	if tps > 0 {
		ebiten.SetTPS(tps)
	}

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
