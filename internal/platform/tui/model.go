package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/falldown/internal/core"
	"github.com/vovakirdan/falldown/internal/falldown"
)

// FrameObserver is told about every frame the model runs, e.g. for sound.
type FrameObserver interface {
	ObserveFrame(falldown.FrameResult)
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithReleaseAfter sets how long a direction stays latched without a key
// repeat before it is released.
func WithReleaseAfter(d time.Duration) ModelOption {
	return func(m *Model) {
		m.held.after = d
	}
}

// WithObserver forwards every frame result to o.
func WithObserver(o FrameObserver) ModelOption {
	return func(m *Model) {
		m.observer = o
	}
}

// WithScreenshotDir overrides where ctrl+s writes screen dumps.
func WithScreenshotDir(dir string) ModelOption {
	return func(m *Model) {
		m.screenshotDir = dir
	}
}

// Model is the Bubble Tea model that runs a Falldown game.
type Model struct {
	game          *falldown.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	keys          KeyMap
	held          *heldKeys
	observer      FrameObserver
	screenshotDir string
	now           func() time.Time
	quitting      bool
}

// NewModel creates a model and starts the first session sized to cfg.
func NewModel(game *falldown.Game, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:        cfg,
		keys:          DefaultKeyMap(),
		held:          newHeldKeys(350 * time.Millisecond),
		screenshotDir: filepath.Join(os.Getenv("HOME"), ".falldown", "screenshots"),
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.game.Reset(m.config)
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	if action == ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// The score banner swallows the key that dismisses it
	if m.game.Reporting() {
		m.releaseAll()
		m.game.Acknowledge()
		return m, nil
	}

	switch action {
	case ActionScreenshot:
		m.saveScreenshot()
	case ActionPause:
		m.game.TogglePause()
	case ActionStop:
		m.releaseAll()
	case ActionLeft, ActionRight:
		now := m.now()
		dir := action.Direction()
		m.held.press(dir, now)
		m.game.Press(dir, now)
	}

	return m, nil
}

func (m Model) releaseAll() {
	for _, dir := range m.held.releaseAll() {
		m.game.Release(dir)
	}
}

// handleResize rebuilds the session for the new terminal size. The
// unfinished session is dropped without a score.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.held.releaseAll()
	m.game.Reset(m.config)
	return m, nil
}

// handleTick releases stale directions and runs one frame.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	for _, dir := range m.held.expire(m.now()) {
		m.game.Release(dir)
	}

	res := m.game.Step()
	if res.Restarted {
		m.held.releaseAll()
	}
	if m.observer != nil {
		m.observer.ObserveFrame(res)
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a text file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.screenshotDir, 0o755)

	timestamp := m.now().Format("20060102_150405")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run plays the game in the local terminal until the user quits.
func Run(game *falldown.Game, cfg core.RuntimeConfig, opts ...ModelOption) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts...),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
