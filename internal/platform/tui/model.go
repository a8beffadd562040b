package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/arcadelab/tui-pong/internal/core"
	"github.com/arcadelab/tui-pong/internal/game"
	"github.com/arcadelab/tui-pong/internal/storage"
)

// Model is the Bubble Tea model running one pong match.
type Model struct {
	match      *game.Match
	keys       *KeyMapper
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	startedAt  time.Time
	ticks      uint64
	quitting   bool
	matchSaved bool // Whether the finished match has been persisted
}

// NewModel creates a new Bubble Tea model for the given match.
func NewModel(match *game.Match, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		match:      match,
		keys:       NewKeyMapper(),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		startedAt:  time.Now(),
	}
}

// Init initializes the model and starts the match.
func (m Model) Init() tea.Cmd {
	m.match.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

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
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	// Restart resets the persistence bookkeeping alongside the match.
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.match.Reset(m.config)
		m.gameState = m.match.State()
		m.matchSaved = false
		m.startedAt = time.Now()
		m.ticks = 0
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.match.Step(m.inputFrame)
	m.gameState = result.State
	m.ticks++

	// Persist the finished match (once)
	if m.gameState.GameOver && !m.matchSaved {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, play continues regardless
			m.store.SaveMatch(storage.MatchRecord{
				ScoreLeft:    m.gameState.ScoreLeft,
				ScoreRight:   m.gameState.ScoreRight,
				Winner:       m.gameState.Winner,
				DurationSecs: int(time.Since(m.startedAt).Seconds()),
				Ticks:        m.ticks,
			})
		}
		m.matchSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.match.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".pong", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("pong_%s.txt", timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, play continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.match.Render(m.screen)

	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for one match.
func Run(match *game.Match, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(match, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
