package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/registry"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

// RunSaver records finished runs. *storage.Store implements it.
type RunSaver interface {
	SaveRun(r storage.Run) (string, error)
}

// runDetails is implemented by games that can explain how a run ended.
type runDetails interface {
	Cause() string
	Seed() int64
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for a single runner session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      RunSaver
	config     core.RuntimeConfig
	fixedSeed  bool
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	ticks      int
	lastRunID  string
	quitting   bool
	runSaved   bool // Whether the current run has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// A zero seed is replaced by the clock and re-rolled on every restart;
// an explicit seed is kept so restarts replay the same track.
// The last terminal row is reserved for the key help.
func NewModel(game registry.Game, store RunSaver, cfg core.RuntimeConfig, logger *log.Logger) Model {
	fixed := cfg.Seed != 0
	if !fixed {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		fixedSeed:  fixed,
		inputFrame: core.NewInputFrame(),
		keys:       NewKeyMapper(),
		help:       h,
		logger:     logger,
	}
}

func playfieldHeight(h int) int {
	return core.Max(1, h-1)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.playfieldConfig())
	return tickCmd(m.config.TickRate)
}

func (m Model) playfieldConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = playfieldHeight(cfg.ScreenH)
	return cfg
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := m.keys.MapMouse(msg, m.screen.Height(), time.Now()); ok {
			m.inputFrame.AddPointer(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		// The run keeps going; only the view adapts
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

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

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		if !m.fixedSeed {
			m.config.Seed = time.Now().UnixNano()
		}
		m.game.Reset(m.playfieldConfig())
		m.gameState = m.game.State()
		m.runSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.ticks = result.Ticks

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
		m.runSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun records the finished run. Failures are logged and the session goes on.
func (m *Model) saveRun() {
	if m.store == nil {
		return
	}

	run := storage.Run{
		GameID:   m.game.ID(),
		Distance: m.gameState.Distance,
		Ticks:    m.ticks,
		Seed:     m.config.Seed,
	}
	if d, ok := m.game.(runDetails); ok {
		run.Cause = d.Cause()
		run.Seed = d.Seed()
	}

	id, err := m.store.SaveRun(run)
	if err != nil {
		m.logger.Warn("could not save run", "game", run.GameID, "error", err)
		return
	}
	m.lastRunID = id
	m.logger.Debug("run saved", "id", id, "distance", run.Distance, "cause", run.Cause)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".runner", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// GameState returns the state seen at the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// LastRunID returns the id of the most recently saved run, or "".
func (m Model) LastRunID() string {
	return m.lastRunID
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store RunSaver, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Press/release edges feed swipe detection
	)

	_, err := p.Run()
	return err
}
