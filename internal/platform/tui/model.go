package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/limitless/internal/core"
	"github.com/vovakirdan/limitless/internal/registry"
	"github.com/vovakirdan/limitless/internal/storage"
)

// Model is the Bubble Tea model for running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	latch      *MoveLatch
	inputFrame core.InputFrame
	gameState  core.GameState
	scores     *ScoreboardModel // open scoreboard overlay, nil when hidden
	embedded   bool             // running under SessionModel
	tickGen    uint64
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards output.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger.With("game", game.ID()),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		latch:      NewMoveLatch(cfg.TickRate),
		inputFrame: core.NewInputFrame(),
		tickGen:    nextTickGen(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "seed", m.config.Seed, "width", m.config.ScreenW, "height", m.config.ScreenH)
	return tickCmd(m.config.TickRate, m.tickGen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.scores != nil {
			return m.updateScores(msg)
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.inputFrame.SetPointer(float64(msg.X), float64(msg.Y))
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.tickGen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch {
	case action == core.ActionNone:
		return m, nil

	case IsMovement(action):
		m.latch.Press(action)
		return m, nil

	case action == core.ActionScores:
		if m.gameState.InMenu || m.gameState.GameOver {
			sb := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH, m.game.ID())
			sb.embedded = true
			m.scores = &sb
		}
		return m, nil

	case action == core.ActionBack:
		if m.gameState.InMenu || m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if !m.embedded {
				return m, tea.Quit
			}
		}
		return m, nil
	}

	m.inputFrame.Set(action)
	return m, nil
}

// updateScores routes input to the open scoreboard.
func (m Model) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		m.scores = nil
		return m, nil
	}

	switch {
	case sb.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case sb.IsGoingBack():
		m.scores = nil
		return m, nil
	}

	m.scores = &sb
	return m, cmd
}

// handleResize maps the new terminal size onto the running game.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.game.Resize(msg.Width, msg.Height)

	if m.scores != nil {
		return m.updateScores(msg)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.scores == nil {
		m.latch.Apply(&m.inputFrame)
	} else {
		m.latch.Release()
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logEvents(result.Events)

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}
	if !m.gameState.GameOver {
		m.scoreSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate, m.tickGen)
}

func (m Model) logEvents(events []core.Event) {
	for _, e := range events {
		switch e.Kind {
		case core.EventStateChanged:
			m.logger.Debug("state changed", "state", e.Label)
		case core.EventWaveAdvanced:
			m.logger.Info("wave advanced", "wave", e.Value)
		case core.EventGameOver:
			m.logger.Info("game over", "score", e.Value, "wave", m.gameState.Wave, "kills", m.gameState.Kills)
		}
	}
}

// saveRun persists the finished run. Failures are logged and ignored.
func (m Model) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.store.SaveRun(storage.RunRecord{
		GameID: m.game.ID(),
		Score:  m.gameState.Score,
		Wave:   m.gameState.Wave,
		Kills:  m.gameState.Kills,
		Ticks:  m.gameState.Tick,
	})
	if err != nil {
		m.logger.Warn("could not save score", "score", m.gameState.Score, "error", err)
	}
}

// saveScreenshot saves the current screen to a text file.
func (m Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("tui: cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".limitless", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create %s: %w", dir, err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scores != nil {
		return m.scores.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested the variant picker.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
// It reports whether the player asked to go back to the variant picker.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // aim follows the pointer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu() && !fm.IsQuitting(), nil
	}
	return false, nil
}
