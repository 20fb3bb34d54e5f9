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

	"github.com/vovakirdan/hopsquare/internal/config"
	"github.com/vovakirdan/hopsquare/internal/core"
	"github.com/vovakirdan/hopsquare/internal/registry"
	"github.com/vovakirdan/hopsquare/internal/storage"
)

// footerRows is the number of terminal rows kept for the key help.
const footerRows = 1

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel runs one game in Bubble Tea: key handling, the fixed tick loop,
// the level banner and saving the run when the game ends.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	held       heldInput
	gameState  core.GameState
	banner     *banner
	standalone bool // Back quits the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	runSaved   bool // Whether the run has been saved for current game over
}

// NewGameModel creates a game model. A nil logger discards logs.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

func playfieldHeight(screenH int) int {
	return core.Max(screenH-footerRows, 1)
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The game scales the world to the screen, so a resize keeps the run.
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
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionLeft, core.ActionRight:
		m.held.press(action)
	case core.ActionBack:
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			if m.standalone {
				return m, tea.Quit
			}
		}
	case core.ActionRestart:
		if m.gameState.GameOver {
			m.inputFrame.Set(action)
		}
	case core.ActionNone, core.ActionConfirm:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.restart()
		return m, tickCmd(m.config.TickRate)
	}

	m.held.apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.LevelChanged {
		m.logger.Debug("level completed", "game", m.game.ID(), "level", m.gameState.Level)
		m.banner = newLevelBanner(m.gameState.Level, m.screen.Height())
	}
	if m.banner != nil && !m.gameState.Paused {
		dt := float32(config.TickDuration(m.config.TickRate).Seconds())
		if m.banner.update(dt) {
			m.banner = nil
		}
	}

	if m.gameState.GameOver && !m.runSaved {
		m.saveRun()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// restart begins a new run with a fresh seed.
func (m *GameModel) restart() {
	m.config.Seed = time.Now().UnixNano()
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.runSaved = false
	m.banner = nil
	m.held.reset()
	m.inputFrame.Clear()
}

// saveRun records the finished run once. Runs that never reached a level
// (the game could not start) are not recorded.
func (m *GameModel) saveRun() {
	m.runSaved = true
	if m.store == nil || m.gameState.Score < 1 {
		return
	}
	if _, err := m.store.SaveRun(m.game.ID(), m.gameState.Score, m.config.Seed); err != nil {
		m.logger.Warn("could not save run", "game", m.game.ID(), "err", err)
		return
	}
	m.logger.Info("run saved", "game", m.game.ID(), "level", m.gameState.Score, "seed", m.config.Seed)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".hopsquare", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "err", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.banner != nil {
		m.banner.draw(m.screen)
	}

	return RenderScreen(m.screen) + "\n" + footerStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays a single game in the terminal until the player quits or goes
// back. backToMenu reports which of the two ended it.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(GameModel)
	return ok && m.BackToMenu(), nil
}
