package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hopsquare/internal/core"
	"github.com/vovakirdan/hopsquare/internal/prefs"
	"github.com/vovakirdan/hopsquare/internal/registry"
	"github.com/vovakirdan/hopsquare/internal/storage"
)

// MenuChoice is what a menu entry leads to.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoicePlay
	ChoiceRules
	ChoiceScores
	ChoiceQuit
)

// MenuItem represents a selectable menu entry.
type MenuItem struct {
	Choice    MenuChoice
	GameID    string // Set for ChoicePlay
	Title     string
	BestLevel int
}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	height    int
	store     *storage.Store
	prefs     *prefs.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	quitting  bool
	selected  *MenuItem
}

// NewMenuModel creates the main menu: one Play entry per registered mode,
// then rules, scores and quit. The cursor starts on the last mode played
// when preferences are available.
func NewMenuModel(store *storage.Store, ps *prefs.Store, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games)+3)

	for _, g := range games {
		item := MenuItem{Choice: ChoicePlay, GameID: g.ID, Title: "Play " + g.Title}
		if store != nil {
			if best, err := store.BestLevel(g.ID); err == nil {
				item.BestLevel = best
			}
		}
		items = append(items, item)
	}
	items = append(items,
		MenuItem{Choice: ChoiceRules, Title: "Rules"},
		MenuItem{Choice: ChoiceScores, Title: "Scores"},
		MenuItem{Choice: ChoiceQuit, Title: "Quit"},
	)

	m := MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		prefs:     ps,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}

	if settings, err := ps.Load(); err == nil && settings.LastGameID != "" {
		for i, item := range items {
			if item.GameID == settings.LastGameID {
				m.cursor = i
			}
		}
	}

	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		return m.choose(MenuItem{Choice: ChoiceScores})

	case MenuActionRules:
		return m.choose(MenuItem{Choice: ChoiceRules})

	case MenuActionSelect:
		if len(m.items) > 0 {
			return m.choose(m.items[m.cursor])
		}
	}

	return m, nil
}

func (m MenuModel) choose(item MenuItem) (tea.Model, tea.Cmd) {
	if item.Choice == ChoiceQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if item.Choice == ChoicePlay {
		//nolint:errcheck // Best-effort, the menu works without preferences
		m.prefs.Update(func(s *prefs.Settings) { s.LastGameID = item.GameID })
	}
	m.selected = &item
	return m, tea.Quit
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  H O P   S Q U A R E  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("Climb to the exit. Don't get caught."), m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := item.Title
		if item.Choice == ChoicePlay && item.BestLevel > 0 {
			line = fmt.Sprintf("%s  (best: level %d)", item.Title, item.BestLevel)
		}
		if i == m.cursor {
			line = selectedStyle.Render("> " + line + " ")
		} else {
			line = "  " + line + " "
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  ?: Rules  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Choice MenuChoice
	GameID string
	Config core.RuntimeConfig
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(store *storage.Store, ps *prefs.Store, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(store, ps, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Choice: ChoiceQuit, Config: cfg}, nil
	}

	return MenuResult{
		Choice: m.Selected().Choice,
		GameID: m.Selected().GameID,
		Config: m.Config(),
	}, nil
}
