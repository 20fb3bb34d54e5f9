package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Rules shown on the rules screen.
var Rules = []string{
	"Enemies never stop chasing you.",
	"Eat the yellow pill to destroy enemies for a few seconds.",
	"The last platform takes you to the next level.",
	"Press E while standing on it to go through.",
	"Enemies close in slowly but tactically. Three hits and it's over.",
}

// rulesKeyMap defines the key bindings for the rules screen.
type rulesKeyMap struct {
	Back key.Binding
	Quit key.Binding
}

func (k rulesKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Quit}
}

func (k rulesKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// RulesModel shows the rules and the controls.
type RulesModel struct {
	keys      rulesKeyMap
	gameKeys  GameKeyMap
	help      help.Model
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewRulesModel creates a rules screen.
func NewRulesModel(width, height int) RulesModel {
	h := help.New()
	h.Width = width
	return RulesModel{
		keys: rulesKeyMap{
			Back: key.NewBinding(
				key.WithKeys("esc", "b", "enter"),
				key.WithHelp("esc/b", "back"),
			),
			Quit: key.NewBinding(
				key.WithKeys("q", "ctrl+c"),
				key.WithHelp("q", "quit"),
			),
		},
		gameKeys: DefaultGameKeyMap(),
		help:     h,
		width:    width,
		height:   height,
	}
}

// Init initializes the rules model.
func (m RulesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the rules screen.
func (m RulesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// View renders the rules.
func (m RulesModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var body strings.Builder
	for _, rule := range Rules {
		body.WriteString("* ")
		body.WriteString(rule)
		body.WriteString("\n")
	}
	body.WriteString("\n")
	body.WriteString(dimStyle.Render("Controls"))
	body.WriteString("\n")

	controls := help.New()
	controls.ShowAll = true
	body.WriteString(controls.View(m.gameKeys))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("RULES"), m.width))
	b.WriteString("\n\n")
	b.WriteString(panelStyle.Render(body.String()))
	b.WriteString("\n\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m RulesModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m RulesModel) IsQuitting() bool {
	return m.quitting
}

// RunRules runs the rules screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunRules(width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewRulesModel(width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(RulesModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
