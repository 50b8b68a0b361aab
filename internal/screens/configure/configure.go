// Package configure is the letter match settings screen: a difficulty
// step followed by a question count step.
package configure

import (
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/otiyot/internal/screen"
	"github.com/abhisek/otiyot/internal/session"
	"github.com/abhisek/otiyot/internal/ui/components"
	"github.com/abhisek/otiyot/internal/ui/keys"
	"github.com/abhisek/otiyot/internal/ui/layout"
	"github.com/abhisek/otiyot/internal/ui/theme"
)

type step int

const (
	stepDifficulty step = iota
	stepQuestions
)

const buttonWidth = 26

// difficultyPickedMsg and backMsg never leave this screen.
type difficultyPickedMsg struct{ d session.Difficulty }

type backMsg struct{}

// ConfigureScreen collects a session.LetterMatchConfig.
type ConfigureScreen struct {
	step      step
	chosen    session.Difficulty
	diffMenu  components.Menu
	countMenu components.Menu
}

var _ screen.Screen = (*ConfigureScreen)(nil)
var _ screen.KeyHintProvider = (*ConfigureScreen)(nil)

// New creates the screen with defaults preselected. Defaults that are not
// offered fall back to the first entry.
func New(defaults session.LetterMatchConfig) *ConfigureScreen {
	diffItems := make([]components.MenuItem, 0, len(session.Difficulties))
	for _, d := range session.Difficulties {
		diffItems = append(diffItems, components.MenuItem{
			Label: d.Label(),
			Action: func() tea.Cmd {
				return func() tea.Msg { return difficultyPickedMsg{d: d} }
			},
		})
	}
	diffMenu := components.NewMenu(diffItems)
	if i := slices.Index(session.Difficulties, defaults.Difficulty); i >= 0 {
		diffMenu.Selected = i
	}

	c := &ConfigureScreen{
		chosen:    session.Difficulties[diffMenu.Selected],
		diffMenu:  diffMenu,
		countMenu: newCountMenu(defaults.QuestionCount),
	}
	c.bindCounts()
	return c
}

func newCountMenu(def int) components.Menu {
	items := make([]components.MenuItem, 0, len(session.QuestionCounts)+1)
	for _, n := range session.QuestionCounts {
		items = append(items, components.MenuItem{Label: fmt.Sprintf("%d questions", n)})
	}
	items = append(items, components.MenuItem{
		Label: "BACK",
		Action: func() tea.Cmd {
			return func() tea.Msg { return backMsg{} }
		},
	})
	m := components.NewMenu(items)
	if i := slices.Index(session.QuestionCounts, def); i >= 0 {
		m.Selected = i
	}
	return m
}

func (c *ConfigureScreen) Init() tea.Cmd {
	return nil
}

func (c *ConfigureScreen) Title() string {
	return "Letter Match"
}

func (c *ConfigureScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Up, keys.Enter, keys.Back)
}

func (c *ConfigureScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case difficultyPickedMsg:
		c.chosen = msg.d
		c.step = stepQuestions
		c.bindCounts()
		return c, nil
	case backMsg:
		c.step = stepDifficulty
		return c, nil
	}

	var cmd tea.Cmd
	if c.step == stepDifficulty {
		c.diffMenu, cmd = c.diffMenu.Update(msg)
		return c, cmd
	}
	c.countMenu, cmd = c.countMenu.Update(msg)
	return c, cmd
}

// bindCounts points each count item at the difficulty chosen in step one.
func (c *ConfigureScreen) bindCounts() {
	for i, n := range session.QuestionCounts {
		cfg := session.LetterMatchConfig{Difficulty: c.chosen, QuestionCount: n}
		c.countMenu.Items[i].Action = func() tea.Cmd {
			return func() tea.Msg { return screen.StartLetterMatchMsg{Config: cfg} }
		}
	}
}

func (c *ConfigureScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	heading := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)
	sub := lipgloss.NewStyle().Foreground(theme.TextDim)

	var sections []string
	switch c.step {
	case stepDifficulty:
		sections = append(sections,
			heading.Render("CHOOSE A LEVEL"),
			sub.Render("How many letters to pick from?"),
			c.diffMenu.View(buttonWidth),
		)
	case stepQuestions:
		sections = append(sections,
			heading.Render("HOW MANY QUESTIONS?"),
			sub.Render(c.chosen.Label()),
			c.countMenu.View(buttonWidth),
		)
	}

	content := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(sections, "\n\n"))
	return components.CabinetFrame(content, width, height, components.ToneIdle)
}
