package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/otiyot/internal/screen"
	"github.com/abhisek/otiyot/internal/ui/components"
	"github.com/abhisek/otiyot/internal/ui/keys"
	"github.com/abhisek/otiyot/internal/ui/layout"
)

// Menu labels, in display order.
const (
	LabelLetterMatch   = "LETTER MATCH"
	LabelMissingLetter = "MISSING LETTER"
	LabelExit          = "EXIT"
)

// HomeScreen is the game selection screen.
type HomeScreen struct {
	menu        components.Menu
	menuLabels  []string
	letterCount int
	wordCount   int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen for a catalog of the given size. The missing
// letter game is disabled when there are no words.
func New(letterCount, wordCount int) *HomeScreen {
	menuLabels := []string{LabelLetterMatch, LabelMissingLetter, LabelExit}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg { return screen.ConfigureLetterMatchMsg{} }
		}},
		{Label: menuLabels[1], Disabled: wordCount == 0, Action: func() tea.Cmd {
			return func() tea.Msg { return screen.StartWordCompletionMsg{} }
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:        components.NewMenu(items),
		menuLabels:  menuLabels,
		letterCount: letterCount,
		wordCount:   wordCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	termHeight := height + 8
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	sections = append(sections, renderStatsBar(h.letterCount, h.wordCount, cw, compact))
	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height, components.ToneIdle)
}

func (h *HomeScreen) Title() string {
	return "Choose a Game"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Up, keys.Down, keys.Enter)
}
