package components

import (
	"fmt"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/otiyot/internal/catalog"
	"github.com/abhisek/otiyot/internal/ui/keys"
	"github.com/abhisek/otiyot/internal/ui/theme"
)

// ChoiceMadeMsg is emitted when the learner picks a letter.
type ChoiceMadeMsg struct {
	LetterID string
}

// ChoiceGrid is a row of letter cards picked with the arrow keys or the
// number keys. Cards are laid out right to left, the Hebrew reading order.
type ChoiceGrid struct {
	Letters []catalog.Letter
	Cursor  int

	// Set while an answer is resolved.
	Chosen   string
	Answer   string
	Revealed bool
}

// NewChoiceGrid creates a grid for letters.
func NewChoiceGrid(letters []catalog.Letter) ChoiceGrid {
	return ChoiceGrid{Letters: letters}
}

// Reveal marks the chosen card red and the answer card green. An empty
// answer keeps the correct card hidden.
func (g ChoiceGrid) Reveal(chosen, answer string) ChoiceGrid {
	g.Chosen = chosen
	g.Answer = answer
	g.Revealed = true
	return g
}

// Reset clears a reveal so the same letters can be answered again.
func (g ChoiceGrid) Reset() ChoiceGrid {
	g.Chosen = ""
	g.Answer = ""
	g.Revealed = false
	return g
}

// Update handles navigation and selection. Input is ignored while revealed.
func (g ChoiceGrid) Update(msg tea.Msg) (ChoiceGrid, tea.Cmd) {
	if g.Revealed || len(g.Letters) == 0 {
		return g, nil
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return g, nil
	}

	switch {
	// Right to left: "left" moves towards later cards.
	case key.Matches(kmsg, keys.Left):
		if g.Cursor < len(g.Letters)-1 {
			g.Cursor++
		}
	case key.Matches(kmsg, keys.Right):
		if g.Cursor > 0 {
			g.Cursor--
		}
	case key.Matches(kmsg, keys.Enter):
		return g, choose(g.Letters[g.Cursor].ID)
	case key.Matches(kmsg, keys.Choose):
		if i := keys.ChoiceIndex(kmsg.String()); i >= 0 && i < len(g.Letters) {
			g.Cursor = i
			return g, choose(g.Letters[i].ID)
		}
	}
	return g, nil
}

func choose(id string) tea.Cmd {
	return func() tea.Msg { return ChoiceMadeMsg{LetterID: id} }
}

// View renders the cards.
func (g ChoiceGrid) View() string {
	cards := make([]string, len(g.Letters))
	for i, l := range g.Letters {
		cards[i] = g.card(i, l)
	}
	// Reverse so the first card sits on the right.
	for i, j := 0, len(cards)-1; i < j; i, j = i+1, j-1 {
		cards[i], cards[j] = cards[j], cards[i]
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (g ChoiceGrid) card(i int, l catalog.Letter) string {
	border := theme.Border
	fg := theme.Text
	switch {
	case g.Revealed && l.ID == g.Answer:
		border, fg = theme.Success, theme.Success
	case g.Revealed && l.ID == g.Chosen:
		border, fg = theme.Error, theme.Error
	case g.Revealed:
		fg = theme.TextDim
	case i == g.Cursor:
		border = theme.ArcadeYellow
	}

	glyph := lipgloss.NewStyle().Bold(true).Foreground(fg).Render(l.Glyph)
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(fmt.Sprintf("%d", i+1))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(9).
		Align(lipgloss.Center).
		Padding(1, 0).
		Margin(0, 1).
		Render(glyph + "\n\n" + label)
}
