package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/otiyot/internal/ui/theme"
)

// ContentWidth returns the inner width shared by every section of a cabinet
// so the boxes line up.
func ContentWidth(frameWidth int) int {
	// cabinet border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 60 {
		w = 60
	}
	if w < 20 {
		w = 20
	}
	return w
}

// Tone tints the cabinet border after an answer.
type Tone int

const (
	ToneIdle Tone = iota
	ToneCorrect
	ToneIncorrect
)

func (t Tone) color() color.Color {
	switch t {
	case ToneCorrect:
		return theme.Success
	case ToneIncorrect:
		return theme.Error
	default:
		return theme.Primary
	}
}

// CabinetFrame draws the double-border cabinet around a screen and centres
// content in it.
func CabinetFrame(content string, width, height int, tone Tone) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(tone.color()).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// ArcadeCard is a rounded card with a highlighted title line. An empty title
// renders the body alone.
func ArcadeCard(title, body string, cw int) string {
	content := body
	if title != "" {
		content = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render(title) + "\n" + body
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// ButtonState is how a menu button is drawn.
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonSelected
	ButtonDisabled
)

// ArcadeButton renders one menu button.
func ArcadeButton(label string, state ButtonState, width int) string {
	s := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	switch state {
	case ButtonSelected:
		return s.Bold(true).
			Foreground(theme.BgDark).
			Background(theme.ArcadeYellow).
			BorderForeground(theme.ArcadeYellow).
			Render("▸ " + label)
	case ButtonDisabled:
		return s.Foreground(theme.TextDim).
			BorderForeground(theme.Border).
			Faint(true).
			Render(label)
	default:
		return s.Foreground(theme.Text).
			BorderForeground(theme.Border).
			Render(label)
	}
}
