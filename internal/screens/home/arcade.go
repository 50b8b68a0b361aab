package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/otiyot/internal/ui/components"
	"github.com/abhisek/otiyot/internal/ui/theme"
)

const arcadeTitleFull = `╔═╗╔╦╗╦╦ ╦╔═╗╔╦╗
║ ║ ║ ║╚╦╝║ ║ ║
╚═╝ ╩ ╩ ╩ ╚═╝ ╩ `

const arcadeTitleCompact = "O · T · I · Y · O · T"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	title := arcadeTitleFull
	if compact {
		title = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(title) + "\n" + lipgloss.NewStyle().Foreground(theme.TextDim).Render("א ב ג ד ה ו ז ח ט י"))
}

// renderStatsBar shows the catalog sizes.
func renderStatsBar(letters, words int, cw int, compact bool) string {
	letterStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	wordStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	gameStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			letterStyle.Render(fmt.Sprintf("א%d", letters)),
			wordStyle.Render(fmt.Sprintf("◆%d", words)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			letterStyle.Render(fmt.Sprintf("א %d LETTERS", letters)),
			wordStyle.Render(fmt.Sprintf("◆ %d WORDS", words)),
			gameStyle.Render("★ 2 GAMES"),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders the menu as bordered buttons centered in cw.
func renderArcadeMenu(menu components.Menu, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(menu.View(buttonWidth))
}

// renderArcadeMenuCompact renders menu items as simple text lines (no borders)
// for very small terminals where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	var lines []string
	for i, label := range items {
		var line string
		if i == selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}
