// Package keys defines the key bindings shared by every screen.
package keys

import (
	"charm.land/bubbles/v2/key"

	"github.com/abhisek/otiyot/internal/ui/layout"
)

var (
	Up = key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑↓", "Navigate"),
	)
	Down = key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↑↓", "Navigate"),
	)
	Left = key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←→", "Move"),
	)
	Right = key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("←→", "Move"),
	)
	Enter = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Select"),
	)
	Continue = key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "Continue"),
	)
	Replay = key.NewBinding(
		key.WithKeys("space", " "),
		key.WithHelp("Space", "Hear again"),
	)
	Choose = key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5"),
		key.WithHelp("1-5", "Pick"),
	)
	Back = key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "Back"),
	)
	Quit = key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("Ctrl+C", "Quit"),
	)
)

// ChoiceIndex returns the 0-based choice for a digit key, or -1.
func ChoiceIndex(k string) int {
	if len(k) == 1 && k[0] >= '1' && k[0] <= '9' {
		return int(k[0] - '1')
	}
	return -1
}

// Hints converts bindings into footer hints, skipping repeated help keys.
func Hints(bindings ...key.Binding) []layout.KeyHint {
	hints := make([]layout.KeyHint, 0, len(bindings))
	seen := make(map[string]bool)
	for _, b := range bindings {
		h := b.Help()
		if seen[h.Key] {
			continue
		}
		seen[h.Key] = true
		hints = append(hints, layout.KeyHint{Key: h.Key, Description: h.Desc})
	}
	return hints
}
