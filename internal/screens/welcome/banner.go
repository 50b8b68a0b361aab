package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/otiyot/internal/ui/theme"
)

const bannerArt = `
  ██████╗ ████████╗██╗██╗   ██╗ ██████╗ ████████╗
 ██╔═══██╗╚══██╔══╝██║╚██╗ ██╔╝██╔═══██╗╚══██╔══╝
 ██║   ██║   ██║   ██║ ╚████╔╝ ██║   ██║   ██║
 ██║   ██║   ██║   ██║  ╚██╔╝  ██║   ██║   ██║
 ╚██████╔╝   ██║   ██║   ██║   ╚██████╔╝   ██║
  ╚═════╝    ╚═╝   ╚═╝   ╚═╝    ╚═════╝    ╚═╝`

const bannerCompact = "O T I Y O T"

// RenderBanner returns the OTIYOT banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 52 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 52 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
