package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/otiyot/internal/catalog"
	"github.com/abhisek/otiyot/internal/screen"
	"github.com/abhisek/otiyot/internal/session"
	"github.com/abhisek/otiyot/internal/ui/components"
	"github.com/abhisek/otiyot/internal/ui/keys"
	"github.com/abhisek/otiyot/internal/ui/layout"
	"github.com/abhisek/otiyot/internal/ui/theme"
)

// Menu labels.
const (
	LabelPlayAgain = "PLAY AGAIN"
	LabelNewGame   = "NEW GAME"
)

// SummaryScreen displays the result of a finished game.
type SummaryScreen struct {
	summary session.Summary
	menu    components.Menu
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen for r.
func New(r session.Result) *SummaryScreen {
	items := []components.MenuItem{
		{Label: LabelPlayAgain, Action: func() tea.Cmd {
			return func() tea.Msg { return screen.PlayAgainMsg{} }
		}},
		{Label: LabelNewGame, Action: func() tea.Cmd {
			return func() tea.Msg { return screen.NewGameMsg{} }
		}},
	}
	return &SummaryScreen{
		summary: session.Summarize(r),
		menu:    components.NewMenu(items),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return s.summary.Mode.Title() + " Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return keys.Hints(keys.Up, keys.Enter, keys.Back)
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var sections []string

	headline := theme.Title.Render(sum.Headline)
	if sum.Grade == session.GradeHigh {
		headline = lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render("★ " + sum.Headline + " ★")
	}
	sections = append(sections, center.Render(headline))

	score := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Render(fmt.Sprintf("%d / %d", sum.Score, sum.TotalQuestions))
	lines := []string{score}
	if sum.Mode == session.ModeLetterMatch {
		lines = append(lines, theme.Hint.Render(fmt.Sprintf("%d right on the first try", sum.FirstTry)))
	}
	if sum.EndedEarly {
		lines = append(lines, theme.Hint.Render("We ran out of new letters!"))
	}
	sections = append(sections, center.Render(strings.Join(lines, "\n")))

	fill := gradeFill(sum.Grade)
	bar := components.NewProgressBar("", float64(sum.Percent)/100, true, cw-4)
	bar.Fill = &fill
	sections = append(sections, center.Render(bar.View()))

	if len(sum.Missed) > 0 {
		sections = append(sections, components.ArcadeCard("Letters to practise", renderMissed(sum.Missed), cw))
	}

	sections = append(sections, center.Render(s.menu.View(22)))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height, components.ToneIdle)
}

// gradeFill colours the results bar by grade.
func gradeFill(g session.Grade) lipgloss.Style {
	switch g {
	case session.GradeHigh:
		return lipgloss.NewStyle().Background(theme.Success)
	case session.GradeMid:
		return lipgloss.NewStyle().Background(theme.Warning)
	default:
		return lipgloss.NewStyle().Background(theme.Error)
	}
}

// renderMissed lists the letters to practise with their pronunciation.
func renderMissed(missed []catalog.Letter) string {
	var b strings.Builder
	for i, l := range missed {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(theme.Glyph.Render(l.Glyph))
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(l.Name))
		if l.Pronunciation != "" {
			b.WriteString(theme.Hint.Render(" (" + l.Pronunciation + ")"))
		}
	}
	return b.String()
}
