package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/otiyot/internal/session"
	"github.com/abhisek/otiyot/internal/ui/components"
	"github.com/abhisek/otiyot/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	st := p.sess.State()
	if st.Question == nil {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Counting up your score..."))
	}

	cw := components.ContentWidth(width)
	center := lipgloss.NewStyle().Width(cw).Align(lipgloss.Center)

	var sections []string
	sections = append(sections, center.Render(renderPrompt(st)))
	sections = append(sections, center.Render(p.grid.View()))
	sections = append(sections, center.Render(renderFeedback(st)))

	bar := components.NewProgressBar("", progress(st), false, cw-4)
	sections = append(sections, center.Render(bar.View()))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height, tone(st))
}

// tone tints the cabinet while an answer is showing.
func tone(st session.State) components.Tone {
	if st.Phase != session.PhaseResolved {
		return components.ToneIdle
	}
	if st.Outcome == session.OutcomeCorrect {
		return components.ToneCorrect
	}
	return components.ToneIncorrect
}

// renderPrompt shows the instruction, and for word completion the word
// with its blank (filled in once answered correctly).
func renderPrompt(st session.State) string {
	q := st.Question
	heading := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)

	if q.Word == nil {
		return heading.Render("Which letter do you hear?") + "\n" +
			theme.Hint.Render("press space to hear it again")
	}

	word := q.Word.DisplayText
	if st.Outcome == session.OutcomeCorrect {
		word = q.Word.Filled(q.Answer.Glyph)
	}
	wordBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Secondary).
		Padding(0, 3).
		Render(theme.Glyph.Render(word))

	lines := []string{heading.Render("Which letter is missing?"), wordBox}
	if q.Word.Meaning != "" {
		lines = append(lines, theme.Hint.Render(q.Word.Meaning))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func renderFeedback(st session.State) string {
	switch st.Outcome {
	case session.OutcomeCorrect:
		return theme.Correct.Render("Correct!")
	case session.OutcomeIncorrect:
		if st.Retry {
			return theme.Incorrect.Render("Not quite, try again!")
		}
		a := st.Question.Answer
		return theme.Incorrect.Render(fmt.Sprintf("Not quite, it was %s (%s)", a.Glyph, a.Name))
	}
	// Keep the layout steady while waiting for an answer.
	return " "
}

// progress is the share of questions already resolved.
func progress(st session.State) float64 {
	if st.TotalQuestions == 0 {
		return 0
	}
	done := st.CurrentIndex - 1
	if st.Phase == session.PhaseResolved && st.Outcome == session.OutcomeCorrect {
		done++
	}
	return float64(done) / float64(st.TotalQuestions)
}
