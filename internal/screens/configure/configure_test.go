package configure

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/otiyot/internal/screen"
	"github.com/abhisek/otiyot/internal/session"
)

// press sends a key and feeds any resulting internal message back in.
func press(t *testing.T, c *ConfigureScreen, code rune) tea.Msg {
	t.Helper()
	_, cmd := c.Update(tea.KeyPressMsg{Code: code})
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg.(type) {
	case difficultyPickedMsg, backMsg:
		c.Update(msg)
		return nil
	}
	return msg
}

func TestDefaultsPreselected(t *testing.T) {
	c := New(session.LetterMatchConfig{Difficulty: session.Medium, QuestionCount: 15})

	assert.Equal(t, 1, c.diffMenu.Selected)
	assert.Equal(t, 2, c.countMenu.Selected)
}

func TestUnknownDefaultsFallBack(t *testing.T) {
	c := New(session.LetterMatchConfig{Difficulty: "extreme", QuestionCount: 7})

	assert.Equal(t, 0, c.diffMenu.Selected)
	assert.Equal(t, 0, c.countMenu.Selected)
	assert.Equal(t, session.Easy, c.chosen)
}

func TestPickDifficultyThenCount(t *testing.T) {
	c := New(session.LetterMatchConfig{Difficulty: session.Easy, QuestionCount: 5})

	assert.Contains(t, c.View(100, 30), "Easy (3 letters)")

	press(t, c, tea.KeyDown)
	press(t, c, tea.KeyDown)
	require.Nil(t, press(t, c, tea.KeyEnter))
	require.Equal(t, stepQuestions, c.step)
	assert.Equal(t, session.Hard, c.chosen)
	assert.True(t, strings.Contains(c.View(100, 30), "HOW MANY QUESTIONS?"))

	press(t, c, tea.KeyDown)
	msg := press(t, c, tea.KeyEnter)
	start, ok := msg.(screen.StartLetterMatchMsg)
	require.True(t, ok, "expected StartLetterMatchMsg, got %T", msg)
	assert.Equal(t, session.LetterMatchConfig{Difficulty: session.Hard, QuestionCount: 10}, start.Config)
}

func TestBackReturnsToDifficulty(t *testing.T) {
	c := New(session.LetterMatchConfig{Difficulty: session.Easy, QuestionCount: 5})

	press(t, c, tea.KeyEnter)
	require.Equal(t, stepQuestions, c.step)

	for range session.QuestionCounts {
		press(t, c, tea.KeyDown)
	}
	press(t, c, tea.KeyEnter)
	assert.Equal(t, stepDifficulty, c.step)
}

func TestRebindAfterChangingDifficulty(t *testing.T) {
	c := New(session.LetterMatchConfig{Difficulty: session.Easy, QuestionCount: 5})

	press(t, c, tea.KeyEnter) // easy
	for range session.QuestionCounts {
		press(t, c, tea.KeyDown)
	}
	press(t, c, tea.KeyEnter) // back

	press(t, c, tea.KeyDown)
	press(t, c, tea.KeyEnter) // medium
	for range session.QuestionCounts {
		press(t, c, tea.KeyUp)
	}
	msg := press(t, c, tea.KeyEnter)
	start, ok := msg.(screen.StartLetterMatchMsg)
	require.True(t, ok)
	assert.Equal(t, session.Medium, start.Config.Difficulty)
	assert.Equal(t, 5, start.Config.QuestionCount)
}
