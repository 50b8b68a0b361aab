package screen

import "github.com/abhisek/otiyot/internal/session"

// Screens never touch the session controller directly. They emit these
// messages and the app model applies them.

// ConfigureLetterMatchMsg opens the letter match settings screen.
type ConfigureLetterMatchMsg struct{}

// StartLetterMatchMsg starts a letter match with Config.
type StartLetterMatchMsg struct {
	Config session.LetterMatchConfig
}

// StartWordCompletionMsg starts a word completion session.
type StartWordCompletionMsg struct{}

// PlayAgainMsg restarts the mode that just completed.
type PlayAgainMsg struct{}

// NewGameMsg abandons the current game and returns to game selection.
type NewGameMsg struct{}

// TimerFiredMsg is broadcast after a session feedback timer ran, so the
// active screen can refresh from the session state.
type TimerFiredMsg struct{}
