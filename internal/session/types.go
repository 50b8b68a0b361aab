package session

import (
	"errors"
	"fmt"
)

// Mode identifies a quiz game.
type Mode string

const (
	ModeLetterMatch    Mode = "letters"
	ModeWordCompletion Mode = "words"
)

// Title returns the mode's display name.
func (m Mode) Title() string {
	switch m {
	case ModeLetterMatch:
		return "Letter Match"
	case ModeWordCompletion:
		return "Missing Letter"
	default:
		return string(m)
	}
}

// Difficulty sets the size of a letter match choice set.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the difficulties in increasing order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ChoiceSetSize returns the number of letters offered per question, or 0
// for an unknown difficulty.
func (d Difficulty) ChoiceSetSize() int {
	switch d {
	case Easy:
		return 3
	case Medium:
		return 4
	case Hard:
		return 5
	default:
		return 0
	}
}

// Label returns a menu label such as "Easy (3 letters)".
func (d Difficulty) Label() string {
	switch d {
	case Easy:
		return "Easy (3 letters)"
	case Medium:
		return "Medium (4 letters)"
	case Hard:
		return "Hard (5 letters)"
	default:
		return string(d)
	}
}

// ParseDifficulty converts a config or flag value into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(s)
	if d.ChoiceSetSize() == 0 {
		return "", fmt.Errorf("unknown difficulty %q (want easy, medium or hard)", s)
	}
	return d, nil
}

// QuestionCounts are the question count presets offered by the UI.
var QuestionCounts = []int{5, 10, 15, 20}

// IncorrectPolicy decides what a letter match does after a wrong answer.
type IncorrectPolicy string

const (
	// Reprompt re-presents the same question until it is answered correctly.
	Reprompt IncorrectPolicy = "reprompt"
	// AdvanceOnIncorrect moves to the next question after the feedback delay.
	AdvanceOnIncorrect IncorrectPolicy = "advance"
)

// ParseIncorrectPolicy converts a config value into an IncorrectPolicy.
func ParseIncorrectPolicy(s string) (IncorrectPolicy, error) {
	switch p := IncorrectPolicy(s); p {
	case Reprompt, AdvanceOnIncorrect:
		return p, nil
	default:
		return "", fmt.Errorf("unknown incorrect policy %q (want reprompt or advance)", s)
	}
}

// Phase is the lifecycle phase of a quiz session.
type Phase int

const (
	PhaseUninitialized  Phase = iota // Not configured yet
	PhaseAwaitingAnswer              // A question is shown, no selection yet
	PhaseResolved                    // An answer was submitted; feedback is showing
	PhaseComplete                    // Terminal; only the result can be read
)

func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseAwaitingAnswer:
		return "awaiting-answer"
	case PhaseResolved:
		return "resolved"
	case PhaseComplete:
		return "complete"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Outcome is the correctness of the pending selection.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
)

var (
	// ErrAlreadyConfigured is returned when Configure is called twice.
	ErrAlreadyConfigured = errors.New("session already configured")
	// ErrAlphabetTooSmall is returned when there are not enough letters to
	// draw three distractors.
	ErrAlphabetTooSmall = errors.New("alphabet needs at least 4 letters")
	// ErrNoCompletedSession is returned by PlayAgain when nothing has completed.
	ErrNoCompletedSession = errors.New("no completed session to replay")
)
