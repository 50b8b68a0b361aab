package session

import "github.com/abhisek/otiyot/internal/catalog"

// Question is one round of a quiz. For a letter match Answer is the target
// letter; for word completion it is the word's missing letter and Word is set.
type Question struct {
	Choices []catalog.Letter
	Answer  catalog.Letter
	Word    *catalog.Word
}

// AudioRef returns the clip announced for the question.
func (q Question) AudioRef() string {
	if q.Word != nil {
		return q.Word.AudioRef
	}
	return q.Answer.AudioRef
}

// SpeechLabel returns the text spoken when the clip cannot be played.
func (q Question) SpeechLabel() string {
	if q.Word != nil {
		return q.Word.FullText
	}
	return q.Answer.Name
}

// HasChoice reports whether a letter with id is among the choices.
func (q Question) HasChoice(id string) bool {
	_, ok := q.choice(id)
	return ok
}

func (q Question) choice(id string) (catalog.Letter, bool) {
	for _, c := range q.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return catalog.Letter{}, false
}

func (q Question) clone() *Question {
	out := q
	out.Choices = append([]catalog.Letter(nil), q.Choices...)
	return &out
}

// State is a snapshot of a session. Mutating it does not affect the session.
type State struct {
	Mode       Mode
	Difficulty Difficulty // empty for word completion
	Phase      Phase

	TotalQuestions int
	CurrentIndex   int // 1-based; TotalQuestions+1 once complete
	Score          int
	FirstTry       int

	Missed    []catalog.Letter
	Question  *Question       // nil before configure and after completion
	Selection *catalog.Letter // non-nil only while a question is resolved
	Outcome   Outcome

	// Retry is set while an incorrect answer is showing and the same
	// question will be asked again.
	Retry bool
}

// Result is the final tally of a completed session.
type Result struct {
	SessionID      string
	Mode           Mode
	Difficulty     Difficulty
	Score          int
	FirstTry       int
	TotalQuestions int
	Missed         []catalog.Letter
	EndedEarly     bool // the letter pool ran out before TotalQuestions was reached
}

// QuizSession is the behaviour shared by both quiz engines.
type QuizSession interface {
	ID() string
	Mode() Mode
	State() State
	// SubmitAnswer records a selection by letter ID. It is a no-op when no
	// question is awaiting an answer or the ID is not one of the choices.
	SubmitAnswer(letterID string)
	// Advance moves past a resolved question without waiting for the
	// feedback timer. It is a no-op in any other phase.
	Advance()
	CancelPendingAdvance()
	Result() (Result, bool)
}

// MissedSet is an insertion-ordered set of letters keyed by ID.
type MissedSet struct {
	letters []catalog.Letter
	ids     map[string]bool
}

// Add inserts l unless a letter with the same ID is already present.
// It reports whether l was added.
func (m *MissedSet) Add(l catalog.Letter) bool {
	if m.ids == nil {
		m.ids = make(map[string]bool)
	}
	if m.ids[l.ID] {
		return false
	}
	m.ids[l.ID] = true
	m.letters = append(m.letters, l)
	return true
}

func (m *MissedSet) Contains(id string) bool { return m.ids[id] }

func (m *MissedSet) Len() int { return len(m.letters) }

// Letters returns a copy of the set in insertion order.
func (m *MissedSet) Letters() []catalog.Letter {
	return append([]catalog.Letter(nil), m.letters...)
}
