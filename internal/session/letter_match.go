package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/otiyot/internal/catalog"
	"github.com/abhisek/otiyot/internal/validate"
)

// LetterMatchConfig configures a letter match session.
type LetterMatchConfig struct {
	Difficulty    Difficulty `json:"difficulty" validate:"oneof=easy medium hard"`
	QuestionCount int        `json:"questionCount" validate:"gt=0"`
}

// LetterMatch asks the learner to pick a spoken letter out of a small choice
// set. Choice sets are drawn from a shuffled pool without repetition.
type LetterMatch struct {
	engine

	letters    []catalog.Letter
	cfg        LetterMatchConfig
	choiceSize int
	pool       []catalog.Letter
}

var _ QuizSession = (*LetterMatch)(nil)

// NewLetterMatch returns an unconfigured session over letters.
func NewLetterMatch(letters []catalog.Letter, opts ...Option) *LetterMatch {
	return &LetterMatch{
		engine:  newEngine(ModeLetterMatch, opts),
		letters: append([]catalog.Letter(nil), letters...),
	}
}

// Configure validates cfg, shuffles the letter pool and loads the first
// question. An invalid cfg leaves the session uninitialized.
func (m *LetterMatch) Configure(cfg LetterMatchConfig) error {
	if m.phase != PhaseUninitialized {
		return ErrAlreadyConfigured
	}
	if err := validate.Shared().Struct(cfg); err != nil {
		return fmt.Errorf("configure letter match: %w", err)
	}

	m.cfg = cfg
	m.difficulty = cfg.Difficulty
	m.choiceSize = cfg.Difficulty.ChoiceSetSize()
	m.total = cfg.QuestionCount
	m.index = 1

	m.pool = append([]catalog.Letter(nil), m.letters...)
	m.opts.rng.Shuffle(len(m.pool), func(i, j int) {
		m.pool[i], m.pool[j] = m.pool[j], m.pool[i]
	})

	m.log.Info("letter match configured",
		zap.String("difficulty", string(cfg.Difficulty)),
		zap.Int("questions", cfg.QuestionCount),
		zap.Int("pool", len(m.pool)))

	m.nextQuestion()
	return nil
}

// Config returns the configuration the session was started with.
func (m *LetterMatch) Config() LetterMatchConfig { return m.cfg }

func (m *LetterMatch) nextQuestion() {
	if len(m.pool) < m.choiceSize {
		// Out of letters: finish with the questions actually asked.
		m.total = m.index - 1
		m.complete(true)
		return
	}

	choices := append([]catalog.Letter(nil), m.pool[:m.choiceSize]...)
	m.pool = m.pool[m.choiceSize:]
	target := choices[m.opts.rng.IntN(len(choices))]

	m.load(Question{Choices: choices, Answer: target})
}

func (m *LetterMatch) SubmitAnswer(letterID string) {
	choice, ok := m.accept(letterID)
	if !ok {
		return
	}

	if m.resolve(choice) || m.opts.policy == AdvanceOnIncorrect {
		m.schedule(m.opts.feedbackDelay, m.next)
		return
	}
	m.retry = true
	m.schedule(m.opts.retryDelay, m.reprompt)
}

func (m *LetterMatch) Advance() {
	if m.phase != PhaseResolved {
		return
	}
	if m.outcome == OutcomeIncorrect && m.opts.policy == Reprompt {
		m.reprompt()
		return
	}
	m.next()
}

func (m *LetterMatch) next() {
	m.CancelPendingAdvance()
	m.index++
	if m.index > m.total {
		m.complete(false)
		return
	}
	m.nextQuestion()
}
