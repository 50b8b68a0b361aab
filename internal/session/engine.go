package session

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/otiyot/internal/catalog"
)

// engine holds the state and timer discipline shared by both quiz modes.
type engine struct {
	id   string
	mode Mode
	opts settings
	log  *zap.Logger

	phase      Phase
	difficulty Difficulty
	total      int
	index      int
	score      int
	firstTry   int
	attempts   int // wrong attempts on the current question
	missed     MissedSet
	question   *Question
	selection  *catalog.Letter
	outcome    Outcome
	retry      bool // the current incorrect answer will be re-prompted

	timer Timer
	gen   uint64 // bumped on every cancel; stale callbacks compare against it

	result *Result
}

func newEngine(mode Mode, opts []Option) engine {
	id := uuid.NewString()
	s := newSettings(opts)
	return engine{
		id:   id,
		mode: mode,
		opts: s,
		log:  s.log.With(zap.String("session_id", id), zap.String("mode", string(mode))),
	}
}

func (e *engine) ID() string { return e.id }

func (e *engine) Mode() Mode { return e.mode }

func (e *engine) State() State {
	st := State{
		Mode:           e.mode,
		Difficulty:     e.difficulty,
		Phase:          e.phase,
		TotalQuestions: e.total,
		CurrentIndex:   e.index,
		Score:          e.score,
		FirstTry:       e.firstTry,
		Missed:         e.missed.Letters(),
		Outcome:        e.outcome,
		Retry:          e.retry,
	}
	if e.question != nil {
		st.Question = e.question.clone()
	}
	if e.selection != nil {
		sel := *e.selection
		st.Selection = &sel
	}
	return st
}

func (e *engine) Result() (Result, bool) {
	if e.result == nil {
		return Result{}, false
	}
	r := *e.result
	r.Missed = append([]catalog.Letter(nil), e.result.Missed...)
	return r, true
}

// CancelPendingAdvance stops the pending feedback timer, if any. A callback
// that already fired but has not run yet is discarded too.
func (e *engine) CancelPendingAdvance() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.gen++
}

// schedule replaces the pending timer with one running f after the delay.
func (e *engine) schedule(d time.Duration, f func()) {
	e.CancelPendingAdvance()
	gen := e.gen
	e.timer = e.opts.scheduler.AfterFunc(d, func() {
		if e.gen != gen {
			return
		}
		e.timer = nil
		f()
	})
}

// load presents q as the current question.
func (e *engine) load(q Question) {
	e.CancelPendingAdvance()
	e.question = &q
	e.selection = nil
	e.outcome = OutcomeNone
	e.retry = false
	e.attempts = 0
	e.phase = PhaseAwaitingAnswer
	e.log.Debug("question loaded",
		zap.Int("index", e.index),
		zap.String("answer", q.Answer.ID),
		zap.Int("choices", len(q.Choices)))
}

// accept returns the chosen letter when a selection may be recorded.
func (e *engine) accept(id string) (catalog.Letter, bool) {
	if e.phase != PhaseAwaitingAnswer || e.question == nil || e.selection != nil {
		return catalog.Letter{}, false
	}
	choice, ok := e.question.choice(id)
	if !ok {
		e.log.Debug("ignoring unknown choice", zap.String("choice", id))
		return catalog.Letter{}, false
	}
	e.selection = &choice
	e.phase = PhaseResolved
	return choice, true
}

// resolve scores the recorded selection and reports whether it was correct.
func (e *engine) resolve(choice catalog.Letter) bool {
	correct := choice.ID == e.question.Answer.ID
	if correct {
		e.outcome = OutcomeCorrect
		e.score++
		if e.attempts == 0 {
			e.firstTry++
		}
	} else {
		e.outcome = OutcomeIncorrect
		e.attempts++
		e.missed.Add(e.question.Answer)
	}
	e.log.Debug("answer submitted",
		zap.Int("index", e.index),
		zap.String("choice", choice.ID),
		zap.Bool("correct", correct),
		zap.Int("score", e.score))
	return correct
}

// reprompt clears the selection so the same question can be answered again.
func (e *engine) reprompt() {
	e.CancelPendingAdvance()
	e.selection = nil
	e.outcome = OutcomeNone
	e.retry = false
	e.phase = PhaseAwaitingAnswer
}

// complete ends the session and reports the result once.
func (e *engine) complete(endedEarly bool) {
	if e.phase == PhaseComplete {
		return
	}
	e.CancelPendingAdvance()
	e.phase = PhaseComplete
	e.question = nil
	e.selection = nil
	e.outcome = OutcomeNone
	e.retry = false
	e.result = &Result{
		SessionID:      e.id,
		Mode:           e.mode,
		Difficulty:     e.difficulty,
		Score:          e.score,
		FirstTry:       e.firstTry,
		TotalQuestions: e.total,
		Missed:         e.missed.Letters(),
		EndedEarly:     endedEarly,
	}
	e.log.Info("session complete",
		zap.Int("score", e.score),
		zap.Int("total", e.total),
		zap.Int("missed", e.missed.Len()),
		zap.Bool("ended_early", endedEarly))

	if e.opts.onComplete != nil {
		r, _ := e.Result()
		e.opts.onComplete(r)
	}
}
