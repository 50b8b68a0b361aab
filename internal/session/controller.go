package session

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/otiyot/internal/catalog"
)

// Stage is the screen-level phase of the game flow.
type Stage int

const (
	StageSelection Stage = iota
	StageConfiguring
	StagePlaying
	StageComplete
)

func (s Stage) String() string {
	switch s {
	case StageSelection:
		return "selection"
	case StageConfiguring:
		return "configuring"
	case StagePlaying:
		return "playing"
	case StageComplete:
		return "complete"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Controller owns the active session and moves to the complete stage when it
// finishes. Every start builds a fresh session, so no score or missed letters
// carry over.
type Controller struct {
	cat    *catalog.Catalog
	opts   []Option
	notify func(Result)
	log    *zap.Logger

	stage  Stage
	active QuizSession
	result *Result

	// restart rebuilds the last started session for PlayAgain.
	restart func() error
}

// NewController returns a controller in the selection stage. opts are
// applied to every session it starts; a WithOnComplete option is called
// after the controller has stored the result.
func NewController(cat *catalog.Catalog, opts ...Option) *Controller {
	s := newSettings(opts)
	c := &Controller{
		cat:    cat,
		notify: s.onComplete,
		log:    s.log,
	}
	// Share one random source and scheduler across sessions.
	c.opts = append(append([]Option(nil), opts...),
		WithRand(s.rng),
		WithScheduler(s.scheduler),
		WithOnComplete(c.OnSessionComplete),
	)
	return c
}

func (c *Controller) Stage() Stage { return c.stage }

// Active returns the running session, or nil.
func (c *Controller) Active() QuizSession { return c.active }

// Result returns the result of the last completed session.
func (c *Controller) Result() (Result, bool) {
	if c.result == nil {
		return Result{}, false
	}
	return *c.result, true
}

// BeginConfigure moves from selection to the letter match settings step.
func (c *Controller) BeginConfigure() {
	if c.stage == StageSelection {
		c.stage = StageConfiguring
	}
}

// StartLetterMatch starts a new letter match session.
func (c *Controller) StartLetterMatch(cfg LetterMatchConfig) error {
	start := func() error {
		s := NewLetterMatch(c.cat.Letters(), c.opts...)
		return c.start(s, func() error { return s.Configure(cfg) })
	}
	if err := start(); err != nil {
		return err
	}
	c.restart = start
	return nil
}

// StartWordCompletion starts a new word completion session.
func (c *Controller) StartWordCompletion() error {
	start := func() error {
		s, err := NewWordCompletion(c.cat.Words(), c.cat.Alphabet(), c.opts...)
		if err != nil {
			return fmt.Errorf("start word completion: %w", err)
		}
		return c.start(s, s.Configure)
	}
	if err := start(); err != nil {
		return err
	}
	c.restart = start
	return nil
}

// start makes s active before configuring it, so a session that completes
// during Configure is still routed to the complete stage.
func (c *Controller) start(s QuizSession, configure func() error) error {
	prev, prevStage := c.active, c.stage
	c.active = s
	c.stage = StagePlaying

	if err := configure(); err != nil {
		c.active, c.stage = prev, prevStage
		return err
	}
	if prev != nil {
		prev.CancelPendingAdvance()
	}
	c.log.Info("session started", zap.String("session_id", s.ID()), zap.String("mode", string(s.Mode())))
	return nil
}

// OnSessionComplete records r and moves to the complete stage. Results from
// a session that is no longer active are ignored.
func (c *Controller) OnSessionComplete(r Result) {
	if c.active == nil || c.active.ID() != r.SessionID {
		c.log.Debug("ignoring stale session result", zap.String("session_id", r.SessionID))
		return
	}
	c.result = &r
	c.stage = StageComplete
	if c.notify != nil {
		c.notify(r)
	}
}

// PlayAgain starts a new session with the mode and settings of the one that
// just completed.
func (c *Controller) PlayAgain() error {
	if c.stage != StageComplete || c.restart == nil {
		return ErrNoCompletedSession
	}
	return c.restart()
}

// NewGame drops the session and its result and returns to selection.
func (c *Controller) NewGame() {
	if c.active != nil {
		c.active.CancelPendingAdvance()
	}
	c.active = nil
	c.result = nil
	c.restart = nil
	c.stage = StageSelection
}
