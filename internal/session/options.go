package session

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultFeedbackDelay = 1500 * time.Millisecond
	DefaultRetryDelay    = time.Second
)

type settings struct {
	rng           *rand.Rand
	scheduler     Scheduler
	feedbackDelay time.Duration
	retryDelay    time.Duration
	policy        IncorrectPolicy
	onComplete    func(Result)
	log           *zap.Logger
}

// Option configures a session or controller.
type Option func(*settings)

// WithRand sets the random source for shuffles and target picks.
func WithRand(r *rand.Rand) Option {
	return func(s *settings) { s.rng = r }
}

// WithSeed is WithRand with a PCG source seeded from seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithScheduler sets the scheduler for feedback timers. Without it timers
// use a ManualScheduler nobody advances, so only Advance moves the session on.
func WithScheduler(sch Scheduler) Option {
	return func(s *settings) { s.scheduler = sch }
}

// WithFeedbackDelay sets how long a resolved answer is shown before the
// session advances.
func WithFeedbackDelay(d time.Duration) Option {
	return func(s *settings) { s.feedbackDelay = d }
}

// WithRetryDelay sets how long a wrong letter match answer is shown before
// the question is presented again.
func WithRetryDelay(d time.Duration) Option {
	return func(s *settings) { s.retryDelay = d }
}

func WithIncorrectPolicy(p IncorrectPolicy) Option {
	return func(s *settings) { s.policy = p }
}

// WithOnComplete registers a callback run once, when the session completes.
func WithOnComplete(f func(Result)) Option {
	return func(s *settings) { s.onComplete = f }
}

func WithLogger(log *zap.Logger) Option {
	return func(s *settings) { s.log = log }
}

func newSettings(opts []Option) settings {
	s := settings{
		feedbackDelay: DefaultFeedbackDelay,
		retryDelay:    DefaultRetryDelay,
		policy:        Reprompt,
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if s.scheduler == nil {
		s.scheduler = NewManualScheduler()
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	return s
}
