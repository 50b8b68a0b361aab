package session

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Timer is a pending callback that can be cancelled.
type Timer interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped the timer, false if it had already fired or been stopped.
	Stop() bool
}

// Scheduler runs callbacks after a delay. Sessions are not safe for
// concurrent use, so a Scheduler must run callbacks on the goroutine that
// drives the session.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// ManualScheduler is a virtual clock. Callbacks run synchronously inside
// Advance, in deadline order.
type ManualScheduler struct {
	now     time.Duration
	seq     int
	pending []*manualTimer
}

type manualTimer struct {
	s       *ManualScheduler
	at      time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

func (s *ManualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.seq++
	t := &manualTimer{s: s, at: s.now + d, seq: s.seq, f: f}
	s.pending = append(s.pending, t)
	return t
}

// Advance moves the clock forward by d, running every callback that comes
// due, including ones scheduled by callbacks during the advance.
func (s *ManualScheduler) Advance(d time.Duration) {
	target := s.now + d
	for {
		t := s.next(target)
		if t == nil {
			break
		}
		s.now = t.at
		t.fired = true
		t.f()
	}
	s.now = target
}

// Now returns the elapsed virtual time.
func (s *ManualScheduler) Now() time.Duration { return s.now }

// Pending returns the number of callbacks waiting to run.
func (s *ManualScheduler) Pending() int { return len(s.pending) }

func (s *ManualScheduler) next(target time.Duration) *manualTimer {
	if len(s.pending) == 0 {
		return nil
	}
	sort.Slice(s.pending, func(i, j int) bool {
		if s.pending[i].at != s.pending[j].at {
			return s.pending[i].at < s.pending[j].at
		}
		return s.pending[i].seq < s.pending[j].seq
	})
	t := s.pending[0]
	if t.at > target {
		return nil
	}
	s.pending = s.pending[1:]
	return t
}

func (t *manualTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	for i, p := range t.s.pending {
		if p == t {
			t.s.pending = append(t.s.pending[:i], t.s.pending[i+1:]...)
			break
		}
	}
	return true
}

// LoopScheduler hands fired callbacks to an event loop over a channel. The
// loop must receive from Fired and call each function it gets.
type LoopScheduler struct {
	fired chan func()
	done  chan struct{}
	once  sync.Once
}

type loopTimer struct {
	t       *time.Timer
	stopped atomic.Bool
}

func NewLoopScheduler() *LoopScheduler {
	return &LoopScheduler{
		fired: make(chan func(), 8),
		done:  make(chan struct{}),
	}
}

func (s *LoopScheduler) AfterFunc(d time.Duration, f func()) Timer {
	lt := &loopTimer{}
	lt.t = time.AfterFunc(d, func() {
		run := func() {
			if lt.stopped.Load() {
				return
			}
			f()
		}
		select {
		case s.fired <- run:
		case <-s.done:
		}
	})
	return lt
}

// Fired delivers callbacks whose delay has elapsed.
func (s *LoopScheduler) Fired() <-chan func() { return s.fired }

// Done is closed by Close.
func (s *LoopScheduler) Done() <-chan struct{} { return s.done }

// Close releases timer goroutines blocked on delivery.
func (s *LoopScheduler) Close() {
	s.once.Do(func() { close(s.done) })
}

// Stop also suppresses a callback that already fired but has not yet been
// run by the loop.
func (t *loopTimer) Stop() bool {
	t.stopped.Store(true)
	return t.t.Stop()
}
