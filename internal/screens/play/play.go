// Package play is the in-game screen shared by both quiz modes.
package play

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/otiyot/internal/audio"
	"github.com/abhisek/otiyot/internal/screen"
	"github.com/abhisek/otiyot/internal/session"
	"github.com/abhisek/otiyot/internal/ui/components"
	"github.com/abhisek/otiyot/internal/ui/keys"
	"github.com/abhisek/otiyot/internal/ui/layout"
)

// Announcer plays a clip with a spoken fallback. *audio.Announcer
// implements it.
type Announcer interface {
	Announce(ctx context.Context, ref, label string) audio.Result
}

// PlayScreen renders a quiz session and feeds it the learner's answers.
// The session itself decides scoring and pacing; the screen only mirrors
// its state and drives audio.
type PlayScreen struct {
	sess        session.QuizSession
	announcer   Announcer
	promptDelay time.Duration

	grid components.ChoiceGrid

	// Last state mirrored into the grid.
	index int
	phase session.Phase

	seq     int // bumped per presented question; older prompts are dropped
	playing int // clips in flight
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ screen.StatusProvider = (*PlayScreen)(nil)

// New creates a play screen for a configured session. announcer may be nil,
// in which case the game is silent.
func New(sess session.QuizSession, announcer Announcer, promptDelay time.Duration) *PlayScreen {
	return &PlayScreen{
		sess:        sess,
		announcer:   announcer,
		promptDelay: promptDelay,
	}
}

// Session returns the session shown by the screen.
func (p *PlayScreen) Session() session.QuizSession { return p.sess }

func (p *PlayScreen) Init() tea.Cmd {
	return p.sync()
}

func (p *PlayScreen) Title() string {
	return p.sess.Mode().Title()
}

func (p *PlayScreen) Status() string {
	st := p.sess.State()
	if st.TotalQuestions == 0 {
		return ""
	}
	index := min(st.CurrentIndex, st.TotalQuestions)
	return fmt.Sprintf("★ %d   %d/%d  ", st.Score, index, st.TotalQuestions)
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	if p.sess.State().Phase == session.PhaseResolved {
		return keys.Hints(keys.Continue, keys.Replay, keys.Back)
	}
	return keys.Hints(keys.Choose, keys.Left, keys.Enter, keys.Replay, keys.Back)
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case promptMsg:
		if msg.seq != p.seq || p.sess.State().Phase != session.PhaseAwaitingAnswer {
			return p, nil
		}
		return p, p.replay()

	case audioDoneMsg:
		if p.playing > 0 {
			p.playing--
		}
		return p, nil

	case components.ChoiceMadeMsg:
		p.sess.SubmitAnswer(msg.LetterID)
		return p, p.sync()

	case screen.TimerFiredMsg:
		return p, p.sync()

	case tea.KeyPressMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PlayScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Replay):
		return p, p.replay()
	case key.Matches(msg, keys.Continue) && p.sess.State().Phase == session.PhaseResolved:
		p.sess.Advance()
		return p, p.sync()
	}

	var cmd tea.Cmd
	p.grid, cmd = p.grid.Update(msg)
	return p, cmd
}

// sync mirrors the session state into the grid and returns the audio to
// play for the change: the target prompt for a new or re-asked question,
// the error cue for a wrong answer.
func (p *PlayScreen) sync() tea.Cmd {
	st := p.sess.State()
	prevIndex, prevPhase := p.index, p.phase
	p.index, p.phase = st.CurrentIndex, st.Phase

	switch st.Phase {
	case session.PhaseAwaitingAnswer:
		if st.CurrentIndex == prevIndex && prevPhase == session.PhaseAwaitingAnswer {
			return nil
		}
		if st.CurrentIndex != prevIndex {
			p.grid = components.NewChoiceGrid(st.Question.Choices)
		} else {
			p.grid = p.grid.Reset()
		}
		p.seq++
		return p.prompt()

	case session.PhaseResolved:
		if prevPhase == session.PhaseResolved && st.CurrentIndex == prevIndex {
			return nil
		}
		answer := st.Question.Answer.ID
		if st.Retry {
			answer = ""
		}
		p.grid = p.grid.Reveal(st.Selection.ID, answer)
		if st.Outcome == session.OutcomeIncorrect {
			return p.play(audio.ErrorCueRef, audio.ErrorCueSpeech, true)
		}
	}
	return nil
}

// prompt schedules the target clip for the current question.
func (p *PlayScreen) prompt() tea.Cmd {
	seq := p.seq
	return tea.Tick(p.promptDelay, func(time.Time) tea.Msg {
		return promptMsg{seq: seq}
	})
}

// replay plays the current target unless a clip is already playing.
func (p *PlayScreen) replay() tea.Cmd {
	q := p.sess.State().Question
	if q == nil {
		return nil
	}
	return p.play(q.AudioRef(), q.SpeechLabel(), false)
}

func (p *PlayScreen) play(ref, label string, force bool) tea.Cmd {
	if p.announcer == nil || (p.playing > 0 && !force) {
		return nil
	}
	p.playing++
	a := p.announcer
	return func() tea.Msg {
		return audioDoneMsg{result: a.Announce(context.Background(), ref, label)}
	}
}
