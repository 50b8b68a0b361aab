package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/otiyot/internal/catalog"
	"github.com/abhisek/otiyot/internal/config"
	"github.com/abhisek/otiyot/internal/screen"
	"github.com/abhisek/otiyot/internal/screens/configure"
	"github.com/abhisek/otiyot/internal/screens/home"
	"github.com/abhisek/otiyot/internal/screens/play"
	"github.com/abhisek/otiyot/internal/screens/summary"
	"github.com/abhisek/otiyot/internal/screens/welcome"
	"github.com/abhisek/otiyot/internal/session"
	"github.com/abhisek/otiyot/internal/ui/components"
)

func newTestApp(t *testing.T, opts Options) AppModel {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	opts.Catalog = cat
	m, err := newAppModel(opts)
	require.NoError(t, err)
	t.Cleanup(m.sched.Close)
	return m
}

func send(m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(AppModel), cmd
}

func startLetterMatch(t *testing.T, m AppModel, n int) AppModel {
	t.Helper()
	m, _ = send(m, screen.StartLetterMatchMsg{Config: session.LetterMatchConfig{Difficulty: session.Easy, QuestionCount: n}})
	require.IsType(t, &play.PlayScreen{}, m.router.Active())
	return m
}

// answerAndContinue answers the current question correctly and skips the
// feedback delay.
func answerAndContinue(m AppModel) AppModel {
	q := m.ctrl.Active().State().Question
	m, _ = send(m, components.ChoiceMadeMsg{LetterID: q.Answer.ID})
	m, _ = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	return m
}

func TestStartsOnWelcome(t *testing.T) {
	m := newTestApp(t, Options{})
	assert.IsType(t, &welcome.WelcomeScreen{}, m.router.Active())
	assert.Nil(t, m.start)
}

func TestDirectRoutes(t *testing.T) {
	m := newTestApp(t, Options{Route: RouteWordCompletion})
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
	require.NotNil(t, m.start)
	assert.IsType(t, screen.StartWordCompletionMsg{}, m.start())

	cfg := session.LetterMatchConfig{Difficulty: session.Hard, QuestionCount: 5}
	m = newTestApp(t, Options{Route: RouteLetterMatch, LetterMatch: cfg})
	require.NotNil(t, m.start)
	assert.Equal(t, screen.StartLetterMatchMsg{Config: cfg}, m.start())
}

func TestConfigureFlow(t *testing.T) {
	m := newTestApp(t, Options{Route: RouteWordCompletion})

	m, _ = send(m, screen.ConfigureLetterMatchMsg{})
	assert.IsType(t, &configure.ConfigureScreen{}, m.router.Active())
	assert.Equal(t, session.StageConfiguring, m.ctrl.Stage())

	m = startLetterMatch(t, m, 5)
	assert.Equal(t, 2, m.router.Depth(), "configure is replaced by the game")
	assert.Equal(t, session.StagePlaying, m.ctrl.Stage())
}

func TestCompletionShowsResults(t *testing.T) {
	m := newTestApp(t, Options{Route: RouteWordCompletion})
	m = startLetterMatch(t, m, 2)

	m = answerAndContinue(m)
	m = answerAndContinue(m)

	assert.Equal(t, session.StageComplete, m.ctrl.Stage())
	require.IsType(t, &summary.SummaryScreen{}, m.router.Active())
	assert.Equal(t, 2, m.router.Depth())

	r, ok := m.ctrl.Result()
	require.True(t, ok)
	assert.Equal(t, 2, r.Score)
	assert.Contains(t, m.router.View(100, 40), "2 / 2")
}

func TestPlayAgainStartsFreshSession(t *testing.T) {
	m := newTestApp(t, Options{Route: RouteWordCompletion})
	m = startLetterMatch(t, m, 1)
	first := m.ctrl.Active().ID()
	m = answerAndContinue(m)
	require.IsType(t, &summary.SummaryScreen{}, m.router.Active())

	m, _ = send(m, screen.PlayAgainMsg{})
	require.IsType(t, &play.PlayScreen{}, m.router.Active())
	assert.NotEqual(t, first, m.ctrl.Active().ID())
	assert.Equal(t, 0, m.ctrl.Active().State().Score)
	assert.Equal(t, 2, m.router.Depth())
}

func TestNewGameReturnsHome(t *testing.T) {
	m := newTestApp(t, Options{Route: RouteWordCompletion})
	m = startLetterMatch(t, m, 1)
	m = answerAndContinue(m)

	m, _ = send(m, screen.NewGameMsg{})
	assert.IsType(t, &home.HomeScreen{}, m.router.Active())
	assert.Equal(t, session.StageSelection, m.ctrl.Stage())
	_, ok := m.ctrl.Result()
	assert.False(t, ok)
}

func TestEscAbandonsGame(t *testing.T) {
	m := newTestApp(t, Options{Route: RouteWordCompletion})
	m = startLetterMatch(t, m, 5)

	m, _ = send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 1, m.router.Depth())
	assert.Equal(t, session.StageSelection, m.ctrl.Stage())
	assert.Nil(t, m.ctrl.Active())

	// Esc on the home screen does nothing.
	m, cmd := send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, m.router.Depth())
}

func TestTimerFiredRunsCallback(t *testing.T) {
	m := newTestApp(t, Options{Route: RouteWordCompletion})

	ran := false
	_, cmd := send(m, timerFiredMsg{fn: func() { ran = true }})
	assert.True(t, ran)
	assert.NotNil(t, cmd, "the app keeps listening for timers")
}

func TestTimerCompletionShowsResults(t *testing.T) {
	m := newTestApp(t, Options{Route: RouteWordCompletion})
	m = startLetterMatch(t, m, 1)

	q := m.ctrl.Active().State().Question
	m, _ = send(m, components.ChoiceMadeMsg{LetterID: q.Answer.ID})

	// Stand in for the feedback timer firing on the loop.
	active := m.ctrl.Active()
	m, _ = send(m, timerFiredMsg{fn: active.Advance})
	assert.IsType(t, &summary.SummaryScreen{}, m.router.Active())
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestApp(t, Options{})
	_, cmd := send(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsHeaderAndStatus(t *testing.T) {
	m := newTestApp(t, Options{Route: RouteWordCompletion})
	m = startLetterMatch(t, m, 5)
	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	content := m.render()
	assert.True(t, strings.Contains(content, "Letter Match"))
	assert.True(t, strings.Contains(content, "1/5"))
	assert.True(t, strings.Contains(content, "Ctrl+C"))
}

func TestViewTooSmall(t *testing.T) {
	m := newTestApp(t, Options{})
	m, _ = send(m, tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small")
}

func TestOptionErrors(t *testing.T) {
	_, err := newAppModel(Options{})
	assert.Error(t, err, "catalog is required")

	cat, err := catalog.Default()
	require.NoError(t, err)
	cfg := config.Default()
	cfg.Game.IncorrectPolicy = "sometimes"
	_, err = newAppModel(Options{Catalog: cat, Config: cfg})
	assert.Error(t, err)
}
