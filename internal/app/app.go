package app

import (
	"fmt"
	"os"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/otiyot/internal/catalog"
	"github.com/abhisek/otiyot/internal/config"
	"github.com/abhisek/otiyot/internal/router"
	"github.com/abhisek/otiyot/internal/screen"
	"github.com/abhisek/otiyot/internal/screens/configure"
	"github.com/abhisek/otiyot/internal/screens/home"
	"github.com/abhisek/otiyot/internal/screens/play"
	"github.com/abhisek/otiyot/internal/screens/summary"
	"github.com/abhisek/otiyot/internal/screens/welcome"
	"github.com/abhisek/otiyot/internal/session"
	"github.com/abhisek/otiyot/internal/ui/keys"
	"github.com/abhisek/otiyot/internal/ui/layout"
)

// Route selects the first screen shown.
type Route int

const (
	RouteWelcome Route = iota
	RouteLetterMatch
	RouteWordCompletion
)

// Options wires the app's collaborators.
type Options struct {
	Config    *config.Config
	Catalog   *catalog.Catalog
	Announcer play.Announcer // nil plays no audio
	Logger    *zap.Logger

	Route Route
	// LetterMatch is used with RouteLetterMatch.
	LetterMatch session.LetterMatchConfig

	// Scheduler drives session timers; a LoopScheduler is created when nil.
	Scheduler *session.LoopScheduler
}

// timerFiredMsg carries a session timer callback onto the event loop.
type timerFiredMsg struct {
	fn func()
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	ctrl      *session.Controller
	sched     *session.LoopScheduler
	announcer play.Announcer
	cfg       *config.Config
	log       *zap.Logger
	start     tea.Cmd
	width     int
	height    int
}

// newAppModel creates the root model with the first screen of opts.Route.
func newAppModel(opts Options) (AppModel, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Catalog == nil {
		return AppModel{}, fmt.Errorf("app: catalog is required")
	}
	policy, err := session.ParseIncorrectPolicy(cfg.Game.IncorrectPolicy)
	if err != nil {
		return AppModel{}, fmt.Errorf("app: %w", err)
	}
	sched := opts.Scheduler
	if sched == nil {
		sched = session.NewLoopScheduler()
	}

	ctrl := session.NewController(opts.Catalog,
		session.WithScheduler(sched),
		session.WithFeedbackDelay(cfg.Game.FeedbackDelay),
		session.WithRetryDelay(cfg.Game.RetryDelay),
		session.WithIncorrectPolicy(policy),
		session.WithLogger(log),
	)

	homeScreen := home.New(len(opts.Catalog.Letters()), len(opts.Catalog.Words()))

	m := AppModel{
		ctrl:      ctrl,
		sched:     sched,
		announcer: opts.Announcer,
		cfg:       cfg,
		log:       log,
	}

	switch opts.Route {
	case RouteLetterMatch:
		m.router = router.New(homeScreen)
		lm := opts.LetterMatch
		m.start = func() tea.Msg { return screen.StartLetterMatchMsg{Config: lm} }
	case RouteWordCompletion:
		m.router = router.New(homeScreen)
		m.start = func() tea.Msg { return screen.StartWordCompletionMsg{} }
	default:
		m.router = router.New(welcome.New(func() screen.Screen { return homeScreen }))
	}
	return m, nil
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.router.Active().Init(),
		waitForTimer(m.sched),
		m.start,
	)
}

// waitForTimer receives the next fired session timer.
func waitForTimer(s *session.LoopScheduler) tea.Cmd {
	return func() tea.Msg {
		select {
		case fn := <-s.Fired():
			return timerFiredMsg{fn: fn}
		case <-s.Done():
			return nil
		}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Back):
			if m.router.Depth() > 1 {
				m.ctrl.NewGame()
				return m, m.router.PopToRoot()
			}
			return m, nil
		}

	case timerFiredMsg:
		msg.fn()
		cmd := m.router.Update(screen.TimerFiredMsg{})
		return m, tea.Batch(cmd, m.checkComplete(), waitForTimer(m.sched))

	case screen.ConfigureLetterMatchMsg:
		m.ctrl.BeginConfigure()
		return m, m.router.Push(configure.New(m.letterMatchDefaults()))

	case screen.StartLetterMatchMsg:
		return m, m.startSession(func() error { return m.ctrl.StartLetterMatch(msg.Config) })

	case screen.StartWordCompletionMsg:
		return m, m.startSession(m.ctrl.StartWordCompletion)

	case screen.PlayAgainMsg:
		return m, m.startSession(m.ctrl.PlayAgain)

	case screen.NewGameMsg:
		m.ctrl.NewGame()
		return m, m.router.PopToRoot()
	}

	cmd := m.router.Update(msg)
	return m, tea.Batch(cmd, m.checkComplete())
}

func (m AppModel) letterMatchDefaults() session.LetterMatchConfig {
	return session.LetterMatchConfig{
		Difficulty:    session.Difficulty(m.cfg.Game.DefaultDifficulty),
		QuestionCount: m.cfg.Game.DefaultQuestions,
	}
}

// startSession runs start and shows the new session above the home screen.
func (m AppModel) startSession(start func() error) tea.Cmd {
	if err := start(); err != nil {
		m.log.Error("could not start session", zap.Error(err))
		return nil
	}
	m.router.PopToRoot()
	cmd := m.router.Push(play.New(m.ctrl.Active(), m.announcer, m.cfg.Game.PromptDelay))
	return tea.Batch(cmd, m.checkComplete())
}

// checkComplete swaps the play screen for the results once the controller
// has a result for the session it shows.
func (m AppModel) checkComplete() tea.Cmd {
	if m.ctrl.Stage() != session.StageComplete {
		return nil
	}
	p, ok := m.router.Active().(*play.PlayScreen)
	if !ok || p.Session() != m.ctrl.Active() {
		return nil
	}
	r, ok := m.ctrl.Result()
	if !ok {
		return nil
	}
	return m.router.Replace(summary.New(r))
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	v.SetContent(m.render())
	return v
}

// render draws the header, the active screen and the footer.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	var title, status string
	if active != nil {
		title = active.Title()
	}
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(title, status, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = keys.Hints(keys.Back)
	}
	footerHints = append(footerHints, keys.Hints(keys.Quit)...)
	footer := layout.RenderFooter(footerHints, m.width)

	content := m.router.View(m.width, layout.ContentHeight(m.height))
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m, err := newAppModel(opts)
	if err != nil {
		return err
	}
	defer m.sched.Close()

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
