// Package timer follows a running session live in the terminal and alerts the
// user when it completes
package timer

import (
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ayoisaiah/avocado/engine"
	"github.com/ayoisaiah/avocado/internal/config"
	"github.com/ayoisaiah/avocado/internal/session"
)

const (
	padding  = 4
	maxWidth = 60
)

// Poller reports on the most recent session.
type Poller interface {
	Status() (*engine.Result, error)
}

type tickMsg time.Time

// Timer is the bubbletea model behind the watch command. It keeps no clock of
// its own: every tick asks the poller for the session's current state, so a
// session stopped from another terminal ends the watch too.
type Timer struct {
	err       error
	poller    Poller
	Opts      *config.Config
	Current   *session.Session
	logger    *slog.Logger
	style     style
	help      help.Model
	progress  progress.Model
	Remaining time.Duration
	completed bool
	quitting  bool
}

// New returns a timer for the running session in res.
func New(p Poller, cfg *config.Config, res *engine.Result) *Timer {
	return &Timer{
		poller:    p,
		Opts:      cfg,
		Current:   res.Session,
		Remaining: res.Remaining,
		logger:    slog.Default(),
		style:     newStyle(cfg.Display.DarkTheme),
		help:      help.New(),
		progress: progress.New(
			progress.WithDefaultGradient(),
			progress.WithoutPercentage(),
		),
	}
}

// Completed reports whether the session ran its full length while it was
// being watched.
func (t *Timer) Completed() bool {
	return t.completed
}

// Err returns the error that stopped the watch, if any.
func (t *Timer) Err() error {
	return t.err
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(at time.Time) tea.Msg {
		return tickMsg(at)
	})
}

func (t *Timer) Init() tea.Cmd {
	return tick()
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, defaultKeymap.quit) {
			t.quitting = true
			return t, tea.Quit
		}

	case tea.WindowSizeMsg:
		t.progress.Width = min(msg.Width-padding*2, maxWidth)
		return t, nil

	case tickMsg:
		return t.refresh()
	}

	return t, nil
}

// refresh polls the session and decides whether to keep watching.
func (t *Timer) refresh() (tea.Model, tea.Cmd) {
	res, err := t.poller.Status()
	if err != nil {
		t.err = err
		t.quitting = true

		return t, tea.Quit
	}

	sess := res.Session

	if sess == nil || !sess.Start.Equal(t.Current.Start) {
		t.quitting = true
		return t, tea.Quit
	}

	t.Current = sess
	t.Remaining = res.Remaining

	if sess.Done() {
		t.completed = sess.Stop.Equal(sess.EndTime())
		t.quitting = true

		return t, tea.Quit
	}

	return t, tick()
}

// Run shows the timer until the session ends or the user quits, then runs the
// completion actions if the session ran its full length.
func (t *Timer) Run() error {
	_, err := tea.NewProgram(t).Run()
	if err != nil {
		return err
	}

	if t.err != nil {
		return t.err
	}

	if t.completed {
		t.postSession()
	}

	return nil
}
