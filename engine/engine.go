// Package engine runs avocado commands against the current session file
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ayoisaiah/avocado/internal/session"
	"github.com/ayoisaiah/avocado/store"
)

const msgNotRunning = "no session currently running"

// Result is the outcome of a command.
type Result struct {
	// Session is the most recent session after the command ran, or nil if
	// there is none
	Session *session.Session
	Command Command
	Output  string
	// Remaining is the time left in the running session
	Remaining time.Duration
	Success   bool
}

// Engine executes commands. It holds no session state of its own: every
// command reads the current session file afresh.
type Engine struct {
	store   *store.Store
	history *store.History
	now     func() time.Time
	logger  *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock replaces the wall clock used to timestamp sessions.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithLogger sets the logger that records session transitions.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New returns an engine operating on the given current session file and
// history log.
func New(s *store.Store, h *store.History, opts ...Option) *Engine {
	e := &Engine{
		store:   s,
		history: h,
		now:     time.Now,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Run executes cmd. Arguments are only used by Start, where they form the
// session description.
func (e *Engine) Run(cmd Command, args []string) (*Result, error) {
	switch cmd {
	case Start:
		return e.Start(strings.Join(args, " "))
	case Stop:
		return e.Stop()
	case Status:
		return e.Status()
	case History:
		return e.History()
	case Watch:
		return e.Watch()
	}

	return nil, ErrUnknownCommand.Fmt(cmd)
}

// Start begins a new session. An overrun session left running is
// auto-completed first; any other running session must be stopped before a
// new one can start.
func (e *Engine) Start(description string) (*Result, error) {
	description = strings.TrimSpace(description)

	if err := session.ValidateDescription(description); err != nil {
		return nil, err
	}

	if err := e.store.Ensure(); err != nil {
		return nil, err
	}

	now := e.clock()

	last, err := e.last()
	if err != nil {
		return nil, err
	}

	if last != nil && !last.Done() {
		if !last.Overrun(now) {
			r := last.Remaining(now)

			return nil, ErrSessionRunning.Fmt(fmt.Sprintf("%02d:%02d", r.M, r.S))
		}

		if _, err = e.autoComplete(last); err != nil {
			return nil, err
		}
	}

	sess := session.New(now, description)

	if err = e.store.Append(sess); err != nil {
		return nil, err
	}

	e.logger.Info(
		"session started",
		slog.Time("start", sess.Start),
		slog.String("description", sess.Description),
	)

	return &Result{
		Success:   true,
		Command:   Start,
		Output:    "started session " + describe(sess),
		Session:   sess,
		Remaining: sess.Left(now),
	}, nil
}

// Stop ends the running session now.
func (e *Engine) Stop() (*Result, error) {
	now := e.clock()

	last, err := e.last()
	if err != nil {
		return nil, err
	}

	if last == nil || last.Done() {
		return nil, ErrNoActiveSession
	}

	if err = last.End(now); err != nil {
		return nil, err
	}

	if err = e.finish(last); err != nil {
		return nil, err
	}

	e.logger.Info(
		"session stopped",
		slog.Time("start", last.Start),
		slog.Time("stop", last.Stop),
		slog.Duration("duration", last.Duration()),
	)

	return &Result{
		Success: true,
		Command: Stop,
		Output: fmt.Sprintf(
			"stopped session %s after %s",
			describe(last),
			last.Duration().Round(time.Second),
		),
		Session: last,
	}, nil
}

// Status reports on the most recent session. A running session that has
// gone past its length is auto-completed and persisted, so Status may
// write to the current session file.
func (e *Engine) Status() (*Result, error) {
	now := e.clock()

	last, err := e.last()
	if err != nil {
		return nil, err
	}

	if last != nil && last.Overrun(now) {
		last, err = e.autoComplete(last)
		if err != nil {
			return nil, err
		}
	}

	res := &Result{
		Success: true,
		Command: Status,
		Session: last,
	}

	if last == nil || last.Done() {
		res.Output = msgNotRunning
		return res, nil
	}

	res.Remaining = last.Left(now)
	res.Output = fmt.Sprintf(
		"session running %s - %s left",
		describe(last),
		pluralize(last.MinutesRemaining(now), "minute"),
	)

	return res, nil
}

// Watch checks that a session is running before it is followed live. It
// performs the same checks as Status.
func (e *Engine) Watch() (*Result, error) {
	res, err := e.Status()
	if err != nil {
		return nil, err
	}

	if res.Session == nil || res.Session.Done() {
		return nil, ErrNoActiveSession
	}

	res.Command = Watch

	return res, nil
}

// History returns the raw contents of the history log.
func (e *Engine) History() (*Result, error) {
	out, err := e.history.Read()
	if err != nil {
		return nil, err
	}

	return &Result{
		Success: true,
		Command: History,
		Output:  out,
	}, nil
}

// autoComplete ends an overrun session exactly one session length after it
// started, persists it, and returns the re-read record.
func (e *Engine) autoComplete(sess *session.Session) (*session.Session, error) {
	sess.AutoComplete()

	if err := e.finish(sess); err != nil {
		return nil, err
	}

	e.logger.Info(
		"overrun session auto-completed",
		slog.Time("start", sess.Start),
		slog.Time("stop", sess.Stop),
	)

	return e.last()
}

// finish logs a session that has just been stopped to the history, then
// persists it. The history goes first so a failed append leaves the session
// running and the next command retries it.
func (e *Engine) finish(sess *session.Session) error {
	if err := e.history.Record(sess); err != nil {
		return err
	}

	return e.store.ReplaceLast(sess)
}

// last returns the most recent session, or nil if there is none.
func (e *Engine) last() (*session.Session, error) {
	sess, err := e.store.Last()
	if errors.Is(err, store.ErrEmpty) {
		return nil, nil
	}

	return sess, err
}

func (e *Engine) clock() time.Time {
	return e.now().Truncate(time.Second)
}

func describe(sess *session.Session) string {
	if sess.Description == "" {
		return "(no description)"
	}

	return "(" + sess.Description + ")"
}

func pluralize(n int, unit string) string {
	if n == 1 || n == -1 {
		return fmt.Sprintf("%d %s", n, unit)
	}

	return fmt.Sprintf("%d %ss", n, unit)
}
