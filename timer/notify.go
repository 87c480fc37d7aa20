package timer

import (
	"log/slog"
	"os/exec"

	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"
	"github.com/pterm/pterm"
)

var (
	notifier = func(title, message, icon string) error {
		return beeep.Notify(title, message, icon)
	}

	player = playSound
)

// postSession alerts the user that the session is over and runs the
// configured session command. Failures are reported but never fatal.
func (t *Timer) postSession() {
	if t.Opts.Notifications.Enabled {
		t.notify()
	}

	if t.Opts.Notifications.Sound != "" {
		if err := player(t.Opts.Notifications.Sound); err != nil {
			t.logger.Error("completion sound failed", slog.Any("error", err))
			pterm.Warning.Println(err)
		}
	}

	if err := runSessionCmd(t.Opts.Settings.SessionCmd); err != nil {
		t.logger.Error("session command failed", slog.Any("error", err))
		pterm.Warning.Println(err)
	}
}

func (t *Timer) notify() {
	title := "Session complete"
	msg := "Time for a break!"

	if t.Current.Description != "" {
		msg = t.Current.Description + " is done. " + msg
	}

	if err := notifier(title, msg, ""); err != nil {
		t.logger.Warn("desktop notification failed", slog.Any("error", err))
	}
}

// runSessionCmd executes the specified command.
func runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return errSessionCmd.Fmt(sessionCmd).Wrap(err)
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	cmd := exec.Command(cmdSlice[0], cmdSlice[1:]...)

	if err = cmd.Run(); err != nil {
		return errSessionCmd.Fmt(sessionCmd).Wrap(err)
	}

	return nil
}
