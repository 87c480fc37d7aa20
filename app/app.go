// Package app defines the avocado command-line interface
package app

import (
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/avocado/engine"
	"github.com/ayoisaiah/avocado/internal/config"
)

var usage = map[engine.Command]string{
	engine.Start:   "Start a new session with an optional description",
	engine.Stop:    "Stop the running session",
	engine.Status:  "Print the status of the current session (default)",
	engine.History: "Print the log of completed sessions",
	engine.Watch:   "Follow the running session until it completes",
}

func commands() []*cli.Command {
	cmds := make([]*cli.Command, 0, len(usage))

	for _, c := range engine.Commands() {
		cmd := &cli.Command{
			Name:    string(c),
			Aliases: engine.Aliases(c),
			Usage:   usage[c],
			Action:  commandAction(c),
		}

		if c == engine.Start {
			cmd.ArgsUsage = "[description]"
		}

		cmds = append(cmds, cmd)
	}

	return cmds
}

// Get retrieves the avocado app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "avocado",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		Avocado is a minimal time-boxing tool for the command-line. Each session
		lasts 25 minutes and is recorded as a single line in a plain text file.`,
		UsageText:            "[COMMAND] [DESCRIPTION]",
		Version:              config.Version,
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Commands:             commands(),
		Action:               defaultAction,
		Before:               beforeAction,
		After:                afterAction,
	}
}
