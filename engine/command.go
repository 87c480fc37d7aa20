package engine

import (
	"strings"
)

// Command identifies an avocado command.
type Command string

const (
	Start   Command = "start"
	Stop    Command = "stop"
	Status  Command = "status"
	History Command = "history"
	Watch   Command = "watch"
)

// mapping lists the names each command answers to. The first name is the
// canonical one.
var mapping = []struct {
	cmd   Command
	names []string
}{
	{Start, []string{"start"}},
	{Stop, []string{"stop"}},
	{Status, []string{"status", "st"}},
	{History, []string{"history", "h"}},
	{Watch, []string{"watch", "w"}},
}

// Resolve maps a command token to its command, ignoring case and
// surrounding whitespace. An empty token resolves to Status.
func Resolve(token string) (Command, error) {
	token = strings.ToLower(strings.TrimSpace(token))

	if token == "" {
		return Status, nil
	}

	for _, m := range mapping {
		for _, name := range m.names {
			if name == token {
				return m.cmd, nil
			}
		}
	}

	return "", ErrUnknownCommand.Fmt(token)
}

// Aliases returns the alternative names of cmd.
func Aliases(cmd Command) []string {
	for _, m := range mapping {
		if m.cmd == cmd {
			return m.names[1:]
		}
	}

	return nil
}

// Commands returns every command in display order.
func Commands() []Command {
	cmds := make([]Command, len(mapping))

	for i, m := range mapping {
		cmds[i] = m.cmd
	}

	return cmds
}
