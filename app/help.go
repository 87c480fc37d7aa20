package app

import (
	"fmt"

	"github.com/pterm/pterm"
)

func helpText() string {
	description := fmt.Sprintf(
		"%s\n\t\t{{.Usage}}\n\n",
		pterm.Yellow("DESCRIPTION"),
	)

	usage := fmt.Sprintf(
		"%s\n\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}\n\n",
		pterm.Yellow("USAGE"),
	)

	author := fmt.Sprintf(
		"{{if len .Authors}}%s\n\t\t{{range .Authors}}{{ . }}{{end}}{{end}}\n\n",
		pterm.Yellow("AUTHOR"),
	)

	version := fmt.Sprintf(
		"{{if .Version}}%s\n\t\t{{.Version}}{{end}}\n\n",
		pterm.Yellow("VERSION"),
	)

	commands := fmt.Sprintf(
		"%s\n{{range .Commands}}{{if not .HideHelp}}   %s{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}\n\n",
		pterm.Yellow("COMMANDS"),
		pterm.Green("{{join .Names `, `}}"),
	)

	files := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("FILES"),
		filesHelp(),
	)

	env := fmt.Sprintf(
		"%s\n\t\t%s\n\n",
		pterm.Yellow("ENVIRONMENTAL VARIABLES"),
		envHelp(),
	)

	website := fmt.Sprintf(
		"%s\n\t\thttps://github.com/ayoisaiah/avocado\n",
		pterm.Yellow("WEBSITE"),
	)

	return description + usage + author + version + commands + files + env + website
}

func filesHelp() string {
	return `
~/.avocado: one line per session, "<start>[;<stop>][;<description>]".

~/.avocado_history: one line per completed session, "<start> <stop>".`
}

func envHelp() string {
	return `
AVOCADO_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

AVOCADO_ENV: keep a separate config file and separate session files (e.g. AVOCADO_ENV=dev).

AVOCADO_FILES_CURRENT, AVOCADO_FILES_HISTORY: override the location of the session files.`
}
