package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/avocado/internal/session"
	"github.com/ayoisaiah/avocado/internal/timeutil"
)

// formatTimeRemaining returns the remaining time formatted as "MM:SS".
func (t *Timer) formatTimeRemaining() string {
	m, s := timeutil.SecsToMinsAndSecs(t.Remaining.Seconds())

	return fmt.Sprintf("%02d:%02d", m, s)
}

func (t *Timer) timerView() string {
	var s strings.Builder

	title := "[avocado]"
	if t.Current.Description != "" {
		title += " " + t.Current.Description
	}

	s.WriteString(t.style.Title.Render(title))
	s.WriteString("\n")

	until := t.Current.EndTime().
		Format(timeutil.ClockFormat(t.Opts.Settings.TwentyFourHour))

	s.WriteString(t.style.Hint.Render("until " + until))

	percent := t.Remaining.Seconds() / session.Length.Seconds()

	s.WriteString("\n\n")
	s.WriteString(t.style.Main.Render(t.formatTimeRemaining()))
	s.WriteString("\n\n")
	s.WriteString(t.progress.ViewAs(1 - percent))
	s.WriteString("\n\n")
	s.WriteString(t.help.ShortHelpView([]key.Binding{defaultKeymap.quit}))

	return s.String()
}

func (t *Timer) View() string {
	if t.quitting {
		return ""
	}

	return t.style.Base.Render(t.timerView())
}
