package timer

import "github.com/charmbracelet/lipgloss"

type style struct {
	Base  lipgloss.Style
	Title lipgloss.Style
	Main  lipgloss.Style
	Hint  lipgloss.Style
}

func newStyle(darkTheme bool) style {
	title := lipgloss.Color("#0E7C3A")
	hint := lipgloss.Color("240")

	if darkTheme {
		title = lipgloss.Color("#B0DB43")
		hint = lipgloss.Color("245")
	}

	return style{
		Base: lipgloss.NewStyle().Padding(1, 2),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(title),
		Main: lipgloss.NewStyle().Bold(true),
		Hint: lipgloss.NewStyle().Foreground(hint),
	}
}
