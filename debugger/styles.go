package debugger

import "github.com/charmbracelet/lipgloss"

type styles struct {
	video      lipgloss.Style
	mem        lipgloss.Style
	err        lipgloss.Style
	breakpoint lipgloss.Style
	debugger   lipgloss.Style
}

// ANSI Color reference
// 0	Black
// 1	Red
// 2	Green
// 3	Yellow
// 4	Blue
// 5	Magenta
// 6	Cyan
// 7	White

func newStyles() styles {
	return styles{
		video:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		mem:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(5)),
		err:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(1)),
		breakpoint: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(4)),
		debugger:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(7)).Background(lipgloss.ANSIColor(2)),
	}
}
