package logger

import (
	"github.com/charmbracelet/lipgloss"
	charm "github.com/charmbracelet/log"
)

func logStyles() *charm.Styles {
	styles := charm.DefaultStyles()

	level := func(label, color string) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(label).
			Bold(true).
			Foreground(lipgloss.Color(color))
	}

	styles.Levels[TraceLevel] = level("TRCE", "8")
	styles.Levels[DebugLevel] = level("DEBU", "12")
	styles.Levels[InfoLevel] = level("INFO", "10")
	styles.Levels[WarnLevel] = level("WARN", "11")
	styles.Levels[ErrorLevel] = level("ERRO", "9")
	styles.Key = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	return styles
}
