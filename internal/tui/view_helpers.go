package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const uiDivider = "──────────────────────────────────────────────────────"

var indentStyle = lipgloss.NewStyle().PaddingLeft(2)

// renderPage lays out a screen: title, divider, body, divider, key help.
func renderPage(title, body, hotKeys string) string {
	if strings.TrimSpace(body) == "" {
		body = "-"
	}

	help := "ctrl+c: quit"
	if hotKeys != "" {
		help = hotKeys + " · " + help
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		indentStyle.Render(helpStyle.Render(uiDivider)),
		"",
		indentStyle.Render(body),
		"",
		indentStyle.Render(helpStyle.Render(uiDivider)),
		indentStyle.Render(helpStyle.Render(help)),
	)
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText cuts v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
