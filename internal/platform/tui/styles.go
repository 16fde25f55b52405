package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	maskStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86"))

	gallowsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	faintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	goodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	badStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	warnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2)
)

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// centerBlock centers every line of a multi-line block.
func centerBlock(block string, width int) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = centerText(line, width)
	}
	return strings.Join(lines, "\n")
}

// spacedMask renders the reveal mask with breathing room between
// characters so underscores are distinguishable.
func spacedMask(mask string) string {
	runes := []rune(mask)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
