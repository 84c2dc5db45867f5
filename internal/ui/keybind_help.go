package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp produces the transient help view shown after SPC.
// Displays SPC-prefixed bindings in a compact bar format, filtered by mode.
// When keyHandler is in leader mode with a buffer (e.g. "SPC s"), shows
// next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler, mode AppMode) string {
	if keyHandler == nil {
		return ""
	}
	currentSeq := ""
	if len(keyHandler.Buffer) > 0 {
		currentSeq = strings.Join(keyHandler.Buffer, " ")
	}
	hints := keyHandler.Registry.LeaderHints(currentSeq, mode)
	if len(hints) == 0 {
		return ""
	}

	// Sort keys for stable display
	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(
			key.WithKeys(k),
			key.WithHelp(k, hints[k]),
		))
	}
	bindings = append(bindings, key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	))

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))

	helpContent := helpModel.ShortHelpView(bindings)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)

	prefix := "SPC"
	if currentSeq != "" {
		prefix = currentSeq
	}
	content := Styles.Hint.Render(prefix) + " " + helpContent
	return boxStyle.Render(content)
}
