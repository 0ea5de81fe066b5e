package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderHeader produces the top bar:
//
//	ATOMIC  |  Periodic Table  Element Builder  Saved Atoms  |  nb
func renderHeader(m *Model) string {
	brand := headerBrandStyle.Render("ATOMIC")
	sep := headerSepStyle.Render(" │ ")

	tabs := []struct {
		label  string
		active bool
	}{
		{m.printer.Sprintf("Periodic Table"), m.screen == ScreenTable || m.screen == ScreenDetail},
		{m.printer.Sprintf("Element Builder"), m.screen == ScreenBuilder},
		{m.printer.Sprintf("Saved Atoms"), m.screen == ScreenSaved},
	}

	var rendered []string
	for _, t := range tabs {
		if t.active {
			rendered = append(rendered, headerTabActiveStyle.Render(t.label))
		} else {
			rendered = append(rendered, headerMetaStyle.Render(t.label))
		}
	}

	parts := []string{brand, sep, strings.Join(rendered, "  "), sep, headerMetaStyle.Render(m.lang.String())}
	return headerBarStyle.Width(m.width).Render(strings.Join(parts, ""))
}

// renderFooter produces the bottom status bar with keyboard hints. While
// text entry is active the bar shows the input instead.
func renderFooter(m *Model) string {
	var left, right string

	switch {
	case m.searchOn:
		left = inputBarStyle.Render(m.search.View())
		right = renderHints([]hint{{"enter", "jump"}, {"esc", "cancel"}})
	case m.editOn:
		left = inputBarStyle.Render(m.printer.Sprintf(m.field.String()) + " " + m.editor.View())
		right = renderHints([]hint{{"enter", "apply"}, {"esc", "cancel"}})
	default:
		if m.err != nil && m.statusMsg != "" {
			left = statusErrorStyle.Render(m.statusMsg)
		} else if m.statusMsg != "" {
			left = statusStyle.Render(m.statusMsg)
		}
		right = m.help.View(m.keys.helpFor(m.screen))
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		Background(colorBgSurface).
		Width(m.width).
		Render(bar)
}

type hint struct {
	key  string
	desc string
}

func renderHints(hints []hint) string {
	var parts []string
	for _, h := range hints {
		parts = append(parts,
			hintKeyStyle.Render(h.key)+" "+hintDescStyle.Render(h.desc))
	}
	return strings.Join(parts, hintDescStyle.Render("  "))
}
