package tui

import (
	"fmt"
	"strings"

	"github.com/Mr-Dark-debug/atomic-explorer/internal/locale"
	"github.com/Mr-Dark-debug/atomic-explorer/pkg/timeutil"
)

// renderSaved renders the saved atoms selector.
func renderSaved(m *Model, width, height int) string {
	title := panelTitleStyle.Render(m.printer.Sprintf("Saved Atoms"))

	if len(m.saved) == 0 {
		return panelStyle.Width(width).Render(title + "\n" +
			emptyStateStyle.Render(m.printer.Sprintf("No saved atoms yet. Press s in the builder to save one.")))
	}

	var lines []string
	lines = append(lines, title)
	lines = append(lines, "")

	maxVisible := max(height-4, 1)
	start := 0
	if m.selectedSaved >= maxVisible {
		start = m.selectedSaved - maxVisible + 1
	}
	end := min(start+maxVisible, len(m.saved))

	for i := start; i < end; i++ {
		s := m.saved[i]

		marker := " "
		if s.ID == m.lastSave {
			marker = "*"
		}
		label := truncate(s.Label, 24)
		counts := fmt.Sprintf("p%-3d e%-3d n%-3d", s.Atom.Protons, s.Atom.Electrons, s.Atom.Neutrons)
		kind := locale.KindLabel(s.Kind, m.lang)
		age := timeutil.RelativeTime(s.CreatedAt)

		line := fmt.Sprintf("%s %-24s  %s  %-22s %s", marker, label, counts, kind, age)
		line = truncate(line, max(width-4, 10))

		if i == m.selectedSaved {
			lines = append(lines, itemSelectedStyle.Width(width-2).Render(line))
		} else {
			lines = append(lines, itemStyle.Render(line))
		}
	}

	if len(m.saved) > maxVisible {
		lines = append(lines, dimStyle.Render(fmt.Sprintf("  %d/%d", m.selectedSaved+1, len(m.saved))))
	}

	return panelStyle.Width(width).Render(strings.Join(lines, "\n"))
}
