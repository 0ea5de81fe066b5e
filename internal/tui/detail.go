package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/atomic-explorer/internal/atom"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/locale"
)

// renderDetail renders the element detail screen: properties on the
// left, the atom diagram on the right. Narrow terminals stack the two.
func renderDetail(m *Model, width, height int) string {
	el := m.detail
	p := m.printer

	var lines []string

	// ── Title ──

	symbol := detailSymbolStyle.Background(categoryColor(el.Category)).Render(el.Symbol)
	lines = append(lines, symbol+"  "+panelTitleStyle.Render(locale.ElementName(el, m.lang)))
	lines = append(lines, dimStyle.Render(p.Sprintf("Atomic number %d", el.AtomicNumber)))
	lines = append(lines, "")

	colWidth := min(width, 48)
	if width >= 90 {
		colWidth = width / 2
	}

	// ── Basic properties ──

	lines = append(lines, section(p.Sprintf("Basic properties"), colWidth-2))
	lines = append(lines, detailRow(p.Sprintf("Atomic mass"), fmt.Sprintf("%.3f u", el.AtomicMass)))
	if el.Group > 0 {
		lines = append(lines, detailRow(p.Sprintf("Group"), fmt.Sprintf("%d", el.Group)))
	}
	if el.Period > 0 {
		lines = append(lines, detailRow(p.Sprintf("Period"), fmt.Sprintf("%d", el.Period)))
	}
	lines = append(lines, detailRow(p.Sprintf("Category"), locale.CategoryLabel(el.Category, m.lang)))
	lines = append(lines, "")

	// ── Atomic structure ──

	lines = append(lines, section(p.Sprintf("Atomic structure"), colWidth-2))
	lines = append(lines, renderParticleBars(m, el.Protons, el.Electrons, el.Neutrons, colWidth-2)...)
	lines = append(lines, detailRow(p.Sprintf("Shells"), formatShells(atom.ComputeShells(el.Electrons))))
	lines = append(lines, "")

	// ── Chemical properties ──

	if el.Electronegativity != nil || el.IonizationEnergy != nil {
		lines = append(lines, section(p.Sprintf("Chemical properties"), colWidth-2))
		lines = append(lines, detailRow(p.Sprintf("Electronegativity"), formatFloat(el.Electronegativity, "%.2f")))
		lines = append(lines, detailRow(p.Sprintf("Ionization energy"), formatFloat(el.IonizationEnergy, "%.1f kJ/mol")))
		lines = append(lines, "")
	}

	// ── Description ──

	if el.Description != "" {
		lines = append(lines, section(p.Sprintf("Description"), colWidth-2))
		lines = append(lines, detailProseStyle.Width(colWidth-2).Render(el.Description))
	}

	info := strings.Join(lines, "\n")

	// ── Diagram ──

	nucleus := m.layouter.Nucleus(el.Protons, el.Neutrons)
	diagramTitle := section(p.Sprintf("Atom visualization"), colWidth-2)

	var body string
	if width >= 90 {
		diagram := renderDiagram(m.layouter, nucleus, el.Electrons, width-colWidth-4, max(height-4, 9))
		right := lipgloss.JoinVertical(lipgloss.Left, diagramTitle, diagram)
		body = lipgloss.JoinHorizontal(lipgloss.Top,
			lipgloss.NewStyle().Width(colWidth).Render(info), right)
	} else {
		diagram := renderDiagram(m.layouter, nucleus, el.Electrons, max(colWidth, 20), 11)
		body = lipgloss.JoinVertical(lipgloss.Left, info, "", diagramTitle, diagram)
	}

	return panelStyle.Width(width).Render(body)
}

// renderParticleBars draws one proportional bar per particle type, scaled
// to the largest count.
func renderParticleBars(m *Model, protons, electrons, neutrons, width int) []string {
	largest := max(protons, electrons, neutrons, 1)
	barWidth := clamp(width-28, 4, 40)

	rows := []struct {
		label string
		count int
		style lipgloss.Style
	}{
		{m.printer.Sprintf("Protons"), protons, protonStyle},
		{m.printer.Sprintf("Electrons"), electrons, electronStyle},
		{m.printer.Sprintf("Neutrons"), neutrons, neutronStyle},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, renderUsageBar(r.label, r.count, largest, barWidth, r.style))
	}
	return lines
}

func renderUsageBar(label string, count, total, barWidth int, style lipgloss.Style) string {
	filled := barWidth * count / total
	if filled < 1 && count > 0 {
		filled = 1
	}
	empty := barWidth - filled

	bar := style.Render(strings.Repeat("█", filled)) +
		orbitStyle.Render(strings.Repeat("░", empty))

	return detailLabelStyle.Render(fmt.Sprintf("%-20s", label)) + bar + " " + detailValueStyle.Render(fmt.Sprintf("%d", count))
}
