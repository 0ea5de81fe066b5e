package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/atomic-explorer/internal/atom"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/locale"
)

// renderBuilder renders the "build your own atom" screen: counters and
// presets, the classification card, and the live diagram.
func renderBuilder(m *Model, width, height int) string {
	p := m.printer
	a := m.built
	c := a.Classify(m.catalog)

	var left []string

	// ── Counters ──

	left = append(left, section(p.Sprintf("Atomic Controls"), 34))
	for _, f := range atom.Fields {
		label := fmt.Sprintf("%-12s", p.Sprintf(f.String()))
		value := counterValueStyle.Render(fmt.Sprintf("%d", a.Get(f)))
		row := fmt.Sprintf(" %s ‹%s ›", label, value)
		if f == m.field {
			left = append(left, counterSelectedStyle.Render(row))
		} else {
			left = append(left, counterStyle.Render(row))
		}
	}
	left = append(left, "")
	left = append(left, detailRow(p.Sprintf("Atomic mass"), fmt.Sprintf("%d u", a.Mass())))
	left = append(left, detailRow(p.Sprintf("Net charge"), atom.FormatCharge(a.Charge())))
	left = append(left, detailRow(p.Sprintf("Shells"), formatShells(a.Shells())))
	if over := atom.ShellOverflow(a.Electrons); over > 0 {
		left = append(left, warningStyle.Render(p.Sprintf("%d electrons beyond shell capacity are not shown", over)))
	}
	left = append(left, "")

	// ── Presets ──

	left = append(left, section(p.Sprintf("Quick presets"), 34))
	var presets []string
	for i, pr := range atom.Presets {
		presets = append(presets, hintKeyStyle.Render(fmt.Sprintf("%d", i+1))+" "+hintDescStyle.Render(p.Sprintf(pr.Name)))
	}
	left = append(left, strings.Join(presets, "  "))
	left = append(left, "")

	// ── Classification ──

	left = append(left, renderClassification(m, c, 34)...)

	controls := lipgloss.NewStyle().Width(38).Render(strings.Join(left, "\n"))

	diagramCols := max(width-42, 20)
	diagramRows := max(height-3, 9)
	diagram := lipgloss.JoinVertical(lipgloss.Left,
		panelTitleStyle.Render(m.atomTitle()),
		renderDiagram(m.layouter, m.nucleus, a.Electrons, diagramCols, diagramRows))

	var body string
	if width >= 70 {
		body = lipgloss.JoinHorizontal(lipgloss.Top, controls, diagram)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, controls, diagram)
	}
	return panelStyle.Width(width).Render(body)
}

// renderClassification renders the badge, the element it resolved to and
// the description.
func renderClassification(m *Model, c atom.Classification, width int) []string {
	badge := badgeStyle.Background(classificationColors[c.Color()]).Render(locale.KindLabel(c.Kind(), m.lang))

	var lines []string
	if ref, ok := c.Reference(); ok {
		name := locale.ElementName(ref, m.lang)
		lines = append(lines, badge+"  "+detailValueStyle.Render(fmt.Sprintf("%s (%s)", name, ref.Symbol)))
	} else {
		lines = append(lines, badge+"  "+detailValueStyle.Render(m.printer.Sprintf("Unknown Element")))
	}
	lines = append(lines, detailProseStyle.Width(width).Render(locale.Describe(c, m.lang)))
	return lines
}
