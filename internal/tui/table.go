package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/atomic-explorer/internal/element"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/locale"
)

// cellWidth is the rendered width of one periodic table cell.
const cellWidth = 4

// renderTable draws the 18-column grid, the two f-block rows and the
// category legend. Cells outside an active search are dimmed.
func renderTable(m *Model, width, height int) string {
	var rows []string

	for r := range m.grid.Rows() {
		if r == element.LanthanideRow {
			rows = append(rows, "")
		}
		var cells []string
		for c := range element.GridColumns {
			cells = append(cells, renderCell(m, r, c))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	grid := strings.Join(rows, "\n")
	info := renderCursorInfo(m)
	legend := renderLegend(m)

	body := lipgloss.JoinVertical(lipgloss.Left, grid, "", info, "", legend)
	return panelStyle.Width(width).Render(
		panelTitleStyle.Render(m.printer.Sprintf("Periodic Table")) + "\n" + body)
}

func renderCell(m *Model, row, col int) string {
	z := m.grid.At(row, col)
	if z == 0 {
		return cellEmptyStyle.Render("")
	}
	el, _ := m.catalog.Lookup(z)

	selected := m.cursor.Row == row && m.cursor.Col == col
	switch {
	case selected:
		return cellSelectedStyle.Render(el.Symbol)
	case m.matches != nil && !m.matches[z]:
		return cellDimStyle.Render(el.Symbol)
	default:
		return cellStyle.Background(categoryColor(el.Category)).Render(el.Symbol)
	}
}

// renderCursorInfo summarizes the element under the cursor.
func renderCursorInfo(m *Model) string {
	el, ok := m.selectedElement()
	if !ok {
		return ""
	}
	name := locale.ElementName(el, m.lang)
	return fmt.Sprintf("%s  %s  %s  %s",
		detailSymbolStyle.Background(categoryColor(el.Category)).Render(el.Symbol),
		detailValueStyle.Render(fmt.Sprintf("%d %s", el.AtomicNumber, name)),
		dimStyle.Render(fmt.Sprintf("%.3f u", el.AtomicMass)),
		dimStyle.Render(locale.CategoryLabel(el.Category, m.lang)))
}

// renderLegend lists every category with its swatch, three per line.
func renderLegend(m *Model) string {
	var lines []string
	lines = append(lines, detailSectionStyle.Render(m.printer.Sprintf("Element categories")))

	var line []string
	for i, c := range element.Categories {
		swatch := lipgloss.NewStyle().Background(categoryColor(c)).Render("  ")
		label := legendSwatchStyle.Width(26).Render(" " + locale.CategoryLabel(c, m.lang))
		line = append(line, swatch+label)
		if (i+1)%3 == 0 || i == len(element.Categories)-1 {
			lines = append(lines, strings.Join(line, ""))
			line = nil
		}
	}
	return strings.Join(lines, "\n")
}
