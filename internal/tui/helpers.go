package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ────────────────────────────────────────────────────────────
// String helpers
// ────────────────────────────────────────────────────────────

// truncate cuts a string to maxLen and appends "..." if truncated.
func truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// clamp restricts val to [lo, hi].
func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// detailRow renders "Label      value" with a fixed label column.
func detailRow(label, value string) string {
	return detailLabelStyle.Render(fmt.Sprintf("%-20s", label)) + detailValueStyle.Render(value)
}

// section renders a dim heading followed by a rule of the given width.
func section(title string, width int) string {
	rule := strings.Repeat("─", max(width-lipgloss.Width(title)-1, 0))
	return detailSectionStyle.Render(title) + " " + orbitStyle.Render(rule)
}

// formatShells joins shell occupancies as "2 · 8 · 1".
func formatShells(shells []int) string {
	if len(shells) == 0 {
		return "-"
	}
	parts := make([]string, len(shells))
	for i, n := range shells {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, " · ")
}

// formatFloat renders an optional measurement, or "-" when absent.
func formatFloat(v *float64, format string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf(format, *v)
}
