package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/atomic-explorer/internal/atom"
	"github.com/Mr-Dark-debug/atomic-explorer/internal/element"
)

// ────────────────────────────────────────────────────────────
// Color Palette
// ────────────────────────────────────────────────────────────
//
// All colors are defined here. No ad-hoc color literals anywhere.

var (
	// Base
	colorBg        = lipgloss.Color("#0d1117")
	colorBgPanel   = lipgloss.Color("#161b22")
	colorBgSurface = lipgloss.Color("#1c2128")

	// Text
	colorText      = lipgloss.Color("#e6edf3")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#484f58")

	// Accents
	colorBlue   = lipgloss.Color("#58a6ff")
	colorGreen  = lipgloss.Color("#3fb950")
	colorRed    = lipgloss.Color("#f85149")
	colorYellow = lipgloss.Color("#d29922")
	colorPurple = lipgloss.Color("#bc8cff")
	colorOrange = lipgloss.Color("#f0883e")

	// Structural
	colorDivider   = lipgloss.Color("#30363d")
	colorHighlight = lipgloss.Color("#1f6feb")
)

// Element categories, one hue per legend entry.
var categoryColors = map[element.Category]lipgloss.Color{
	element.CategoryAlkaliMetal:     lipgloss.Color("#da3633"),
	element.CategoryAlkalineEarth:   lipgloss.Color("#db6d28"),
	element.CategoryTransitionMetal: lipgloss.Color("#9e6a03"),
	element.CategoryPostTransition:  lipgloss.Color("#2ea043"),
	element.CategoryMetalloid:       lipgloss.Color("#1b7c83"),
	element.CategoryNonmetal:        lipgloss.Color("#1f6feb"),
	element.CategoryHalogen:         lipgloss.Color("#8957e5"),
	element.CategoryNobleGas:        lipgloss.Color("#bf4b8a"),
	element.CategoryLanthanide:      lipgloss.Color("#6e7681"),
	element.CategoryActinide:        lipgloss.Color("#57606a"),
	element.CategoryUnknown:         lipgloss.Color("#30363d"),
}

// Classification badges.
var classificationColors = map[atom.Color]lipgloss.Color{
	atom.ColorGreen:  colorGreen,
	atom.ColorBlue:   colorBlue,
	atom.ColorPurple: colorPurple,
	atom.ColorOrange: colorOrange,
	atom.ColorRed:    colorRed,
}

func categoryColor(c element.Category) lipgloss.Color {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return colorDivider
}

// ────────────────────────────────────────────────────────────
// Component Styles
// ────────────────────────────────────────────────────────────

// Header bar
var (
	headerBarStyle = lipgloss.NewStyle().
			Background(colorBgSurface).
			Foreground(colorText).
			Padding(0, 1)

	headerBrandStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorBlue)

	headerSepStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	headerMetaStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	headerTabActiveStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Bold(true).
				Underline(true)
)

// Panel chrome
var (
	panelStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.Border{
			Top:    "─",
			Bottom: "",
			Left:   "",
			Right:  "",
		}).
		BorderForeground(colorDivider)

	panelTitleStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)
)

// Periodic table cells
var (
	cellStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Width(cellWidth).
			Align(lipgloss.Center)

	cellSelectedStyle = lipgloss.NewStyle().
				Foreground(colorBg).
				Background(colorText).
				Bold(true).
				Width(cellWidth).
				Align(lipgloss.Center)

	cellDimStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Background(colorBgPanel).
			Width(cellWidth).
			Align(lipgloss.Center)

	cellEmptyStyle = lipgloss.NewStyle().
			Width(cellWidth)

	legendSwatchStyle = lipgloss.NewStyle().
				Foreground(colorText)
)

// Detail pane
var (
	detailLabelStyle = lipgloss.NewStyle().
				Foreground(colorBlue)

	detailValueStyle = lipgloss.NewStyle().
				Foreground(colorText)

	detailSectionStyle = lipgloss.NewStyle().
				Foreground(colorTextDim).
				Bold(true)

	detailSymbolStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText).
				Padding(0, 2)

	detailProseStyle = lipgloss.NewStyle().
				Foreground(colorTextDim)
)

// Atom diagram
var (
	protonStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	neutronStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	electronStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	orbitStyle = lipgloss.NewStyle().
			Foreground(colorDivider)

	nucleusRimStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)

// Builder
var (
	counterStyle = lipgloss.NewStyle().
			Foreground(colorText)

	counterSelectedStyle = lipgloss.NewStyle().
				Background(colorHighlight).
				Foreground(colorText).
				Bold(true)

	counterValueStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Bold(true).
				Width(5).
				Align(lipgloss.Right)

	badgeStyle = lipgloss.NewStyle().
			Foreground(colorBg).
			Bold(true).
			Padding(0, 1)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorYellow)
)

// Footer / status bar
var (
	statusStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(colorRed).
				Background(colorBgSurface).
				Padding(0, 1)

	hintKeyStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	hintDescStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)
)

// Saved list
var (
	itemStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Padding(0, 1)

	itemSelectedStyle = lipgloss.NewStyle().
				Background(colorHighlight).
				Foreground(colorText).
				Bold(true).
				Padding(0, 1)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	emptyStateStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted).
			Padding(2, 4)
)

// Search / value entry bar
var (
	inputBarStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorBgSurface).
			Padding(0, 1)
)
