// Package tui implements the Atomic Explorer terminal user interface.
//
// Built with Charmbracelet's BubbleTea, Lipgloss, and Bubbles libraries.
//
// Component architecture:
//
//	model.go    root model, message routing, Init/Update
//	keys.go     key bindings and per-screen help
//	theme.go    centralized color + style definitions
//	header.go   top bar with screen tabs, footer with hints
//	table.go    periodic table grid and category legend
//	detail.go   element properties and particle bars
//	builder.go  atom builder counters, presets and classification
//	saved.go    saved atom selector
//	diagram.go  maps nucleus and orbit layouts onto a cell canvas
//	helpers.go  truncation and formatting helpers
package tui
