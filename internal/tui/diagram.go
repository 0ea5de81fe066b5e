package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Mr-Dark-debug/atomic-explorer/internal/atom"
)

// ────────────────────────────────────────────────────────────
// Atom diagram canvas
// ────────────────────────────────────────────────────────────
//
// The layout functions in package atom return pixel coordinates centered
// on the nucleus. canvas maps them onto terminal cells, which are roughly
// twice as tall as they are wide, so the vertical scale is halved.

type canvasCell struct {
	glyph rune
	style lipgloss.Style
	layer int
}

// Layers decide which glyph wins when two points share a cell.
const (
	layerOrbit = iota + 1
	layerRim
	layerElectron
	layerNucleon
)

type canvas struct {
	cols, rows int
	scale      float64 // pixels per column
	cells      [][]canvasCell
}

// newCanvas sizes a canvas so that a circle of radius extent (pixels)
// fits within cols × rows cells.
func newCanvas(cols, rows int, extent float64) *canvas {
	cols, rows = max(cols, 3), max(rows, 3)
	extent = math.Max(extent, 1)

	// Horizontal fit: 2·extent/scale ≤ cols-1.
	// Vertical fit:   2·extent/(2·scale) ≤ rows-1.
	scale := math.Max(2*extent/float64(cols-1), extent/float64(rows-1))

	cells := make([][]canvasCell, rows)
	for r := range cells {
		cells[r] = make([]canvasCell, cols)
	}
	return &canvas{cols: cols, rows: rows, scale: scale, cells: cells}
}

// project maps a diagram point to a cell. ok is false outside the canvas.
func (c *canvas) project(p atom.Point) (row, col int, ok bool) {
	col = int(math.Round(float64(c.cols-1)/2 + p.X/c.scale))
	row = int(math.Round(float64(c.rows-1)/2 + p.Y/(2*c.scale)))
	ok = row >= 0 && row < c.rows && col >= 0 && col < c.cols
	return row, col, ok
}

func (c *canvas) plot(p atom.Point, glyph rune, style lipgloss.Style, layer int) {
	row, col, ok := c.project(p)
	if !ok || c.cells[row][col].layer > layer {
		return
	}
	c.cells[row][col] = canvasCell{glyph: glyph, style: style, layer: layer}
}

// circle traces a ring of the given radius with enough samples to leave
// no gaps at the canvas resolution.
func (c *canvas) circle(radius float64, glyph rune, style lipgloss.Style, layer int) {
	steps := max(int(2*math.Pi*radius/c.scale)*2, 12)
	for i := range steps {
		angle := float64(i) / float64(steps) * 2 * math.Pi
		c.plot(atom.Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)}, glyph, style, layer)
	}
}

func (c *canvas) String() string {
	lines := make([]string, c.rows)
	for r, row := range c.cells {
		var b strings.Builder
		for _, cell := range row {
			if cell.layer == 0 {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(cell.style.Render(string(cell.glyph)))
		}
		lines[r] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Glyphs used by the diagram.
const (
	glyphProton   = '+'
	glyphNeutron  = 'o'
	glyphElectron = '●'
	glyphOrbit    = '·'
	glyphRim      = '∘'
)

// renderDiagram draws orbits, electrons and the nucleus for the given
// counts into a cols × rows block.
func renderDiagram(layouter *atom.Layouter, nucleus []atom.Particle, electrons, cols, rows int) string {
	cfg := layouter.Config()
	size := cfg.NucleusSize(len(nucleus))
	shells := atom.ComputeShells(electrons)

	extent := size / 2
	if len(shells) > 0 {
		extent = cfg.OrbitRadius(len(shells)-1, size)
	}
	c := newCanvas(cols, rows, extent+cfg.ParticleSize/2)

	for s := range shells {
		c.circle(cfg.OrbitRadius(s, size), glyphOrbit, orbitStyle, layerOrbit)
	}
	c.circle(size/2, glyphRim, nucleusRimStyle, layerRim)

	for _, e := range atom.ComputeElectronLayout(shells, size, cfg) {
		c.plot(e.Pos, glyphElectron, electronStyle, layerElectron)
	}
	for _, p := range nucleus {
		if p.Kind == atom.Proton {
			c.plot(p.Pos, glyphProton, protonStyle, layerNucleon)
		} else {
			c.plot(p.Pos, glyphNeutron, neutronStyle, layerNucleon)
		}
	}
	return c.String()
}
