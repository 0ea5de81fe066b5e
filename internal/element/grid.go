package element

import "sort"

const (
	// GridColumns is the number of groups in the periodic table.
	GridColumns = 18
	// MainRows is the number of periods shown in the main block.
	MainRows = 7
	// SeriesStartColumn is the 1-based column where the f-block rows begin.
	SeriesStartColumn = 4
)

// Row indexes of the f-block series inside a Grid (0-based).
const (
	LanthanideRow = MainRows
	ActinideRow   = MainRows + 1
)

// Cell is a 0-based (row, column) position in the grid.
type Cell struct {
	Row int
	Col int
}

// Grid is the periodic table layout: seven main rows followed by the
// lanthanide and actinide rows. Each cell holds an atomic number or 0.
type Grid struct {
	cells [MainRows + 2][GridColumns]int
	index map[int]Cell
}

// BuildGrid places elements by period and group. Lanthanides and actinides
// are kept out of the main block and laid out in atomic-number order on
// their own rows.
func BuildGrid(elements []Element) Grid {
	g := Grid{index: make(map[int]Cell, len(elements))}

	var lanthanides, actinides []Element
	for _, el := range elements {
		switch el.Category {
		case CategoryLanthanide:
			lanthanides = append(lanthanides, el)
			continue
		case CategoryActinide:
			actinides = append(actinides, el)
			continue
		}
		if el.Period < 1 || el.Period > MainRows || el.Group < 1 || el.Group > GridColumns {
			continue
		}
		row, col := el.Period-1, el.Group-1
		if g.cells[row][col] != 0 {
			continue
		}
		g.place(row, col, el.AtomicNumber)
	}

	g.placeSeries(LanthanideRow, lanthanides)
	g.placeSeries(ActinideRow, actinides)
	return g
}

func (g *Grid) placeSeries(row int, series []Element) {
	sort.Slice(series, func(i, j int) bool {
		return series[i].AtomicNumber < series[j].AtomicNumber
	})
	for i, el := range series {
		col := SeriesStartColumn - 1 + i
		if col >= GridColumns {
			return
		}
		g.place(row, col, el.AtomicNumber)
	}
}

func (g *Grid) place(row, col, atomicNumber int) {
	g.cells[row][col] = atomicNumber
	g.index[atomicNumber] = Cell{Row: row, Col: col}
}

// Rows returns the total number of rows including the series rows.
func (g Grid) Rows() int {
	return len(g.cells)
}

// At returns the atomic number at (row, col), or 0 for an empty or
// out-of-range cell.
func (g Grid) At(row, col int) int {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= GridColumns {
		return 0
	}
	return g.cells[row][col]
}

// Find returns the cell holding atomicNumber.
func (g Grid) Find(atomicNumber int) (Cell, bool) {
	c, ok := g.index[atomicNumber]
	return c, ok
}

// Step moves from cell in direction (dRow, dCol) until it reaches an
// occupied cell. It returns the starting cell when nothing is found.
func (g Grid) Step(from Cell, dRow, dCol int) Cell {
	if dRow == 0 && dCol == 0 {
		return from
	}
	r, c := from.Row+dRow, from.Col+dCol
	for r >= 0 && r < len(g.cells) && c >= 0 && c < GridColumns {
		if g.cells[r][c] != 0 {
			return Cell{Row: r, Col: c}
		}
		if dRow != 0 {
			// Vertical moves look sideways for the nearest element in the
			// target row before skipping past it.
			if near, ok := g.nearestInRow(r, c); ok {
				return near
			}
		}
		r, c = r+dRow, c+dCol
	}
	return from
}

func (g Grid) nearestInRow(row, col int) (Cell, bool) {
	for off := 1; off < GridColumns; off++ {
		for _, cc := range []int{col - off, col + off} {
			if cc >= 0 && cc < GridColumns && g.cells[row][cc] != 0 {
				return Cell{Row: row, Col: cc}, true
			}
		}
	}
	return Cell{}, false
}
