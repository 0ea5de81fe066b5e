package element

import "testing"

func loadGrid(t *testing.T) Grid {
	t.Helper()
	cat, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("LoadEmbedded failed: %v", err)
	}
	return BuildGrid(cat.All())
}

func TestBuildGridPlacement(t *testing.T) {
	g := loadGrid(t)

	checks := []struct {
		row, col, want int
	}{
		{0, 0, 1},    // H
		{0, 17, 2},   // He
		{1, 13, 6},   // C
		{5, 2, 0},    // La moved to the series row
		{6, 17, 118}, // Og
		{LanthanideRow, SeriesStartColumn - 1, 57},
		{LanthanideRow, GridColumns - 1, 71},
		{ActinideRow, SeriesStartColumn - 1, 89},
		{ActinideRow, 0, 0},
	}
	for _, c := range checks {
		if got := g.At(c.row, c.col); got != c.want {
			t.Errorf("At(%d,%d) = %d, want %d", c.row, c.col, got, c.want)
		}
	}

	if g.Rows() != 9 {
		t.Errorf("expected 9 rows, got %d", g.Rows())
	}
	if g.At(-1, 0) != 0 || g.At(0, GridColumns) != 0 {
		t.Error("out-of-range cells must be empty")
	}
}

func TestGridFindEveryElement(t *testing.T) {
	g := loadGrid(t)
	for z := 1; z <= 118; z++ {
		cell, ok := g.Find(z)
		if !ok {
			t.Errorf("element %d not placed", z)
			continue
		}
		if g.At(cell.Row, cell.Col) != z {
			t.Errorf("Find(%d) points at %d", z, g.At(cell.Row, cell.Col))
		}
	}
}

func TestGridStep(t *testing.T) {
	g := loadGrid(t)

	h, _ := g.Find(1)
	if next := g.Step(h, 0, 1); g.At(next.Row, next.Col) != 2 {
		t.Errorf("right from H should reach He, got %d", g.At(next.Row, next.Col))
	}
	if next := g.Step(h, 1, 0); g.At(next.Row, next.Col) != 3 {
		t.Errorf("down from H should reach Li, got %d", g.At(next.Row, next.Col))
	}
	if next := g.Step(h, -1, 0); next != h {
		t.Errorf("up from H should stay put, got %+v", next)
	}

	b, _ := g.Find(5)
	if next := g.Step(b, -1, 0); g.At(next.Row, next.Col) != 2 {
		t.Errorf("up from B should land on the nearest period-1 element, got %d", g.At(next.Row, next.Col))
	}
}
