package model

import (
	"strings"
	"testing"
)

// gridFromRows builds a grid from rows of '#' (alive) and '.' (dead)
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	for y, row := range rows {
		for x, c := range row {
			if c == '#' {
				if err := g.SetAlive(x, y, true); err != nil {
					t.Fatalf("SetAlive(%d,%d): %v", x, y, err)
				}
			}
		}
	}
	return g
}

func rowsOf(g *Grid) []string {
	rows := make([]string, g.Height())
	var b strings.Builder
	g.Each(func(x, y int, alive bool) {
		if alive {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
		if x == g.Width()-1 {
			rows[y] = b.String()
			b.Reset()
		}
	})
	return rows
}

// engineFromRows builds an engine seeded with the given rows
func engineFromRows(t *testing.T, rows ...string) *Engine {
	t.Helper()
	e, err := NewEngine(len(rows[0]), len(rows), nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	e.grid.CopyFrom(gridFromRows(t, rows...))
	return e
}

func expectRows(t *testing.T, got *Grid, want ...string) {
	t.Helper()
	gotRows := rowsOf(got)
	if strings.Join(gotRows, "\n") != strings.Join(want, "\n") {
		t.Fatalf("grid mismatch\ngot:\n%s\nexpected:\n%s", strings.Join(gotRows, "\n"), strings.Join(want, "\n"))
	}
}
