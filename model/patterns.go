package model

import "github.com/pkg/errors"

// Pattern is a rectangular stamp of cells, indexed [row][column]
type Pattern [][]bool

var (
	// Block is a 2x2 still life
	Block = Pattern{
		{true, true},
		{true, true},
	}

	// Blinker is the horizontal phase of the period-2 oscillator
	Blinker = Pattern{
		{true, true, true},
	}

	// Glider travels one cell diagonally every four generations
	Glider = Pattern{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
)

// Width returns the widest row of the pattern
func (p Pattern) Width() (w int) {
	for _, row := range p {
		w = max(w, len(row))
	}
	return
}

// Height returns the number of rows in the pattern
func (p Pattern) Height() int {
	return len(p)
}

// Place sets the live cells of pattern with its top-left corner at (startX, startY).
// Dead cells of the pattern leave the grid untouched. The grid is not modified
// when the pattern does not fit.
func (g *Grid) Place(pattern Pattern, startX, startY int) error {
	if pattern.Height() == 0 || pattern.Width() == 0 {
		return nil
	}
	endX := startX + pattern.Width() - 1
	endY := startY + pattern.Height() - 1
	if !g.inBounds(startX, startY) || !g.inBounds(endX, endY) {
		return errors.Wrapf(ErrOutOfBounds, "[Grid.Place] %dx%d pattern at (%d,%d) on %dx%d grid",
			pattern.Width(), pattern.Height(), startX, startY, g.width, g.height)
	}

	for y, row := range pattern {
		for x, cell := range row {
			if cell {
				g.cells[startY+y][startX+x] = true
			}
		}
	}
	return nil
}
