package model

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

// RandomSource is the subset of math/rand and math/rand/v2 used for random fills
type RandomSource interface {
	Float64() float64
}

// Grid holds the liveness of every cell of a fixed-size, bounded board
type Grid struct {
	width  int
	height int
	cells  [][]bool
}

// NewGrid creates a grid with the specified dimensions and every cell dead
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "[NewGrid] %dx%d", width, height)
	}
	return newGrid(width, height), nil
}

func newGrid(width, height int) *Grid {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
}

// Width returns the width of the grid
func (g *Grid) Width() int {
	return g.width
}

// Height returns the height of the grid
func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) checkBounds(op string, x, y int) error {
	if !g.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[%s] (%d,%d) on %dx%d grid", op, x, y, g.width, g.height)
	}
	return nil
}

// IsAlive returns the state of a cell
func (g *Grid) IsAlive(x, y int) (bool, error) {
	if err := g.checkBounds("Grid.IsAlive", x, y); err != nil {
		return false, err
	}
	return g.cells[y][x], nil
}

// SetAlive sets a cell to alive (true) or dead (false)
func (g *Grid) SetAlive(x, y int, alive bool) error {
	if err := g.checkBounds("Grid.SetAlive", x, y); err != nil {
		return err
	}
	g.cells[y][x] = alive
	return nil
}

// CountLiveNeighbors counts the living cells in the Moore neighborhood of (x, y).
// Positions beyond the edge of the grid count as dead.
func (g *Grid) CountLiveNeighbors(x, y int) (int, error) {
	if err := g.checkBounds("Grid.CountLiveNeighbors", x, y); err != nil {
		return 0, err
	}
	return g.countLiveNeighbors(x, y), nil
}

// countLiveNeighbors expects (x, y) to be in bounds
func (g *Grid) countLiveNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

func checkProbability(op string, probability float64) error {
	// written as a negation so NaN is rejected too
	if !(probability >= 0 && probability <= 1) {
		return errors.Wrapf(ErrInvalidArgument, "[%s] probability %v outside [0, 1]", op, probability)
	}
	return nil
}

// FillRandom sets each cell alive independently with the given probability
func (g *Grid) FillRandom(probability float64, rng RandomSource) error {
	if err := checkProbability("Grid.FillRandom", probability); err != nil {
		return err
	}
	if rng == nil {
		return errors.Wrap(ErrInvalidArgument, "[Grid.FillRandom] nil random source")
	}
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = rng.Float64() < probability
		}
	}
	return nil
}

// Sprinkle turns cells alive independently with the given probability.
// Cells that are already alive stay alive.
func (g *Grid) Sprinkle(probability float64, rng RandomSource) error {
	if err := checkProbability("Grid.Sprinkle", probability); err != nil {
		return err
	}
	if rng == nil {
		return errors.Wrap(ErrInvalidArgument, "[Grid.Sprinkle] nil random source")
	}
	for y := range g.height {
		for x := range g.width {
			if rng.Float64() < probability {
				g.cells[y][x] = true
			}
		}
	}
	return nil
}

// Clear sets every cell dead
func (g *Grid) Clear() {
	for y := range g.height {
		clear(g.cells[y])
	}
}

// Population returns the total number of living cells
func (g *Grid) Population() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}

// Each calls fn for every cell in row-major order
func (g *Grid) Each(fn func(x, y int, alive bool)) {
	for y := range g.height {
		for x := range g.width {
			fn(x, y, g.cells[y][x])
		}
	}
}

// CopyFrom resizes g to match src and copies its cells
func (g *Grid) CopyFrom(src *Grid) {
	g.reset(src.width, src.height)
	for y := range src.height {
		copy(g.cells[y], src.cells[y])
	}
}

// reset resizes the grid, reusing the existing rows where it can, and clears it
func (g *Grid) reset(width, height int) {
	g.width = width
	g.height = height

	if len(g.cells) != height {
		g.cells = make([][]bool, height)
	}
	for i := range g.cells {
		if len(g.cells[i]) != width {
			g.cells[i] = make([]bool, width)
		} else {
			clear(g.cells[i])
		}
	}
}

// Fingerprint returns an MD5 digest of the cell pattern
func (g *Grid) Fingerprint() string {
	h := md5.New()
	row := make([]byte, g.width)
	for y := range g.height {
		for x := range g.width {
			row[x] = 0
			if g.cells[y][x] {
				row[x] = 1
			}
		}
		h.Write(row)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
