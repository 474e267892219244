package model

import (
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-engine/rules"
	"github.com/sheikhrachel/gol-engine/utils"
)

/*
Engine advances a Grid one generation at a time.

Each Step runs in two phases. Plan records a rules.Action for every cell into the
pending buffer, reading only the unmodified grid. Commit then applies every
pending action. No cell can observe a neighbor that was already updated in the
same generation.

The engine is the only mutator of its grid. Mutations hold the write lock and
reads hold the read lock, so the grid is never visible between the two phases.
*/
type Engine struct {
	mu         sync.RWMutex
	grid       *Grid
	pending    [][]rules.Action
	generation int
	workers    int
	pool       *GridPool
}

// NewEngine creates an engine over an empty width x height grid. pool may be nil.
func NewEngine(width, height int, pool *GridPool) (*Engine, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	pending := make([][]rules.Action, height)
	for i := range pending {
		pending[i] = make([]rules.Action, width)
	}

	return &Engine{
		grid:    grid,
		pending: pending,
		workers: 1,
		pool:    pool,
	}, nil
}

// NewEngineFromConfig creates an engine sized and tuned by config
func NewEngineFromConfig(config utils.Config) (*Engine, error) {
	var pool *GridPool
	if config.UseMemoryPool {
		pool = NewGridPool()
	}

	e, err := NewEngine(config.Width, config.Height, pool)
	if err != nil {
		return nil, err
	}
	e.SetWorkers(config.PlanWorkers())
	return e, nil
}

// SetWorkers sets how many goroutines share the planning phase. Values below 1 mean 1.
func (e *Engine) SetWorkers(n int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.workers = max(1, n)
}

// Step advances the grid by exactly one generation
func (e *Engine) Step() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.plan()
	e.commit()
	e.generation++
}

// plan fills the pending buffer from the current grid
func (e *Engine) plan() {
	height := e.grid.height
	if e.workers <= 1 || height < 2 {
		e.planRows(0, height)
		return
	}

	var (
		eg            errgroup.Group
		numWorkers    = min(e.workers, height)
		rowsPerWorker = (height + numWorkers - 1) / numWorkers
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		eg.Go(func() error {
			e.planRows(startRow, endRow)
			return nil
		})
	}

	// planRows never fails; Wait is only the join point
	_ = eg.Wait()
}

func (e *Engine) planRows(startRow, endRow int) {
	g := e.grid
	for y := startRow; y < endRow; y++ {
		for x := range g.width {
			e.pending[y][x] = rules.Decide(g.countLiveNeighbors(x, y), g.cells[y][x])
		}
	}
}

// commit applies and clears the pending buffer
func (e *Engine) commit() {
	g := e.grid
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = e.pending[y][x].Apply(g.cells[y][x])
			e.pending[y][x] = rules.None
		}
	}
}

// ResetRandom clears the grid, repopulates it with FillRandom and zeroes the generation count.
// An invalid probability leaves the engine untouched.
func (e *Engine) ResetRandom(probability float64, rng RandomSource) error {
	if err := checkProbability("Engine.ResetRandom", probability); err != nil {
		return err
	}
	if rng == nil {
		return errors.Wrap(ErrInvalidArgument, "[Engine.ResetRandom] nil random source")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.grid.Clear()
	if err := e.grid.FillRandom(probability, rng); err != nil {
		return err
	}
	e.generation = 0
	return nil
}

// ResetNoise clears the grid, repopulates it with FillNoise and zeroes the generation count
func (e *Engine) ResetNoise(probability float64, seed int64) error {
	if err := checkProbability("Engine.ResetNoise", probability); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.grid.FillNoise(probability, seed); err != nil {
		return err
	}
	e.generation = 0
	return nil
}

// ResetEmpty kills every cell and zeroes the generation count
func (e *Engine) ResetEmpty() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.grid.Clear()
	e.generation = 0
}

// Place stamps a pattern onto the grid between generations
func (e *Engine) Place(pattern Pattern, x, y int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Place(pattern, x, y)
}

// Sprinkle adds random live cells between generations without killing any
func (e *Engine) Sprinkle(probability float64, rng RandomSource) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.Sprinkle(probability, rng)
}

// SetAlive sets a single cell between generations
func (e *Engine) SetAlive(x, y int, alive bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.grid.SetAlive(x, y, alive)
}

// Generation returns the number of steps since construction or the last reset
func (e *Engine) Generation() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.generation
}

// IsAlive returns the state of a cell
func (e *Engine) IsAlive(x, y int) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.grid.IsAlive(x, y)
}

// Width returns the width of the grid
func (e *Engine) Width() int {
	return e.grid.Width()
}

// Height returns the height of the grid
func (e *Engine) Height() int {
	return e.grid.Height()
}

// Population returns the number of living cells
func (e *Engine) Population() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.grid.Population()
}

// Fingerprint returns the digest of the current cell pattern
func (e *Engine) Fingerprint() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.grid.Fingerprint()
}

// Snapshot returns a copy of the current grid. Hand it back with Release when done.
func (e *Engine) Snapshot() *Grid {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var snap *Grid
	if e.pool != nil {
		snap = e.pool.Get(e.grid.width, e.grid.height)
	} else {
		snap = newGrid(e.grid.width, e.grid.height)
	}
	snap.CopyFrom(e.grid)
	return snap
}

// Release returns a snapshot to the engine's pool, if it has one
func (e *Engine) Release(snap *Grid) {
	if e.pool == nil {
		return
	}
	e.pool.Put(snap)
}
