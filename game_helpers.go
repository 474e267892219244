package main

import (
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/utils"
)

// game is the presentation side of the simulation: it owns pause state,
// timing and restarts, and drives the engine
type game struct {
	config   utils.Config
	engine   *model.Engine
	rng      *rand.Rand
	seed     int64
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	clock    *utils.EvolveClock
	history  *model.History
	out      io.Writer

	paused        bool
	clearScreen   bool
	stagnantCount int
	lastFrameTime time.Time
	done          bool
}

// initializeGame sets up the initial game state
func initializeGame(config utils.Config, out io.Writer) (*game, error) {
	engine, err := model.NewEngineFromConfig(config)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to create engine")
	}

	seed := config.EffectiveSeed()
	g := &game{
		config:        config,
		engine:        engine,
		rng:           rand.New(rand.NewPCG(uint64(seed), 0)),
		seed:          seed,
		renderer:      &model.TerminalRenderer{Out: out},
		stats:         utils.NewStats(),
		clock:         utils.NewEvolveClock(config.EvolveInterval),
		history:       model.NewHistory(0),
		out:           out,
		lastFrameTime: time.Now(),
	}

	if err = seedEngine(g.engine, config, g.rng, g.seed); err != nil {
		return nil, err
	}
	return g, nil
}

// patternSprinkleDensity is the share of cells randomly added around the patterns
const patternSprinkleDensity = 0.15

// seedEngine repopulates the engine according to the configured seed mode
func seedEngine(engine *model.Engine, config utils.Config, rng *rand.Rand, seed int64) error {
	switch config.SeedMode {
	case utils.SeedModeNoise:
		if err := engine.ResetNoise(config.LiveProbability, seed); err != nil {
			return errors.Wrap(err, "[seedEngine] noise fill failed")
		}
	case utils.SeedModePatterns:
		engine.ResetEmpty()
		for _, p := range interestingPatterns(engine.Width(), engine.Height()) {
			if err := engine.Place(p.pattern, p.x, p.y); err != nil {
				return errors.Wrap(err, "[seedEngine] pattern placement failed")
			}
		}
		if err := engine.Sprinkle(patternSprinkleDensity, rng); err != nil {
			return errors.Wrap(err, "[seedEngine] sprinkle failed")
		}
	default:
		if err := engine.ResetRandom(config.LiveProbability, rng); err != nil {
			return errors.Wrap(err, "[seedEngine] random fill failed")
		}
	}
	return nil
}

type placement struct {
	pattern model.Pattern
	x, y    int
}

// interestingPatterns lists the gliders, blinkers and block that fit a width x height grid
func interestingPatterns(width, height int) []placement {
	if width < 10 || height < 10 {
		return nil
	}

	placements := []placement{
		{model.Glider, 1, 1},
		{model.Blinker, width / 4, height / 2},
		{model.Block, width / 2, height - 4},
	}
	if width >= 20 && height >= 15 {
		placements = append(placements, placement{model.Glider, width - 8, 5})
	}
	if width >= 30 {
		placements = append(placements, placement{model.Blinker, 3 * width / 4, 3 * height / 4})
	}
	return placements
}

// displayGameInfo shows the initial game information
func (g *game) displayGameInfo() {
	fmt.Fprintf(g.out, "Features: Memory Pool: %v, Plan workers: %d, Seed mode: %s\n",
		g.config.UseMemoryPool, g.config.PlanWorkers(), g.config.SeedMode)
	fmt.Fprintf(g.out, "Grid: %dx%d | Initial living cells: %d\n",
		g.engine.Width(), g.engine.Height(), g.engine.Population())
	if g.config.SeedMode == utils.SeedModePatterns && len(interestingPatterns(g.engine.Width(), g.engine.Height())) == 0 {
		fmt.Fprintln(g.out, "Grid smaller than 10x10: patterns skipped, random sprinkle only")
	}
	fmt.Fprintln(g.out, "Commands: <enter> step | p pause/resume | r reset | q quit")
	fmt.Fprintln(g.out)
}

// step advances one generation and applies the stop and restart policy
func (g *game) step() {
	frameStart := time.Now()
	g.engine.Step()

	population := g.engine.Population()
	g.stats.Update(population, time.Since(g.lastFrameTime))
	g.lastFrameTime = frameStart

	fingerprint := g.engine.Fingerprint()
	if g.history.Repeats(fingerprint) {
		g.stagnantCount++
	} else {
		g.stagnantCount = 0
	}
	g.history.Record(fingerprint)

	generation := g.engine.Generation()
	if g.config.MaxGenerations > 0 && g.stats.TotalGenerations >= g.config.MaxGenerations {
		fmt.Fprintf(g.out, "\n🏁 Reached maximum generations limit (%d)\n", g.config.MaxGenerations)
		g.done = true
		return
	}

	if !g.config.AutoRestart {
		return
	}
	if shouldRestart, reason := checkRestartConditions(population, g.stagnantCount, g.config); shouldRestart {
		fmt.Fprintf(g.out, "🔄 Restarting due to %s at generation %d...\n", reason, generation)
		if err := g.restart(); err != nil {
			fmt.Fprintln(g.out, "Error restarting:", err)
			g.done = true
		}
	}
}

// restart reseeds the engine, drawing a fresh seed for the next pattern
func (g *game) restart() error {
	g.seed = g.rng.Int64()
	if err := seedEngine(g.engine, g.config, g.rng, g.seed); err != nil {
		return err
	}
	g.history.Reset()
	g.stagnantCount = 0
	g.stats.Restarts++
	return nil
}

// handle applies a single user command
func (g *game) handle(cmd command) {
	switch cmd {
	case cmdQuit:
		g.done = true
	case cmdTogglePause:
		g.paused = !g.paused
	case cmdReset:
		if err := g.restart(); err != nil {
			fmt.Fprintln(g.out, "Error resetting:", err)
		}
	default:
		g.step()
		g.clock.MarkEvolved()
	}
}

// tick is called once per frame and evolves when the clock says so
func (g *game) tick(frame time.Duration) bool {
	if g.paused || !g.clock.Advance(frame) {
		return false
	}
	g.step()
	return true
}

// status describes the current simulation state
func (g *game) status() string {
	switch {
	case g.paused:
		return "Paused"
	case g.engine.Population() == 0:
		return "Extinct"
	case g.stagnantCount > 0:
		return fmt.Sprintf("Stagnant (%d)", g.stagnantCount)
	default:
		return "Active"
	}
}

// render draws the status line and the grid
func (g *game) render() {
	if g.clearScreen {
		g.renderer.Clear()
	}

	var (
		population = g.engine.Population()
		density    = float64(population) / float64(g.engine.Width()*g.engine.Height()) * 100
	)
	fmt.Fprintf(g.out, "Age: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		g.engine.Generation(), population, density, g.status())
	fmt.Fprintf(g.out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())
	fmt.Fprintln(g.out)

	snap := g.engine.Snapshot()
	g.renderer.Display(snap)
	g.engine.Release(snap)
}

// displayFinalStats prints the summary shown on exit
func (g *game) displayFinalStats() {
	fmt.Fprintln(g.out, "\n🛑 Shutting down gracefully...")
	fmt.Fprintf(g.out, "Final stats: %d generations (%d restarts) in %.1f seconds\n",
		g.stats.TotalGenerations, g.stats.Restarts, g.stats.Runtime().Seconds())
	fmt.Fprintf(g.out, "Average: %.1f gen/sec, %.1f avg population\n",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(population, stagnantCount int, config utils.Config) (bool, string) {
	if population == 0 {
		return true, "extinction"
	}
	if config.StagnationThreshold > 0 && stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}
