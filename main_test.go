package main

import (
	"io"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/utils"
)

func testConfig() utils.Config {
	config := utils.DefaultConfig()
	config.Width, config.Height = 12, 12
	config.Seed = 42
	return config
}

func TestParseCommand(t *testing.T) {
	cases := map[string]command{
		"r":      cmdReset,
		"ESC":    cmdReset,
		" reset": cmdReset,
		"p":      cmdTogglePause,
		"space":  cmdTogglePause,
		"q":      cmdQuit,
		"quit":   cmdQuit,
		"":       cmdStep,
		"x":      cmdStep,
		"n":      cmdStep,
	}
	for line, want := range cases {
		if got := parseCommand(line); got != want {
			t.Fatalf("parseCommand(%q) = %v, expected %v", line, got, want)
		}
	}
}

func TestReadCommands(t *testing.T) {
	out := make(chan command)
	go readCommands(strings.NewReader("p\n\nr\nq\n"), out)

	var got []command
	for cmd := range out {
		got = append(got, cmd)
	}
	want := []command{cmdTogglePause, cmdStep, cmdReset, cmdQuit}
	if len(got) != len(want) {
		t.Fatalf("read %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("read %v, expected %v", got, want)
		}
	}
}

func TestSeedEngine(t *testing.T) {
	for _, mode := range []string{utils.SeedModeRandom, utils.SeedModeNoise, utils.SeedModePatterns} {
		config := testConfig()
		config.SeedMode = mode
		config.LiveProbability = 0.9

		engine, err := model.NewEngine(config.Width, config.Height, nil)
		if err != nil {
			t.Fatalf("NewEngine: %v", err)
		}
		engine.Step()

		if err := seedEngine(engine, config, rand.New(rand.NewPCG(1, 0)), 1); err != nil {
			t.Fatalf("seedEngine(%s): %v", mode, err)
		}
		if engine.Generation() != 0 {
			t.Fatalf("seedEngine(%s) left generation %d", mode, engine.Generation())
		}
		if engine.Population() == 0 {
			t.Fatalf("seedEngine(%s) produced an empty grid", mode)
		}
	}
}

func TestSeedEnginePatternsKeepsPatterns(t *testing.T) {
	config := testConfig()
	config.SeedMode = utils.SeedModePatterns

	engine, err := model.NewEngine(config.Width, config.Height, nil)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if err := seedEngine(engine, config, rand.New(rand.NewPCG(1, 0)), 1); err != nil {
		t.Fatalf("seedEngine: %v", err)
	}

	placements := interestingPatterns(config.Width, config.Height)
	if len(placements) == 0 {
		t.Fatal("a 12x12 grid should have room for patterns")
	}

	patternCells := 0
	for _, p := range placements {
		for dy, row := range p.pattern {
			for dx, cell := range row {
				if !cell {
					continue
				}
				patternCells++
				if alive, _ := engine.IsAlive(p.x+dx, p.y+dy); !alive {
					t.Fatalf("pattern cell (%d,%d) is dead after seeding", p.x+dx, p.y+dy)
				}
			}
		}
	}
	if pop := engine.Population(); pop <= patternCells {
		t.Fatalf("population %d does not exceed the %d pattern cells", pop, patternCells)
	}
}

func TestInterestingPatternsFit(t *testing.T) {
	for _, size := range [][2]int{{10, 10}, {12, 12}, {20, 15}, {25, 25}, {30, 10}, {60, 30}} {
		g, err := model.NewGrid(size[0], size[1])
		if err != nil {
			t.Fatalf("NewGrid: %v", err)
		}
		for _, p := range interestingPatterns(size[0], size[1]) {
			if err := g.Place(p.pattern, p.x, p.y); err != nil {
				t.Fatalf("%dx%d: pattern at (%d,%d) does not fit: %v", size[0], size[1], p.x, p.y, err)
			}
		}
	}

	if got := interestingPatterns(9, 20); got != nil {
		t.Fatalf("9x20 grid got %d placements, expected none", len(got))
	}
}

func TestSmallGridPatternsNotice(t *testing.T) {
	config := testConfig()
	config.Width, config.Height = 6, 6
	config.SeedMode = utils.SeedModePatterns

	var b strings.Builder
	g, err := initializeGame(config, &b)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	g.displayGameInfo()
	if !strings.Contains(b.String(), "patterns skipped") {
		t.Fatalf("missing small-grid notice:\n%s", b.String())
	}
}

func TestCheckRestartConditions(t *testing.T) {
	config := testConfig()
	config.StagnationThreshold = 3

	if restart, reason := checkRestartConditions(0, 0, config); !restart || reason != "extinction" {
		t.Fatalf("extinct grid: restart=%v reason=%q", restart, reason)
	}
	if restart, reason := checkRestartConditions(10, 3, config); !restart || reason != "stagnation detected" {
		t.Fatalf("stagnant grid: restart=%v reason=%q", restart, reason)
	}
	if restart, _ := checkRestartConditions(10, 2, config); restart {
		t.Fatal("grid below threshold should keep running")
	}
}

func TestGameCommands(t *testing.T) {
	g, err := initializeGame(testConfig(), io.Discard)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}

	g.handle(cmdStep)
	g.handle(cmdStep)
	if gen := g.engine.Generation(); gen != 2 {
		t.Fatalf("generation %d after two steps", gen)
	}

	g.handle(cmdTogglePause)
	if !g.paused || g.status() != "Paused" {
		t.Fatal("pause command should pause the game")
	}
	if g.tick(time.Hour) {
		t.Fatal("paused game must not evolve on tick")
	}

	g.handle(cmdTogglePause)
	if !g.tick(time.Hour) {
		t.Fatal("running game should evolve once the interval passes")
	}
	if gen := g.engine.Generation(); gen != 3 {
		t.Fatalf("generation %d after tick, expected 3", gen)
	}

	g.handle(cmdReset)
	if gen := g.engine.Generation(); gen != 0 {
		t.Fatalf("generation %d after reset", gen)
	}

	g.handle(cmdQuit)
	if !g.done {
		t.Fatal("quit command should end the game")
	}
}

func TestGameMaxGenerations(t *testing.T) {
	config := testConfig()
	config.MaxGenerations = 3

	g, err := initializeGame(config, io.Discard)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	for i := 0; i < 3 && !g.done; i++ {
		g.step()
	}
	if !g.done {
		t.Fatal("game should stop at the generation limit")
	}
}

func TestGameAutoRestartOnExtinction(t *testing.T) {
	config := testConfig()
	config.AutoRestart = true

	g, err := initializeGame(config, io.Discard)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	g.engine.ResetEmpty()
	if err := g.engine.SetAlive(5, 5, true); err != nil {
		t.Fatalf("SetAlive: %v", err)
	}

	g.step()
	if g.stats.Restarts != 1 {
		t.Fatalf("restarts = %d, expected 1", g.stats.Restarts)
	}
	if g.engine.Generation() != 0 || g.engine.Population() == 0 {
		t.Fatal("restart should reseed the grid")
	}
}

func TestGameRender(t *testing.T) {
	var b strings.Builder
	g, err := initializeGame(testConfig(), &b)
	if err != nil {
		t.Fatalf("initializeGame: %v", err)
	}
	g.render()

	out := b.String()
	if !strings.Contains(out, "Age: 0") {
		t.Fatalf("status line missing age:\n%s", out)
	}
	if lines := strings.Count(out, "\n"); lines < 12 {
		t.Fatalf("rendered %d lines, expected at least the 12 grid rows", lines)
	}
}
