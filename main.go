package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sheikhrachel/gol-engine/utils"
)

const configFile = "config.json"

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		fmt.Printf("Using default configuration (%v)\n", err)
		config = utils.DefaultConfig()
	}

	g, err := initializeGame(config, os.Stdout)
	if err != nil {
		fmt.Println("Error starting game:", err)
		os.Exit(1)
	}
	g.clearScreen = true
	g.displayGameInfo()
	time.Sleep(2 * time.Second)
	g.render()

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	commands := make(chan command)
	go readCommands(os.Stdin, commands)

	ticker := time.NewTicker(config.FrameRate)
	defer ticker.Stop()

	for !g.done {
		select {
		case <-sigChan:
			g.done = true
		case cmd, ok := <-commands:
			if !ok {
				// stdin closed, keep running on the timer
				commands = nil
				continue
			}
			g.handle(cmd)
			if !g.done {
				g.render()
			}
		case <-ticker.C:
			if g.tick(config.FrameRate) {
				g.render()
			}
		}
	}

	g.displayFinalStats()
}
