package main

import (
	"bufio"
	"io"
	"strings"
)

type command int

const (
	cmdStep command = iota
	cmdReset
	cmdTogglePause
	cmdQuit
)

func (c command) String() string {
	switch c {
	case cmdReset:
		return "reset"
	case cmdTogglePause:
		return "pause"
	case cmdQuit:
		return "quit"
	default:
		return "step"
	}
}

// parseCommand maps one line of input to a command. Anything unrecognised,
// including an empty line, is a single step.
func parseCommand(line string) command {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "r", "reset", "esc":
		return cmdReset
	case "p", "pause", "space":
		return cmdTogglePause
	case "q", "quit", "exit":
		return cmdQuit
	default:
		return cmdStep
	}
}

// readCommands forwards parsed lines from r until EOF, then closes out
func readCommands(r io.Reader, out chan<- command) {
	defer close(out)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		out <- parseCommand(scanner.Text())
	}
}
