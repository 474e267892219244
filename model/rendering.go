package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer draws grid snapshots as text
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the grid, one line per row
func (r *TerminalRenderer) Display(g *Grid) {
	var b strings.Builder
	g.Each(func(x, _ int, alive bool) {
		if alive {
			b.WriteString(gridPosBlock)
		} else {
			b.WriteString(gridPosEmpty)
		}
		if x == g.width-1 {
			b.WriteByte('\n')
		}
	})
	fmt.Fprint(r.out(), b.String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}
