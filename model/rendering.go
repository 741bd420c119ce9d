package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strconv"
)

const (
	banner = "*****************>>> GAME OF LIFE <<<*****************"

	unixClearCmd    = "clear"
	windowsClearCmd = "cls"
)

// TerminalRenderer draws grids and headers on a console
type TerminalRenderer struct {
	Out io.Writer
	// ClearScreen enables clearing the terminal before each frame
	ClearScreen bool
}

// NewTerminalRenderer returns a renderer writing to out
func NewTerminalRenderer(out io.Writer, clearScreen bool) *TerminalRenderer {
	return &TerminalRenderer{Out: out, ClearScreen: clearScreen}
}

// Display renders one generation under a "Generation <n>:" header
func (r *TerminalRenderer) Display(generation int, s Snapshot) {
	r.Clear()
	fmt.Fprintf(r.Out, "Generation %d:\n%s", generation, s)
}

// DisplayNumbered renders the grid as its 1-based cell numbers, right-aligned,
// so a user can pick cells to bring to life
func (r *TerminalRenderer) DisplayNumbered(g *Grid) {
	r.Clear()
	fmt.Fprintln(r.Out, "Initial Grid (Numbered):")

	width := len(strconv.Itoa(g.Size())) + 1
	number := 1
	for range g.rows {
		for range g.cols {
			fmt.Fprintf(r.Out, "%*d", width, number)
			number++
		}
		fmt.Fprintln(r.Out)
	}
}

// Clear clears the terminal screen and redraws the banner
func (r *TerminalRenderer) Clear() {
	if r.ClearScreen {
		name, args := unixClearCmd, []string(nil)
		if runtime.GOOS == "windows" {
			name, args = "cmd", []string{"/c", windowsClearCmd}
		}
		cmd := exec.Command(name, args...)
		cmd.Stdout = os.Stdout
		if err := cmd.Run(); err != nil {
			fmt.Fprintln(r.Out, "Error clearing terminal:", err)
		}
	}
	fmt.Fprintf(r.Out, "%s\n\n", banner)
}
