// Package console is the interactive menu that configures a grid, runs the
// simulation and optionally saves the resulting history.
package console

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life-console/model"
	"github.com/sheikhrachel/go-life-console/utils"
)

const (
	initRandom = 1
	initManual = 2
	initFile   = 3

	finishManual = -1

	menuReset = "1"
	menuExit  = "2"
)

// Session is one interactive console conversation. It may play several rounds
// until the user exits or the input ends.
type Session struct {
	in       *tokenReader
	out      io.Writer
	renderer *model.TerminalRenderer
	config   utils.Config

	// Random seeds random initialization; nil uses model.DefaultRandomSource
	Random model.RandomSource
	// Sleep paces generations on screen; replace with a no-op in tests
	Sleep func(time.Duration)
}

// NewSession returns a session reading answers from in and writing to out
func NewSession(in io.Reader, out io.Writer, config utils.Config) *Session {
	return &Session{
		in:       newTokenReader(in),
		out:      out,
		renderer: model.NewTerminalRenderer(out, config.ClearScreen),
		config:   config,
		Sleep:    time.Sleep,
	}
}

// Run plays rounds until the user chooses to exit. Running out of input ends
// the session without an error.
func (s *Session) Run() error {
	fmt.Fprintf(s.out, "*****************>>> GAME OF LIFE <<<*****************\n\n")
	for {
		again, err := s.playRound()
		if errors.Is(err, errEndOfInput) {
			utils.Logf("console: input closed, ending session")
			return nil
		}
		if err != nil {
			return err
		}
		if !again {
			fmt.Fprintln(s.out, "\n*************>>> Good Bye <<<**************")
			return nil
		}
	}
}

// playRound runs one setup, simulate, save cycle and reports whether the user
// asked for another round
func (s *Session) playRound() (bool, error) {
	rows, err := s.promptSize("rows", s.config.AllowedRows)
	if err != nil {
		return false, err
	}
	s.renderer.Clear()

	cols, err := s.promptSize("cols", s.config.AllowedCols)
	if err != nil {
		return false, err
	}
	s.renderer.Clear()

	grid, err := model.NewGrid(rows, cols)
	if err != nil {
		return false, err
	}

	if err = s.initialize(grid); err != nil {
		return false, err
	}

	generations, err := s.promptGenerations()
	if err != nil {
		return false, err
	}
	s.renderer.Clear()

	history := s.simulate(grid, generations)

	if err = s.promptSave(history); err != nil {
		return false, err
	}

	return s.promptNext(grid)
}

func (s *Session) promptSize(name string, allowed []int) (int, error) {
	choices := formatChoices(allowed)
	for {
		fmt.Fprintf(s.out, "Enter the grid size (%s) [%s only]: ", name, choices)
		n, ok, err := s.in.nextInt()
		if err != nil {
			return 0, err
		}
		if ok && slices.Contains(allowed, n) {
			return n, nil
		}
		s.renderer.Clear()
		fmt.Fprintf(s.out, "Invalid input! %s must be %s only. Please try again.\n", capitalize(name), choices)
	}
}

func (s *Session) initialize(grid *model.Grid) error {
	for {
		fmt.Fprint(s.out, "\nChoose an initialization method:\n",
			"1. Random initialization with a percentage\n",
			"2. Interactive initialization\n",
			"3. Load pattern from file\n",
			"==> Enter your choice: ")

		choice, ok, err := s.in.nextInt()
		if err != nil {
			return err
		}
		s.renderer.Clear()
		if !ok {
			fmt.Fprintln(s.out, "Invalid input. Please enter a number.")
			continue
		}

		switch choice {
		case initRandom:
			example := s.config.DefaultProbability
			fmt.Fprintf(s.out, "Enter the alive cell percentage (e.g., %g for %g%%): ", example, example*100)
			p, ok, err := s.in.nextFloat()
			if err != nil {
				return err
			}
			s.renderer.Clear()
			if !ok || math.IsNaN(p) || p < 0 || p > 1 {
				fmt.Fprintln(s.out, "Invalid percentage. Please enter a number between 0 and 1.")
				continue
			}
			grid.SeedRandom(p, s.Random)
			return nil
		case initManual:
			return s.toggleCells(grid)
		case initFile:
			fmt.Fprint(s.out, "Enter the filename: ")
			filename, err := s.in.next()
			if err != nil {
				return err
			}
			s.renderer.Clear()
			if err = grid.LoadFromFile(filename); err != nil {
				utils.Logf("console: pattern load failed: %v", err)
				fmt.Fprintf(s.out, "Error: Could not load pattern from %q: %v\n", filename, errors.Cause(err))
			}
			return nil
		default:
			fmt.Fprintln(s.out, "**>> Invalid choice. Please select a valid option.")
		}
	}
}

func (s *Session) toggleCells(grid *model.Grid) error {
	s.renderer.DisplayNumbered(grid)
	for {
		fmt.Fprintf(s.out, "Enter the cell number to make it alive (or %d to finish): ", finishManual)
		n, ok, err := s.in.nextInt()
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprint(s.out, "\nInvalid input please enter a valid number!!!!\n\n")
			continue
		}
		if n == finishManual {
			s.renderer.Clear()
			return nil
		}
		if err = grid.SetAlive(n); err != nil {
			fmt.Fprintln(s.out, "Invalid cell number. Try again.")
			continue
		}
		s.renderer.DisplayNumbered(grid)
	}
}

func (s *Session) promptGenerations() (int, error) {
	for {
		fmt.Fprint(s.out, "Enter the number of generations to simulate: ")
		n, ok, err := s.in.nextInt()
		if err != nil {
			return 0, err
		}
		if ok && n >= 0 {
			return n, nil
		}
		fmt.Fprintln(s.out, "Invalid input! Generations must be a non-negative number.")
	}
}

func (s *Session) simulate(grid *model.Grid, generations int) model.History {
	stats := utils.NewStats(grid.Size())
	sim := model.NewSimulator(grid)
	sim.OnGeneration = func(generation int, snap model.Snapshot) {
		s.renderer.Display(generation, snap)
		stats.Update(generation, snap.Population())
		if s.config.FrameDelay > 0 && s.Sleep != nil {
			s.Sleep(s.config.FrameDelay)
		}
	}

	history := sim.Run(generations)

	utils.Logf("console: run %s finished %d generations on %dx%d in %v",
		stats.RunID, stats.TotalGenerations, grid.Rows(), grid.Cols(), stats.Elapsed)
	s.displaySummary(stats, history)
	return history
}

func (s *Session) displaySummary(stats *utils.Stats, history model.History) {
	if len(history) == 0 {
		fmt.Fprint(s.out, "\nNo generations simulated.\n\n")
		return
	}
	fmt.Fprintf(s.out, "\nGenerations: %d | Living: %d | Density: %.1f%% | Peak: %d | Avg Pop: %.1f\n",
		stats.TotalGenerations, stats.FinalPopulation, stats.Density(), stats.PeakPopulation, stats.AveragePopulation)

	if !s.config.DetectCycles {
		fmt.Fprintln(s.out)
		return
	}
	if cycle, ok := history.DetectCycle(); ok {
		if cycle.Period == 1 {
			fmt.Fprintf(s.out, "Pattern became stable at generation %d\n", cycle.Generation-1)
		} else {
			fmt.Fprintf(s.out, "Pattern repeats with period %d from generation %d\n",
				cycle.Period, cycle.Generation-cycle.Period)
		}
	}
	fmt.Fprintln(s.out)
}

func (s *Session) promptSave(history model.History) error {
	fmt.Fprint(s.out, "Do you want to save the current grid state? (y/yes for Yes, n/no for No): ")
	answer, err := s.in.next()
	if err != nil {
		return err
	}
	s.renderer.Clear()

	switch strings.ToLower(answer) {
	case "y", "yes":
	default:
		fmt.Fprint(s.out, ">>>Grid not saved.\n\n")
		return nil
	}

	fmt.Fprint(s.out, "Enter the filename to save: ")
	filename, err := s.in.next()
	if err != nil {
		return err
	}
	s.renderer.Clear()

	if err = history.SaveToFile(filename); err != nil {
		utils.Logf("console: save failed: %v", err)
		fmt.Fprintf(s.out, "Error: Could not open file for writing: %v\n\n", errors.Cause(err))
		return nil
	}
	fmt.Fprintf(s.out, ">>> All generations have been saved to %q\n\n", filename)
	return nil
}

// promptNext offers a reset or exit once a round is over
func (s *Session) promptNext(grid *model.Grid) (bool, error) {
	for {
		fmt.Fprint(s.out, "(1) Reset the game and restart new game\n(2) Exit the game!\n",
			"==> Enter your choice [1 or 2] :")
		choice, err := s.in.next()
		if err != nil {
			return false, err
		}
		switch choice {
		case menuReset:
			grid.Clear()
			s.renderer.Clear()
			return true, nil
		case menuExit:
			return false, nil
		default:
			fmt.Fprintln(s.out, "Invalid choice, Please choose only [1 or 2]")
		}
	}
}

func formatChoices(allowed []int) string {
	parts := make([]string, len(allowed))
	for i, n := range allowed {
		parts[i] = fmt.Sprint(n)
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	case 2:
		return parts[0] + " or " + parts[1]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + ", or " + parts[len(parts)-1]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
