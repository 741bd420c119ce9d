package model

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// ErrMalformedPattern is returned when a pattern header cannot be parsed
var ErrMalformedPattern = errors.New("malformed pattern")

// MaxPatternDimension bounds the rows and cols a pattern may declare
const MaxPatternDimension = 4096

// LoadFromSource replaces the grid with a pattern read from r. The pattern is
// "<rows> <cols>" followed by up to rows whitespace-delimited lines where '*' is
// alive and anything else is dead. Short or missing lines are padded with dead
// cells and characters past cols are ignored. The grid is only modified once
// the whole pattern has been parsed.
func (g *Grid) LoadFromSource(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	rows, err := scanDimension(sc, "rows")
	if err != nil {
		return err
	}
	cols, err := scanDimension(sc, "cols")
	if err != nil {
		return err
	}

	cells := newCells(rows, cols)
	for row := 0; row < rows && sc.Scan(); row++ {
		line := sc.Text()
		for col := 0; col < cols && col < len(line); col++ {
			cells[row][col] = line[col] == aliveGlyph
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "[LoadFromSource] failed to read pattern rows")
	}

	g.replace(rows, cols, cells)
	return nil
}

func scanDimension(sc *bufio.Scanner, name string) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, errors.Wrapf(err, "[LoadFromSource] failed to read %s", name)
		}
		return 0, errors.Wrapf(ErrMalformedPattern, "[LoadFromSource] missing %s", name)
	}
	n, err := strconv.Atoi(sc.Text())
	if err != nil {
		return 0, errors.Wrapf(ErrMalformedPattern, "[LoadFromSource] %s %q is not a number", name, sc.Text())
	}
	if n <= 0 || n > MaxPatternDimension {
		return 0, errors.Wrapf(ErrInvalidDimensions, "[LoadFromSource] %s=%d", name, n)
	}
	return n, nil
}

// LoadFromFile opens filename and loads it with LoadFromSource. A file that
// cannot be opened leaves the grid untouched.
func (g *Grid) LoadFromFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Wrapf(err, "[LoadFromFile] failed to open file: %+v", filename)
	}
	defer f.Close()

	return errors.WithMessagef(g.LoadFromSource(f), "[LoadFromFile] %+v", filename)
}
