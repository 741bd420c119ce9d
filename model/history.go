package model

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

// History is the ordered sequence of snapshots produced by one run
type History []Snapshot

// Export writes every generation as a "Generation <n>:" header (1-based),
// the grid in '*'/'-' rows and a blank separator line
func (h History) Export(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i, s := range h {
		if _, err := fmt.Fprintf(bw, "Generation %d:\n%s\n", i+1, s); err != nil {
			return errors.Wrapf(err, "[Export] failed to write generation %d", i+1)
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[Export] failed to flush history")
	}
	return nil
}

// SaveToFile exports the history to the named file, creating or truncating it
func (h History) SaveToFile(filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "[SaveToFile] failed to create file: %+v", filename)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "[SaveToFile] failed to close file: %+v", filename)
		}
	}()

	return h.Export(f)
}

// Cycle describes the first snapshot that repeats an earlier one
type Cycle struct {
	// Generation is the 1-based generation that repeats an earlier state
	Generation int
	// Period is the distance back to the matching state; 1 means a still life
	Period int
}

// DetectCycle finds the first generation whose state was already seen earlier in
// the history. It reports false when every snapshot is distinct.
func (h History) DetectCycle() (Cycle, bool) {
	seen := make(map[string]int, len(h))
	for i, s := range h {
		hash := s.Hash()
		if prev, ok := seen[hash]; ok {
			return Cycle{Generation: i + 1, Period: i - prev}, true
		}
		seen[hash] = i
	}
	return Cycle{}, false
}
