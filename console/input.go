package console

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// errEndOfInput ends the session when the input stream is exhausted
var errEndOfInput = errors.New("end of input")

// tokenReader reads whitespace-separated tokens, one per prompt answer
type tokenReader struct {
	sc *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenReader{sc: sc}
}

func (t *tokenReader) next() (string, error) {
	if t.sc.Scan() {
		return t.sc.Text(), nil
	}
	if err := t.sc.Err(); err != nil {
		return "", errors.Wrap(err, "[next] failed to read input")
	}
	return "", errEndOfInput
}

// nextInt reads a token and parses it. A parse failure is returned as
// ok == false so callers can re-prompt; only read failures are errors.
func (t *tokenReader) nextInt() (n int, ok bool, err error) {
	tok, err := t.next()
	if err != nil {
		return 0, false, err
	}
	n, perr := strconv.Atoi(tok)
	return n, perr == nil, nil
}

func (t *tokenReader) nextFloat() (f float64, ok bool, err error) {
	tok, err := t.next()
	if err != nil {
		return 0, false, err
	}
	f, perr := strconv.ParseFloat(tok, 64)
	return f, perr == nil, nil
}
