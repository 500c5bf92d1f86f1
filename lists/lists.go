// Package lists reads two-column integer files and renders their columns as
// brace-delimited initializer lists.
package lists

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charlieparkes/makelist/app"
	"github.com/charlieparkes/makelist/fileio"
	"go.uber.org/zap"
)

// ErrTooFewFields is returned when a line has fewer than two tokens.
var ErrTooFewFields = errors.New("expected at least two fields")

// Lists holds the two columns of an input file in line order.
type Lists struct {
	Left  []int
	Right []int
}

// Len is the number of records read.
func (l Lists) Len() int {
	return len(l.Left)
}

// ParseError reports a line that does not hold two integers. Err is
// ErrTooFewFields or the *strconv.NumError from converting a token.
type ParseError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Read parses every line of r into a pair of integers. Only the first two
// whitespace-separated tokens of a line are used.
func Read(r io.Reader) (Lists, error) {
	var l Lists
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)
	scanner.Split(scanLines)
	n := 0
	for scanner.Scan() {
		n++
		left, right, err := parseLine(scanner.Text())
		if err != nil {
			return Lists{}, &ParseError{Line: n, Text: scanner.Text(), Err: err}
		}
		l.Left = append(l.Left, left)
		l.Right = append(l.Right, right)
	}
	if err := scanner.Err(); err != nil {
		return Lists{}, err
	}
	return l, nil
}

// scanLines is bufio.ScanLines that also ends a line at a lone '\r'.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		switch {
		case i+1 < len(data) && data[i+1] == '\n':
			return i + 2, data[:i], nil
		case i+1 < len(data) || atEOF:
			return i + 1, data[:i], nil
		}
		// A '\r' at the end of the buffer may be followed by '\n'.
		return 0, nil, nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

func parseLine(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return 0, 0, ErrTooFewFields
	}
	left, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, err
	}
	right, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, err
	}
	return left, right, nil
}

// Load opens path (a local file or gs:// URL) and reads it with Read.
func Load(ctx context.Context, path string) (Lists, error) {
	f, err := fileio.Open(ctx, path)
	if err != nil {
		return Lists{}, err
	}
	defer f.Close()

	l, err := Read(f)
	if err != nil {
		return Lists{}, fmt.Errorf("%s: %w", path, err)
	}
	app.Log.Debug("loaded lists", zap.String("path", path), zap.Int("records", l.Len()))
	return l, nil
}
