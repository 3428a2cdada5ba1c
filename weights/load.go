// Package weights - text loaders.
//
// Input format: a flat text stream of numeric weights separated by any
// whitespace (spaces, tabs, newlines). Blank lines are ignored. This is
// the classic "one instance per file" format used by partition-problem
// sample sets.
package weights

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Load reads whitespace-separated numeric weights from r until EOF.
//
// Contracts:
//   - Every token must parse as a finite real number.
//   - An empty stream yields an empty (non-nil) List.
//
// Errors: ErrBadWeight (wrapped with the offending token), ErrNonFinite,
// or the underlying reader error.
//
// Complexity: O(n) over the token count.
func Load(r io.Reader) (List, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	out := make(List, 0, 16)

	var (
		tok string
		w   float64
		err error
	)
	for sc.Scan() {
		tok = sc.Text()
		w, err = strconv.ParseFloat(tok, 64)
		if err != nil {
			// Boundary wrap: token context is essential for diagnosing
			// malformed input files; errors.Is(err, ErrBadWeight) holds.
			return nil, fmt.Errorf("token %q: %w", tok, ErrBadWeight)
		}
		out = append(out, w)
	}
	if err = sc.Err(); err != nil {
		return nil, err
	}
	if err = out.Validate(); err != nil {
		return nil, err
	}

	return out, nil
}

// LoadFile opens path and delegates to Load.
//
// Errors: os.Open errors as-is, plus everything Load may return.
func LoadFile(path string) (List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}
