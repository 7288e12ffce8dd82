// SPDX-License-Identifier: MIT
// Package: epinet/converters
//
// reader.go - adjacency-list loader.
//
// Contract:
//   • Line 1 holds N ≥ 0 (surrounding blanks allowed).
//   • Exactly N neighbor lines follow; tokens are split on whitespace and commas.
//   • An isolated vertex is an empty line of its own. An isolated LAST vertex
//     therefore needs its empty line too: "3\n1\n0\n" declares three vertices
//     but holds two lines and fails with ErrTruncated; write "3\n1\n0\n\n".
//   • Every token is a decimal ID in [0,N) different from the line's own vertex.
//   • Only blank lines may follow vertex N-1.
//   • Lists are kept verbatim: order and duplicates are preserved.
//
// Complexity: O(bytes + N + Σdeg); WithStrictSymmetry adds O(Σdeg·maxdeg).

package converters

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/epinet/core"
)

// preallocCap limits up-front allocation driven by the declared count.
const preallocCap = 1 << 16

// Read parses one adjacency-list document from r into a Graph[T] with
// zero-value payloads. r is not closed.
//
// Every vertex, isolated ones included, owns one line after the count, so a
// document whose last vertex is isolated must end with an empty line; without
// it Read reports ErrTruncated on the line after the last one read.
func Read[T any](r io.Reader, opts ...Option) (*core.Graph[T], error) {
	cfg := newReadConfig(opts...)
	adj, err := parse(r, cfg)
	if err != nil {
		return nil, err
	}
	if cfg.strictSymmetry {
		if perr := checkSymmetry(adj); perr != nil {
			return nil, perr
		}
	}

	g, err := core.FromAdjacency[T](adj)
	if err != nil {
		// parse has already validated range and loops.
		return nil, fmt.Errorf("converters: build: %w", err)
	}

	return g, nil
}

// Load reads a document from rc and always closes it. A close failure is
// reported only when parsing succeeded.
func Load[T any](rc io.ReadCloser, opts ...Option) (g *core.Graph[T], err error) {
	defer func() {
		if cerr := rc.Close(); cerr != nil && err == nil {
			g, err = nil, fmt.Errorf("converters: close: %w", cerr)
		}
	}()

	return Read[T](rc, opts...)
}

// LoadFile opens path and loads it with Load.
func LoadFile[T any](path string, opts ...Option) (*core.Graph[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("converters: open %s: %w", path, err)
	}

	return Load[T](f, opts...)
}

// parse runs the line-oriented state machine: count, N vertex lines, blank tail.
func parse(r io.Reader, cfg readConfig) ([][]int, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(64*1024, cfg.maxLineBytes)), cfg.maxLineBytes)
	line := 0

	// 1) Vertex count.
	if !sc.Scan() {
		if err := scanErr(sc, 1); err != nil {
			return nil, err
		}
		return nil, parseErrorf(1, ErrMalformedCount, "empty input")
	}
	line++
	head := strings.TrimSpace(sc.Text())
	n, err := strconv.Atoi(head)
	switch {
	case err != nil:
		return nil, parseErrorf(line, ErrMalformedCount, "%q is not a number", head)
	case n < 0:
		return nil, parseErrorf(line, ErrMalformedCount, "negative count %d", n)
	case n > cfg.maxVertices:
		return nil, parseErrorf(line, ErrMalformedCount, "count %d exceeds limit %d", n, cfg.maxVertices)
	}

	// 2) One neighbor line per vertex.
	adj := make([][]int, 0, min(n, preallocCap))
	for v := 0; v < n; v++ {
		if !sc.Scan() {
			if err := scanErr(sc, line+1); err != nil {
				return nil, err
			}
			return nil, parseErrorf(line+1, ErrTruncated, "got %d of %d vertex lines", v, n)
		}
		line++
		nbrs, perr := parseNeighbors(sc.Text(), v, n, line)
		if perr != nil {
			return nil, perr
		}
		adj = append(adj, nbrs)
	}

	// 3) Blank tail only.
	for sc.Scan() {
		line++
		if strings.TrimSpace(sc.Text()) != "" {
			return nil, parseErrorf(line, ErrTrailingData, "%d vertex lines already read", n)
		}
	}
	if err := scanErr(sc, line+1); err != nil {
		return nil, err
	}

	return adj, nil
}

// parseNeighbors converts one vertex line into IDs, validating each token.
func parseNeighbors(text string, v, n, line int) ([]int, *ParseError) {
	fields := strings.FieldsFunc(text, isSeparator)
	if len(fields) == 0 {
		return nil, nil
	}

	nbrs := make([]int, 0, len(fields))
	for _, tok := range fields {
		u, err := strconv.Atoi(tok)
		switch {
		case err != nil:
			return nil, parseErrorf(line, ErrBadNeighbor, "vertex %d: %q is not a number", v, tok)
		case u < 0 || u >= n:
			return nil, parseErrorf(line, ErrBadNeighbor, "vertex %d: id %d outside [0,%d)", v, u, n)
		case u == v:
			return nil, parseErrorf(line, ErrBadNeighbor, "vertex %d lists itself", v)
		}
		nbrs = append(nbrs, u)
	}

	return nbrs, nil
}

func isSeparator(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// scanErr converts a scanner failure into an error; nil on clean EOF.
func scanErr(sc *bufio.Scanner, line int) error {
	err := sc.Err()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bufio.ErrTooLong):
		return &ParseError{Line: line, Err: err}
	default:
		return fmt.Errorf("converters: read: %w", err)
	}
}

// checkSymmetry finds the first vertex line whose entries are not mirrored
// with equal multiplicity.
func checkSymmetry(adj [][]int) *ParseError {
	for v, nbrs := range adj {
		for _, u := range nbrs {
			if count(nbrs, u) != count(adj[u], v) {
				return parseErrorf(v+2, ErrAsymmetric, "vertex %d lists %d but not vice versa", v, u)
			}
		}
	}

	return nil
}

func count(ids []int, id int) int {
	c := 0
	for _, x := range ids {
		if x == id {
			c++
		}
	}

	return c
}
