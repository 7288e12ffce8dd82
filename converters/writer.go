// SPDX-License-Identifier: MIT
// Package: epinet/converters
//
// writer.go - adjacency-list and Graphviz writers.

package converters

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/epinet/core"
)

// Write emits g in the adjacency-list format accepted by Read. Lists are
// written in stored order; Read(Write(g)) reproduces the same topology.
func Write(w io.Writer, g core.Topology) error {
	bw := bufio.NewWriter(w)
	n := g.VertexCount()
	bw.WriteString(strconv.Itoa(n))
	bw.WriteByte('\n')

	var num []byte
	for v := 0; v < n; v++ {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return fmt.Errorf("converters: write vertex %d: %w", v, err)
		}
		for i, u := range nbrs {
			if i > 0 {
				bw.WriteByte(' ')
			}
			num = strconv.AppendInt(num[:0], int64(u), 10)
			bw.Write(num)
		}
		bw.WriteByte('\n')
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("converters: write: %w", err)
	}

	return nil
}

// WriteFile writes g to path, creating or truncating it.
func WriteFile(path string, g core.Topology) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("converters: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("converters: close %s: %w", path, cerr)
		}
	}()

	return Write(f, g)
}

// WriteDOT emits g as an undirected Graphviz graph. Each vertex is labelled
// with fmt.Sprint of its payload; each unordered pair listed by either
// endpoint becomes one edge, in first-seen order.
func WriteDOT[T any](w io.Writer, g *core.Graph[T]) error {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=10];\n")
	buf.WriteString("\n")

	n := g.VertexCount()
	for v := 0; v < n; v++ {
		p, err := g.Payload(v)
		if err != nil {
			return fmt.Errorf("converters: dot vertex %d: %w", v, err)
		}
		fmt.Fprintf(&buf, "  %d [label=%q];\n", v, fmt.Sprint(p))
	}

	buf.WriteString("\n")
	seen := make(map[[2]int]struct{})
	for v := 0; v < n; v++ {
		nbrs, err := g.Neighbors(v)
		if err != nil {
			return fmt.Errorf("converters: dot vertex %d: %w", v, err)
		}
		for _, u := range nbrs {
			key := [2]int{min(u, v), max(u, v)}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			fmt.Fprintf(&buf, "  %d -- %d;\n", key[0], key[1])
		}
	}
	buf.WriteString("}\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("converters: dot: %w", err)
	}

	return nil
}

// RenderSVG renders DOT text to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot []byte) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("converters: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, fmt.Errorf("converters: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("converters: render: %w", err)
	}

	return buf.Bytes(), nil
}
