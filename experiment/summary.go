// SPDX-License-Identifier: MIT
// Package: epinet/experiment
//
// summary.go - structural measurements of one network.

package experiment

import (
	"context"
	"fmt"

	"github.com/katalvlaran/epinet/bfs"
	"github.com/katalvlaran/epinet/clustering"
	"github.com/katalvlaran/epinet/core"
)

// Summary holds the measurements reported for every network.
type Summary struct {
	Vertices   int     `json:"vertices"`
	Edges      int     `json:"edges"`
	MeanDegree float64 `json:"mean_degree"`
	Symmetric  bool    `json:"symmetric"`
	Simple     bool    `json:"simple"`

	AvgClustering  float64          `json:"avg_clustering"`
	Pareto         clustering.Split `json:"pareto"`
	ParetoConforms bool             `json:"pareto_conforms"`

	Components       int `json:"components"`
	LargestComponent int `json:"largest_component"`

	// AvgPathLength is meaningful only when PathLengthComputed is set.
	AvgPathLength      float64 `json:"avg_path_length,omitempty"`
	PathLengthComputed bool    `json:"path_length_computed"`
}

// Summarize measures g. The characteristic path length costs one BFS per
// vertex and is computed only when withPaths is set; ctx bounds that pass.
func Summarize[T any](ctx context.Context, g *core.Graph[T], withPaths bool) (Summary, error) {
	if g == nil {
		return Summary{}, fmt.Errorf("experiment: Summarize: nil graph")
	}

	s := Summary{
		Vertices:  g.VertexCount(),
		Edges:     g.EdgeCount(),
		Symmetric: g.IsSymmetric(),
		Simple:    g.IsSimple(),
	}
	if s.Vertices > 0 {
		total := 0
		for _, d := range g.Degrees() {
			total += d
		}
		s.MeanDegree = float64(total) / float64(s.Vertices)
	}

	coefs, err := clustering.Coefficients(g)
	if err != nil {
		return Summary{}, fmt.Errorf("experiment: clustering: %w", err)
	}
	s.AvgClustering = clustering.Mean(coefs)
	s.Pareto = clustering.Pareto(coefs)
	s.ParetoConforms = s.Pareto.Conforms()

	groups, err := bfs.Components(g)
	if err != nil {
		return Summary{}, fmt.Errorf("experiment: components: %w", err)
	}
	s.Components = len(groups)
	s.LargestComponent = bfs.LargestComponentSize(groups)

	if withPaths {
		apl, err := bfs.AveragePathLength(ctx, g)
		if err != nil {
			return Summary{}, fmt.Errorf("experiment: path length: %w", err)
		}
		s.AvgPathLength = apl
		s.PathLengthComputed = true
	}

	return s, nil
}
