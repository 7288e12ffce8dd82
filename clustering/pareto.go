// SPDX-License-Identifier: MIT
// Package: epinet/clustering
//
// pareto.go - 80/20 conformity of the clustering distribution.

package clustering

import (
	"slices"

	"github.com/katalvlaran/epinet/core"
)

// TopSharePercent is the share of vertices forming the "top" group.
const TopSharePercent = 20

// Split is the outcome of the Pareto test.
type Split struct {
	TopCount int     // m = floor(N·20/100)
	Top      float64 // Σ of the m largest coefficients
	Rest     float64 // Σ of the remaining N-m coefficients
}

// Conforms reports whether the top group holds at least as much total
// clustering as everyone else.
func (s Split) Conforms() bool {
	return s.Top >= s.Rest
}

// Pareto sorts a copy of coefs in descending order and splits it after the
// first floor(N·20/100) entries. coefs is not modified.
//
// Complexity: O(N log N).
func Pareto(coefs []float64) Split {
	sorted := slices.Clone(coefs)
	slices.Sort(sorted)
	slices.Reverse(sorted)

	m := len(sorted) * TopSharePercent / 100
	s := Split{TopCount: m}
	for i, c := range sorted {
		if i < m {
			s.Top += c
		} else {
			s.Rest += c
		}
	}

	return s
}

// ParetoSplit computes every coefficient of g and returns the Pareto split.
func ParetoSplit(g core.Topology) (Split, error) {
	coefs, err := Coefficients(g)
	if err != nil {
		return Split{}, err
	}

	return Pareto(coefs), nil
}

// ParetoConformity reports whether the top 20% of vertices by clustering
// coefficient account for at least as much total clustering as the other 80%.
// An empty graph conforms trivially (0 ≥ 0).
func ParetoConformity(g core.Topology) (bool, error) {
	s, err := ParetoSplit(g)
	if err != nil {
		return false, err
	}

	return s.Conforms(), nil
}
