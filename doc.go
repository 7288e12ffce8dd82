// Package epinet builds, loads and measures the contact networks that
// epidemic (SIR) simulations run on.
//
// 🚀 What is epinet?
//
//	A small, deterministic toolkit for undirected, unweighted networks:
//		• Core primitives: immutable adjacency with per-vertex payloads
//		• Random models: Erdős–Rényi G(n, p) and Watts–Strogatz small worlds
//		• Loader: the line-oriented adjacency-list text format
//		• Analysis: local/average clustering, the 80/20 Pareto test,
//		  components and the characteristic path length
//		• Experiments: TOML/YAML plans run by a logging runner and a CLI
//
// ✨ Why choose epinet?
//
//   - Reproducible – every stochastic builder takes an explicit seed or *rand.Rand
//   - Strict contracts – sentinel errors, no panics inside algorithms
//   - Generic payloads – core.Graph[T] carries sir.State or any type you need
//
// Packages:
//
//	core/        - Graph[T], Topology and payload access
//	builder/     - BuildGraph, ErdosRenyi, RingLattice, WattsStrogatz
//	converters/  - adjacency-list reader/writer, DOT and SVG export
//	bfs/         - breadth-first search, components, average path length
//	clustering/  - local and average clustering, Pareto split
//	sir/         - Susceptible / Infected / Resistant payload
//	experiment/  - plan files, runner and network summaries
//	cmd/epinet   - command-line front end
//
// Quick example:
//
//	g, err := builder.NewWattsStrogatz[sir.State](1000, 10, 0.1, builder.WithSeed(42))
//	if err != nil {
//		return err
//	}
//	avg, _ := clustering.Average(g)
//
//	go install github.com/katalvlaran/epinet/cmd/epinet@latest
package epinet
