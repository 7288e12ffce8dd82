// Package experiment runs batches of structural network experiments.
//
// A Plan is loaded from TOML or YAML, validated, and executed by a Runner.
// Every repetition builds one network (Erdős–Rényi, Watts–Strogatz, or a
// loaded adjacency file), measures it with Summarize, and is tagged with a
// fresh run ID.
//
// TOML plan:
//
//	[[experiment]]
//	name        = "small-world"
//	model       = "watts-strogatz"
//	n           = 1000
//	k           = 10
//	beta        = 0.1
//	repetitions = 5
//	seed        = 42
//
// YAML plan:
//
//	experiments:
//	  - name: sparse
//	    model: erdos-renyi
//	    n: 1000
//	    p: 0.01
//
// Repetition r of an experiment uses seed Seed+r. Seed 0 asks for a seed
// taken from the clock; the chosen value is logged and stored in the Result.
package experiment
