// Package clustering computes local clustering coefficients of epinet graphs
// and the Pareto (80/20) conformity test over their distribution.
//
// For a vertex with degree k and L edges among its neighbors, the local
// coefficient is 2L / (k(k-1)); vertices with k ≤ 1 score exactly 0.
// Functions accept core.Topology, so they work for any payload type.
package clustering
