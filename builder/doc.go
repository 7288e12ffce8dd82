// Package builder generates the random contact networks used by epinet
// experiments.
//
// The package is built around two composable ideas:
//
//   - Constructor: a function that mutates a private adjacency under a
//     resolved builderConfig. Constructors validate their parameters first and
//     return sentinel errors; they never panic.
//   - BuilderOption: a functional option (WithSeed, WithRand,
//     WithMaxRewireAttempts, WithLogger) resolved once per BuildGraph call.
//
// Topologies:
//
//   - ErdosRenyi(n, p):       every unordered pair linked independently with probability p.
//   - RingLattice(n, k):      each vertex linked to its k/2 nearest ring neighbors per side.
//   - WattsStrogatz(n, k, b): RingLattice(n, k), then each clockwise lattice edge
//     rewired with probability b to a uniformly chosen non-neighbor.
//
// BuildGraph[T] applies constructors in order and freezes the result into a
// core.Graph[T] whose payloads start at the zero value of T. NewErdosRenyi and
// NewWattsStrogatz are one-call shorthands.
//
// Randomness:
//
//	Every Bernoulli trial draws rng.Intn(ProbabilityResolution) and succeeds when
//	draw/ProbabilityResolution ≤ p. Probabilities 0 and 1 are decided without a
//	draw, so they need no RNG. The same seed, parameters and constructor order
//	always yield the same graph.
//
// Errors:
//
//	ErrTooFewVertices, ErrInvalidDegree, ErrInvalidProbability,
//	ErrNeedRandSource and ErrConstructFailed; match with errors.Is.
package builder
