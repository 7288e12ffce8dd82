// Package builder defines shared constants used by graph builders, ensuring
// consistent defaults and validation across all topology constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodErdosRenyi is the canonical name for the ErdosRenyi constructor.
	MethodErdosRenyi = "ErdosRenyi"
	// MethodRingLattice is the canonical name for the RingLattice constructor.
	MethodRingLattice = "RingLattice"
	// MethodWattsStrogatz is the canonical name for the WattsStrogatz constructor.
	MethodWattsStrogatz = "WattsStrogatz"
)

//-----------------------------------------------------------------------------
// Validation bounds
//-----------------------------------------------------------------------------

// MinVertices is the smallest vertex count accepted by every constructor.
const MinVertices = 1

// MinProbability is the lower bound for p and beta, inclusive.
const MinProbability = 0.0

// MaxProbability is the upper bound for p and beta, inclusive.
const MaxProbability = 1.0

//-----------------------------------------------------------------------------
// Sampling
//-----------------------------------------------------------------------------

// ProbabilityResolution is the size of the discrete uniform support used for
// every Bernoulli trial: a draw is rng.Intn(ProbabilityResolution) divided by
// ProbabilityResolution, i.e. a value in {0, 0.0001, …, 0.9999}.
const ProbabilityResolution = 10000

// DefaultMaxRewireAttempts is the default cap on target draws per rewired edge.
// With n >> k the acceptance rate is close to 1, so the cap is only reached on
// degenerate parameters.
const DefaultMaxRewireAttempts = 10000
