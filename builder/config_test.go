// Package builder contains unit tests for the configuration primitives
// (builderConfig and BuilderOption).
package builder

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
	assert.Nil(t, cfg.logger)
	assert.Equal(t, DefaultMaxRewireAttempts, cfg.maxRewireAttempts)

	// debug on a silent config is a no-op.
	assert.NotPanics(t, func() { cfg.debug("ignored", "k", 1) })
}

func TestRNGOptions(t *testing.T) {
	t.Parallel()

	a := newBuilderConfig(WithSeed(5))
	b := newBuilderConfig(WithSeed(5))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(1))
	c := newBuilderConfig(WithSeed(5), WithRand(r))
	assert.Same(t, r, c.rng, "later option wins")
}

func TestOptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { WithRand(nil) })
	assert.Panics(t, func() { WithLogger(nil) })
	assert.Panics(t, func() { WithMaxRewireAttempts(0) })
	assert.NotPanics(t, func() { WithMaxRewireAttempts(1) })
	assert.Equal(t, 3, newBuilderConfig(WithMaxRewireAttempts(3)).maxRewireAttempts)
}

func TestWithLogger_EmitsDiagnostics(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := BuildGraph[int]([]BuilderOption{WithLogger(l)}, RingLattice(8, 2))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "ring lattice built")

	buf.Reset()
	_, err = BuildGraph[int]([]BuilderOption{WithLogger(l), WithSeed(2)}, WattsStrogatz(50, 4, 0.5))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "watts-strogatz rewired")
	assert.Contains(t, buf.String(), "rewired=")
}

func TestBernoulli_Edges(t *testing.T) {
	t.Parallel()

	// Both extremes decide without touching the (nil) RNG.
	assert.False(t, bernoulli(nil, 0))
	assert.True(t, bernoulli(nil, 1))

	// Tiny p still succeeds on a zero draw; count over many trials stays small.
	rng := rand.New(rand.NewSource(11))
	hits := 0
	for i := 0; i < 10000; i++ {
		if bernoulli(rng, 0.0001) {
			hits++
		}
	}
	assert.Less(t, hits, 20)
}
