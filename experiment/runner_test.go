package experiment_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epinet/builder"
	"github.com/katalvlaran/epinet/converters"
	"github.com/katalvlaran/epinet/experiment"
)

func TestRunner_SeededPlan(t *testing.T) {
	t.Parallel()

	plan, err := experiment.DecodePlan([]byte(tomlPlan), ".toml")
	require.NoError(t, err)

	results, err := experiment.NewRunner().Run(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, results, 4)

	for i, want := range []int64{42, 43, 44} {
		res := results[i]
		assert.Equal(t, "small-world", res.Experiment)
		assert.Equal(t, i, res.Repetition)
		assert.Equal(t, want, res.Seed)
		assert.Equal(t, 100, res.Summary.Vertices)
		assert.Equal(t, 200, res.Summary.Edges)
		assert.InDelta(t, 4.0, res.Summary.MeanDegree, 1e-12)
		assert.True(t, res.Summary.Symmetric)
		assert.True(t, res.Summary.Simple)
		_, err := uuid.Parse(res.RunID)
		assert.NoError(t, err)
	}
	assert.NotEqual(t, results[0].RunID, results[1].RunID)

	// Same seed, same network: rerunning reproduces the measurements.
	again, err := experiment.NewRunner().Run(context.Background(), plan)
	require.NoError(t, err)
	for i := range results {
		assert.Equal(t, results[i].Summary, again[i].Summary)
	}

	// The results match a direct build with the same seed.
	g, err := builder.NewErdosRenyi[int](50, 0.1, builder.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, g.EdgeCount(), results[3].Summary.Edges)
}

func TestRunner_ClockSeedIsLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.InfoLevel})
	fixed := time.Unix(0, 1000)

	plan := &experiment.Plan{Experiments: []experiment.Experiment{
		{Name: "clock", Model: experiment.ModelErdosRenyi, N: 10, P: 0.3, Repetitions: 2},
	}}
	results, err := experiment.NewRunner(
		experiment.WithLogger(logger),
		experiment.WithClock(func() time.Time { return fixed }),
	).Run(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, int64(1000), results[0].Seed)
	assert.Equal(t, int64(1001), results[1].Seed)
	assert.Contains(t, buf.String(), "seed taken from clock")
	assert.Contains(t, buf.String(), "run complete")
}

func TestRunner_FileModel(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	g, err := builder.NewErdosRenyi[int](6, 1)
	require.NoError(t, err)
	require.NoError(t, converters.WriteFile(filepath.Join(dir, "net.txt"), g))

	plan, err := experiment.LoadPlan(writePlan(t, dir, "plan.yaml", yamlPlan))
	require.NoError(t, err)

	results, err := experiment.NewRunner(experiment.WithPathLength(true)).Run(context.Background(), plan)
	require.NoError(t, err)
	require.Len(t, results, 2)

	loaded := results[0].Summary
	assert.Equal(t, int64(0), results[0].Seed)
	assert.Equal(t, 15, loaded.Edges)
	assert.Equal(t, 1.0, loaded.AvgClustering)
	assert.Equal(t, 1, loaded.Components)
	assert.Equal(t, 6, loaded.LargestComponent)
	assert.True(t, loaded.PathLengthComputed)
	assert.Equal(t, 1.0, loaded.AvgPathLength)

	// A pure ring lattice with k=2 has no triangles.
	lattice := results[1].Summary
	assert.Equal(t, 0.0, lattice.AvgClustering)
	assert.Equal(t, 20, lattice.Edges)
}

func TestRunner_StopsOnFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	plan, err := experiment.LoadPlan(writePlan(t, dir, "plan.yaml", yamlPlan))
	require.NoError(t, err)

	// net.txt does not exist next to the plan.
	results, err := experiment.NewRunner().Run(context.Background(), plan)
	assert.Empty(t, results)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), `experiment "loaded" repetition 0`)
}

func TestRunner_Cancelled(t *testing.T) {
	t.Parallel()

	plan, err := experiment.DecodePlan([]byte(tomlPlan), ".toml")
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := experiment.NewRunner().Run(ctx, plan)
	assert.Empty(t, results)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunner_OptionPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { experiment.WithLogger(nil) })
	assert.Panics(t, func() { experiment.WithClock(nil) })
}
