package experiment_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/epinet/experiment"
)

const tomlPlan = `
[[experiment]]
name        = "small-world"
model       = "watts-strogatz"
n           = 100
k           = 4
beta        = 0.2
repetitions = 3
seed        = 42

[[experiment]]
name  = "sparse"
model = "erdos-renyi"
n     = 50
p     = 0.1
seed  = 7
`

const yamlPlan = `
experiments:
  - name: loaded
    model: file
    file: net.txt
  - name: lattice
    model: watts-strogatz
    n: 20
    k: 2
`

// writePlan stores content under dir/name and returns the path.
func writePlan(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadPlan_TOML(t *testing.T) {
	t.Parallel()

	p, err := experiment.LoadPlan(writePlan(t, t.TempDir(), "plan.toml", tomlPlan))
	require.NoError(t, err)
	require.Len(t, p.Experiments, 2)

	ws := p.Experiments[0]
	assert.Equal(t, "small-world", ws.Name)
	assert.Equal(t, experiment.ModelWattsStrogatz, ws.Model)
	assert.Equal(t, 100, ws.N)
	assert.Equal(t, 4, ws.K)
	assert.InDelta(t, 0.2, ws.Beta, 1e-12)
	assert.Equal(t, 3, ws.Runs())
	assert.Equal(t, int64(42), ws.Seed)

	assert.Equal(t, 1, p.Experiments[1].Runs())
}

func TestLoadPlan_YAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	for _, name := range []string{"plan.yaml", "plan.YML"} {
		p, err := experiment.LoadPlan(writePlan(t, dir, name, yamlPlan))
		require.NoError(t, err, name)
		require.Len(t, p.Experiments, 2)
		assert.Equal(t, experiment.ModelFile, p.Experiments[0].Model)
		assert.Equal(t, "net.txt", p.Experiments[0].File)
		assert.Equal(t, 1, p.Experiments[0].Runs())
	}
}

func TestDecodePlan_Rejects(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data string
		ext  string
		want error
	}{
		{"unknown extension", tomlPlan, ".json", experiment.ErrUnsupportedFormat},
		{"empty toml", "", ".toml", experiment.ErrInvalidPlan},
		{"unknown toml key", "[[experiment]]\nname=\"a\"\nmodel=\"file\"\nfile=\"x\"\ncolour=1\n", ".toml", experiment.ErrInvalidPlan},
		{"unknown yaml key", "experiments:\n  - name: a\n    model: file\n    file: x\n    colour: 1\n", ".yaml", experiment.ErrInvalidPlan},
		{"bad model", "[[experiment]]\nname=\"a\"\nmodel=\"barabasi\"\nn=5\n", ".toml", experiment.ErrInvalidPlan},
		{"missing n", "[[experiment]]\nname=\"a\"\nmodel=\"erdos-renyi\"\np=0.5\n", ".toml", experiment.ErrInvalidPlan},
		{"missing file", "[[experiment]]\nname=\"a\"\nmodel=\"file\"\n", ".toml", experiment.ErrInvalidPlan},
		{"p above one", "[[experiment]]\nname=\"a\"\nmodel=\"erdos-renyi\"\nn=5\np=1.5\n", ".toml", experiment.ErrInvalidPlan},
		{"odd k", "[[experiment]]\nname=\"a\"\nmodel=\"watts-strogatz\"\nn=10\nk=3\n", ".toml", experiment.ErrInvalidPlan},
		{"k not below n", "[[experiment]]\nname=\"a\"\nmodel=\"watts-strogatz\"\nn=4\nk=4\n", ".toml", experiment.ErrInvalidPlan},
		{"duplicate names", "[[experiment]]\nname=\"a\"\nmodel=\"file\"\nfile=\"x\"\n[[experiment]]\nname=\"a\"\nmodel=\"file\"\nfile=\"y\"\n", ".toml", experiment.ErrInvalidPlan},
		{"malformed yaml", "experiments: [", ".yaml", experiment.ErrInvalidPlan},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, err := experiment.DecodePlan([]byte(tc.data), tc.ext)
			assert.Nil(t, p)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidate_Messages(t *testing.T) {
	t.Parallel()

	p := &experiment.Plan{Experiments: []experiment.Experiment{{Name: "x", Model: "erdos-renyi", N: 5, P: 2}}}
	err := p.Validate()
	require.ErrorIs(t, err, experiment.ErrInvalidPlan)
	assert.Contains(t, err.Error(), "must not exceed 1")

	var nilPlan *experiment.Plan
	assert.ErrorIs(t, nilPlan.Validate(), experiment.ErrInvalidPlan)
}

func TestLoadPlan_Missing(t *testing.T) {
	t.Parallel()

	_, err := experiment.LoadPlan(filepath.Join(t.TempDir(), "none.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
