package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteam/internal/region"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "job.yaml", `
name: turbine
points:
  - name: inlet
    pair: pT
    a: 10
    b: 800
    to_p: 0.1
  - pair: PH
    a: 3
    b: 500
`)
	job, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "turbine", job.Name)
	require.Len(t, job.Points, 2)
	assert.Equal(t, "inlet", job.Points[0].Name)
	assert.True(t, job.Points[0].Expands())
	assert.Equal(t, 1.0, job.Points[0].Efficiency)
	assert.Equal(t, "point 2", job.Points[1].Name)
	assert.False(t, job.Points[1].Expands())

	st, err := job.Points[0].State()
	require.NoError(t, err)
	assert.Equal(t, region.Region2, st.Region())

	st, err = job.Points[1].State()
	require.NoError(t, err)
	assert.Equal(t, region.Region1, st.Region())
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "job.json", `{"name":"boiler","points":[{"pair":"Tx","a":373.15,"b":0.5}]}`)
	job, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "boiler", job.Name)

	st, err := job.Points[0].State()
	require.NoError(t, err)
	assert.Equal(t, region.Region4, st.Region())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.json", `{"points": [`))
	assert.Error(t, err)

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"empty", `name: nothing`, "at least one point"},
		{"pair", "points:\n  - pair: uv\n    a: 1\n    b: 2\n", "unknown input pair"},
		{"nan", "points:\n  - pair: pT\n    a: .nan\n    b: 300\n", "finite"},
		{"outlet", "points:\n  - pair: pT\n    a: 1\n    b: 300\n    to_p: -1\n", "outlet pressure"},
		{"efficiency", "points:\n  - pair: pT\n    a: 1\n    b: 300\n    to_p: 0.1\n    efficiency: 1.5\n", "efficiency"},
		{"efficiency nan", "points:\n  - pair: pT\n    a: 1\n    b: 300\n    to_p: 0.1\n    efficiency: .nan\n", "efficiency"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "job.yml", tt.content))
			require.Error(t, err)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
