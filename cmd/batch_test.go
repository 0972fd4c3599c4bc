package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteam/internal/config"
	"github.com/alexiusacademia/gosteam/internal/region"
	"github.com/alexiusacademia/gosteam/internal/steam"
)

func TestEvaluateJob(t *testing.T) {
	job := &config.Job{Points: []config.PointSpec{
		{Name: "inlet", Pair: "pT", A: 10, B: 800, ToP: 0.1, Efficiency: 1},
		{Name: "feed", Pair: "ph", A: 3, B: 500},
		{Name: "outside", Pair: "pT", A: 200, B: 300, ToP: 0.1, Efficiency: 0.8},
	}}

	rows, err := evaluateJob(context.Background(), job)
	require.NoError(t, err)
	require.Len(t, rows, 5)

	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Name
	}
	assert.Equal(t, []string{"inlet", "inlet → out", "feed", "outside", "outside → out"}, names)

	out := rows[1]
	assert.Equal(t, steam.PS, out.Pair)
	assert.Equal(t, region.Region4, out.Region)
	assert.InDelta(t, 0.888998950, out.Properties.X, 1e-6)
	assert.InDelta(t, 2424.378086, out.Properties.H, 1e-3)

	assert.Equal(t, region.Region1, rows[2].Region)
	assert.False(t, rows[3].Valid())
	assert.False(t, rows[4].Valid())
}

func TestExpandRowWithEfficiency(t *testing.T) {
	inlet := steam.NewPT(10, 800)
	row := expandRow("stage", inlet, 0.1, 0.85)

	require.True(t, row.Valid())
	assert.Equal(t, steam.PH, row.Pair)
	assert.InDelta(t, row.B, row.Properties.H, 1e-9)

	ideal := inlet.Expand(0.1).H()
	assert.InDelta(t, inlet.H()-0.85*(inlet.H()-ideal), row.Properties.H, 1e-9)
}
