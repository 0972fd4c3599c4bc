package table

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteam/internal/region"
	"github.com/alexiusacademia/gosteam/internal/steam"
)

func TestSpan(t *testing.T) {
	assert.Nil(t, Span(0, 1, 0))
	assert.Equal(t, []float64{5}, Span(5, 10, 1))
	assert.InDeltaSlice(t, []float64{300, 350, 400, 450, 500}, Span(300, 500, 5), 1e-12)
}

func TestEvaluateKeepsOrder(t *testing.T) {
	inputs := []Input{
		{Name: "liquid", Pair: steam.PT, A: 3, B: 300},
		{Name: "vapour", Pair: steam.PT, A: 0.0035, B: 300},
		{Name: "outside", Pair: steam.PT, A: 200, B: 300},
		{Name: "mixture", Pair: steam.Tx, A: 373.15, B: 0.5},
	}
	rows, err := Evaluate(context.Background(), inputs, WithWorkers(2))
	require.NoError(t, err)
	require.Len(t, rows, len(inputs))

	for i, r := range rows {
		assert.Equal(t, inputs[i].Name, r.Name)
	}
	assert.Equal(t, region.Region1, rows[0].Region)
	assert.InDelta(t, 115.331273, rows[0].Properties.H, 1e-5)
	assert.Equal(t, region.Region2, rows[1].Region)
	assert.InDelta(t, 2549.91145, rows[1].Properties.H, 1e-4)
	assert.False(t, rows[2].Valid())
	assert.Equal(t, steam.Properties{}, rows[2].Properties)
	assert.Equal(t, region.Region4, rows[3].Region)
	assert.True(t, math.IsNaN(rows[3].Properties.Cp))
}

func TestEvaluateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Evaluate(ctx, []Input{{Pair: steam.PT, A: 1, B: 300}})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompute(t *testing.T) {
	xs := []float64{1, 10}
	ys := Span(300, 500, 3)
	g, err := Compute(context.Background(), "pt", xs, ys, 4)
	require.NoError(t, err)
	assert.Equal(t, steam.PT, g.Pair)
	require.Len(t, g.Rows, 6)

	assert.Equal(t, 10.0, g.At(1, 2).A)
	assert.Equal(t, 500.0, g.At(1, 2).B)
	assert.Equal(t, region.Region2, g.At(0, 2).Region)
	assert.Equal(t, region.Region1, g.At(1, 2).Region)

	m := g.Matrix(FieldT)
	r, c := m.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.InDelta(t, 400, m.At(0, 1), 1e-9)

	_, err = Compute(context.Background(), "uv", xs, ys, 1)
	assert.Error(t, err)
}

func TestMatrixOutOfRangeIsNaN(t *testing.T) {
	g, err := Compute(context.Background(), "pT", []float64{150}, []float64{300}, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(g.Matrix(FieldH).At(0, 0)))

	empty := &Grid{}
	assert.Nil(t, empty.Matrix(FieldH))
}

func TestParseField(t *testing.T) {
	f, err := ParseField("T")
	require.NoError(t, err)
	assert.Equal(t, FieldT, f)

	f, err = ParseField("CP")
	require.NoError(t, err)
	assert.Equal(t, FieldCp, f)

	_, err = ParseField("entropy")
	assert.Error(t, err)

	assert.Panics(t, func() { Field("z").Of(steam.Properties{}) })
}

func TestWriteCSV(t *testing.T) {
	rows, err := Evaluate(context.Background(), []Input{
		{Name: "feed", Pair: steam.PT, A: 3, B: 300},
		{Pair: steam.PT, A: 200, B: 300},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, rows))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "name,pair,a,b,region,p,T,x,rho,v,u,h,s,cp,cv,w", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "feed,pT,3,300,1,3,300,0,"))
	assert.Equal(t, ",pT,200,300,out-of-range"+strings.Repeat(",", 11), lines[2])
}
