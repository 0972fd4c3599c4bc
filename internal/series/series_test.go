package series

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func synthetic() *Series {
	return New([]Term{
		{N: 2, I: 1, J: 0},
		{N: 3, I: 2, J: 1},
	})
}

func TestSeriesValueAndDerivatives(t *testing.T) {
	s := synthetic()
	require.Equal(t, 2, s.Len())

	tests := []struct {
		name   string
		d1, d2 int
		want   float64
	}{
		{"value", 0, 0, 40},
		{"d/dx1", 1, 0, 74},
		{"d/dx2", 0, 1, 12},
		{"d2/dx1^2", 2, 0, 18},
		{"d2/dx1dx2", 1, 1, 12},
		{"d2/dx2^2", 0, 2, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, s.Derivative(2, 3, tt.d1, tt.d2), 1e-12)
		})
	}
	assert.Equal(t, s.Derivative(2, 3, 0, 0), s.Value(2, 3))
}

func TestSeriesMatchesDirectPower(t *testing.T) {
	terms := []Term{
		{N: 0.14632971213167, I: 0, J: -2},
		{N: -0.84548187169114, I: 0, J: -1},
		{N: -0.37563603672040e1, I: 0, J: 0},
		{N: 0.33855169168385e1, I: 0, J: 1},
		{N: -0.95791963387872, I: 1, J: -9},
		{N: 0.15772038513228, I: 1, J: -7},
		{N: -0.16616417199501e-1, I: 3, J: 0},
		{N: -0.28400465757007e-6, I: 5, J: -8},
		{N: -0.93535717463516e-25, I: 32, J: -41},
	}
	s := New(terms)
	x1, x2 := 1.3, 0.8

	for d1 := 0; d1 <= 2; d1++ {
		for d2 := 0; d2 <= 2; d2++ {
			want := 0.0
			for _, tm := range terms {
				want += tm.N *
					factor(tm.I, d1) * math.Pow(x1, float64(tm.I-d1)) *
					factor(tm.J, d2) * math.Pow(x2, float64(tm.J-d2))
			}
			assert.InEpsilon(t, want, s.Derivative(x1, x2, d1, d2), 1e-10, "d1=%d d2=%d", d1, d2)
		}
	}
}

func TestSeriesFiniteDifference(t *testing.T) {
	s := synthetic()
	const h = 1e-6
	x1, x2 := 1.7, -0.4

	fd1 := (s.Value(x1+h, x2) - s.Value(x1-h, x2)) / (2 * h)
	fd2 := (s.Value(x1, x2+h) - s.Value(x1, x2-h)) / (2 * h)
	assert.InDelta(t, fd1, s.Derivative(x1, x2, 1, 0), 1e-6)
	assert.InDelta(t, fd2, s.Derivative(x1, x2, 0, 1), 1e-6)
}

func TestSeriesZeroArgument(t *testing.T) {
	// the constant term must not turn into 0·∞ when differentiated at zero
	s := New([]Term{
		{N: 5, I: 0, J: 0},
		{N: 2, I: 1, J: 1},
	})
	assert.Equal(t, 5.0, s.Value(0, 0))
	assert.InDelta(t, 6, s.Derivative(0, 3, 1, 0), 1e-15)
	assert.False(t, math.IsNaN(s.Derivative(0, 0, 1, 1)))
}

func TestSeriesLogTerm(t *testing.T) {
	s := NewLog(2, []Term{{N: 1, I: 1, J: 1}})
	x1, x2 := math.E, 3.0

	assert.InDelta(t, 2+math.E*3, s.Value(x1, x2), 1e-12)
	assert.InDelta(t, 2/math.E+3, s.Derivative(x1, x2, 1, 0), 1e-12)
	assert.InDelta(t, -2/(math.E*math.E), s.Derivative(x1, x2, 2, 0), 1e-12)
	// the logarithm does not depend on x2
	assert.InDelta(t, math.E, s.Derivative(x1, x2, 0, 1), 1e-12)
	assert.InDelta(t, 1, s.Derivative(x1, x2, 1, 1), 1e-12)
}

func TestPoly(t *testing.T) {
	p := NewPoly([]Mono{
		{N: 1, I: -2},
		{N: 3, I: 0},
		{N: 0.5, I: 2},
	})
	x := 2.0

	assert.InDelta(t, 0.25+3+2, p.Value(x), 1e-12)
	assert.InDelta(t, -0.25+2, p.Derivative(x, 1), 1e-12)
	assert.InDelta(t, 0.375+1, p.Derivative(x, 2), 1e-12)
}

func TestLogPoly(t *testing.T) {
	p := NewLogPoly(2, nil)

	assert.InDelta(t, 2, p.Value(math.E), 1e-12)
	assert.InDelta(t, 2/math.E, p.Derivative(math.E, 1), 1e-12)
	assert.InDelta(t, -2/(math.E*math.E), p.Derivative(math.E, 2), 1e-12)
}

func TestPowersTable(t *testing.T) {
	table := powers(2, -3, 4, 0)
	require.Len(t, table, 8)
	for k, got := range table {
		assert.InDelta(t, math.Pow(2, float64(k-3)), got, 1e-15)
	}

	// first derivative of x^e is e·x^(e−1)
	table = powers(2, -1, 2, 1)
	assert.Equal(t, []float64{-0.25, 0, 1, 4}, table)
}
