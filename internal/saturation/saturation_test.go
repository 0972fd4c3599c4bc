package saturation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPressure(t *testing.T) {
	tests := []struct {
		T, want, tol float64
	}{
		{300, 0.353658941e-2, 1e-11},
		{500, 0.263889776e1, 1e-8},
		{600, 0.123443146e2, 1e-7},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, P(tt.T), tt.tol, "T=%g", tt.T)
	}
}

func TestTemperature(t *testing.T) {
	tests := []struct {
		p, want float64
	}{
		{0.1, 0.372755919e3},
		{1, 0.453035632e3},
		{10, 0.584149488e3},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, T(tt.p), 1e-6, "p=%g", tt.p)
	}
}

func TestRoundTrip(t *testing.T) {
	for p := 0.001; p <= 22; p *= 1.3 {
		ts := T(p)
		assert.InEpsilon(t, ts, T(P(ts)), 1e-5, "p=%g", p)
		assert.InEpsilon(t, p, P(ts), 1e-5, "p=%g", p)
	}
}

func TestMonotonic(t *testing.T) {
	prev := 0.0
	for T := 273.15; T <= 647.0; T += 0.5 {
		p := P(T)
		assert.Greater(t, p, prev, "T=%g", T)
		prev = p
	}
}
