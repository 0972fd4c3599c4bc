package region4

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosteam/internal/saturation"
)

func TestSaturatedAtNormalBoilingPoint(t *testing.T) {
	liquid, vapour := Saturated(373.15)
	assert.InDelta(t, 419.0991550, liquid.H, 1e-6)
	assert.InDelta(t, 2675.588056, vapour.H, 1e-5)
	assert.InDelta(t, 1.307014328, liquid.S, 1e-8)
	assert.InDelta(t, 7.354120897, vapour.S, 1e-8)
	assert.InEpsilon(t, 1.043455457e-3, liquid.V, 1e-8)
	assert.InEpsilon(t, 1.671799621, vapour.V, 1e-8)
	assert.Equal(t, 0.0, liquid.X)
	assert.Equal(t, 1.0, vapour.X)
	assert.Equal(t, liquid.P, vapour.P)
}

func TestSaturatedSides(t *testing.T) {
	tests := []struct {
		name       string
		T          float64
		hLiq, hVap float64
		vLiq, vVap float64
	}{
		{"regions 1 and 2", 600, 1505.216655, 2677.992202, 1.539857655e-3, 1.373387902e-2},
		{"3c and 3t", 630, 1730.692166, 2510.785251, 1.837130003e-3, 7.524816917e-3},
		{"3s and 3t", 640, 1841.983906, 2394.419788, 2.076358986e-3, 5.636971091e-3},
		{"3u and 3x", 645, 1934.470548, 2279.973036, 2.366475787e-3, 4.444094256e-3},
		{"3y and 3z", 647, 2048.103107, 2129.172168, 2.886895754e-3, 3.354799914e-3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			liquid, vapour := Saturated(tt.T)
			assert.InDelta(t, tt.hLiq, liquid.H, 1e-5)
			assert.InDelta(t, tt.hVap, vapour.H, 1e-5)
			assert.InEpsilon(t, tt.vLiq, liquid.V, 1e-8)
			assert.InEpsilon(t, tt.vVap, vapour.V, 1e-8)
			assert.InEpsilon(t, saturation.P(tt.T), liquid.P, 1e-12)
			assert.Less(t, liquid.S, vapour.S)
		})
	}
}

func TestMixture(t *testing.T) {
	props := Properties(300, 0.5)
	assert.InDelta(t, 1331.228213, props.H, 1e-5)
	assert.InDelta(t, 4.455292328, props.S, 1e-8)
	assert.Equal(t, 0.5, props.X)
	assert.InEpsilon(t, 1/props.V, props.Rho, 1e-12)
	assert.True(t, math.IsNaN(props.Cp))
	assert.True(t, math.IsNaN(props.Cv))
	assert.True(t, math.IsNaN(props.W))

	assert.False(t, math.IsNaN(Cp(300, 0)))
	assert.False(t, math.IsNaN(W(300, 1)))
	assert.Equal(t, H(300, 0.25), Properties(300, 0.25).H)
}

func TestQuality(t *testing.T) {
	for _, x := range []float64{0, 0.2, 0.5, 0.9, 1} {
		for _, T := range []float64{300, 500, 630, 646} {
			assert.InDelta(t, x, XTH(T, H(T, x)), 1e-9, "T=%g x=%g", T, x)
			assert.InDelta(t, x, XTS(T, S(T, x)), 1e-9, "T=%g x=%g", T, x)
		}
	}
}

func TestTHS(t *testing.T) {
	assert.InDelta(t, 346.8475498, THS(1800, 5.3), 1e-6)
	assert.InDelta(t, 425.1373305, THS(2400, 6.0), 1e-6)
	assert.InDelta(t, 522.5579013, THS(2500, 5.5), 1e-6)
}

func TestTSatHS(t *testing.T) {
	tests := []struct{ T, x float64 }{
		{300, 0.5},
		{500, 0.3},
		{600, 0.1},
		{630, 0.2},
		{640, 0.5},
		{646, 0.5},
	}
	for _, tt := range tests {
		h, s := H(tt.T, tt.x), S(tt.T, tt.x)
		T := TSatHS(h, s)
		tol := 5e-3
		if s >= SMinTHS {
			// the backward equation is accurate to a few millikelvin
			tol = 0.05
		}
		require.InDelta(t, tt.T, T, tol, "T=%g x=%g", tt.T, tt.x)
	}
}
