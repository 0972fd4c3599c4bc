package region2

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexiusacademia/gosteam/internal/subregion"
)

func TestProperties(t *testing.T) {
	tests := []struct {
		name              string
		p, T              float64
		v, h, u, s, cp, w float64
	}{
		{"0.0035 MPa 300 K", 0.0035, 300, 0.394913866e2, 0.254991145e4, 0.241169160e4, 0.852238967e1, 0.191300162e1, 0.427920172e3},
		{"0.0035 MPa 700 K", 0.0035, 700, 0.923015898e2, 0.333568375e4, 0.301262819e4, 0.101749996e2, 0.208141274e1, 0.644289068e3},
		{"30 MPa 700 K", 30, 700, 0.542946619e-2, 0.263149474e4, 0.246861076e4, 0.517540298e1, 0.103505092e2, 0.480386523e3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InEpsilon(t, tt.v, V(tt.p, tt.T), 1e-8)
			assert.InEpsilon(t, tt.h, H(tt.p, tt.T), 1e-8)
			assert.InEpsilon(t, tt.u, U(tt.p, tt.T), 1e-8)
			assert.InEpsilon(t, tt.s, S(tt.p, tt.T), 1e-8)
			assert.InEpsilon(t, tt.cp, Cp(tt.p, tt.T), 1e-8)
			assert.InEpsilon(t, tt.w, W(tt.p, tt.T), 1e-8)

			props := Properties(tt.p, tt.T)
			assert.Equal(t, 1.0, props.X)
			assert.InEpsilon(t, 1/tt.v, props.Rho, 1e-8)
		})
	}

	assert.InEpsilon(t, 1.44132662, Cv(0.0035, 300), 1e-8)
	assert.InEpsilon(t, 2.97553837, Cv(30, 700), 1e-8)
}

func TestMetaProperties(t *testing.T) {
	tests := []struct {
		p, T              float64
		v, h, u, s, cp, w float64
	}{
		{1, 450, 0.192516540, 0.276881115e4, 0.257629461e4, 0.656660377e1, 0.276349265e1, 0.498408101e3},
		{1, 440, 0.186212297, 0.274015123e4, 0.255393894e4, 0.650218759e1, 0.298166443e1, 0.489363295e3},
		{1.5, 450, 0.121685206, 0.272134539e4, 0.253881758e4, 0.629170440e1, 0.362795578e1, 0.481941819e3},
	}
	for _, tt := range tests {
		props := MetaProperties(tt.p, tt.T)
		assert.InEpsilon(t, tt.v, props.V, 1e-8)
		assert.InEpsilon(t, tt.h, props.H, 1e-8)
		assert.InEpsilon(t, tt.u, props.U, 1e-8)
		assert.InEpsilon(t, tt.s, props.S, 1e-8)
		assert.InEpsilon(t, tt.cp, props.Cp, 1e-8)
		assert.InEpsilon(t, tt.w, props.W, 1e-8)
	}
}

func TestTPH(t *testing.T) {
	tests := []struct {
		p, h, T float64
		sub     subregion.Region2
	}{
		{0.001, 3000, 0.534433241e3, subregion.Region2A},
		{3, 3000, 0.575373370e3, subregion.Region2A},
		{3, 4000, 0.101077577e4, subregion.Region2A},
		{5, 3500, 0.801299102e3, subregion.Region2B},
		{5, 4000, 0.101531583e4, subregion.Region2B},
		{25, 3500, 0.875279054e3, subregion.Region2B},
		{40, 2700, 0.743056411e3, subregion.Region2C},
		{60, 2700, 0.791137067e3, subregion.Region2C},
		{60, 3200, 0.882756860e3, subregion.Region2C},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.sub, subregion.Region2PH(tt.p, tt.h), "p=%g h=%g", tt.p, tt.h)
		assert.InDelta(t, tt.T, TPH(tt.p, tt.h), 1e-6, "p=%g h=%g", tt.p, tt.h)
	}
}

func TestTPS(t *testing.T) {
	tests := []struct {
		p, s, T float64
		sub     subregion.Region2
	}{
		{0.1, 7.5, 0.399517097e3, subregion.Region2A},
		{0.1, 8, 0.514127081e3, subregion.Region2A},
		{2.5, 8, 0.103984917e4, subregion.Region2A},
		{8, 6, 0.600484040e3, subregion.Region2B},
		{8, 7.5, 0.106495556e4, subregion.Region2B},
		{90, 6, 0.103801126e4, subregion.Region2B},
		{20, 5.75, 0.697992849e3, subregion.Region2C},
		{80, 5.25, 0.854011484e3, subregion.Region2C},
		{80, 5.75, 0.949017998e3, subregion.Region2C},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.sub, subregion.Region2PS(tt.p, tt.s))
		assert.InDelta(t, tt.T, TPS(tt.p, tt.s), 1e-5, "p=%g s=%g", tt.p, tt.s)
	}
}

func TestPHS(t *testing.T) {
	tests := []struct {
		h, s, p float64
		sub     subregion.Region2
	}{
		{2800, 6.5, 1.371012767, subregion.Region2A},
		{2800, 9.5, 1.879743844e-3, subregion.Region2A},
		{4100, 9.5, 1.024788997e-1, subregion.Region2A},
		{2800, 6, 4.793911442, subregion.Region2B},
		{3600, 6, 83.95519209, subregion.Region2B},
		{3600, 7, 7.527161441, subregion.Region2B},
		{2800, 5.1, 94.39202060, subregion.Region2C},
		{2800, 5.8, 8.414574124, subregion.Region2C},
		{3400, 5.8, 83.76903879, subregion.Region2C},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.sub, subregion.Region2HS(tt.h, tt.s), "h=%g s=%g", tt.h, tt.s)
		assert.InEpsilon(t, tt.p, PHS(tt.h, tt.s), 1e-8, "h=%g s=%g", tt.h, tt.s)
	}
}

func TestBackwardConsistency(t *testing.T) {
	points := [][2]float64{
		{0.1, 400}, {1, 500}, {3, 700}, {5, 600},
		{10, 700}, {20, 800}, {50, 1000}, {80, 1050},
	}
	for _, pt := range points {
		p, T := pt[0], pt[1]
		assert.InDelta(t, T, TPH(p, H(p, T)), 0.01, "p=%g T=%g", p, T)
		assert.InDelta(t, T, TPS(p, S(p, T)), 0.01, "p=%g T=%g", p, T)
	}
}

func TestUnknownSubregionPanics(t *testing.T) {
	assert.Panics(t, func() { TPHIn(subregion.Region2('q'), 1, 3000) })
}
