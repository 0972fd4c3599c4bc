package region1

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProperties(t *testing.T) {
	tests := []struct {
		name              string
		p, T              float64
		v, h, u, s, cp, w float64
	}{
		{"3 MPa 300 K", 3, 300, 0.100215168e-2, 0.115331273e3, 0.112324818e3, 0.392294792, 0.417301218e1, 0.150773921e4},
		{"80 MPa 300 K", 80, 300, 0.971180894e-3, 0.184142828e3, 0.106448356e3, 0.368563852, 0.401008987e1, 0.163469054e4},
		{"3 MPa 500 K", 3, 500, 0.120241800e-2, 0.975542239e3, 0.971934985e3, 0.258041912e1, 0.465580682e1, 0.124071337e4},
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
			assert.Equal(t, tt.p, props.P)
			assert.InEpsilon(t, 1/tt.v, props.Rho, 1e-8)
			assert.Equal(t, 0.0, props.X)
		})
	}
}

func TestCv(t *testing.T) {
	assert.InEpsilon(t, 4.121201604, Cv(3, 300), 1e-8)
	// cv < cp for a liquid
	assert.Less(t, Cv(3, 500), Cp(3, 500))
}

func TestBackward(t *testing.T) {
	assert.InDelta(t, 0.391798509e3, TPH(3, 500), 1e-6)
	assert.InDelta(t, 0.378108626e3, TPH(80, 500), 1e-6)
	assert.InDelta(t, 0.611041229e3, TPH(80, 1500), 1e-6)

	assert.InDelta(t, 0.307842258e3, TPS(3, 0.5), 1e-6)
	assert.InDelta(t, 0.309979785e3, TPS(80, 0.5), 1e-6)
	assert.InDelta(t, 0.565899909e3, TPS(80, 3), 1e-6)

	assert.InDelta(t, 9.800980612e-4, PHS(0.001, 0), 1e-12)
	assert.InDelta(t, 9.192954727e1, PHS(90, 0), 1e-7)
	assert.InDelta(t, 5.868294423e1, PHS(1500, 3.4), 1e-7)
}

func TestBackwardConsistency(t *testing.T) {
	// the backward equations reproduce the basic equation within IF97's
	// permissible deviation of 25 mK
	points := [][2]float64{
		{1, 280}, {1, 350}, {1, 450},
		{5, 280}, {5, 350}, {5, 450},
		{30, 280}, {30, 350}, {30, 450}, {30, 550},
		{90, 280}, {90, 350}, {90, 450}, {90, 550},
	}
	for _, pt := range points {
		p, T := pt[0], pt[1]
		assert.InDelta(t, T, TPH(p, H(p, T)), 0.025, "p=%g T=%g", p, T)
		assert.InDelta(t, T, TPS(p, S(p, T)), 0.025, "p=%g T=%g", p, T)
	}
}
