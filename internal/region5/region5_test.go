package region5

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProperties(t *testing.T) {
	tests := []struct {
		name              string
		p, T              float64
		v, h, u, s, cp, w float64
	}{
		{"0.5 MPa 1500 K", 0.5, 1500, 0.138455090e1, 0.521976855e4, 0.452749310e4, 0.965408875e1, 0.261609445e1, 0.917068690e3},
		{"30 MPa 1500 K", 30, 1500, 0.230761299e-1, 0.516723514e4, 0.447495124e4, 0.772970133e1, 0.272724317e1, 0.928548002e3},
		{"30 MPa 2000 K", 30, 2000, 0.311385219e-1, 0.657122604e4, 0.563707038e4, 0.853640523e1, 0.288569882e1, 0.106736948e4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := Properties(tt.p, tt.T)
			require.Equal(t, 1.0, props.X)
			assert.InEpsilon(t, tt.v, props.V, 1e-8)
			assert.InEpsilon(t, tt.h, props.H, 1e-8)
			assert.InEpsilon(t, tt.u, props.U, 1e-8)
			assert.InEpsilon(t, tt.s, props.S, 1e-8)
			assert.InEpsilon(t, tt.cp, props.Cp, 1e-8)
			assert.InEpsilon(t, tt.w, props.W, 1e-8)
			assert.InEpsilon(t, tt.h, H(tt.p, tt.T), 1e-12)
		})
	}
}

func TestCvBelowCp(t *testing.T) {
	assert.Less(t, Cv(0.5, 1500), Cp(0.5, 1500))
	assert.Greater(t, Cv(0.5, 1500), 0.0)
}
