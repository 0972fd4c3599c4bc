package region3

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexiusacademia/gosteam/internal/subregion"
)

func TestProperties(t *testing.T) {
	tests := []struct {
		name              string
		rho, T            float64
		p, h, u, s, cp, w float64
	}{
		{"500 kg/m³ 650 K", 500, 650, 0.255837018e2, 0.186343019e4, 0.181226279e4, 0.405427273e1, 0.138935717e2, 0.502005554e3},
		{"200 kg/m³ 650 K", 200, 650, 0.222930643e2, 0.237512401e4, 0.226365868e4, 0.485438792e1, 0.446579342e2, 0.383444594e3},
		{"500 kg/m³ 750 K", 500, 750, 0.783095639e2, 0.225868845e4, 0.210206932e4, 0.446971906e1, 0.634165359e1, 0.760696041e3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			props := Properties(tt.rho, tt.T)
			assert.InEpsilon(t, tt.p, props.P, 1e-8)
			assert.InEpsilon(t, tt.h, props.H, 1e-8)
			assert.InEpsilon(t, tt.u, props.U, 1e-8)
			assert.InEpsilon(t, tt.s, props.S, 1e-8)
			assert.InEpsilon(t, tt.cp, props.Cp, 1e-8)
			assert.InEpsilon(t, tt.w, props.W, 1e-8)
			assert.InEpsilon(t, 1/tt.rho, props.V, 1e-12)
			assert.Less(t, props.Cv, props.Cp)
		})
	}
}

func TestPropertiesPhaseSide(t *testing.T) {
	assert.Equal(t, 0.0, Properties(500, 650).X)
	assert.Equal(t, 0.0, Properties(322, 650).X)
	assert.Equal(t, 1.0, Properties(200, 650).X)
}

func TestTPHAndVPH(t *testing.T) {
	tests := []struct {
		p, h, T, v float64
	}{
		{20, 1700, 629.3083892, 1.749903962e-3},
		{50, 2000, 690.5718338, 1.908139035e-3},
		{100, 2100, 733.6163014, 1.676229776e-3},
		{20, 2500, 641.8418053, 6.670547043e-3},
		{50, 2400, 735.1848618, 2.801244590e-3},
		{100, 2700, 842.0460876, 2.404234998e-3},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.T, TPH(tt.p, tt.h), 1e-6, "p=%g h=%g", tt.p, tt.h)
		assert.InEpsilon(t, tt.v, VPH(tt.p, tt.h), 1e-8, "p=%g h=%g", tt.p, tt.h)
	}
}

func TestTPSAndVPS(t *testing.T) {
	tests := []struct {
		p, s, T, v float64
	}{
		{20, 3.7, 620.8841563, 1.639890984e-3},
		{50, 3.5, 618.1549029, 1.423030205e-3},
		{100, 4.0, 705.6880237, 1.555893131e-3},
		{20, 5.0, 640.1176443, 6.262101987e-3},
		{50, 4.5, 716.3687517, 2.332634294e-3},
		{100, 5.0, 847.4332825, 2.449610757e-3},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.T, TPS(tt.p, tt.s), 1e-6, "p=%g s=%g", tt.p, tt.s)
		assert.InEpsilon(t, tt.v, VPS(tt.p, tt.s), 1e-8, "p=%g s=%g", tt.p, tt.s)
	}
}

func TestPHS(t *testing.T) {
	tests := []struct{ h, s, p float64 }{
		{1700, 3.8, 25.55703246},
		{2000, 4.2, 45.40873468},
		{2100, 4.3, 60.78123340},
		{2600, 5.1, 34.34999263},
		{2400, 4.7, 63.63924887},
		{2700, 5.0, 88.39043281},
	}
	for _, tt := range tests {
		assert.InEpsilon(t, tt.p, PHS(tt.h, tt.s), 1e-8, "h=%g s=%g", tt.h, tt.s)
	}
}

func TestPsat(t *testing.T) {
	assert.InEpsilon(t, 17.24175718, PsatH(1700), 1e-8)
	assert.InEpsilon(t, 21.93442957, PsatH(2000), 1e-8)
	assert.InEpsilon(t, 20.18090839, PsatH(2400), 1e-8)

	assert.InEpsilon(t, 16.87755057, PsatS(3.8), 1e-8)
	assert.InEpsilon(t, 21.64451789, PsatS(4.2), 1e-8)
	assert.InEpsilon(t, 16.68968482, PsatS(5.2), 1e-8)
}

func TestVPT(t *testing.T) {
	tests := []struct {
		p, T float64
		sub  subregion.Volume
		v    float64
	}{
		{50, 630, subregion.VolumeA, 1.470853100e-3},
		{80, 670, subregion.VolumeA, 1.503831359e-3},
		{50, 710, subregion.VolumeB, 2.204728587e-3},
		{80, 750, subregion.VolumeB, 1.973692940e-3},
		{20, 630, subregion.VolumeC, 1.761696406e-3},
		{30, 650, subregion.VolumeC, 1.819560617e-3},
		{26, 656, subregion.VolumeD, 2.245587720e-3},
		{30, 670, subregion.VolumeD, 2.506897702e-3},
		{26, 661, subregion.VolumeE, 2.970225962e-3},
		{30, 675, subregion.VolumeE, 3.004627086e-3},
		{26, 671, subregion.VolumeF, 5.019029401e-3},
		{30, 690, subregion.VolumeF, 4.656470142e-3},
		{23.6, 649, subregion.VolumeG, 2.163198378e-3},
		{24, 650, subregion.VolumeG, 2.166044161e-3},
		{23.6, 652, subregion.VolumeH, 2.651081407e-3},
		{24, 654, subregion.VolumeH, 2.967802335e-3},
		{23.6, 653, subregion.VolumeI, 3.273916816e-3},
		{24, 655, subregion.VolumeI, 3.550329864e-3},
		{23.5, 655, subregion.VolumeJ, 4.545001142e-3},
		{24, 660, subregion.VolumeJ, 5.100267704e-3},
		{23, 660, subregion.VolumeK, 6.109525997e-3},
		{24, 670, subregion.VolumeK, 6.427325645e-3},
		{22.6, 646, subregion.VolumeL, 2.117860851e-3},
		{23, 646, subregion.VolumeL, 2.062374674e-3},
		{22.6, 648.6, subregion.VolumeM, 2.533063780e-3},
		{22.8, 649.3, subregion.VolumeM, 2.572971781e-3},
		{22.6, 649.0, subregion.VolumeN, 2.923432711e-3},
		{22.8, 649.7, subregion.VolumeN, 2.913311494e-3},
		{22.6, 649.1, subregion.VolumeO, 3.131208996e-3},
		{22.8, 649.9, subregion.VolumeO, 3.221160278e-3},
		{22.6, 649.4, subregion.VolumeP, 3.715596186e-3},
		{22.8, 650.2, subregion.VolumeP, 3.664754790e-3},
		{21.1, 640, subregion.VolumeQ, 1.970999272e-3},
		{21.8, 643, subregion.VolumeQ, 2.043919161e-3},
		{21.1, 644, subregion.VolumeR, 5.251009921e-3},
		{21.8, 648, subregion.VolumeR, 5.256844741e-3},
		{19.1, 635, subregion.VolumeS, 1.932829079e-3},
		{20, 638, subregion.VolumeS, 1.985387227e-3},
		{17, 626, subregion.VolumeT, 8.483262001e-3},
		{20, 640, subregion.VolumeT, 6.227528101e-3},
		{21.5, 644.6, subregion.VolumeU, 2.268366647e-3},
		{22, 646.1, subregion.VolumeU, 2.296350553e-3},
		{22.5, 648.6, subregion.VolumeV, 2.832373260e-3},
		{22.3, 647.9, subregion.VolumeV, 2.811424405e-3},
		{22.15, 647.5, subregion.VolumeW, 3.694032281e-3},
		{22.3, 648.1, subregion.VolumeW, 3.622226305e-3},
		{22.11, 648, subregion.VolumeX, 4.528072649e-3},
		{22, 649, subregion.VolumeR, 5.210394674e-3},
		{22, 646.84, subregion.VolumeY, 2.698354719e-3},
		{22.064, 647.05, subregion.VolumeY, 2.717655648e-3},
		{22, 646.89, subregion.VolumeZ, 3.798732962e-3},
		{22.064, 647.15, subregion.VolumeZ, 3.701940010e-3},
	}
	for _, tt := range tests {
		t.Run(tt.sub.String(), func(t *testing.T) {
			assert.Equal(t, tt.sub, subregion.Region3PT(tt.p, tt.T), "p=%g T=%g", tt.p, tt.T)
			assert.InEpsilon(t, tt.v, VPT(tt.p, tt.T), 1e-8, "p=%g T=%g", tt.p, tt.T)
		})
	}
}

func TestPropertiesPTRoundTrip(t *testing.T) {
	// the v(p,T) equations reproduce the basic equation's pressure closely
	for _, pt := range [][2]float64{{50, 630}, {80, 750}, {25, 660}, {30, 690}} {
		props := PropertiesPT(pt[0], pt[1])
		assert.InEpsilon(t, pt[0], P(props.Rho, pt[1]), 1e-3, "p=%g T=%g", pt[0], pt[1])
	}
}

func TestUnknownVolumePanics(t *testing.T) {
	assert.Panics(t, func() { VolumePT(subregion.Volume('!'), 20, 650) })
}
