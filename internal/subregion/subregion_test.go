package subregion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegion2(t *testing.T) {
	assert.Equal(t, Region2A, Region2PH(3, 3000))
	assert.Equal(t, Region2B, Region2PH(5, 3500))
	assert.Equal(t, Region2C, Region2PH(40, 2700))

	assert.Equal(t, Region2A, Region2PS(0.1, 7.5))
	assert.Equal(t, Region2B, Region2PS(8, 6))
	assert.Equal(t, Region2B, Region2PS(8, 5.85))
	assert.Equal(t, Region2C, Region2PS(20, 5.75))

	assert.Equal(t, Region2A, Region2HS(2800, 6.5))
	assert.Equal(t, Region2B, Region2HS(3600, 6))
	assert.Equal(t, Region2C, Region2HS(2800, 5.1))
}

func TestRegion3(t *testing.T) {
	assert.Equal(t, Region3A, Region3PH(20, 1700))
	assert.Equal(t, Region3B, Region3PH(20, 2500))
	assert.Equal(t, Region3A, Region3PS(50, 3.5))
	assert.Equal(t, Region3B, Region3PS(50, 4.5))
	assert.Equal(t, Region3A, Region3S(4.41202148223476))
}

func TestRegion3PT(t *testing.T) {
	tests := []struct {
		p, T float64
		want Volume
	}{
		{50, 630, VolumeA},
		{50, 710, VolumeB},
		{20, 630, VolumeC},
		{26, 656, VolumeD},
		{26, 661, VolumeE},
		{26, 671, VolumeF},
		{23.6, 649, VolumeG},
		{23.6, 652, VolumeH},
		{23.6, 653, VolumeI},
		{23.5, 655, VolumeJ},
		{23, 660, VolumeK},
		{22.6, 646, VolumeL},
		{22.6, 648.6, VolumeM},
		{22.6, 649.0, VolumeN},
		{22.6, 649.1, VolumeO},
		{22.6, 649.4, VolumeP},
		{21.1, 640, VolumeQ},
		{21.1, 644, VolumeR},
		{19.1, 635, VolumeS},
		{17, 626, VolumeT},
		{21.5, 644.6, VolumeU},
		{22.5, 648.6, VolumeV},
		{22.15, 647.5, VolumeW},
		{22.11, 648, VolumeX},
		{22, 646.84, VolumeY},
		{22, 646.89, VolumeZ},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Region3PT(tt.p, tt.T), "p=%g T=%g", tt.p, tt.T)
	}
}

func TestVolumes(t *testing.T) {
	assert.Len(t, Volumes, 26)
	assert.Equal(t, VolumeA, Volumes[0])
	assert.Equal(t, VolumeZ, Volumes[25])
	assert.Equal(t, "3k", VolumeK.String())
	assert.Equal(t, "2c", Region2C.String())
	assert.Equal(t, "3b", Region3B.String())
}

func TestSaturated(t *testing.T) {
	tests := []struct {
		p              float64
		liquid, vapour Volume
	}{
		{17, VolumeC, VolumeT},
		{20, VolumeS, VolumeT},
		{21, VolumeS, VolumeR},
		{21.5, VolumeU, VolumeX},
		{21.92, VolumeU, VolumeZ},
		{22, VolumeY, VolumeZ},
	}
	for _, tt := range tests {
		l, v := Saturated(tt.p)
		assert.Equal(t, tt.liquid, l, "p=%g", tt.p)
		assert.Equal(t, tt.vapour, v, "p=%g", tt.p)
	}
}
