package region

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexiusacademia/gosteam/internal/boundary"
	"github.com/alexiusacademia/gosteam/internal/saturation"
)

func TestString(t *testing.T) {
	assert.Equal(t, "region 3", Region3.String())
	assert.Equal(t, "out of range", OutOfRange.String())
	assert.Equal(t, "region(?)", Region(42).String())

	text, err := Region5.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "region 5", string(text))

	assert.False(t, OutOfRange.Valid())
	assert.True(t, Region4.Valid())
}

func TestFromPT(t *testing.T) {
	tests := []struct {
		name string
		p, T float64
		want Region
	}{
		{"compressed liquid", 50, 473.15, Region1},
		{"low pressure steam", 0.0035, 500, Region2},
		{"liquid", 3, 300, Region1},
		{"superheated", 30, 700, Region2},
		{"dense fluid", 25, 650, Region3},
		{"supercritical", 80, 750, Region3},
		{"high temperature", 30, 1500, Region5},
		{"high temperature above 50 MPa", 60, 1500, OutOfRange},
		{"too cold", 1, 273.0, OutOfRange},
		{"too hot", 1, 2300, OutOfRange},
		{"zero pressure", 0, 400, OutOfRange},
		{"too dense", 100.1, 400, OutOfRange},
		{"at 100 MPa", 100, 400, Region1},
		{"at 2273.15 K", 10, 2273.15, Region5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromPT(tt.p, tt.T))
		})
	}
}

func TestFromPTTieBreak(t *testing.T) {
	// states on a boundary belong to the lower-numbered region
	assert.Equal(t, Region1, FromPT(saturation.P(500), 500))
	assert.Equal(t, Region2, FromPT(saturation.P(500)*(1-1e-12), 500))
	assert.Equal(t, Region3, FromPT(boundary.B23P(700), 700))
	assert.Equal(t, Region2, FromPT(boundary.B23P(700)*(1-1e-12), 700))
	assert.Equal(t, Region1, FromPT(20, 623.15))
	assert.Equal(t, Region2, FromPT(20, 1073.15))
}

func TestFromPTMonotonic(t *testing.T) {
	// at 500 K the region changes once, from 1 to 2, as p falls
	transitions := 0
	prev := FromPT(100, 500)
	for p := 100.0; p > 0.001; p *= 0.97 {
		r := FromPT(p, 500)
		assert.Contains(t, []Region{Region1, Region2}, r)
		if r != prev {
			transitions++
		}
		prev = r
	}
	assert.Equal(t, 1, transitions)
	assert.Equal(t, Region2, prev)
}

func TestFromPH(t *testing.T) {
	tests := []struct {
		p, h float64
		want Region
	}{
		{3, 500, Region1},
		{80, 1500, Region1},
		{0.001, 3000, Region2},
		{3, 4000, Region2},
		{5, 3500, Region2},
		{25, 3500, Region2},
		{40, 2700, Region2},
		{60, 3200, Region2},
		{20, 1700, Region3},
		{50, 2400, Region3},
		{100, 2700, Region3},
		{1, 1500, Region4},
		{20, 2000, Region4},
		{30, 5200, Region5},
		{0.5, 5219.76855, Region5},
		{60, 5200, OutOfRange},
		{10, -10, OutOfRange},
		{1, 8000, OutOfRange},
		{0, 1000, OutOfRange},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromPH(tt.p, tt.h), "p=%g h=%g", tt.p, tt.h)
	}
}

func TestFromPS(t *testing.T) {
	tests := []struct {
		p, s float64
		want Region
	}{
		{3, 0.5, Region1},
		{80, 3, Region1},
		{20, 3.7, Region1},
		{0.1, 7.5, Region2},
		{8, 6, Region2},
		{20, 5.75, Region2},
		{100, 5.0, Region3},
		{1, 4, Region4},
		{20, 4.5, Region4},
		{0.5, 9.65408875, Region5},
		{30, 7.7, Region5},
		{60, 7.7, OutOfRange},
		{1, -0.1, OutOfRange},
		{0.001, 14, OutOfRange},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromPS(tt.p, tt.s), "p=%g s=%g", tt.p, tt.s)
	}
}

func TestFromHS(t *testing.T) {
	tests := []struct {
		h, s float64
		want Region
	}{
		{0.001, 0, Region1},
		{90, 0, Region1},
		{1500, 3.4, Region1},
		{1575, 3.6, Region1},
		{1613.215459, 3.602404796, Region3},
		{1689.656880, 3.653849734, Region3},
		{1632.231904, 3.521772076, Region3},
		{1653.842250, 3.715395109, Region3},
		{2800, 6.5, Region2},
		{2800, 9.5, Region2},
		{4100, 9.5, Region2},
		{3600, 6, Region2},
		{2800, 5.1, Region2},
		{3400, 5.8, Region2},
		{1700, 3.8, Region3},
		{2000, 4.2, Region3},
		{2600, 5.1, Region3},
		{2700, 5.0, Region3},
		{2600, 5.2, Region3},
		{1800, 5.3, Region4},
		{2400, 6.0, Region4},
		{2500, 5.5, Region4},
		{1000, 3, Region4},
		{100, -1, OutOfRange},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromHS(tt.h, tt.s), "h=%g s=%g", tt.h, tt.s)
	}
}

func TestFromTxAndPx(t *testing.T) {
	assert.Equal(t, Region4, FromTx(373.15, 0.5))
	assert.Equal(t, Region4, FromTx(647.096, 1))
	assert.Equal(t, OutOfRange, FromTx(650, 0.5))
	assert.Equal(t, OutOfRange, FromTx(373.15, 1.1))
	assert.Equal(t, OutOfRange, FromTx(373.15, -0.1))

	assert.Equal(t, Region4, FromPx(0.1, 0))
	assert.Equal(t, Region4, FromPx(22.064, 0.3))
	assert.Equal(t, OutOfRange, FromPx(23, 0.3))
	assert.Equal(t, OutOfRange, FromPx(1e-4, 0.3))
}

func TestFromRhoT(t *testing.T) {
	tests := []struct {
		rho, T float64
		want   Region
	}{
		{500, 650, Region3},
		{200, 650, Region3},
		{600, 630, Region3},
		{150, 640, Region3},
		{322, 640, Region4},
		{100, 700, OutOfRange},
		{700, 700, OutOfRange},
		{500, 900, OutOfRange},
		{500, 600, OutOfRange},
		{0, 650, OutOfRange},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromRhoT(tt.rho, tt.T), "rho=%g T=%g", tt.rho, tt.T)
	}
}
