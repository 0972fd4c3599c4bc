package subregion_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/region"
	"github.com/alexiusacademia/gosteam/internal/region3"
	"github.com/alexiusacademia/gosteam/internal/subregion"
)

// Every region 3 state on a dense (p, T) grid resolves to a volume
// subregion whose v(p,T) reproduces the pressure.
func TestRegion3PTCoversRegion3(t *testing.T) {
	ps := floats.Span(make([]float64, 85), 16.5, iapws.PMax)
	ts := floats.Span(make([]float64, 121), iapws.T13, iapws.TB23Hi)

	seen := map[subregion.Volume]bool{}
	for _, p := range ps {
		for _, T := range ts {
			if region.FromPT(p, T) != region.Region3 {
				continue
			}
			vol := subregion.Region3PT(p, T)
			require.True(t, slices.Contains(subregion.Volumes, vol), "p=%g T=%g: %v", p, T, vol)
			seen[vol] = true

			v := region3.VPT(p, T)
			require.False(t, math.IsNaN(v) || math.IsInf(v, 0), "p=%g T=%g", p, T)
			require.Positive(t, v, "p=%g T=%g", p, T)
			assert.InEpsilon(t, p, region3.P(1/v, T), 1e-3, "p=%g T=%g subregion %v", p, T, vol)
		}
	}
	assert.GreaterOrEqual(t, len(seen), 15)
}
