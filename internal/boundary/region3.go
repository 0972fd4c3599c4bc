package boundary

import (
	"math"

	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/series"
)

// S3ab is the entropy (kJ/(kg·K)) at the critical point, splitting 3a from 3b
// for the backward equations in s.
const S3ab = 4.41202148223476

// H3ab returns the enthalpy (kJ/kg) on the 3a/3b boundary at pressure p (MPa).
func H3ab(p float64) float64 {
	return ((0.875131686009950e-4*p-0.219921901054187e-1)*p+0.374696550136983e1)*p +
		0.201464004206875e4
}

// T(p) boundaries between the region 3 v(p,T) subregions. The ab, op and wx
// curves are polynomials in ln(p); the others are polynomials in p.
var (
	t3ab = series.NewPoly([]series.Mono{
		{N: 0.918419702359447e3, I: -2},
		{N: -0.191887498864292e4, I: -1},
		{N: 0.154793642129415e4, I: 0},
		{N: -0.187661219490113e3, I: 1},
		{N: 0.213144632222113e2, I: 2},
	})
	t3cd = series.NewPoly([]series.Mono{
		{N: 0.585276966696349e3, I: 0},
		{N: 0.278233532206915e1, I: 1},
		{N: -0.127283549295878e-1, I: 2},
		{N: 0.159090746562729e-3, I: 3},
	})
	t3gh = series.NewPoly([]series.Mono{
		{N: -0.249284240900418e5, I: 0},
		{N: 0.428143584791546e4, I: 1},
		{N: -0.269029173140130e3, I: 2},
		{N: 0.751608051114157e1, I: 3},
		{N: -0.787105249910383e-1, I: 4},
	})
	t3ij = series.NewPoly([]series.Mono{
		{N: 0.584814781649163e3, I: 0},
		{N: -0.616179320924617, I: 1},
		{N: 0.260763050899562, I: 2},
		{N: -0.587071076864459e-2, I: 3},
		{N: 0.515308185433082e-4, I: 4},
	})
	t3jk = series.NewPoly([]series.Mono{
		{N: 0.617229772068439e3, I: 0},
		{N: -0.770600270141675e1, I: 1},
		{N: 0.697072596851896, I: 2},
		{N: -0.157391839848015e-1, I: 3},
		{N: 0.137897492684194e-3, I: 4},
	})
	t3mn = series.NewPoly([]series.Mono{
		{N: 0.535339483742384e3, I: 0},
		{N: 0.761978122720128e1, I: 1},
		{N: -0.158365725441648, I: 2},
		{N: 0.192871054508108e-2, I: 3},
	})
	t3op = series.NewPoly([]series.Mono{
		{N: -0.152313732937084e4, I: -2},
		{N: 0.773845935768222e3, I: -1},
		{N: 0.969461372400213e3, I: 0},
		{N: -0.332500170441278e3, I: 1},
		{N: 0.642859598466067e2, I: 2},
	})
	t3qu = series.NewPoly([]series.Mono{
		{N: 0.565603648239126e3, I: 0},
		{N: 0.529062258221222e1, I: 1},
		{N: -0.102020639611016, I: 2},
		{N: 0.122240301070145e-2, I: 3},
	})
	t3rx = series.NewPoly([]series.Mono{
		{N: 0.584561202520006e3, I: 0},
		{N: -0.102961025163669e1, I: 1},
		{N: 0.243293362700452, I: 2},
		{N: -0.294905044740799e-2, I: 3},
	})
	t3uv = series.NewPoly([]series.Mono{
		{N: 0.528199646263062e3, I: 0},
		{N: 0.890579602135307e1, I: 1},
		{N: -0.222814134903755, I: 2},
		{N: 0.286791682263697e-2, I: 3},
	})
	t3wx = series.NewPoly([]series.Mono{
		{N: 0.873371668682417e3, I: -2},
		{N: 0.329196213998375e3, I: -1},
		{N: 0.728052609145380e1, I: 0},
		{N: 0.973505869861952e2, I: 1},
		{N: 0.147370491183191e2, I: 2},
	})
)

// T3ab returns the 3a/3b (and 3d/3e) boundary temperature (K) at p (MPa).
func T3ab(p float64) float64 { return t3ab.Value(math.Log(p)) }

// T3cd returns the 3c/3d boundary temperature (K) at p (MPa).
func T3cd(p float64) float64 { return t3cd.Value(p) }

// T3ef returns the 3e/3f boundary temperature (K) at p (MPa), the straight
// line through the critical point.
func T3ef(p float64) float64 {
	return 3.727888004*(p-iapws.Pc) + iapws.Tc
}

// T3gh returns the 3g/3h boundary temperature (K) at p (MPa).
func T3gh(p float64) float64 { return t3gh.Value(p) }

// T3ij returns the 3i/3j boundary temperature (K) at p (MPa).
func T3ij(p float64) float64 { return t3ij.Value(p) }

// T3jk returns the 3j/3k boundary temperature (K) at p (MPa).
func T3jk(p float64) float64 { return t3jk.Value(p) }

// T3mn returns the 3m/3n boundary temperature (K) at p (MPa).
func T3mn(p float64) float64 { return t3mn.Value(p) }

// T3op returns the 3o/3p boundary temperature (K) at p (MPa).
func T3op(p float64) float64 { return t3op.Value(math.Log(p)) }

// T3qu returns the 3q/3u boundary temperature (K) at p (MPa).
func T3qu(p float64) float64 { return t3qu.Value(p) }

// T3rx returns the 3r/3x boundary temperature (K) at p (MPa).
func T3rx(p float64) float64 { return t3rx.Value(p) }

// T3uv returns the 3u/3v boundary temperature (K) at p (MPa).
func T3uv(p float64) float64 { return t3uv.Value(p) }

// T3wx returns the 3w/3x boundary temperature (K) at p (MPa).
func T3wx(p float64) float64 { return t3wx.Value(math.Log(p)) }
