package region1

import "github.com/alexiusacademia/gosteam/internal/series"

// θ(π, η + 1), IF97 Table 6
var tph = series.New([]series.Term{
	{N: -0.23872489924521e3, I: 0, J: 0},
	{N: 0.40421188637945e3, I: 0, J: 1},
	{N: 0.11349746881718e3, I: 0, J: 2},
	{N: -0.58457616048039e1, I: 0, J: 6},
	{N: -0.15285482413140e-3, I: 0, J: 22},
	{N: -0.10866707695377e-5, I: 0, J: 32},
	{N: -0.13391744872602e2, I: 1, J: 0},
	{N: 0.43211039183559e2, I: 1, J: 1},
	{N: -0.54010067170506e2, I: 1, J: 2},
	{N: 0.30535892203916e2, I: 1, J: 3},
	{N: -0.65964749423638e1, I: 1, J: 4},
	{N: 0.93965400878363e-2, I: 1, J: 10},
	{N: 0.11573647505340e-6, I: 1, J: 32},
	{N: -0.25858641282073e-4, I: 2, J: 10},
	{N: -0.40644363084799e-8, I: 2, J: 32},
	{N: 0.66456186191635e-7, I: 3, J: 10},
	{N: 0.80670734103027e-10, I: 3, J: 32},
	{N: -0.93477771213947e-12, I: 4, J: 32},
	{N: 0.58265442020601e-14, I: 5, J: 32},
	{N: -0.15020185953503e-16, I: 6, J: 32},
})

// θ(π, σ + 2), IF97 Table 8
var tps = series.New([]series.Term{
	{N: 0.17478268058307e3, I: 0, J: 0},
	{N: 0.34806930892873e2, I: 0, J: 1},
	{N: 0.65292584978455e1, I: 0, J: 2},
	{N: 0.33039981775489, I: 0, J: 3},
	{N: -0.19281382923196e-6, I: 0, J: 11},
	{N: -0.24909197244573e-22, I: 0, J: 31},
	{N: -0.26107636489332, I: 1, J: 0},
	{N: 0.22592965981586, I: 1, J: 1},
	{N: -0.64256463395226e-1, I: 1, J: 2},
	{N: 0.78876289270526e-2, I: 1, J: 3},
	{N: 0.35672110607366e-9, I: 1, J: 12},
	{N: 0.17332496994895e-23, I: 1, J: 31},
	{N: 0.56608900654837e-3, I: 2, J: 0},
	{N: -0.32635483139717e-3, I: 2, J: 1},
	{N: 0.44778286690632e-4, I: 2, J: 2},
	{N: -0.51322156908507e-9, I: 2, J: 9},
	{N: -0.42522657042207e-25, I: 2, J: 31},
	{N: 0.26400441360689e-12, I: 3, J: 10},
	{N: 0.78124600459723e-28, I: 3, J: 32},
	{N: -0.30732199903668e-30, I: 4, J: 32},
})

// π(η + 0.05, σ + 0.05), supplementary release on p(h,s), Table 2
var phs = series.New([]series.Term{
	{N: -0.691997014660582, I: 0, J: 0},
	{N: -0.183612548787560e2, I: 0, J: 1},
	{N: -0.928332409297335e1, I: 0, J: 2},
	{N: 0.659639569909906e2, I: 0, J: 4},
	{N: -0.162060388912024e2, I: 0, J: 5},
	{N: 0.450620017338667e3, I: 0, J: 6},
	{N: 0.854680678224170e3, I: 0, J: 8},
	{N: 0.607523214001162e4, I: 0, J: 14},
	{N: 0.326487682621856e2, I: 1, J: 0},
	{N: -0.269408844582931e2, I: 1, J: 1},
	{N: -0.319947848334300e3, I: 1, J: 4},
	{N: -0.928354307043320e3, I: 1, J: 6},
	{N: 0.303634537455249e2, I: 2, J: 0},
	{N: -0.650540422444146e2, I: 2, J: 1},
	{N: -0.430991316516130e4, I: 2, J: 10},
	{N: -0.747512324096068e3, I: 3, J: 4},
	{N: 0.730000345529245e3, I: 4, J: 1},
	{N: 0.114284032569021e4, I: 4, J: 4},
	{N: -0.436407041874559e3, I: 5, J: 0},
})

// TPH returns the temperature (K) at p (MPa) and h (kJ/kg).
func TPH(p, h float64) float64 {
	return tph.Value(p, h/2500+1)
}

// TPS returns the temperature (K) at p (MPa) and s (kJ/(kg·K)).
func TPS(p, s float64) float64 {
	return tps.Value(p, s+2)
}

// PHS returns the pressure (MPa) at h (kJ/kg) and s (kJ/(kg·K)).
func PHS(h, s float64) float64 {
	return phs.Value(h/3400+0.05, s/7.6+0.05) * 100
}
