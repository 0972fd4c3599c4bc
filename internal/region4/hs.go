package region4

import (
	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/series"
)

// SMinTHS is the lowest entropy (kJ/(kg·K)) covered by THS, the
// saturated-vapour entropy at 623.15 K.
const SMinTHS = 5.210887825

// θ(η − 0.119, σ − 1.07), supplementary release on p(h,s), Table 29
var ths = series.New([]series.Term{
	{N: 0.179882673606601, I: 0, J: 0},
	{N: -0.267507455199603, I: 0, J: 3},
	{N: 0.116276722612600e1, I: 0, J: 12},
	{N: 0.147545428713616, I: 1, J: 0},
	{N: -0.512871635973248, I: 1, J: 1},
	{N: 0.421333567697984, I: 1, J: 2},
	{N: 0.563749522189870, I: 1, J: 5},
	{N: 0.429274443819153, I: 2, J: 0},
	{N: -0.335704552142140e1, I: 2, J: 5},
	{N: 0.108890916499278e2, I: 2, J: 8},
	{N: -0.248483390456012, I: 3, J: 0},
	{N: 0.304153221906390, I: 3, J: 2},
	{N: -0.494819763939905, I: 3, J: 3},
	{N: 0.107551674933261e1, I: 3, J: 4},
	{N: 0.733888415457688e-1, I: 4, J: 0},
	{N: 0.140170545411085e-1, I: 4, J: 1},
	{N: -0.106110975998808, I: 5, J: 1},
	{N: 0.168324361811875e-1, I: 5, J: 2},
	{N: 0.125028363714877e1, I: 5, J: 4},
	{N: 0.101316840309509e4, I: 5, J: 16},
	{N: -0.151791558000712e1, I: 6, J: 6},
	{N: 0.524277865990866e2, I: 6, J: 8},
	{N: 0.230495545563912e5, I: 6, J: 22},
	{N: 0.249459806365456e-1, I: 8, J: 1},
	{N: 0.210796467412137e7, I: 10, J: 20},
	{N: 0.366836848613065e9, I: 10, J: 36},
	{N: -0.144814105365163e9, I: 12, J: 24},
	{N: -0.179276373003590e-2, I: 14, J: 1},
	{N: 0.489955602100459e10, I: 14, J: 28},
	{N: 0.471262212070518e3, I: 16, J: 12},
	{N: -0.829294390198652e11, I: 16, J: 32},
	{N: -0.171545662263191e4, I: 18, J: 14},
	{N: 0.355777682973575e7, I: 18, J: 22},
	{N: 0.586062760258436e12, I: 18, J: 36},
	{N: -0.129887635078195e8, I: 20, J: 24},
	{N: 0.317247449371057e11, I: 28, J: 36},
})

// THS returns the saturation temperature (K) of a wet-steam state from h
// (kJ/kg) and s (kJ/(kg·K)), for s ≥ SMinTHS.
func THS(h, s float64) float64 {
	return ths.Value(h/2800-0.119, s/9.2-1.07) * 550
}

// tolerance of the saturation temperature search (K)
const tTolerance = 1e-9

// TSatHS returns the saturation temperature (K) of a wet-steam state from h
// and s over the whole two-phase region. Below SMinTHS it searches the
// saturation line for the temperature at which the state lies on the
// straight wet-steam isotherm h = h'(T) + T·(s − s'(T)).
func TSatHS(h, s float64) float64 {
	if s >= SMinTHS {
		return THS(h, s)
	}

	g := func(T float64) float64 {
		liquid, _ := Saturated(T)
		return h - liquid.H - T*(s-liquid.S)
	}

	lo, hi := iapws.TMin, iapws.Tc
	glo := g(lo)
	for hi-lo > tTolerance {
		mid := (lo + hi) / 2
		gm := g(mid)
		if (gm > 0) == (glo > 0) {
			lo, glo = mid, gm
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
