package boundary

import (
	"math"

	"github.com/alexiusacademia/gosteam/internal/series"
)

// Boundary curves in the h-s plane (IAPWS supplementary release on p(h,s)).
var (
	// B13 at 623.15 K
	h13 = series.New([]series.Term{
		{N: 0.913965547600543, I: 0, J: 0},
		{N: -0.430944856041991e-4, I: 1, J: -2},
		{N: 0.603235694765419e2, I: 1, J: 2},
		{N: 0.117518273082168e-17, I: 3, J: -12},
		{N: 0.220000904781292, I: 5, J: -4},
		{N: -0.690815545851641e2, I: 6, J: -3},
	})
	// saturated liquid, regions 1/4
	h1Sat = series.New([]series.Term{
		{N: 0.332171191705237, I: 0, J: 14},
		{N: 0.611217706323496e-3, I: 0, J: 36},
		{N: -0.882092478906822e1, I: 1, J: 3},
		{N: -0.455628192543250, I: 1, J: 16},
		{N: -0.263483840850452e-4, I: 2, J: 0},
		{N: -0.223949661148062e2, I: 2, J: 5},
		{N: -0.428398660164013e1, I: 3, J: 4},
		{N: -0.616679338856916, I: 3, J: 36},
		{N: -0.146823031104040e2, I: 4, J: 4},
		{N: 0.284523138727299e3, I: 4, J: 16},
		{N: -0.113398503195444e3, I: 4, J: 24},
		{N: 0.115671380760859e4, I: 5, J: 18},
		{N: 0.395551267359325e3, I: 5, J: 24},
		{N: -0.154891257229285e1, I: 7, J: 1},
		{N: 0.194486637751291e2, I: 8, J: 4},
		{N: -0.357915139457043e1, I: 12, J: 2},
		{N: -0.335369414148819e1, I: 12, J: 4},
		{N: -0.664426796332460, I: 14, J: 1},
		{N: 0.323321885383934e5, I: 14, J: 22},
		{N: 0.331766744667084e4, I: 16, J: 10},
		{N: -0.223501257931087e5, I: 20, J: 12},
		{N: 0.573953875852936e7, I: 20, J: 28},
		{N: 0.173226193407919e3, I: 22, J: 8},
		{N: -0.363968822121321e-1, I: 24, J: 3},
		{N: 0.834596332878346e-6, I: 28, J: 0},
		{N: 0.503611916682674e1, I: 32, J: 6},
		{N: 0.655444787064505e2, I: 32, J: 8},
	})
	// saturated liquid, regions 3a/4
	h3aSat = series.New([]series.Term{
		{N: 0.822673364673336, I: 0, J: 1},
		{N: 0.181977213534479, I: 0, J: 4},
		{N: -0.112000260313624e-1, I: 0, J: 10},
		{N: -0.746778287048033e-3, I: 0, J: 16},
		{N: -0.179046263257381, I: 2, J: 1},
		{N: 0.424220110836657e-1, I: 3, J: 36},
		{N: -0.341355823438768, I: 4, J: 3},
		{N: -0.209881740853565e1, I: 4, J: 16},
		{N: -0.822477343323596e1, I: 5, J: 20},
		{N: -0.499684082076008e1, I: 5, J: 36},
		{N: 0.191413958471069, I: 6, J: 4},
		{N: 0.581062241093136e-1, I: 7, J: 2},
		{N: -0.165505498701029e4, I: 7, J: 28},
		{N: 0.158870443421201e4, I: 7, J: 32},
		{N: -0.850623535172818e2, I: 10, J: 14},
		{N: -0.317714386511207e5, I: 10, J: 32},
		{N: -0.945890406632871e5, I: 10, J: 36},
		{N: -0.139273847088690e-5, I: 32, J: 0},
		{N: 0.631052532240980, I: 32, J: 6},
	})
	// saturated vapor, regions 2a-2b/4
	h2abSat = series.New([]series.Term{
		{N: -0.524581170928788e3, I: 1, J: 8},
		{N: -0.926947218142218e7, I: 1, J: 24},
		{N: -0.237385107491666e3, I: 2, J: 4},
		{N: 0.210770155812776e11, I: 2, J: 32},
		{N: -0.239494562010986e2, I: 4, J: 1},
		{N: 0.221802480294197e3, I: 4, J: 2},
		{N: -0.510472533393438e7, I: 7, J: 7},
		{N: 0.124981396109147e7, I: 8, J: 5},
		{N: 0.200008436996201e10, I: 8, J: 12},
		{N: -0.815158509791035e3, I: 10, J: 1},
		{N: -0.157612685637523e3, I: 12, J: 0},
		{N: -0.114200422332791e11, I: 12, J: 7},
		{N: 0.662364680776872e16, I: 18, J: 10},
		{N: -0.227622818296144e19, I: 20, J: 12},
		{N: -0.171048081348406e32, I: 24, J: 32},
		{N: 0.660788766938091e16, I: 28, J: 8},
		{N: 0.166320055886021e23, I: 28, J: 12},
		{N: -0.218003784381501e30, I: 28, J: 20},
		{N: -0.787276140295618e30, I: 28, J: 22},
		{N: 0.151062329700346e32, I: 28, J: 24},
		{N: 0.795732170300541e7, I: 32, J: 2},
		{N: 0.131957647355347e16, I: 32, J: 7},
		{N: -0.325097068299140e24, I: 32, J: 12},
		{N: -0.418600611419248e26, I: 32, J: 14},
		{N: 0.297478906557467e35, I: 32, J: 24},
		{N: -0.953588761745473e20, I: 36, J: 10},
		{N: 0.166957699620939e25, I: 36, J: 12},
		{N: -0.175407764869978e33, I: 36, J: 20},
		{N: 0.347581490626396e35, I: 36, J: 22},
		{N: -0.710971318427851e39, I: 36, J: 28},
	})
	// saturated vapor, regions 2c-3b/4
	h2c3bSat = series.New([]series.Term{
		{N: 0.104351280732769e1, I: 0, J: 0},
		{N: -0.227807912708513e1, I: 0, J: 3},
		{N: 0.180535256723202e1, I: 0, J: 4},
		{N: 0.420440834792042, I: 1, J: 0},
		{N: -0.105721244834660e6, I: 1, J: 12},
		{N: 0.436911607493884e25, I: 5, J: 36},
		{N: -0.328032702839753e12, I: 6, J: 12},
		{N: -0.678686760804270e16, I: 7, J: 16},
		{N: 0.743957464645363e4, I: 8, J: 2},
		{N: -0.356896445355761e20, I: 8, J: 20},
		{N: 0.167590585186801e32, I: 12, J: 32},
		{N: -0.355028625419105e38, I: 16, J: 36},
		{N: 0.396611982166538e12, I: 22, J: 2},
		{N: -0.414716268484468e41, I: 22, J: 32},
		{N: 0.359080103867382e19, I: 24, J: 7},
		{N: -0.116994334851995e41, I: 36, J: 20},
	})
	// B23 as T(h,s)
	t23 = series.New([]series.Term{
		{N: 0.629096260829810e-3, I: -12, J: 10},
		{N: -0.823453502583165e-3, I: -10, J: 8},
		{N: 0.515446951519474e-7, I: -8, J: 3},
		{N: -0.117565945784945e1, I: -4, J: 4},
		{N: 0.348519684726192e1, I: -3, J: 3},
		{N: -0.507837382408313e-11, I: -2, J: -6},
		{N: -0.284637670005479e1, I: -2, J: 2},
		{N: -0.236092263939673e1, I: -2, J: 3},
		{N: 0.601492324973779e1, I: -2, J: 4},
		{N: 0.148039650824546e1, I: 0, J: 0},
		{N: 0.360075182221907e-3, I: 1, J: -3},
		{N: -0.126700045009952e-1, I: 1, J: -2},
		{N: -0.122184332521413e7, I: 1, J: 10},
		{N: 0.149276502463272, I: 3, J: -2},
		{N: 0.698733471798484, I: 3, J: -1},
		{N: -0.252207040114321e-1, I: 5, J: -5},
		{N: 0.147151930985213e-1, I: 6, J: -6},
		{N: -0.108618917681849e1, I: 6, J: -3},
		{N: -0.936875039816322e-3, I: 8, J: -8},
		{N: 0.819877897570217e2, I: 8, J: -2},
		{N: -0.182041861521835e3, I: 8, J: -1},
		{N: 0.261907376402688e-5, I: 12, J: -12},
		{N: -0.291626417025961e5, I: 12, J: -1},
		{N: 0.140660774926165e-4, I: 14, J: -12},
		{N: 0.783237062349385e7, I: 14, J: 1},
	})
)

// H13 returns the enthalpy (kJ/kg) on the region 1/3 boundary at entropy s.
// Valid for 3.397782955 ≤ s ≤ 3.778281340.
func H13(s float64) float64 {
	sigma := s / 3.8
	return h13.Value(sigma-0.884, sigma-0.864) * 1700
}

// H1Sat returns the saturated liquid enthalpy (kJ/kg) at entropy s below
// s'(623.15 K) = 3.778281340.
func H1Sat(s float64) float64 {
	sigma := s / 3.8
	return h1Sat.Value(sigma-1.09, sigma+0.366e-4) * 1700
}

// H3aSat returns the saturated liquid enthalpy (kJ/kg) at entropy s between
// s'(623.15 K) and the critical entropy.
func H3aSat(s float64) float64 {
	sigma := s / 3.8
	return h3aSat.Value(sigma-1.09, sigma+0.366e-4) * 1700
}

// H2abSat returns the saturated vapor enthalpy (kJ/kg) at entropy s for
// 5.85 ≤ s ≤ s''(273.15 K) = 9.155759395.
func H2abSat(s float64) float64 {
	sum := h2abSat.Value(5.21/s-0.513, s/9.2-0.524)
	return math.Exp(sum) * 2800
}

// H2c3bSat returns the saturated vapor enthalpy (kJ/kg) at entropy s for
// the critical entropy ≤ s ≤ 5.85.
func H2c3bSat(s float64) float64 {
	sigma := s / 5.9
	sum := h2c3bSat.Value(sigma-1.02, sigma-0.726)
	sum *= sum
	return sum * sum * 2800
}

// T23 returns the temperature (K) on the region 2/3 boundary for a given
// enthalpy (kJ/kg) and entropy. Valid for 5.048096828 ≤ s ≤ 5.260578707.
func T23(h, s float64) float64 {
	return t23.Value(h/3000-0.727, s/5.3-0.864) * 900
}
