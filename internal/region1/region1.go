// Package region1 implements IF97 region 1 (compressed liquid): the basic
// Gibbs equation and the backward equations T(p,h), T(p,s) and p(h,s).
package region1

import (
	"github.com/alexiusacademia/gosteam/internal/gibbs"
	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/series"
)

const (
	pStar = 16.53 // MPa
	tStar = 1386  // K
)

// γ(π, τ) in (7.1 − π, τ − 1.222), IF97 Table 2
var gamma = series.New([]series.Term{
	{N: 0.14632971213167, I: 0, J: -2},
	{N: -0.84548187169114, I: 0, J: -1},
	{N: -0.37563603672040e1, I: 0, J: 0},
	{N: 0.33855169168385e1, I: 0, J: 1},
	{N: -0.95791963387872, I: 0, J: 2},
	{N: 0.15772038513228, I: 0, J: 3},
	{N: -0.16616417199501e-1, I: 0, J: 4},
	{N: 0.81214629983568e-3, I: 0, J: 5},
	{N: 0.28319080123804e-3, I: 1, J: -9},
	{N: -0.60706301565874e-3, I: 1, J: -7},
	{N: -0.18990068218419e-1, I: 1, J: -1},
	{N: -0.32529748770505e-1, I: 1, J: 0},
	{N: -0.21841717175414e-1, I: 1, J: 1},
	{N: -0.52838357969930e-4, I: 1, J: 3},
	{N: -0.47184321073267e-3, I: 2, J: -3},
	{N: -0.30001780793026e-3, I: 2, J: 0},
	{N: 0.47661393906987e-4, I: 2, J: 1},
	{N: -0.44141845330846e-5, I: 2, J: 3},
	{N: -0.72694996297594e-15, I: 2, J: 17},
	{N: -0.31679644845054e-4, I: 3, J: -4},
	{N: -0.28270797985312e-5, I: 3, J: 0},
	{N: -0.85205128120103e-9, I: 3, J: 6},
	{N: -0.22425281908000e-5, I: 4, J: -5},
	{N: -0.65171222895601e-6, I: 4, J: -2},
	{N: -0.14341729937924e-12, I: 4, J: 10},
	{N: -0.40516996860117e-6, I: 5, J: -8},
	{N: -0.12734301741641e-8, I: 8, J: -11},
	{N: -0.17424871230634e-9, I: 8, J: -6},
	{N: -0.68762131295531e-18, I: 21, J: -29},
	{N: 0.14478307828521e-19, I: 23, J: -31},
	{N: 0.26335781662795e-22, I: 29, J: -38},
	{N: -0.11947622640071e-22, I: 30, J: -39},
	{N: 0.18228094581404e-23, I: 31, J: -40},
	{N: -0.93537087292458e-25, I: 32, J: -41},
})

// Derivatives evaluates the Gibbs equation at p (MPa) and T (K).
func Derivatives(p, T float64) gibbs.Derivatives {
	pi := p / pStar
	tau := tStar / T
	x1, x2 := 7.1-pi, tau-1.222

	// d(7.1 − π)/dπ = −1
	return gibbs.Derivatives{
		Pi:  pi,
		Tau: tau,
		G:   gamma.Value(x1, x2),
		Gp:  -gamma.Derivative(x1, x2, 1, 0),
		Gpp: gamma.Derivative(x1, x2, 2, 0),
		Gt:  gamma.Derivative(x1, x2, 0, 1),
		Gtt: gamma.Derivative(x1, x2, 0, 2),
		Gpt: -gamma.Derivative(x1, x2, 1, 1),
	}
}

// V returns the specific volume (m³/kg).
func V(p, T float64) float64 { return Derivatives(p, T).V(p, T) }

// U returns the specific internal energy (kJ/kg).
func U(p, T float64) float64 { return Derivatives(p, T).U(T) }

// S returns the specific entropy (kJ/(kg·K)).
func S(p, T float64) float64 { return Derivatives(p, T).S() }

// H returns the specific enthalpy (kJ/kg).
func H(p, T float64) float64 { return Derivatives(p, T).H(T) }

// Cp returns the specific isobaric heat capacity (kJ/(kg·K)).
func Cp(p, T float64) float64 { return Derivatives(p, T).Cp() }

// Cv returns the specific isochoric heat capacity (kJ/(kg·K)).
func Cv(p, T float64) float64 { return Derivatives(p, T).Cv() }

// W returns the speed of sound (m/s).
func W(p, T float64) float64 { return Derivatives(p, T).W(T) }

// Properties returns every property at p (MPa) and T (K).
func Properties(p, T float64) iapws.Properties {
	props := Derivatives(p, T).Properties(p, T)
	props.X = 0
	return props
}
