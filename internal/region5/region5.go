// Package region5 implements IF97 region 5, high-temperature steam between
// 1073.15 K and 2273.15 K at pressures up to 50 MPa.
package region5

import (
	"github.com/alexiusacademia/gosteam/internal/gibbs"
	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/series"
)

const tStar = 1000 // K

// γ°(π, τ), IF97 Table 37
var ideal = series.NewLog(1, []series.Term{
	{N: -0.24805148933466e-1, I: 0, J: -3},
	{N: 0.36901534980333, I: 0, J: -2},
	{N: -0.31161318213925e1, I: 0, J: -1},
	{N: -0.13179983674201e2, I: 0, J: 0},
	{N: 0.68540841634434e1, I: 0, J: 1},
	{N: -0.32961626538917, I: 0, J: 2},
})

// γʳ(π, τ), IF97 Table 38
var residual = series.New([]series.Term{
	{N: 0.15736404855259e-2, I: 1, J: 1},
	{N: 0.90153761673944e-3, I: 1, J: 2},
	{N: -0.50270077677648e-2, I: 1, J: 3},
	{N: 0.22440037409485e-5, I: 2, J: 3},
	{N: -0.41163275453471e-5, I: 2, J: 9},
	{N: 0.37919454822955e-7, I: 3, J: 7},
})

// Derivatives evaluates the region 5 Gibbs equation at p (MPa) and T (K).
func Derivatives(p, T float64) gibbs.Derivatives {
	pi := p
	tau := tStar / T

	d := func(d1, d2 int) float64 {
		return ideal.Derivative(pi, tau, d1, d2) + residual.Derivative(pi, tau, d1, d2)
	}
	return gibbs.Derivatives{
		Pi:  pi,
		Tau: tau,
		G:   ideal.Value(pi, tau) + residual.Value(pi, tau),
		Gp:  d(1, 0),
		Gpp: d(2, 0),
		Gt:  d(0, 1),
		Gtt: d(0, 2),
		Gpt: d(1, 1),
	}
}

func V(p, T float64) float64  { return Derivatives(p, T).V(p, T) }
func U(p, T float64) float64  { return Derivatives(p, T).U(T) }
func S(p, T float64) float64  { return Derivatives(p, T).S() }
func H(p, T float64) float64  { return Derivatives(p, T).H(T) }
func Cp(p, T float64) float64 { return Derivatives(p, T).Cp() }
func Cv(p, T float64) float64 { return Derivatives(p, T).Cv() }
func W(p, T float64) float64  { return Derivatives(p, T).W(T) }

// Properties returns the full property set of a region 5 state.
func Properties(p, T float64) iapws.Properties {
	props := Derivatives(p, T).Properties(p, T)
	props.X = 1
	return props
}
