// Package region2 implements IF97 region 2 (superheated vapour), including
// the metastable-vapour variant used below 10 MPa near saturation and the
// backward equations for subregions 2a, 2b and 2c.
package region2

import (
	"github.com/alexiusacademia/gosteam/internal/gibbs"
	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/series"
)

const tStar = 540 // K

// γ°(π, τ) = ln π + Σ n τ^J, IF97 Table 10
var ideal = series.NewLog(1, []series.Term{
	{N: -0.56087911283020e-2, I: 0, J: -5},
	{N: 0.71452738081455e-1, I: 0, J: -4},
	{N: -0.40710498223928, I: 0, J: -3},
	{N: 0.14240819171444e1, I: 0, J: -2},
	{N: -0.43839511319450e1, I: 0, J: -1},
	{N: -0.96927686500217e1, I: 0, J: 0},
	{N: 0.10086655968018e2, I: 0, J: 1},
	{N: -0.28408632460772, I: 0, J: 2},
	{N: 0.21268463753307e-1, I: 0, J: 3},
})

// γʳ(π, τ − 0.5), IF97 Table 11
var residual = series.New([]series.Term{
	{N: -0.17731742473213e-2, I: 1, J: 0},
	{N: -0.17834862292358e-1, I: 1, J: 1},
	{N: -0.45996013696365e-1, I: 1, J: 2},
	{N: -0.57581259083432e-1, I: 1, J: 3},
	{N: -0.50325278727930e-1, I: 1, J: 6},
	{N: -0.33032641670203e-4, I: 2, J: 1},
	{N: -0.18948987516315e-3, I: 2, J: 2},
	{N: -0.39392777243355e-2, I: 2, J: 4},
	{N: -0.43797295650573e-1, I: 2, J: 7},
	{N: -0.26674547914087e-4, I: 2, J: 36},
	{N: 0.20481737692309e-7, I: 3, J: 0},
	{N: 0.43870667284435e-6, I: 3, J: 1},
	{N: -0.32277677238570e-4, I: 3, J: 3},
	{N: -0.15033924542148e-2, I: 3, J: 6},
	{N: -0.40668253562649e-1, I: 3, J: 35},
	{N: -0.78847309559367e-9, I: 4, J: 1},
	{N: 0.12790717852285e-7, I: 4, J: 2},
	{N: 0.48225372718507e-6, I: 4, J: 3},
	{N: 0.22922076337661e-5, I: 5, J: 7},
	{N: -0.16714766451061e-10, I: 6, J: 3},
	{N: -0.21171472321355e-2, I: 6, J: 16},
	{N: -0.23895741934104e2, I: 6, J: 35},
	{N: -0.59059564324270e-17, I: 7, J: 0},
	{N: -0.12621808899101e-5, I: 7, J: 11},
	{N: -0.38946842435739e-1, I: 7, J: 25},
	{N: 0.11256211360459e-10, I: 8, J: 8},
	{N: -0.82311340897998e1, I: 8, J: 36},
	{N: 0.19809712802088e-7, I: 9, J: 13},
	{N: 0.10406965210174e-18, I: 10, J: 4},
	{N: -0.10234747095929e-12, I: 10, J: 10},
	{N: -0.10018179379511e-8, I: 10, J: 14},
	{N: -0.80882908646985e-10, I: 16, J: 29},
	{N: 0.10693031879409, I: 16, J: 50},
	{N: -0.33662250574171, I: 18, J: 57},
	{N: 0.89185845355421e-24, I: 20, J: 20},
	{N: 0.30629316876232e-12, I: 20, J: 35},
	{N: -0.42002467698208e-5, I: 20, J: 48},
	{N: -0.59056029685639e-25, I: 21, J: 21},
	{N: 0.37826947613457e-5, I: 22, J: 53},
	{N: -0.12768608934681e-14, I: 23, J: 39},
	{N: 0.73087610595061e-28, I: 24, J: 26},
	{N: 0.55414715350778e-16, I: 24, J: 40},
	{N: -0.94369707241210e-6, I: 24, J: 58},
})

// Metastable-vapour γ°, IF97 Table 10 with n°1 and n°2 replaced.
var metaIdeal = series.NewLog(1, []series.Term{
	{N: -0.56087911283020e-2, I: 0, J: -5},
	{N: 0.71452738081455e-1, I: 0, J: -4},
	{N: -0.40710498223928, I: 0, J: -3},
	{N: 0.14240819171444e1, I: 0, J: -2},
	{N: -0.43839511319450e1, I: 0, J: -1},
	{N: -0.96937268393049e1, I: 0, J: 0},
	{N: 0.10087275970006e2, I: 0, J: 1},
	{N: -0.28408632460772, I: 0, J: 2},
	{N: 0.21268463753307e-1, I: 0, J: 3},
})

// Metastable-vapour γʳ(π, τ − 0.5), IF97 Table 16
var metaResidual = series.New([]series.Term{
	{N: -0.73362260186506e-2, I: 1, J: 0},
	{N: -0.88223831943146e-1, I: 1, J: 2},
	{N: -0.72334555213245e-1, I: 1, J: 5},
	{N: -0.40813178534455e-2, I: 1, J: 11},
	{N: 0.20097803380207e-2, I: 2, J: 1},
	{N: -0.53045921898642e-1, I: 2, J: 7},
	{N: -0.76190409086970e-2, I: 2, J: 16},
	{N: -0.63498037657313e-2, I: 3, J: 4},
	{N: -0.86043093028588e-1, I: 3, J: 16},
	{N: 0.75321581522770e-2, I: 4, J: 7},
	{N: -0.79238375446139e-2, I: 4, J: 10},
	{N: -0.22888160778447e-3, I: 5, J: 9},
	{N: -0.26456501482810e-2, I: 5, J: 10},
})

func derivatives(ig, res *series.Series, p, T float64) gibbs.Derivatives {
	pi := p
	tau := tStar / T
	x2 := tau - 0.5

	d := func(d1, d2 int) float64 {
		return ig.Derivative(pi, tau, d1, d2) + res.Derivative(pi, x2, d1, d2)
	}
	return gibbs.Derivatives{
		Pi:  pi,
		Tau: tau,
		G:   ig.Value(pi, tau) + res.Value(pi, x2),
		Gp:  d(1, 0),
		Gpp: d(2, 0),
		Gt:  d(0, 1),
		Gtt: d(0, 2),
		Gpt: d(1, 1),
	}
}

// Derivatives evaluates the region 2 Gibbs equation at p (MPa) and T (K).
func Derivatives(p, T float64) gibbs.Derivatives {
	return derivatives(ideal, residual, p, T)
}

// MetaDerivatives evaluates the metastable-vapour Gibbs equation.
func MetaDerivatives(p, T float64) gibbs.Derivatives {
	return derivatives(metaIdeal, metaResidual, p, T)
}

// V returns the specific volume (m³/kg).
func V(p, T float64) float64 { return Derivatives(p, T).V(p, T) }

// U returns the specific internal energy (kJ/kg).
func U(p, T float64) float64 { return Derivatives(p, T).U(T) }

// S returns the specific entropy (kJ/(kg·K)).
func S(p, T float64) float64 { return Derivatives(p, T).S() }

// H returns the specific enthalpy (kJ/kg).
func H(p, T float64) float64 { return Derivatives(p, T).H(T) }

// Cp returns the isobaric heat capacity (kJ/(kg·K)).
func Cp(p, T float64) float64 { return Derivatives(p, T).Cp() }

// Cv returns the isochoric heat capacity (kJ/(kg·K)).
func Cv(p, T float64) float64 { return Derivatives(p, T).Cv() }

// W returns the speed of sound (m/s).
func W(p, T float64) float64 { return Derivatives(p, T).W(T) }

// Properties returns the full property set of a region 2 state.
func Properties(p, T float64) iapws.Properties {
	props := Derivatives(p, T).Properties(p, T)
	props.X = 1
	return props
}

// MetaProperties returns the property set from the metastable-vapour
// equation.
func MetaProperties(p, T float64) iapws.Properties {
	props := MetaDerivatives(p, T).Properties(p, T)
	props.X = 1
	return props
}
