// Package region3 implements IF97 region 3, the dense fluid around the
// critical point. The basic equation is a Helmholtz function of density
// and temperature; the backward equations recover T and v from (p,h) and
// (p,s), p from (h,s), and v from (p,T) through 26 subregion equations.
package region3

import (
	"math"

	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/series"
)

const n1 = 0.10658070028513e1

// φ(δ, τ) = n1 ln δ + Σ n δ^I τ^J, IF97 Table 30
var phi = series.NewLog(n1, []series.Term{
	{N: -0.15732845290239e2, I: 0, J: 0},
	{N: 0.20944396974307e2, I: 0, J: 1},
	{N: -0.76867707878716e1, I: 0, J: 2},
	{N: 0.26185947787954e1, I: 0, J: 7},
	{N: -0.28080781148620e1, I: 0, J: 10},
	{N: 0.12053369696517e1, I: 0, J: 12},
	{N: -0.84566812812502e-2, I: 0, J: 23},
	{N: -0.12654315477714e1, I: 1, J: 2},
	{N: -0.11524407806681e1, I: 1, J: 6},
	{N: 0.88521043984318, I: 1, J: 15},
	{N: -0.64207765181607, I: 1, J: 17},
	{N: 0.38493460186671, I: 2, J: 0},
	{N: -0.85214708824206, I: 2, J: 2},
	{N: 0.48972281541877e1, I: 2, J: 6},
	{N: -0.30502617256965e1, I: 2, J: 7},
	{N: 0.39420536879154e-1, I: 2, J: 22},
	{N: 0.12558408424308, I: 2, J: 26},
	{N: -0.27999329698710, I: 3, J: 0},
	{N: 0.13899799569460e1, I: 3, J: 2},
	{N: -0.20189915023570e1, I: 3, J: 4},
	{N: -0.82147637173963e-2, I: 3, J: 16},
	{N: -0.47596035734923, I: 3, J: 26},
	{N: 0.43984074473500e-1, I: 4, J: 0},
	{N: -0.44476435428739, I: 4, J: 2},
	{N: 0.90572070719733, I: 4, J: 4},
	{N: 0.70522450087967, I: 4, J: 26},
	{N: 0.10770512626332, I: 5, J: 1},
	{N: -0.32913623258954, I: 5, J: 3},
	{N: -0.50871062041158, I: 5, J: 26},
	{N: -0.22175400873096e-1, I: 6, J: 0},
	{N: 0.94260751665092e-1, I: 6, J: 2},
	{N: 0.16436278447961, I: 6, J: 26},
	{N: -0.13503372241348e-1, I: 7, J: 2},
	{N: -0.14834345352472e-1, I: 8, J: 26},
	{N: 0.57922953628084e-3, I: 9, J: 2},
	{N: 0.32308904703711e-2, I: 9, J: 26},
	{N: 0.80964802996215e-4, I: 10, J: 0},
	{N: -0.16557679795037e-3, I: 10, J: 1},
	{N: -0.44923899061815e-4, I: 11, J: 26},
})

// Derivatives holds φ and its partial derivatives at one (δ, τ) point.
type Derivatives struct {
	Delta, Tau float64

	F   float64 // φ
	Fd  float64 // φ_δ
	Fdd float64 // φ_δδ
	Ft  float64 // φ_τ
	Ftt float64 // φ_ττ
	Fdt float64 // φ_δτ
}

// Evaluate returns the Helmholtz derivatives at rho (kg/m³) and T (K).
func Evaluate(rho, T float64) Derivatives {
	delta := rho / iapws.RhoC
	tau := iapws.Tc / T
	return Derivatives{
		Delta: delta,
		Tau:   tau,
		F:     phi.Value(delta, tau),
		Fd:    phi.Derivative(delta, tau, 1, 0),
		Fdd:   phi.Derivative(delta, tau, 2, 0),
		Ft:    phi.Derivative(delta, tau, 0, 1),
		Ftt:   phi.Derivative(delta, tau, 0, 2),
		Fdt:   phi.Derivative(delta, tau, 1, 1),
	}
}

// P returns the pressure (MPa).
func (d Derivatives) P(rho, T float64) float64 {
	return rho * iapws.R * T * d.Delta * d.Fd / 1000
}

// U returns the specific internal energy (kJ/kg).
func (d Derivatives) U(T float64) float64 {
	return iapws.R * T * d.Tau * d.Ft
}

// S returns the specific entropy (kJ/(kg·K)).
func (d Derivatives) S() float64 {
	return iapws.R * (d.Tau*d.Ft - d.F)
}

// H returns the specific enthalpy (kJ/kg).
func (d Derivatives) H(T float64) float64 {
	return iapws.R * T * (d.Tau*d.Ft + d.Delta*d.Fd)
}

// Cv returns the isochoric heat capacity (kJ/(kg·K)).
func (d Derivatives) Cv() float64 {
	return -iapws.R * d.Tau * d.Tau * d.Ftt
}

// Cp returns the isobaric heat capacity (kJ/(kg·K)).
func (d Derivatives) Cp() float64 {
	a := d.Delta*d.Fd - d.Delta*d.Tau*d.Fdt
	b := 2*d.Delta*d.Fd + d.Delta*d.Delta*d.Fdd
	return iapws.R * (-d.Tau*d.Tau*d.Ftt + a*a/b)
}

// W returns the speed of sound (m/s).
func (d Derivatives) W(T float64) float64 {
	a := d.Delta*d.Fd - d.Delta*d.Tau*d.Fdt
	b := 2*d.Delta*d.Fd + d.Delta*d.Delta*d.Fdd
	return math.Sqrt(1000 * iapws.R * T * (b - a*a/(d.Tau*d.Tau*d.Ftt)))
}

func P(rho, T float64) float64  { return Evaluate(rho, T).P(rho, T) }
func U(rho, T float64) float64  { return Evaluate(rho, T).U(T) }
func S(rho, T float64) float64  { return Evaluate(rho, T).S() }
func H(rho, T float64) float64  { return Evaluate(rho, T).H(T) }
func Cp(rho, T float64) float64 { return Evaluate(rho, T).Cp() }
func Cv(rho, T float64) float64 { return Evaluate(rho, T).Cv() }
func W(rho, T float64) float64  { return Evaluate(rho, T).W(T) }

// Properties returns the full property set at rho (kg/m³) and T (K).
// X reports the phase side of the state: 0 at or above the critical
// density, 1 below it.
func Properties(rho, T float64) iapws.Properties {
	d := Evaluate(rho, T)
	x := 1.0
	if rho >= iapws.RhoC {
		x = 0
	}
	return iapws.Properties{
		P:   d.P(rho, T),
		T:   T,
		X:   x,
		Rho: rho,
		V:   1 / rho,
		U:   d.U(T),
		H:   d.H(T),
		S:   d.S(),
		Cp:  d.Cp(),
		Cv:  d.Cv(),
		W:   d.W(T),
	}
}

// PropertiesPT returns the property set of a region 3 state given by
// pressure and temperature, resolving density with the v(p,T) equations.
func PropertiesPT(p, T float64) iapws.Properties {
	props := Properties(1/VPT(p, T), T)
	props.P = p
	return props
}
