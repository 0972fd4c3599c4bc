// Package gibbs turns the derivatives of a dimensionless Gibbs free energy
// γ(π, τ) = g(p, T) / (R·T) into thermodynamic properties. Regions 1, 2 and 5
// share these relations (IF97 Tables 3, 12 and 39).
package gibbs

import (
	"math"

	"github.com/alexiusacademia/gosteam/internal/iapws"
)

// Derivatives holds γ and its partial derivatives with respect to the
// reduced pressure π and inverse reduced temperature τ at one state.
type Derivatives struct {
	Pi, Tau float64

	G   float64 // γ
	Gp  float64 // ∂γ/∂π
	Gpp float64 // ∂²γ/∂π²
	Gt  float64 // ∂γ/∂τ
	Gtt float64 // ∂²γ/∂τ²
	Gpt float64 // ∂²γ/∂π∂τ
}

// V returns the specific volume (m³/kg) at p (MPa) and T (K).
func (d Derivatives) V(p, T float64) float64 {
	return d.Pi * d.Gp * iapws.R * T / p * 1e-3
}

// U returns the specific internal energy (kJ/kg).
func (d Derivatives) U(T float64) float64 {
	return (d.Tau*d.Gt - d.Pi*d.Gp) * iapws.R * T
}

// S returns the specific entropy (kJ/(kg·K)).
func (d Derivatives) S() float64 {
	return (d.Tau*d.Gt - d.G) * iapws.R
}

// H returns the specific enthalpy (kJ/kg).
func (d Derivatives) H(T float64) float64 {
	return d.Tau * d.Gt * iapws.R * T
}

// Cp returns the specific isobaric heat capacity (kJ/(kg·K)).
func (d Derivatives) Cp() float64 {
	return -d.Tau * d.Tau * d.Gtt * iapws.R
}

// Cv returns the specific isochoric heat capacity (kJ/(kg·K)).
func (d Derivatives) Cv() float64 {
	a := d.Gp - d.Tau*d.Gpt
	return (-d.Tau*d.Tau*d.Gtt + a*a/d.Gpp) * iapws.R
}

// W returns the speed of sound (m/s).
func (d Derivatives) W(T float64) float64 {
	a := d.Gp - d.Tau*d.Gpt
	w2 := 1e3 * iapws.R * T * d.Gp * d.Gp / (a*a/(d.Tau*d.Tau*d.Gtt) - d.Gpp)
	return math.Sqrt(w2)
}

// Properties returns every property at p (MPa) and T (K).
func (d Derivatives) Properties(p, T float64) iapws.Properties {
	v := d.V(p, T)
	return iapws.Properties{
		P:   p,
		T:   T,
		Rho: 1 / v,
		V:   v,
		U:   d.U(T),
		H:   d.H(T),
		S:   d.S(),
		Cp:  d.Cp(),
		Cv:  d.Cv(),
		W:   d.W(T),
	}
}
