// Package region4 implements the IF97 two-phase region: wet steam on the
// saturation line, parameterised by temperature and vapour quality.
//
// Mixture properties interpolate linearly between the saturated liquid and
// the saturated vapour. Which equations supply the two saturated phases
// depends on the saturation pressure: regions 1 and 2 up to 623.15 K (the
// metastable-vapour equation of region 2 at 10 MPa and below), and the
// region 3 v(p,T) subregions bordering the saturation line above.
package region4

import (
	"math"

	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/region1"
	"github.com/alexiusacademia/gosteam/internal/region2"
	"github.com/alexiusacademia/gosteam/internal/region3"
	"github.com/alexiusacademia/gosteam/internal/saturation"
	"github.com/alexiusacademia/gosteam/internal/subregion"
)

// pMeta is the saturation pressure (MPa) at and below which the saturated
// vapour comes from the metastable-vapour equation.
const pMeta = 10.0

// Saturated returns the property sets of saturated liquid (X = 0) and
// saturated vapour (X = 1) at T (K).
func Saturated(T float64) (liquid, vapour iapws.Properties) {
	p := saturation.P(T)

	if T <= iapws.T13 {
		liquid = region1.Properties(p, T)
		if p <= pMeta {
			vapour = region2.MetaProperties(p, T)
		} else {
			vapour = region2.Properties(p, T)
		}
		return liquid, vapour
	}

	l, v := subregion.Saturated(p)
	liquid = region3.Properties(1/region3.VolumePT(l, p, T), T)
	vapour = region3.Properties(1/region3.VolumePT(v, p, T), T)
	liquid.P, liquid.X = p, 0
	vapour.P, vapour.X = p, 1
	return liquid, vapour
}

// Properties returns the property set of wet steam at T (K) and quality
// x. Cp, Cv and W are only defined on the saturation lines themselves
// (x == 0 or x == 1) and are NaN inside the two-phase dome.
func Properties(T, x float64) iapws.Properties {
	liquid, vapour := Saturated(T)
	switch x {
	case 0:
		return liquid
	case 1:
		return vapour
	}

	mix := func(a, b float64) float64 { return a + x*(b-a) }
	v := mix(liquid.V, vapour.V)
	return iapws.Properties{
		P:   liquid.P,
		T:   T,
		X:   x,
		Rho: 1 / v,
		V:   v,
		U:   mix(liquid.U, vapour.U),
		H:   mix(liquid.H, vapour.H),
		S:   mix(liquid.S, vapour.S),
		Cp:  math.NaN(),
		Cv:  math.NaN(),
		W:   math.NaN(),
	}
}

// V returns the specific volume (m³/kg) at T (K) and quality x.
func V(T, x float64) float64 { return Properties(T, x).V }

// Rho returns the density (kg/m³).
func Rho(T, x float64) float64 { return Properties(T, x).Rho }

// U returns the specific internal energy (kJ/kg).
func U(T, x float64) float64 { return Properties(T, x).U }

// H returns the specific enthalpy (kJ/kg).
func H(T, x float64) float64 { return Properties(T, x).H }

// S returns the specific entropy (kJ/(kg·K)).
func S(T, x float64) float64 { return Properties(T, x).S }

// Cp returns the isobaric heat capacity (kJ/(kg·K)) for x of 0 or 1.
func Cp(T, x float64) float64 { return Properties(T, x).Cp }

// Cv returns the isochoric heat capacity (kJ/(kg·K)) for x of 0 or 1.
func Cv(T, x float64) float64 { return Properties(T, x).Cv }

// W returns the speed of sound (m/s) for x of 0 or 1.
func W(T, x float64) float64 { return Properties(T, x).W }

// XTH returns the vapour quality of a state with enthalpy h (kJ/kg) at
// saturation temperature T (K).
func XTH(T, h float64) float64 {
	liquid, vapour := Saturated(T)
	return (h - liquid.H) / (vapour.H - liquid.H)
}

// XTS returns the vapour quality of a state with entropy s (kJ/(kg·K)) at
// saturation temperature T (K).
func XTS(T, s float64) float64 {
	liquid, vapour := Saturated(T)
	return (s - liquid.S) / (vapour.S - liquid.S)
}
