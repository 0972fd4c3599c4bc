package region

import (
	"github.com/alexiusacademia/gosteam/internal/boundary"
	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/region1"
	"github.com/alexiusacademia/gosteam/internal/region2"
	"github.com/alexiusacademia/gosteam/internal/region3"
	"github.com/alexiusacademia/gosteam/internal/region4"
	"github.com/alexiusacademia/gosteam/internal/region5"
	"github.com/alexiusacademia/gosteam/internal/saturation"
	"github.com/alexiusacademia/gosteam/internal/subregion"
)

// Corners of the saturation line on the region 3 side, used where the
// (p,h) and (p,s) classifiers switch to the psat3 backward equations.
const (
	hSat3Min = 1670.858218 // h' at 623.15 K
	hSat3Max = 2563.592004 // h'' at 623.15 K
	sSat3Min = 3.778281340 // s' at 623.15 K
	sSat3Max = 5.210887825 // s'' at 623.15 K
)

// Entropy bands of the (h,s) classifier.
const (
	sMinHS   = -1.545495919e-4 // s of region 1 at 273.15 K and 100 MPa
	s13      = 3.397782955     // s at the B13/100 MPa corner
	s23Min   = 5.048096828     // lowest s on the B23 curve
	s23Max   = 5.260578707     // highest s on the B23 curve
	h23Max   = 2812.942061     // highest h on the B23 curve
	sMax2ab4 = 9.155759395     // s'' at 273.15 K
)

// FromPT classifies a state by pressure (MPa) and temperature (K).
func FromPT(p, T float64) Region {
	switch {
	case T < iapws.TMin || T > iapws.TMax || p <= 0 || p > iapws.PMax:
		return OutOfRange
	case T <= iapws.T13:
		if p >= saturation.P(T) {
			return Region1
		}
		return Region2
	case T <= iapws.T25:
		if p >= boundary.B23P(T) {
			return Region3
		}
		return Region2
	case p <= iapws.P5Max:
		return Region5
	default:
		return OutOfRange
	}
}

// FromPH classifies a state by pressure (MPa) and enthalpy (kJ/kg).
func FromPH(p, h float64) Region {
	if p <= 0 || p > iapws.PMax {
		return OutOfRange
	}
	if h < region1.H(p, iapws.TMin) {
		return OutOfRange
	}

	if p <= iapws.PSat13 {
		T := saturation.T(p)
		if h <= region1.H(p, T) {
			return Region1
		}
		if h < region2.H(p, T) {
			return Region4
		}
	} else {
		switch {
		case h >= hSat3Min && h <= hSat3Max:
			if p >= region3.PsatH(h) {
				return Region3
			}
			return Region4
		case h <= region1.H(p, iapws.T13):
			return Region1
		case h < region2.H(p, boundary.B23T(p)):
			return Region3
		}
	}

	return right(p, h, region2.H, region5.H)
}

// FromPS classifies a state by pressure (MPa) and entropy (kJ/(kg·K)).
func FromPS(p, s float64) Region {
	if p <= 0 || p > iapws.PMax {
		return OutOfRange
	}
	if s < region1.S(p, iapws.TMin) {
		return OutOfRange
	}

	if p <= iapws.PSat13 {
		T := saturation.T(p)
		if s <= region1.S(p, T) {
			return Region1
		}
		if s < region2.S(p, T) {
			return Region4
		}
	} else {
		switch {
		case s <= region1.S(p, iapws.T13):
			return Region1
		case s >= sSat3Min && s <= sSat3Max && p < region3.PsatS(s):
			return Region4
		case s < region2.S(p, boundary.B23T(p)):
			return Region3
		}
	}

	return right(p, s, region2.S, region5.S)
}

// right resolves the vapour side of a (p,h) or (p,s) classification:
// region 2 up to 1073.15 K, then region 5 up to 2273.15 K at 50 MPa and
// below.
func right(p, y float64, r2, r5 func(p, T float64) float64) Region {
	if y <= r2(p, iapws.T25) {
		return Region2
	}
	if p <= iapws.P5Max && y <= r5(p, iapws.TMax) {
		return Region5
	}
	return OutOfRange
}

// FromHS classifies a state by enthalpy (kJ/kg) and entropy (kJ/(kg·K)).
// Regions 1 to 4 are resolved; states beyond the region 2 envelope in
// (h,s) are not detected here and are caught when the backward pressure
// is classified again by (p,s).
func FromHS(h, s float64) Region {
	switch {
	case s < sMinHS:
		return OutOfRange

	case s <= sSat3Min:
		switch {
		case h < boundary.H1Sat(s):
			return Region4
		case s >= s13 && h > boundary.H13(s):
			return Region3
		default:
			return Region1
		}

	case s <= boundary.S3ab:
		if h < boundary.H3aSat(s) {
			return Region4
		}
		return Region3

	case s <= 5.85:
		switch {
		case h < boundary.H2c3bSat(s):
			return Region4
		case s <= s23Min:
			return Region3
		case s >= s23Max || h >= h23Max:
			return Region2
		}
		p := region2.PHSIn(subregion.Region2C, h, s)
		if p >= boundary.B23P(boundary.T23(h, s)) {
			return Region3
		}
		return Region2

	case s <= sMax2ab4:
		if h < boundary.H2abSat(s) {
			return Region4
		}
		return Region2

	default:
		return Region2
	}
}

// FromTx classifies a state on the saturation line by temperature (K) and
// vapour quality.
func FromTx(T, x float64) Region {
	if x < 0 || x > 1 || T < iapws.TMin || T > iapws.Tc {
		return OutOfRange
	}
	return Region4
}

// FromPx classifies a state on the saturation line by pressure (MPa) and
// vapour quality.
func FromPx(p, x float64) Region {
	if x < 0 || x > 1 || p < iapws.PSatMin || p > iapws.Pc {
		return OutOfRange
	}
	return Region4
}

// FromRhoT classifies a state by density (kg/m³) and temperature (K).
// Only states bounded by the region 3 envelope are resolved: region 3
// itself, and region 4 where the density falls between the saturated
// phases below the critical temperature. Any other state is OutOfRange.
func FromRhoT(rho, T float64) Region {
	if rho <= 0 || T < iapws.T13 || T > iapws.TB23Hi {
		return OutOfRange
	}
	v := 1 / rho
	if v > region2.V(boundary.B23P(T), T) {
		return OutOfRange
	}
	if T < iapws.Tc {
		liquid, vapour := region4.Saturated(T)
		if v > liquid.V && v < vapour.V {
			return Region4
		}
	}
	if region3.P(rho, T) > iapws.PMax {
		return OutOfRange
	}
	return Region3
}
