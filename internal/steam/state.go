// Package steam is the state-point API: it builds an immutable water or
// steam state from any supported pair of independent variables and reads
// its thermodynamic properties.
//
// A State stores its region and two canonical coordinates: pressure and
// temperature in regions 1, 2 and 5, density and temperature in region 3,
// and temperature and vapour quality in region 4. Every constructor
// classifies first and converts the inputs to the canonical pair with the
// backward equations of the region found.
package steam

import (
	"errors"
	"fmt"

	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/region"
	"github.com/alexiusacademia/gosteam/internal/region1"
	"github.com/alexiusacademia/gosteam/internal/region2"
	"github.com/alexiusacademia/gosteam/internal/region3"
	"github.com/alexiusacademia/gosteam/internal/region4"
	"github.com/alexiusacademia/gosteam/internal/saturation"
)

// ErrOutOfRange is the panic value (wrapped) raised when a property of an
// out-of-range state is read. Check Valid first.
var ErrOutOfRange = errors.New("state out of range")

// State is one thermodynamic state of water. The zero value is out of
// range.
type State struct {
	region region.Region
	a, b   float64
}

func outOfRange() State { return State{region: region.OutOfRange} }

// NewPT returns the state at pressure p (MPa) and temperature T (K).
func NewPT(p, T float64) State {
	switch r := region.FromPT(p, T); r {
	case region.Region1, region.Region2, region.Region5:
		return State{region: r, a: p, b: T}
	case region.Region3:
		return State{region: r, a: 1 / region3.VPT(p, T), b: T}
	default:
		return outOfRange()
	}
}

// NewPH returns the state at pressure p (MPa) and enthalpy h (kJ/kg).
// IF97 has no backward equations for region 5, so such states are out of
// range.
func NewPH(p, h float64) State {
	switch r := region.FromPH(p, h); r {
	case region.Region1:
		return State{region: r, a: p, b: region1.TPH(p, h)}
	case region.Region2:
		return State{region: r, a: p, b: region2.TPH(p, h)}
	case region.Region3:
		return State{region: r, a: 1 / region3.VPH(p, h), b: region3.TPH(p, h)}
	case region.Region4:
		T := saturation.T(p)
		return State{region: r, a: T, b: clampQuality(region4.XTH(T, h))}
	default:
		return outOfRange()
	}
}

// NewPS returns the state at pressure p (MPa) and entropy s (kJ/(kg·K)).
// Region 5 states are out of range, as in NewPH.
func NewPS(p, s float64) State {
	switch r := region.FromPS(p, s); r {
	case region.Region1:
		return State{region: r, a: p, b: region1.TPS(p, s)}
	case region.Region2:
		return State{region: r, a: p, b: region2.TPS(p, s)}
	case region.Region3:
		return State{region: r, a: 1 / region3.VPS(p, s), b: region3.TPS(p, s)}
	case region.Region4:
		T := saturation.T(p)
		return State{region: r, a: T, b: clampQuality(region4.XTS(T, s))}
	default:
		return outOfRange()
	}
}

// NewHS returns the state at enthalpy h (kJ/kg) and entropy s
// (kJ/(kg·K)). The pressure (or, in the two-phase region, the saturation
// temperature) comes from the p(h,s) backward equations; the state is then
// built as by NewPS or NewTx.
func NewHS(h, s float64) State {
	switch region.FromHS(h, s) {
	case region.Region1:
		return NewPS(region1.PHS(h, s), s)
	case region.Region2:
		return NewPS(region2.PHS(h, s), s)
	case region.Region3:
		return NewPS(clampPMax(region3.PHS(h, s)), s)
	case region.Region4:
		T := region4.TSatHS(h, s)
		if region.FromTx(T, 0) != region.Region4 {
			return outOfRange()
		}
		return NewTx(T, clampQuality(region4.XTH(T, h)))
	default:
		return outOfRange()
	}
}

// The backward p(h,s) equations can overshoot the 100 MPa isobar by a few
// kPa for states on it.
const pMaxSlack = 0.01 // MPa

func clampPMax(p float64) float64 {
	if p > iapws.PMax && p <= iapws.PMax+pMaxSlack {
		return iapws.PMax
	}
	return p
}

// NewTx returns the two-phase state at temperature T (K) and vapour
// quality x.
func NewTx(T, x float64) State {
	if region.FromTx(T, x) != region.Region4 {
		return outOfRange()
	}
	return State{region: region.Region4, a: T, b: x}
}

// NewPx returns the two-phase state at pressure p (MPa) and vapour
// quality x.
func NewPx(p, x float64) State {
	if region.FromPx(p, x) != region.Region4 {
		return outOfRange()
	}
	return State{region: region.Region4, a: saturation.T(p), b: x}
}

// NewRhoT returns the state at density rho (kg/m³) and temperature T (K).
// Only states in and around region 3 are resolved.
func NewRhoT(rho, T float64) State {
	switch r := region.FromRhoT(rho, T); r {
	case region.Region3:
		return State{region: r, a: rho, b: T}
	case region.Region4:
		liquid, vapour := region4.Saturated(T)
		x := (1/rho - liquid.V) / (vapour.V - liquid.V)
		return State{region: r, a: T, b: clampQuality(x)}
	default:
		return outOfRange()
	}
}

// clampQuality absorbs the small inconsistencies between the equations
// that classify a two-phase state and those that compute its quality.
func clampQuality(x float64) float64 {
	return min(max(x, 0), 1)
}

// Region returns the IF97 region of the state.
func (s State) Region() region.Region { return s.region }

// Valid reports whether the state lies inside the formulation's envelope.
// Property getters panic on an invalid state.
func (s State) Valid() bool { return s.region.Valid() }

func (s State) String() string {
	if !s.Valid() {
		return s.region.String()
	}
	props := s.Properties()
	return fmt.Sprintf("%s: p=%.6g MPa T=%.6g K x=%.4g h=%.6g kJ/kg s=%.6g kJ/(kg·K)",
		s.region, props.P, props.T, props.X, props.H, props.S)
}
