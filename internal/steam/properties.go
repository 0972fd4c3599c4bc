package steam

import (
	"fmt"

	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/region"
	"github.com/alexiusacademia/gosteam/internal/region1"
	"github.com/alexiusacademia/gosteam/internal/region2"
	"github.com/alexiusacademia/gosteam/internal/region3"
	"github.com/alexiusacademia/gosteam/internal/region4"
	"github.com/alexiusacademia/gosteam/internal/region5"
	"github.com/alexiusacademia/gosteam/internal/saturation"
)

// Properties is the full property set of a state.
type Properties = iapws.Properties

// Properties evaluates every property of the state at once. Inside the
// two-phase dome Cp, Cv and W are NaN.
func (s State) Properties() Properties {
	switch s.region {
	case region.Region1:
		return region1.Properties(s.a, s.b)
	case region.Region2:
		return region2.Properties(s.a, s.b)
	case region.Region3:
		return region3.Properties(s.a, s.b)
	case region.Region4:
		return region4.Properties(s.a, s.b)
	case region.Region5:
		return region5.Properties(s.a, s.b)
	case region.OutOfRange:
		panic(s.unusable("properties"))
	}
	panic(fmt.Sprintf("steam: unknown region %d", int(s.region)))
}

func (s State) unusable(what string) error {
	return fmt.Errorf("steam: reading %s: %w", what, ErrOutOfRange)
}

// P returns the pressure (MPa).
func (s State) P() float64 {
	switch s.region {
	case region.Region3:
		return region3.P(s.a, s.b)
	case region.Region4:
		return saturation.P(s.a)
	}
	s.mustBeValid("p")
	return s.a
}

// T returns the temperature (K).
func (s State) T() float64 {
	if s.region == region.Region4 {
		return s.a
	}
	s.mustBeValid("T")
	return s.b
}

// X returns the vapour quality: 0 in region 1, 1 in regions 2 and 5, the
// stored quality in region 4, and in region 3 0 or 1 depending on which
// side of the critical density the state lies.
func (s State) X() float64 {
	switch s.region {
	case region.Region1:
		return 0
	case region.Region2, region.Region5:
		return 1
	case region.Region3:
		if s.a >= iapws.RhoC {
			return 0
		}
		return 1
	case region.Region4:
		return s.b
	}
	panic(s.unusable("x"))
}

// Rho returns the density (kg/m³).
func (s State) Rho() float64 {
	if s.region == region.Region3 {
		return s.a
	}
	return s.Properties().Rho
}

// V returns the specific volume (m³/kg).
func (s State) V() float64 { return s.Properties().V }

// U returns the specific internal energy (kJ/kg).
func (s State) U() float64 { return s.Properties().U }

// H returns the specific enthalpy (kJ/kg).
func (s State) H() float64 { return s.Properties().H }

// S returns the specific entropy (kJ/(kg·K)).
func (s State) S() float64 { return s.Properties().S }

// Cp returns the isobaric heat capacity (kJ/(kg·K)), NaN inside the dome.
func (s State) Cp() float64 { return s.Properties().Cp }

// Cv returns the isochoric heat capacity (kJ/(kg·K)), NaN inside the dome.
func (s State) Cv() float64 { return s.Properties().Cv }

// W returns the speed of sound (m/s), NaN inside the dome.
func (s State) W() float64 { return s.Properties().W }

func (s State) mustBeValid(what string) {
	if !s.Valid() {
		panic(s.unusable(what))
	}
}
