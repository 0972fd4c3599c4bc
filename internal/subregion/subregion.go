// Package subregion resolves the secondary IF97 splits inside regions 2 and
// 3. Region 2 has three subregions for its backward equations; region 3 has
// two unrelated schemes: 3a/3b for the backward equations in (p,h), (p,s)
// and (h,s), and 26 lettered subregions for the v(p,T) equations.
package subregion

import "github.com/alexiusacademia/gosteam/internal/boundary"

// Region2 is a region 2 subregion of the backward equations.
type Region2 byte

const (
	Region2A Region2 = 'a'
	Region2B Region2 = 'b'
	Region2C Region2 = 'c'
)

func (r Region2) String() string {
	return "2" + string(rune(r))
}

// Region3 is a region 3 subregion of the backward equations.
type Region3 byte

const (
	Region3A Region3 = 'a'
	Region3B Region3 = 'b'
)

func (r Region3) String() string {
	return "3" + string(rune(r))
}

const (
	// p2ab is the pressure (MPa) splitting 2a from 2b and 2c.
	p2ab = 4.0
	// s2bc is the entropy (kJ/(kg·K)) splitting 2b from 2c.
	s2bc = 5.85
)

// Region2PH returns the region 2 subregion for T(p,h).
func Region2PH(p, h float64) Region2 {
	if p < p2ab {
		return Region2A
	}
	if p < boundary.B2bcP(h) {
		return Region2B
	}
	return Region2C
}

// Region2PS returns the region 2 subregion for T(p,s).
func Region2PS(p, s float64) Region2 {
	if p < p2ab {
		return Region2A
	}
	if s >= s2bc {
		return Region2B
	}
	return Region2C
}

// Region2HS returns the region 2 subregion for p(h,s).
func Region2HS(h, s float64) Region2 {
	if s < s2bc {
		return Region2C
	}
	if h <= boundary.H2ab(s) {
		return Region2A
	}
	return Region2B
}

// Region3PH returns the region 3 subregion for T(p,h) and v(p,h).
func Region3PH(p, h float64) Region3 {
	if h <= boundary.H3ab(p) {
		return Region3A
	}
	return Region3B
}

// Region3PS returns the region 3 subregion for T(p,s) and v(p,s).
func Region3PS(p, s float64) Region3 {
	return Region3S(s)
}

// Region3S returns the region 3 subregion for any backward equation taking
// entropy, which always splits at the critical entropy.
func Region3S(s float64) Region3 {
	if s <= boundary.S3ab {
		return Region3A
	}
	return Region3B
}
