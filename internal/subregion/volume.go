package subregion

import (
	"github.com/alexiusacademia/gosteam/internal/boundary"
	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/saturation"
)

// Volume is a region 3 subregion of the v(p,T) equations, 3a through 3z.
type Volume byte

const (
	VolumeA Volume = 'a' + iota
	VolumeB
	VolumeC
	VolumeD
	VolumeE
	VolumeF
	VolumeG
	VolumeH
	VolumeI
	VolumeJ
	VolumeK
	VolumeL
	VolumeM
	VolumeN
	VolumeO
	VolumeP
	VolumeQ
	VolumeR
	VolumeS
	VolumeT
	VolumeU
	VolumeV
	VolumeW
	VolumeX
	VolumeY
	VolumeZ
)

// Volumes lists every v(p,T) subregion in order.
var Volumes = func() []Volume {
	all := make([]Volume, 0, 26)
	for v := VolumeA; v <= VolumeZ; v++ {
		all = append(all, v)
	}
	return all
}()

func (v Volume) String() string {
	return "3" + string(rune(v))
}

// Pressure thresholds (MPa) of the v(p,T) subregion tree.
const (
	p3cd   = 19.00881189173929 // 3c/3d split, psat at the 3c/3d boundary
	p3ymin = 21.93161551       // lowest pressure of 3y on the saturation line
	p3zmin = 21.90096265       // lowest pressure of 3z on the saturation line
	p3sat  = 21.04336732       // psat at 643.15 K
	p3uv   = 22.11             // 3u/3v, 3w/3x band
)

// Region3PT returns the v(p,T) subregion of a region 3 state.
//
// States exactly on a boundary curve resolve to the subregion below it
// (T ≤ boundary).
func Region3PT(p, T float64) Volume {
	switch {
	case p > 40:
		if T <= boundary.T3ab(p) {
			return VolumeA
		}
		return VolumeB

	case p <= p3cd:
		if T <= saturation.T(p) {
			return VolumeC
		}
		return VolumeT

	case T <= boundary.T3cd(p):
		return VolumeC

	case p > 25:
		switch {
		case T <= boundary.T3ab(p):
			return VolumeD
		case T <= boundary.T3ef(p):
			return VolumeE
		default:
			return VolumeF
		}

	case p <= 20.5:
		if T <= saturation.T(p) {
			return VolumeS
		}
		return VolumeT

	case T > boundary.T3jk(p):
		return VolumeK

	case p > 23:
		switch {
		case T <= boundary.T3gh(p):
			if p > 23.5 {
				return VolumeG
			}
			return VolumeL
		case T <= boundary.T3ef(p):
			return VolumeH
		case T <= boundary.T3ij(p):
			return VolumeI
		default:
			return VolumeJ
		}

	case p > 22.5:
		switch {
		case T <= boundary.T3gh(p):
			return VolumeL
		case T <= boundary.T3mn(p):
			return VolumeM
		case T <= boundary.T3ef(p):
			return VolumeN
		case T <= boundary.T3op(p):
			return VolumeO
		case T <= boundary.T3ij(p):
			return VolumeP
		default:
			return VolumeJ
		}

	case p > p3sat:
		switch {
		case T <= boundary.T3qu(p):
			return VolumeQ
		case T > boundary.T3rx(p):
			return VolumeR
		}
		return nearCritical(p, T)

	default:
		if T <= saturation.T(p) {
			return VolumeS
		}
		return VolumeR
	}
}

// nearCritical resolves the band between the 3q/3u and 3r/3x curves for
// psat(643.15 K) < p ≤ 22.5 MPa.
func nearCritical(p, T float64) Volume {
	switch {
	case p > p3uv:
		switch {
		case T <= boundary.T3uv(p):
			return VolumeU
		case T <= boundary.T3ef(p):
			return VolumeV
		case T <= boundary.T3wx(p):
			return VolumeW
		default:
			return VolumeX
		}

	case p > iapws.Pc:
		switch {
		case T <= boundary.T3uv(p):
			return VolumeU
		case T <= boundary.T3ef(p):
			return VolumeY
		case T <= boundary.T3wx(p):
			return VolumeZ
		default:
			return VolumeX
		}

	case T <= saturation.T(p):
		if p > p3ymin && T > boundary.T3uv(p) {
			return VolumeY
		}
		return VolumeU

	default:
		if p > p3zmin && T <= boundary.T3wx(p) {
			return VolumeZ
		}
		return VolumeX
	}
}

// Saturated returns the v(p,T) subregions holding saturated liquid and
// saturated vapour at psat (MPa) on the region 3 part of the saturation
// line, psat(623.15 K) < psat < pc.
func Saturated(psat float64) (liquid, vapour Volume) {
	switch {
	case psat <= p3cd:
		return VolumeC, VolumeT
	case psat <= 20.5:
		return VolumeS, VolumeT
	case psat <= p3sat:
		return VolumeS, VolumeR
	case psat <= p3zmin:
		return VolumeU, VolumeX
	case psat <= p3ymin:
		return VolumeU, VolumeZ
	default:
		return VolumeY, VolumeZ
	}
}
