package service

import (
	"math"

	"github.com/alexiusacademia/gosteam/internal/steam"
)

// propertiesJSON is steam.Properties with undefined values left out. JSON
// has no NaN, and cp, cv and w are NaN inside the two-phase dome.
type propertiesJSON struct {
	P   *float64 `json:"p,omitempty"`
	T   *float64 `json:"T,omitempty"`
	X   *float64 `json:"x,omitempty"`
	Rho *float64 `json:"rho,omitempty"`
	V   *float64 `json:"v,omitempty"`
	U   *float64 `json:"u,omitempty"`
	H   *float64 `json:"h,omitempty"`
	S   *float64 `json:"s,omitempty"`
	Cp  *float64 `json:"cp,omitempty"`
	Cv  *float64 `json:"cv,omitempty"`
	W   *float64 `json:"w,omitempty"`
}

func newPropertiesJSON(p steam.Properties) propertiesJSON {
	return propertiesJSON{
		P:   defined(p.P),
		T:   defined(p.T),
		X:   defined(p.X),
		Rho: defined(p.Rho),
		V:   defined(p.V),
		U:   defined(p.U),
		H:   defined(p.H),
		S:   defined(p.S),
		Cp:  defined(p.Cp),
		Cv:  defined(p.Cv),
		W:   defined(p.W),
	}
}

func defined(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
