package boundary

import "math"

// B2bc coefficients (IF97 Table 19)
var b2bc = [...]float64{
	0.90584278514723e3,
	-0.67955786399241,
	0.12809002730136e-3,
	0.26526571908428e4,
	0.45257578905948e1,
}

// B2bcP returns the pressure (MPa) on the 2b/2c boundary at enthalpy h (kJ/kg).
func B2bcP(h float64) float64 {
	return b2bc[0] + b2bc[1]*h + b2bc[2]*h*h
}

// B2bcH returns the enthalpy (kJ/kg) on the 2b/2c boundary at pressure p (MPa).
func B2bcH(p float64) float64 {
	return b2bc[3] + math.Sqrt((p-b2bc[4])/b2bc[2])
}

// H2ab returns the enthalpy (kJ/kg) on the 2a/2b boundary at entropy s,
// used by the p(h,s) backward equations.
func H2ab(s float64) float64 {
	return ((0.276349063799944e2*s-0.421073558227969e3)*s+0.257560716905876e4)*s -
		0.349898083432139e4
}
