// Package boundary holds the auxiliary curves that split the IF97 regions
// and subregions. Every curve is a pure function without domain checks:
// keeping the inputs inside each curve's range is the classifier's job.
package boundary

import "math"

// B23 coefficients (IF97 Table 1)
var b23 = [...]float64{
	0.34805185628969e3,
	-0.11671859879975e1,
	0.10192970039326e-2,
	0.57254459862746e3,
	0.13918839778870e2,
}

// B23P returns the pressure (MPa) on the region 2/3 boundary at temperature T (K).
// Valid for 623.15 K ≤ T ≤ 863.15 K.
func B23P(T float64) float64 {
	return b23[0] + b23[1]*T + b23[2]*T*T
}

// B23T returns the temperature (K) on the region 2/3 boundary at pressure p (MPa).
// It is the algebraic inverse of B23P.
func B23T(p float64) float64 {
	return b23[3] + math.Sqrt((p-b23[4])/b23[2])
}
