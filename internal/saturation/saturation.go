// Package saturation implements the IF97 saturation line between liquid
// water and steam (region 4): p_sat(T) and its backward equation T_sat(p).
package saturation

import "math"

// Coefficients of IF97 Table 34; n[0] is the implicit unit coefficient of
// the leading quadratic terms.
var n = [...]float64{
	1.0,
	0.11670521452767e4,
	-0.72421316703206e6,
	-0.17073846940092e2,
	0.12020824702470e5,
	-0.32325550323333e7,
	0.14915108613530e2,
	-0.48232657361591e4,
	0.40511340542057e6,
	-0.23855557567849,
	0.65017534844798e3,
}

// quadratic returns a·x² + b·x + c.
func quadratic(a, b, c, x float64) float64 {
	return (a*x+b)*x + c
}

// P returns the saturation pressure (MPa) at temperature T (K).
// Valid for 273.15 K ≤ T ≤ 647.096 K.
func P(T float64) float64 {
	theta := T + n[9]/(T-n[10])

	A := quadratic(n[0], n[1], n[2], theta)
	B := quadratic(n[3], n[4], n[5], theta)
	C := quadratic(n[6], n[7], n[8], theta)

	r := 2 * C / (-B + math.Sqrt(B*B-4*A*C))
	r *= r
	return r * r
}

// T returns the saturation temperature (K) at pressure p (MPa).
// Valid for 611.213 Pa ≤ p ≤ 22.064 MPa.
func T(p float64) float64 {
	beta := math.Sqrt(math.Sqrt(p))

	E := quadratic(n[0], n[3], n[6], beta)
	F := quadratic(n[1], n[4], n[7], beta)
	G := quadratic(n[2], n[5], n[8], beta)

	D := 2 * G / (-F - math.Sqrt(F*F-4*E*G))
	sum := n[10] + D
	return (sum - math.Sqrt(sum*sum-4*(n[9]+n[10]*D))) / 2
}
