// Package series evaluates the sparse power series every IF97 equation is
// built from: Σ nᵢ · x1^Iᵢ · x2^Jᵢ and its partial derivatives.
//
// The caller owns the reduced variables. Shifts such as 7.1 − π, root
// transforms such as √(π − 0.91), chain-rule factors and post transforms
// such as the fourth power or exp() stay outside the evaluator, which only
// ever sees integer exponents.
package series

import "math"

// Term is one summand n·x1^I·x2^J of a dual-variable series.
type Term struct {
	N float64 // coefficient
	I int     // exponent of x1
	J int     // exponent of x2
}

// Series is an immutable dual-variable power series, optionally led by a
// logarithmic term L·ln(x1).
type Series struct {
	terms []Term
	log   float64

	iMin, iMax int
	jMin, jMax int
}

// New builds a series from its terms. The slice is copied.
func New(terms []Term) *Series {
	return NewLog(0, terms)
}

// NewLog builds a series whose first basis function is l·ln(x1).
func NewLog(l float64, terms []Term) *Series {
	s := &Series{
		terms: append([]Term(nil), terms...),
		log:   l,
	}
	for k, t := range s.terms {
		if k == 0 || t.I < s.iMin {
			s.iMin = t.I
		}
		if k == 0 || t.I > s.iMax {
			s.iMax = t.I
		}
		if k == 0 || t.J < s.jMin {
			s.jMin = t.J
		}
		if k == 0 || t.J > s.jMax {
			s.jMax = t.J
		}
	}
	return s
}

// Len returns the number of power terms, not counting the logarithmic one.
func (s *Series) Len() int {
	return len(s.terms)
}

// Value returns the series at (x1, x2).
func (s *Series) Value(x1, x2 float64) float64 {
	return s.Derivative(x1, x2, 0, 0)
}

// Derivative returns ∂^(d1+d2) / ∂x1^d1 ∂x2^d2 of the series at (x1, x2).
//
// A term whose derivative factor vanishes contributes exactly zero, so a
// zero argument is only a problem when a negative power survives.
func (s *Series) Derivative(x1, x2 float64, d1, d2 int) float64 {
	if len(s.terms) == 0 {
		return s.logDerivative(x1, d1, d2)
	}

	p1 := powers(x1, s.iMin, s.iMax, d1)
	p2 := powers(x2, s.jMin, s.jMax, d2)

	sum := 0.0
	for _, t := range s.terms {
		sum += t.N * p1[t.I-s.iMin] * p2[t.J-s.jMin]
	}
	return sum + s.logDerivative(x1, d1, d2)
}

func (s *Series) logDerivative(x1 float64, d1, d2 int) float64 {
	if s.log == 0 || d2 > 0 {
		return 0
	}
	return s.log * logDerivative(x1, d1)
}

// logDerivative returns dᵈ/dxᵈ ln(x).
func logDerivative(x float64, d int) float64 {
	if d == 0 {
		return math.Log(x)
	}
	// (−1)^(d−1) · (d−1)! / x^d
	f := 1.0
	for k := 1; k < d; k++ {
		f *= -float64(k)
	}
	return f / math.Pow(x, float64(d))
}
