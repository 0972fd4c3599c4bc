package series

// Mono is one summand n·x^I of a single-variable series.
type Mono struct {
	N float64 // coefficient
	I int     // exponent
}

// Poly is an immutable single-variable power series, optionally led by a
// logarithmic term L·ln(x).
type Poly struct {
	terms    []Mono
	log      float64
	min, max int
}

// NewPoly builds a single-variable series from its terms. The slice is copied.
func NewPoly(terms []Mono) *Poly {
	return NewLogPoly(0, terms)
}

// NewLogPoly builds a single-variable series whose first basis function is l·ln(x).
func NewLogPoly(l float64, terms []Mono) *Poly {
	p := &Poly{
		terms: append([]Mono(nil), terms...),
		log:   l,
	}
	for k, t := range p.terms {
		if k == 0 || t.I < p.min {
			p.min = t.I
		}
		if k == 0 || t.I > p.max {
			p.max = t.I
		}
	}
	return p
}

// Value returns the series at x.
func (p *Poly) Value(x float64) float64 {
	return p.Derivative(x, 0)
}

// Derivative returns dᵈ/dxᵈ of the series at x.
func (p *Poly) Derivative(x float64, d int) float64 {
	sum := 0.0
	if p.log != 0 {
		sum = p.log * logDerivative(x, d)
	}
	if len(p.terms) == 0 {
		return sum
	}
	pw := powers(x, p.min, p.max, d)
	for _, t := range p.terms {
		sum += t.N * pw[t.I-p.min]
	}
	return sum
}
