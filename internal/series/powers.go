package series

// powers returns a dense table indexed by e − lo for every exponent e in
// [lo, hi], holding the d-th derivative of x^e: e(e−1)…(e−d+1) · x^(e−d).
//
// The raw powers are produced by one multiplicative sweep upward from x⁰
// and one divisive sweep downward for negative exponents.
func powers(x float64, lo, hi, d int) []float64 {
	table := make([]float64, hi-lo+1)

	// raw powers x^m for m in [lo−d, hi−d], stored at m − (lo−d)
	mLo, mHi := lo-d, hi-d

	p := 1.0
	for m := 0; m <= mHi; m++ {
		if m >= mLo {
			table[m-mLo] = p
		}
		p *= x
	}
	p = 1.0
	for m := -1; m >= mLo; m-- {
		p /= x
		if m <= mHi {
			table[m-mLo] = p
		}
	}

	if d == 0 {
		return table
	}
	for k := range table {
		f := factor(lo+k, d)
		if f == 0 {
			table[k] = 0
			continue
		}
		table[k] *= f
	}
	return table
}

// factor is the falling factorial e(e−1)…(e−d+1) from differentiating x^e d times.
func factor(e, d int) float64 {
	f := 1.0
	for k := 0; k < d; k++ {
		f *= float64(e - k)
	}
	return f
}
