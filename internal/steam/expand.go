package steam

// Expand returns the state reached by isentropic expansion (or
// compression) to pOut (MPa).
func (s State) Expand(pOut float64) State {
	return NewPS(pOut, s.S())
}

// ExpandReal returns the state reached by expansion to pOut (MPa) with
// isentropic efficiency eta: h = h0 − eta·(h0 − h_s).
func (s State) ExpandReal(pOut, eta float64) State {
	ideal := s.Expand(pOut)
	if !ideal.Valid() {
		return ideal
	}
	h0 := s.H()
	return NewPH(pOut, h0-eta*(h0-ideal.H()))
}
