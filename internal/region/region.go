// Package region classifies water and steam states into the five IF97
// regions from any of the supported pairs of independent variables.
//
// Every classifier is a pure function. States outside the formulation's
// envelope classify as OutOfRange; no classifier returns an error.
//
// On a boundary shared by two regions the lower-numbered region wins: a
// state exactly on the saturation line below 623.15 K is region 1, and a
// state exactly on the B23 curve is region 3.
package region

// Region is an IF97 region tag.
type Region int

const (
	OutOfRange Region = iota
	Region1
	Region2
	Region3
	Region4
	Region5
)

var names = [...]string{
	OutOfRange: "out of range",
	Region1:    "region 1",
	Region2:    "region 2",
	Region3:    "region 3",
	Region4:    "region 4",
	Region5:    "region 5",
}

func (r Region) String() string {
	if r < OutOfRange || r > Region5 {
		return "region(?)"
	}
	return names[r]
}

// MarshalText implements encoding.TextMarshaler.
func (r Region) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Valid reports whether r names one of the five regions.
func (r Region) Valid() bool {
	return r >= Region1 && r <= Region5
}
