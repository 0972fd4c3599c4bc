package steam

import (
	"fmt"
	"strings"

	"github.com/alexiusacademia/gosteam/internal/region"
)

// Pair names an input-variable convention accepted by New.
type Pair string

const (
	PT   Pair = "pT"
	PH   Pair = "ph"
	PS   Pair = "ps"
	HS   Pair = "hs"
	Tx   Pair = "Tx"
	Px   Pair = "px"
	RhoT Pair = "rhoT"
)

// Pairs lists every supported input pair.
var Pairs = []Pair{PT, PH, PS, HS, Tx, Px, RhoT}

var constructors = map[Pair]func(a, b float64) State{
	PT:   NewPT,
	PH:   NewPH,
	PS:   NewPS,
	HS:   NewHS,
	Tx:   NewTx,
	Px:   NewPx,
	RhoT: NewRhoT,
}

var classifiers = map[Pair]func(a, b float64) region.Region{
	PT:   region.FromPT,
	PH:   region.FromPH,
	PS:   region.FromPS,
	HS:   region.FromHS,
	Tx:   region.FromTx,
	Px:   region.FromPx,
	RhoT: region.FromRhoT,
}

// ParsePair resolves a pair name, ignoring case.
func ParsePair(name string) (Pair, error) {
	for _, p := range Pairs {
		if strings.EqualFold(string(p), name) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown input pair %q (want one of %s)", name, PairList())
}

// PairList returns the supported pair names as a comma-separated list.
func PairList() string {
	names := make([]string, len(Pairs))
	for i, p := range Pairs {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// Units returns the units of the two values of the pair.
func (p Pair) Units() (string, string) {
	switch p {
	case PT:
		return "MPa", "K"
	case PH:
		return "MPa", "kJ/kg"
	case PS:
		return "MPa", "kJ/(kg·K)"
	case HS:
		return "kJ/kg", "kJ/(kg·K)"
	case Tx:
		return "K", "-"
	case Px:
		return "MPa", "-"
	case RhoT:
		return "kg/m³", "K"
	}
	return "", ""
}

// New builds a state from a named input pair. It fails only for an unknown
// pair; out-of-range inputs give an invalid State.
func New(pair string, a, b float64) (State, error) {
	p, err := ParsePair(pair)
	if err != nil {
		return State{}, err
	}
	return constructors[p](a, b), nil
}

// Classify runs only the region classifier of a named pair. Unlike New it
// reports region 5 for (p, h) and (p, s) inputs that lie there.
func Classify(pair string, a, b float64) (region.Region, error) {
	p, err := ParsePair(pair)
	if err != nil {
		return region.OutOfRange, err
	}
	return classifiers[p](a, b), nil
}
