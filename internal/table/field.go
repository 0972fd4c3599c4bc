package table

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/alexiusacademia/gosteam/internal/steam"
)

// Field selects one property of a row.
type Field string

const (
	FieldP   Field = "p"
	FieldT   Field = "T"
	FieldX   Field = "x"
	FieldRho Field = "rho"
	FieldV   Field = "v"
	FieldU   Field = "u"
	FieldH   Field = "h"
	FieldS   Field = "s"
	FieldCp  Field = "cp"
	FieldCv  Field = "cv"
	FieldW   Field = "w"
)

// Fields lists the selectable properties in display order.
var Fields = []Field{FieldP, FieldT, FieldX, FieldRho, FieldV, FieldU, FieldH, FieldS, FieldCp, FieldCv, FieldW}

// ParseField resolves a property name, preferring an exact match.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	for _, f := range Fields {
		if strings.EqualFold(string(f), name) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown property %q", name)
}

// Of returns the field's value in p.
func (f Field) Of(p steam.Properties) float64 {
	switch f {
	case FieldP:
		return p.P
	case FieldT:
		return p.T
	case FieldX:
		return p.X
	case FieldRho:
		return p.Rho
	case FieldV:
		return p.V
	case FieldU:
		return p.U
	case FieldH:
		return p.H
	case FieldS:
		return p.S
	case FieldCp:
		return p.Cp
	case FieldCv:
		return p.Cv
	case FieldW:
		return p.W
	}
	panic(fmt.Sprintf("unknown field %q", string(f)))
}

// Matrix returns one property over the grid as a len(Xs)×len(Ys) matrix.
// Out-of-range cells are NaN. An empty grid gives nil.
func (g *Grid) Matrix(f Field) *mat.Dense {
	if len(g.Xs) == 0 || len(g.Ys) == 0 {
		return nil
	}
	data := make([]float64, len(g.Rows))
	for i, r := range g.Rows {
		if r.Valid() {
			data[i] = f.Of(r.Properties)
		} else {
			data[i] = math.NaN()
		}
	}
	return mat.NewDense(len(g.Xs), len(g.Ys), data)
}
