package table

import (
	"io"
	"math"
	"strconv"

	"github.com/gocarina/gocsv"
)

// record is the CSV shape of a row. Properties are strings so that
// out-of-range rows and undefined two-phase values stay empty.
type record struct {
	Name   string `csv:"name"`
	Pair   string `csv:"pair"`
	A      string `csv:"a"`
	B      string `csv:"b"`
	Region string `csv:"region"`
	P      string `csv:"p"`
	T      string `csv:"T"`
	X      string `csv:"x"`
	Rho    string `csv:"rho"`
	V      string `csv:"v"`
	U      string `csv:"u"`
	H      string `csv:"h"`
	S      string `csv:"s"`
	Cp     string `csv:"cp"`
	Cv     string `csv:"cv"`
	W      string `csv:"w"`
}

// WriteCSV writes rows with a header line.
func WriteCSV(w io.Writer, rows []Row) error {
	records := make([]*record, len(rows))
	for i, r := range rows {
		records[i] = toRecord(r)
	}
	return gocsv.Marshal(records, w)
}

func toRecord(r Row) *record {
	rec := &record{
		Name: r.Name,
		Pair: string(r.Pair),
		A:    format(r.A),
		B:    format(r.B),
	}
	if !r.Valid() {
		rec.Region = "out-of-range"
		return rec
	}
	p := r.Properties
	rec.Region = strconv.Itoa(int(r.Region))
	rec.P = format(p.P)
	rec.T = format(p.T)
	rec.X = format(p.X)
	rec.Rho = format(p.Rho)
	rec.V = format(p.V)
	rec.U = format(p.U)
	rec.H = format(p.H)
	rec.S = format(p.S)
	rec.Cp = format(p.Cp)
	rec.Cv = format(p.Cv)
	rec.W = format(p.W)
	return rec
}

func format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	return strconv.FormatFloat(v, 'g', 10, 64)
}
