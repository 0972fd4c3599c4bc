// Package table evaluates batches of state points concurrently and exports
// them as matrices or CSV.
package table

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/gosteam/internal/logging"
	"github.com/alexiusacademia/gosteam/internal/region"
	"github.com/alexiusacademia/gosteam/internal/steam"
)

// Input is one point to evaluate.
type Input struct {
	Name string
	Pair steam.Pair
	A, B float64
}

// Row is an evaluated point. Properties is zero when the state is out of
// range.
type Row struct {
	Input
	Region     region.Region
	Properties steam.Properties
}

// Valid reports whether the row holds a usable state.
func (r Row) Valid() bool { return r.Region.Valid() }

type options struct {
	workers int
	log     *slog.Logger
}

// Option configures an evaluation.
type Option func(*options)

// WithWorkers bounds the number of concurrent evaluations. Values below one
// mean GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithLogger sets the logger used for progress messages.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) { o.log = log }
}

func newOptions(opts []Option) options {
	o := options{log: logging.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}
	return o
}

// Span returns n evenly spaced values from min to max inclusive.
func Span(min, max float64, n int) []float64 {
	switch {
	case n < 1:
		return nil
	case n == 1:
		return []float64{min}
	}
	return floats.Span(make([]float64, n), min, max)
}

// Evaluate computes every input concurrently. Rows come back in input
// order. Out-of-range points are rows, not errors; the only error is a
// cancelled context.
func Evaluate(ctx context.Context, inputs []Input, opts ...Option) ([]Row, error) {
	o := newOptions(opts)
	start := time.Now()

	rows := make([]Row, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rows[i] = evaluate(in)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluation stopped: %w", err)
	}

	outside := 0
	for _, r := range rows {
		if !r.Valid() {
			outside++
		}
	}
	o.log.Debug("evaluated points",
		"points", len(rows),
		"out_of_range", outside,
		"workers", o.workers,
		"elapsed", time.Since(start))
	return rows, nil
}

func evaluate(in Input) Row {
	st, err := steam.New(string(in.Pair), in.A, in.B)
	if err != nil {
		return Row{Input: in, Region: region.OutOfRange}
	}
	return NewRow(in, st)
}

// NewRow records an already evaluated state under in.
func NewRow(in Input, st steam.State) Row {
	row := Row{Input: in, Region: st.Region()}
	if st.Valid() {
		row.Properties = st.Properties()
	}
	return row
}

// Grid is a rectangular table over two axes. Rows are stored with the
// second axis varying fastest.
type Grid struct {
	Pair steam.Pair
	Xs   []float64
	Ys   []float64
	Rows []Row
}

// Compute evaluates pair over the cartesian product of xs and ys with at
// most workers goroutines.
func Compute(ctx context.Context, pair string, xs, ys []float64, workers int, opts ...Option) (*Grid, error) {
	p, err := steam.ParsePair(pair)
	if err != nil {
		return nil, err
	}

	inputs := make([]Input, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			inputs = append(inputs, Input{Pair: p, A: x, B: y})
		}
	}

	rows, err := Evaluate(ctx, inputs, append(opts, WithWorkers(workers))...)
	if err != nil {
		return nil, err
	}
	return &Grid{Pair: p, Xs: xs, Ys: ys, Rows: rows}, nil
}

// At returns the row for xs[i], ys[j].
func (g *Grid) At(i, j int) Row {
	return g.Rows[i*len(g.Ys)+j]
}
