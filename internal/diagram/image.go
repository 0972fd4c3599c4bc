package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/gosteam/internal/boundary"
	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/region3"
	"github.com/alexiusacademia/gosteam/internal/region4"
	"github.com/alexiusacademia/gosteam/internal/saturation"
	"github.com/alexiusacademia/gosteam/internal/table"
)

// Marker is a labelled state drawn on top of a diagram. X and Y are in the
// diagram's own coordinates: (T, p) for the p-T plane, (s, h) for h-s.
type Marker struct {
	Label string
	X, Y  float64
}

// PTOptions controls ExportPT.
type PTOptions struct {
	Title       string
	LogPressure bool
	Markers     []Marker
}

// Lowest pressure drawn on a logarithmic axis, just below psat at the
// triple point.
const pFloor = 1e-4

// Saturated states closer to the critical point than this are not sampled;
// the dome is closed through the critical point itself.
const tDomeTop = 647.0

var (
	saturationColor = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	boundaryColor   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	envelopeColor   = color.Black
	markerColor     = color.RGBA{R: 139, G: 69, B: 19, A: 255}
)

// ExportPT draws the IF97 region map in the p-T plane.
func ExportPT(filename string, opts PTOptions) error {
	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = "IAPWS-IF97 Regions"
	}
	p.X.Label.Text = "Temperature (K)"
	p.Y.Label.Text = "Pressure (MPa)"

	pBottom := 0.0
	if opts.LogPressure {
		pBottom = pFloor
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	// Saturation line, region 4
	ts := table.Span(iapws.TMin, iapws.Tc, 120)
	sat := make(plotter.XYs, len(ts))
	for i, T := range ts {
		sat[i] = plotter.XY{X: T, Y: saturation.P(T)}
	}
	if err := addLine(p, sat, saturationColor, 2, false, "saturation (4)"); err != nil {
		return err
	}

	// B23
	tb := table.Span(iapws.T13, iapws.TB23Hi, 60)
	b23 := make(plotter.XYs, len(tb))
	for i, T := range tb {
		b23[i] = plotter.XY{X: T, Y: boundary.B23P(T)}
	}
	if err := addLine(p, b23, boundaryColor, 1.5, true, "B23"); err != nil {
		return err
	}

	// Region 1/3 border
	r13 := plotter.XYs{{X: iapws.T13, Y: iapws.PSat13}, {X: iapws.T13, Y: iapws.PMax}}
	if err := addLine(p, r13, boundaryColor, 1.5, true, ""); err != nil {
		return err
	}

	// Validity envelope with region 5 on the right
	envelope := plotter.XYs{
		{X: iapws.TMin, Y: pBottom},
		{X: iapws.TMin, Y: iapws.PMax},
		{X: iapws.T25, Y: iapws.PMax},
		{X: iapws.T25, Y: pBottom},
	}
	if err := addLine(p, envelope, envelopeColor, 2, false, "validity"); err != nil {
		return err
	}
	r5 := plotter.XYs{
		{X: iapws.T25, Y: iapws.P5Max},
		{X: iapws.TMax, Y: iapws.P5Max},
		{X: iapws.TMax, Y: pBottom},
	}
	if err := addLine(p, r5, envelopeColor, 2, false, ""); err != nil {
		return err
	}

	labels := []Marker{
		{"1", 450, 60},
		{"2", 950, 30},
		{"3", 680, 60},
		{"5", 1650, 25},
	}
	if err := addLabels(p, labels); err != nil {
		return err
	}
	if err := addMarkers(p, opts.Markers); err != nil {
		return err
	}

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// HSOptions controls ExportHS.
type HSOptions struct {
	Title   string
	Markers []Marker
}

// ExportHS draws the saturation dome in the h-s (Mollier) plane.
func ExportHS(filename string, opts HSOptions) error {
	p := plot.New()
	p.Title.Text = opts.Title
	if p.Title.Text == "" {
		p.Title.Text = "Saturation Dome"
	}
	p.X.Label.Text = "Entropy (kJ/kg·K)"
	p.Y.Label.Text = "Enthalpy (kJ/kg)"

	if err := addLine(p, Dome(150), saturationColor, 2, false, "saturation"); err != nil {
		return err
	}
	if err := addMarkers(p, opts.Markers); err != nil {
		return err
	}

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// Dome returns the saturation line in the h-s plane as (s, h) points,
// sampled at n temperatures per side: the liquid branch upward, the
// critical point, then the vapour branch downward.
func Dome(n int) plotter.XYs {
	ts := table.Span(iapws.TMin, tDomeTop, n)
	dome := make(plotter.XYs, 2*len(ts)+1)
	for i, T := range ts {
		liquid, vapour := region4.Saturated(T)
		dome[i] = plotter.XY{X: liquid.S, Y: liquid.H}
		dome[len(dome)-1-i] = plotter.XY{X: vapour.S, Y: vapour.H}
	}
	dome[len(ts)] = plotter.XY{
		X: region3.S(iapws.RhoC, iapws.Tc),
		Y: region3.H(iapws.RhoC, iapws.Tc),
	}
	return dome
}

func addLine(p *plot.Plot, xys plotter.XYs, c color.Color, width float64, dashed bool, legend string) error {
	line, err := plotter.NewLine(xys)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(width)
	line.LineStyle.Color = c
	if dashed {
		line.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	}
	p.Add(line)
	if legend != "" {
		p.Legend.Add(legend, line)
	}
	return nil
}

func addLabels(p *plot.Plot, markers []Marker) error {
	if len(markers) == 0 {
		return nil
	}
	xys := make([]plotter.XY, len(markers))
	text := make([]string, len(markers))
	for i, m := range markers {
		xys[i] = plotter.XY{X: m.X, Y: m.Y}
		text[i] = m.Label
	}
	l, err := plotter.NewLabels(plotter.XYLabels{XYs: xys, Labels: text})
	if err != nil {
		return err
	}
	p.Add(l)
	return nil
}

func addMarkers(p *plot.Plot, markers []Marker) error {
	if len(markers) == 0 {
		return nil
	}
	xys := make(plotter.XYs, len(markers))
	for i, m := range markers {
		xys[i] = plotter.XY{X: m.X, Y: m.Y}
	}
	points, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	points.GlyphStyle.Color = markerColor
	points.GlyphStyle.Radius = vg.Points(4)
	points.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(points)
	return addLabels(p, markers)
}

// save writes the plot in the format named by the extension. Files without
// one of png, svg or pdf get ".png" appended.
func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
