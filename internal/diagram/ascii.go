package diagram

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/region"
	"github.com/alexiusacademia/gosteam/internal/saturation"
	"github.com/alexiusacademia/gosteam/internal/table"
)

// SaturationChart plots the saturation pressure between tMin and tMax,
// clipped to the saturation line, as a terminal chart.
func SaturationChart(tMin, tMax float64, n int) (string, error) {
	tMin = max(tMin, iapws.TMin)
	tMax = min(tMax, iapws.Tc)
	if tMin >= tMax {
		return "", fmt.Errorf("empty temperature range [%g, %g] K on the saturation line", tMin, tMax)
	}
	if n < 2 {
		return "", fmt.Errorf("need at least 2 samples, got %d", n)
	}

	ts := table.Span(tMin, tMax, n)
	ps := make([]float64, len(ts))
	for i, T := range ts {
		ps[i] = saturation.P(T)
	}

	return asciigraph.Plot(ps,
		asciigraph.Height(15),
		asciigraph.Width(min(n, 70)),
		asciigraph.Precision(3),
		asciigraph.Caption(fmt.Sprintf("psat (MPa), T = %.2f .. %.2f K", tMin, tMax)),
	), nil
}

// Region map glyphs.
const (
	glyphSaturation = '~'
	glyphOutside    = '.'
)

// RegionMap draws a character grid of regions over [tMin, tMax] ×
// [pMin, pMax]. Pressure is spaced logarithmically with pMax on the top
// row. Cells crossed by the saturation line show '~'.
func RegionMap(pMin, pMax, tMin, tMax float64, cols, rows int) (string, error) {
	switch {
	case pMin <= 0 || pMax <= pMin:
		return "", fmt.Errorf("invalid pressure range [%g, %g] MPa", pMin, pMax)
	case tMax <= tMin:
		return "", fmt.Errorf("invalid temperature range [%g, %g] K", tMin, tMax)
	case cols < 2 || rows < 2:
		return "", fmt.Errorf("map must be at least 2x2, got %dx%d", cols, rows)
	}

	ts := table.Span(tMin, tMax, cols)
	ps := floats.LogSpan(make([]float64, rows), pMax, pMin)

	grid := make([][]rune, rows)
	for i, p := range ps {
		grid[i] = make([]rune, cols)
		for j, T := range ts {
			grid[i][j] = glyph(region.FromPT(p, T))
		}
	}

	// Saturation line: the row whose pressure band contains psat(T).
	for j, T := range ts {
		if T < iapws.TMin || T > iapws.Tc {
			continue
		}
		if i := rowOf(ps, saturation.P(T)); i >= 0 {
			grid[i][j] = glyphSaturation
		}
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  REGION MAP (p-T)\n")
	sb.WriteString("  ────────────────\n\n")
	for i, line := range grid {
		sb.WriteString(fmt.Sprintf("  %10.4g │%s\n", ps[i], string(line)))
	}
	sb.WriteString(fmt.Sprintf("  %10s └%s\n", "MPa", strings.Repeat("─", cols)))
	sb.WriteString(fmt.Sprintf("  %10s  %-*.6g%*.6g K\n", "", cols/2, tMin, cols-cols/2, tMax))

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  1 2 3 5 = IF97 region\n")
	sb.WriteString("  ~       = saturation line (region 4)\n")
	sb.WriteString("  .       = outside the range of validity\n")

	return sb.String(), nil
}

func glyph(r region.Region) rune {
	if !r.Valid() {
		return glyphOutside
	}
	return rune('0' + int(r))
}

// rowOf returns the row of the descending pressures ps whose band holds p,
// or -1 if p is off the map.
func rowOf(ps []float64, p float64) int {
	if p > ps[0] || p < ps[len(ps)-1] {
		return -1
	}
	best, bestDist := 0, -1.0
	for i, q := range ps {
		d := logDistance(p, q)
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func logDistance(a, b float64) float64 {
	if a > b {
		return a / b
	}
	return b / a
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, title))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %-*s  ║\n", maxLen-4, line))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
