package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDome(t *testing.T) {
	dome := Dome(40)
	require.Len(t, dome, 81)

	first, top, last := dome[0], dome[40], dome[80]
	assert.InDelta(t, -0.0416, first.Y, 1e-3)
	assert.InDelta(t, -1.545e-4, first.X, 1e-6)
	assert.InDelta(t, 2087.546845, top.Y, 1e-4)
	assert.InDelta(t, 4.412021482, top.X, 1e-7)
	assert.InDelta(t, 2500.929694, last.Y, 1e-4)
	assert.InDelta(t, 9.155810806, last.X, 1e-6)

	// liquid branch climbs, vapour branch falls in entropy
	for i := 1; i <= 40; i++ {
		assert.Greater(t, dome[i].X, dome[i-1].X)
	}
	for i := 41; i < len(dome); i++ {
		assert.Greater(t, dome[i].X, dome[i-1].X)
	}
}

func TestExportPT(t *testing.T) {
	dir := t.TempDir()

	linear := filepath.Join(dir, "out", "pt.svg")
	require.NoError(t, ExportPT(linear, PTOptions{}))
	assertNonEmpty(t, linear)

	logScale := filepath.Join(dir, "pt-log.pdf")
	require.NoError(t, ExportPT(logScale, PTOptions{
		Title:       "Turbine",
		LogPressure: true,
		Markers:     []Marker{{Label: "inlet", X: 800, Y: 10}},
	}))
	assertNonEmpty(t, logScale)
}

func TestExportHS(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "mollier")
	require.NoError(t, ExportHS(name, HSOptions{
		Markers: []Marker{{Label: "A", X: 6.5, Y: 3000}},
	}))
	assertNonEmpty(t, name+".png")
}

func assertNonEmpty(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSaturationChart(t *testing.T) {
	chart, err := SaturationChart(300, 700, 40)
	require.NoError(t, err)
	assert.Contains(t, chart, "psat (MPa)")
	assert.Contains(t, chart, "647.10 K")

	_, err = SaturationChart(700, 800, 40)
	assert.Error(t, err)
	_, err = SaturationChart(300, 400, 1)
	assert.Error(t, err)
}

func mapCells(t *testing.T, out string) [][]rune {
	t.Helper()
	var cells [][]rune
	for _, line := range strings.Split(out, "\n") {
		_, row, ok := strings.Cut(line, "│")
		if !ok {
			continue
		}
		cells = append(cells, []rune(row))
	}
	return cells
}

func TestRegionMap(t *testing.T) {
	out, err := RegionMap(0.001, 100, 300, 2000, 18, 6)
	require.NoError(t, err)

	cells := mapCells(t, out)
	require.Len(t, cells, 6)
	for _, row := range cells {
		require.Len(t, row, 18)
	}

	// rows are 100, 10, 1, 0.1, 0.01, 0.001 MPa; columns 300..2000 K by 100
	assert.Equal(t, '1', cells[0][0])
	assert.Equal(t, '2', cells[5][0])
	assert.Equal(t, '~', cells[4][0])
	assert.Equal(t, '.', cells[0][17])
	assert.Equal(t, '5', cells[1][17])
	assert.Equal(t, '5', cells[5][17])
	assert.Equal(t, '2', cells[0][7])

	assert.Contains(t, out, "Legend:")
}

func TestRegionMapRejectsBadRanges(t *testing.T) {
	_, err := RegionMap(0, 100, 300, 2000, 10, 10)
	assert.Error(t, err)
	_, err = RegionMap(1, 100, 500, 300, 10, 10)
	assert.Error(t, err)
	_, err = RegionMap(1, 100, 300, 500, 1, 10)
	assert.Error(t, err)
}

func TestDrawSummaryBox(t *testing.T) {
	box := DrawSummaryBox("STATE", []string{"region 1", "h = 115.3 kJ/kg", "s = 0.392 kJ/(kg·K)"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	require.Len(t, lines, 7)

	width := utf8.RuneCountInString(lines[0])
	for _, line := range lines {
		assert.Equal(t, width, utf8.RuneCountInString(line), line)
	}
	assert.Contains(t, lines[1], "STATE")
}
