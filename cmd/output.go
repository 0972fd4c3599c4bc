package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/alexiusacademia/gosteam/internal/steam"
)

const rule = "───────────────────────────────────────────────────────────────"

func printBanner(title string) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()
}

func printSection(title string) {
	fmt.Println(title)
	fmt.Println(rule)
}

func newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
}

// num formats a property value; undefined values print as "n/a".
func num(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'g', 10, 64)
}

func printProperties(w io.Writer, p steam.Properties) {
	fmt.Fprintf(w, "  Pressure (p):\t%s\tMPa\n", num(p.P))
	fmt.Fprintf(w, "  Temperature (T):\t%s\tK\n", num(p.T))
	fmt.Fprintf(w, "  Vapour quality (x):\t%s\t-\n", num(p.X))
	fmt.Fprintf(w, "  Density (ρ):\t%s\tkg/m³\n", num(p.Rho))
	fmt.Fprintf(w, "  Specific volume (v):\t%s\tm³/kg\n", num(p.V))
	fmt.Fprintf(w, "  Internal energy (u):\t%s\tkJ/kg\n", num(p.U))
	fmt.Fprintf(w, "  Enthalpy (h):\t%s\tkJ/kg\n", num(p.H))
	fmt.Fprintf(w, "  Entropy (s):\t%s\tkJ/(kg·K)\n", num(p.S))
	fmt.Fprintf(w, "  Isobaric heat capacity (cp):\t%s\tkJ/(kg·K)\n", num(p.Cp))
	fmt.Fprintf(w, "  Isochoric heat capacity (cv):\t%s\tkJ/(kg·K)\n", num(p.Cv))
	fmt.Fprintf(w, "  Speed of sound (w):\t%s\tm/s\n", num(p.W))
}

// parseValues reads the two positional property values.
func parseValues(args []string) (float64, float64, error) {
	a, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid first value %q: %w", args[0], err)
	}
	b, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid second value %q: %w", args[1], err)
	}
	return a, b, nil
}
