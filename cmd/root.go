package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexiusacademia/gosteam/internal/logging"
	"github.com/alexiusacademia/gosteam/internal/version"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "gosteam",
	Short: "IAPWS-IF97 Water and Steam Properties",
	Long: `gosteam - Go Water and Steam Properties

A CLI tool for the thermodynamic properties of water and steam
based on the IAPWS Industrial Formulation 1997 (IAPWS-IF97).

This tool helps engineers:
  - Classify a state into its IF97 region from any pair of properties
  - Evaluate full property sets (p, T, x, ρ, v, u, h, s, cp, cv, w)
  - Read saturation properties and plot the saturation curve
  - Tabulate property grids and batch jobs to CSV
  - Compute isentropic and real turbine expansions
  - Serve properties over HTTP

Valid for 273.15 K ≤ T ≤ 1073.15 K at p ≤ 100 MPa and
1073.15 K < T ≤ 2273.15 K at p ≤ 50 MPa.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logger = logging.New(level)
		slog.SetDefault(logger)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gosteam v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Water and Steam Properties (IAPWS-IF97)              ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the thermodynamic properties of water and steam")
		fmt.Println("  based on the IAPWS Industrial Formulation 1997.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Region classification from pT, ph, ps, hs, Tx, px and ρT")
		fmt.Println("    • Full property sets in all five regions")
		fmt.Println("    • Saturation tables and charts")
		fmt.Println("    • Property grids, batch jobs and CSV export")
		fmt.Println("    • Phase diagrams (png, svg, pdf)")
		fmt.Println("    • HTTP API with Prometheus metrics")
		fmt.Println()
		fmt.Println("  Use 'gosteam --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
}
