package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosteam/internal/diagram"
	"github.com/alexiusacademia/gosteam/internal/iapws"
	"github.com/alexiusacademia/gosteam/internal/steam"
	"github.com/spf13/cobra"
)

var (
	diagramType   string
	diagramOutput string
	diagramLog    bool
	diagramStates []string
	diagramPair   string
	diagramCols   int
	diagramRows   int
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Draw phase diagrams",
	Long: `Draw the IF97 region map in the p-T plane, the saturation dome in
the h-s plane, or a character map of regions in the terminal.

Image formats follow the output extension (png, svg, pdf).
States given with --state are marked on image diagrams.

Examples:
  gosteam diagram --type map
  gosteam diagram --type pt --log -o regions.png
  gosteam diagram --type hs -o mollier.svg --state 10,800 --state 0.1,400`,
	Run: runDiagram,
}

func init() {
	rootCmd.AddCommand(diagramCmd)

	diagramCmd.Flags().StringVarP(&diagramType, "type", "t", "map", "Diagram type (map, pt, hs)")
	diagramCmd.Flags().StringVarP(&diagramOutput, "output", "o", "", "Export diagram to file (png, svg, pdf)")
	diagramCmd.Flags().BoolVar(&diagramLog, "log", false, "Logarithmic pressure axis (pt)")
	diagramCmd.Flags().StringArrayVar(&diagramStates, "state", nil, "State to mark as a,b (repeatable)")
	diagramCmd.Flags().StringVarP(&diagramPair, "pair", "p", "pT", "Input pair of --state values")
	diagramCmd.Flags().IntVar(&diagramCols, "cols", 64, "Columns of the terminal map")
	diagramCmd.Flags().IntVar(&diagramRows, "rows", 24, "Rows of the terminal map")
}

func runDiagram(cmd *cobra.Command, args []string) {
	if diagramType == "map" {
		out, err := diagram.RegionMap(iapws.PSatMin, iapws.PMax, iapws.TMin, iapws.TMax, diagramCols, diagramRows)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Print(out)
		return
	}

	if diagramOutput == "" {
		fmt.Println("Error: --output is required for image diagrams")
		return
	}

	states, err := markedStates()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	switch diagramType {
	case "pt":
		markers := make([]diagram.Marker, len(states))
		for i, m := range states {
			markers[i] = diagram.Marker{Label: m.label, X: m.state.T(), Y: m.state.P()}
		}
		err = diagram.ExportPT(diagramOutput, diagram.PTOptions{LogPressure: diagramLog, Markers: markers})
	case "hs":
		markers := make([]diagram.Marker, len(states))
		for i, m := range states {
			markers[i] = diagram.Marker{Label: m.label, X: m.state.S(), Y: m.state.H()}
		}
		err = diagram.ExportHS(diagramOutput, diagram.HSOptions{Markers: markers})
	default:
		err = fmt.Errorf("unknown diagram type %q (want map, pt or hs)", diagramType)
	}
	if err != nil {
		fmt.Printf("Error exporting diagram: %v\n", err)
		return
	}
	fmt.Printf("Diagram exported to: %s\n", diagramOutput)
}

type markedState struct {
	label string
	state steam.State
}

// markedStates parses the --state flags. Out-of-range states are skipped
// with a warning.
func markedStates() ([]markedState, error) {
	var out []markedState
	for i, arg := range diagramStates {
		var a, b float64
		if _, err := fmt.Sscanf(arg, "%g,%g", &a, &b); err != nil {
			return nil, fmt.Errorf("invalid --state %q: want a,b", arg)
		}
		st, err := steam.New(diagramPair, a, b)
		if err != nil {
			return nil, err
		}
		if !st.Valid() {
			logger.Warn("skipping out-of-range state", "state", arg, "pair", diagramPair)
			continue
		}
		out = append(out, markedState{label: fmt.Sprintf("%d", i+1), state: st})
	}
	return out, nil
}
