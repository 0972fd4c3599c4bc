package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosteam/internal/region"
	"github.com/alexiusacademia/gosteam/internal/steam"
	"github.com/alexiusacademia/gosteam/internal/subregion"
	"github.com/spf13/cobra"
)

var regionPair string

var regionCmd = &cobra.Command{
	Use:   "region <a> <b>",
	Short: "Classify a state into its IF97 region",
	Long: `Classify a state into one of the five IAPWS-IF97 regions without
evaluating its properties. Where backward equations split a region,
the subregion is shown as well.

Examples:
  gosteam region 25 650
  gosteam region --pair hs 2800 6.5
  gosteam region --pair rhoT 500 650`,
	Args: cobra.ExactArgs(2),
	Run:  runRegion,
}

func init() {
	rootCmd.AddCommand(regionCmd)

	regionCmd.Flags().StringVarP(&regionPair, "pair", "p", "pT", "Input pair ("+steam.PairList()+")")
}

func runRegion(cmd *cobra.Command, args []string) {
	a, b, err := parseValues(args)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	pair, err := steam.ParsePair(regionPair)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	reg, err := steam.Classify(string(pair), a, b)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	logger.Debug("classified", "pair", pair, "a", a, "b", b, "region", reg)

	ua, ub := pair.Units()
	w := newTabWriter()
	fmt.Fprintf(w, "  %s:\t%g %s, %g %s\n", pair, a, ua, b, ub)
	fmt.Fprintf(w, "  Region:\t%s\n", reg)
	if sub := subregionOf(pair, reg, a, b); sub != "" {
		fmt.Fprintf(w, "  Subregion:\t%s\n", sub)
	}
	w.Flush()
}

// subregionOf names the backward-equation subregion, or "" when the pair
// and region have none.
func subregionOf(pair steam.Pair, reg region.Region, a, b float64) string {
	switch reg {
	case region.Region2:
		switch pair {
		case steam.PH:
			return subregion.Region2PH(a, b).String()
		case steam.PS:
			return subregion.Region2PS(a, b).String()
		case steam.HS:
			return subregion.Region2HS(a, b).String()
		}
	case region.Region3:
		switch pair {
		case steam.PT:
			return subregion.Region3PT(a, b).String()
		case steam.PH:
			return subregion.Region3PH(a, b).String()
		case steam.PS:
			return subregion.Region3PS(a, b).String()
		case steam.HS:
			return subregion.Region3S(b).String()
		}
	}
	return ""
}
