package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gosteam/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gosteam",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
		fmt.Println("Water and Steam Properties")
		fmt.Println("Based on IAPWS-IF97 (Revised Release on the IAPWS Industrial Formulation 1997)")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
