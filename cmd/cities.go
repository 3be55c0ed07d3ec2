package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/TirtaBytes/nikcheck/internal/ingest"
	"github.com/TirtaBytes/nikcheck/internal/refdata"
)

var (
	citWithDefaults bool
	citLimit        int
)

var citiesCmd = &cobra.Command{
	Use:   "cities <cities.csv>",
	Short: "Preview the normalized city reference set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := ingest.ReadCityList(args[0])
		if err != nil {
			return err
		}
		set := refdata.BuildCitySet(raw)
		if citWithDefaults {
			set = set.WithDefaults()
		}
		names := set.Names()
		sort.Strings(names)

		fmt.Printf("✓ Loaded %d cities (%d raw entries)\n", len(names), len(raw))
		limit := citLimit
		if limit <= 0 || limit > len(names) {
			limit = len(names)
		}
		for _, n := range names[:limit] {
			fmt.Println("  " + n)
		}
		if limit < len(names) {
			fmt.Printf("  … and %d more\n", len(names)-limit)
		}
		return nil
	},
}

func init() {
	citiesCmd.Flags().BoolVar(&citWithDefaults, "with-default-cities", false, "union the built-in supplementary city list")
	citiesCmd.Flags().IntVar(&citLimit, "limit", 20, "max entries to print (0 = all)")
	rootCmd.AddCommand(citiesCmd)
}
