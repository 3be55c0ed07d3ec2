package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/TirtaBytes/nikcheck/internal/ingest"
	"github.com/TirtaBytes/nikcheck/internal/refdata"
	"github.com/TirtaBytes/nikcheck/internal/report"
	"github.com/TirtaBytes/nikcheck/internal/validate"
)

var (
	valCitiesPath   string
	valOutputPath   string
	valText         bool
	valNoDashboard  bool
	valWithDefaults bool
	valSampleRows   int
)

var validateCmd = &cobra.Command{
	Use:   "validate <data.xlsx>",
	Short: "Validate a KK/NIK workbook and write the quality report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		citiesPath := valCitiesPath
		if citiesPath == "" && cfg != nil {
			citiesPath = cfg.CitiesFile
		}
		if citiesPath == "" {
			return fmt.Errorf("no city list: pass --cities or set cities_file in config")
		}
		outPath := valOutputPath
		if outPath == "" && cfg != nil {
			outPath = cfg.OutputPath
		}
		if outPath == "" {
			outPath = "data_validation_results.xlsx"
		}
		withDefaults := valWithDefaults
		if !cmd.Flags().Changed("with-default-cities") && cfg != nil {
			withDefaults = cfg.WithDefaultCities
		}
		sample := valSampleRows
		if !cmd.Flags().Changed("sample") && cfg != nil {
			sample = cfg.SampleRows
		}
		dashboard := !valNoDashboard
		if !cmd.Flags().Changed("no-dashboard") && cfg != nil {
			dashboard = cfg.Dashboard
		}

		start := time.Now()
		res, err := runValidation(args[0], citiesPath, withDefaults)
		if err != nil {
			return err
		}
		fmt.Printf("✓ Validated %d records in %.2fs (run %s)\n",
			res.Summary.Total, time.Since(start).Seconds(), res.Summary.RunID)

		out := cmd.OutOrStdout()
		if dashboard {
			fmt.Fprintln(out)
			fmt.Fprintln(out, res.Summary.Dashboard())
		}
		if valText {
			fmt.Fprintln(out, res.Summary.Text())
		}
		if sample > 0 && len(res.Messy) > 0 {
			printMessySample(out, res.Messy, sample)
		}

		if err := report.WriteWorkbook(outPath, res.Summary, res.Messy, res.Clean); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote report to %s\n", outPath)
		return nil
	},
}

// validationResult bundles one run's outputs.
type validationResult struct {
	Summary report.Summary
	Messy   []validate.Classified
	Clean   []validate.Classified
}

// runValidation executes the whole pipeline: city set, workbook ingest,
// required-column check, classification, aggregation.
func runValidation(dataPath, citiesPath string, withDefaults bool) (*validationResult, error) {
	rawCities, err := ingest.ReadCityList(citiesPath)
	if err != nil {
		return nil, err
	}
	cities := refdata.BuildCitySet(rawCities)
	if withDefaults {
		cities = cities.WithDefaults()
	}
	if debug {
		fmt.Printf("· loaded %d reference cities\n", len(cities))
	}

	tbl, err := ingest.ReadWorkbook(dataPath)
	if err != nil {
		return nil, err
	}
	if err := tbl.Require(ingest.RequiredColumns...); err != nil {
		return nil, err
	}
	records := ingest.ToRecords(tbl)

	eng := validate.NewEngine(cities)
	messy, clean := eng.Classify(records)
	return &validationResult{
		Summary: report.Summarize(messy, clean, len(records)),
		Messy:   messy,
		Clean:   clean,
	}, nil
}

func printMessySample(out io.Writer, messy []validate.Classified, n int) {
	if n > len(messy) {
		n = len(messy)
	}
	fmt.Fprintf(out, "Sample of messy data (%d of %d):\n", n, len(messy))
	for _, c := range messy[:n] {
		fmt.Fprintf(out, "  %s | %s | %s → %s\n", c.KKNo, c.NIK, c.CustName, c.CheckDesc)
	}
	fmt.Fprintln(out)
}

func init() {
	validateCmd.Flags().StringVar(&valCitiesPath, "cities", "", "city reference list (CSV with CITY_DESC column or plain list)")
	validateCmd.Flags().StringVar(&valOutputPath, "out", "", "report workbook path (default from config)")
	validateCmd.Flags().BoolVar(&valText, "text", false, "print the plain-text summary block")
	validateCmd.Flags().BoolVar(&valNoDashboard, "no-dashboard", false, "skip the terminal dashboard")
	validateCmd.Flags().BoolVar(&valWithDefaults, "with-default-cities", false, "union the built-in supplementary city list")
	validateCmd.Flags().IntVar(&valSampleRows, "sample", 0, "print up to N sample messy rows")
	rootCmd.AddCommand(validateCmd)
}
