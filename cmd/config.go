package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	cfgpkg "github.com/TirtaBytes/nikcheck/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set nikcheck configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("output_path: %s\n", cfg.OutputPath)
		fmt.Printf("cities_file: %s\n", cfg.CitiesFile)
		fmt.Printf("with_default_cities: %t\n", cfg.WithDefaultCities)
		fmt.Printf("sample_rows: %d\n", cfg.SampleRows)
		fmt.Printf("dashboard: %t\n", cfg.Dashboard)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "output_path":
			cfg.OutputPath = val
		case "cities_file":
			cfg.CitiesFile = val
		case "with_default_cities":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid with_default_cities: %s (use true or false)", val)
			}
			cfg.WithDefaultCities = b
		case "sample_rows":
			n, err := strconv.Atoi(val)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid sample_rows: %s", val)
			}
			cfg.SampleRows = n
		case "dashboard":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid dashboard: %s (use true or false)", val)
			}
			cfg.Dashboard = b
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
