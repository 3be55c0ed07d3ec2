package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/TirtaBytes/nikcheck/internal/utils"
)

// Global configuration structure.
type Global struct {
	// OutputPath is the default report workbook path for validate runs.
	OutputPath string `mapstructure:"output_path" yaml:"output_path"`
	// CitiesFile is the default city reference list used when --cities is
	// not given.
	CitiesFile string `mapstructure:"cities_file" yaml:"cities_file"`
	// WithDefaultCities unions the built-in supplementary city list into
	// every reference set.
	WithDefaultCities bool `mapstructure:"with_default_cities" yaml:"with_default_cities"`
	// SampleRows is how many messy rows validate prints as a sample.
	SampleRows int `mapstructure:"sample_rows" yaml:"sample_rows"`
	// Dashboard toggles the terminal dashboard after a validate run.
	Dashboard bool `mapstructure:"dashboard" yaml:"dashboard"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.nikcheck/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".nikcheck")
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := utils.SafeWriteFile(path, b); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("NIKCHECK")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("output_path", "data_validation_results.xlsx")
	v.SetDefault("cities_file", "")
	v.SetDefault("with_default_cities", false)
	v.SetDefault("sample_rows", 5)
	v.SetDefault("dashboard", true)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".nikcheck")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
