// Package config loads gradstats run settings from defaults, an optional
// config file, GRADSTATS_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gradstats/cohort"
	"github.com/katalvlaran/gradstats/dashboard"
)

// EnvPrefix namespaces environment overrides: GRADSTATS_SEED, GRADSTATS_OUTPUT_FORMAT, ...
const EnvPrefix = "GRADSTATS"

// DefaultBackgroundURL is the decorative art used when none is configured.
const DefaultBackgroundURL = "https://images.unsplash.com/photo-1503676382389-4809596d5290?auto=format&fit=crop&w=1500&q=80"

// Config is the full run configuration.
type Config struct {
	StartYear  int              `mapstructure:"startYear"`
	EndYear    int              `mapstructure:"endYear"`
	Seed       int64            `mapstructure:"seed"`
	Generator  GeneratorConfig  `mapstructure:"generator"`
	Output     OutputConfig     `mapstructure:"output"`
	Background BackgroundConfig `mapstructure:"background"`
}

// GeneratorConfig holds the draw bounds; see cohort.Params.
type GeneratorConfig struct {
	PassedOutLow  int `mapstructure:"passedOutLow"`
	PassedOutHigh int `mapstructure:"passedOutHigh"`
	PlacedFloor   int `mapstructure:"placedFloor"`
	Margin        int `mapstructure:"margin"`
}

// Params converts the generator section to cohort.Params.
func (g GeneratorConfig) Params() cohort.Params {
	return cohort.Params{
		PassedOutLow:  g.PassedOutLow,
		PassedOutHigh: g.PassedOutHigh,
		PlacedFloor:   g.PlacedFloor,
		Margin:        g.Margin,
	}
}

// OutputConfig controls what the run prints and exports.
// An empty Path skips the dashboard export.
type OutputConfig struct {
	Path        string `mapstructure:"path"`
	Format      string `mapstructure:"format"`
	PreviewRows int    `mapstructure:"previewRows"`
	Describe    bool   `mapstructure:"describe"`
	Footer      string `mapstructure:"footer"`
}

// BackgroundConfig controls the optional decorative-art fetch.
type BackgroundConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	URL      string        `mapstructure:"url"`
	Timeout  time.Duration `mapstructure:"timeout"`
	MaxBytes int64         `mapstructure:"maxBytes"`
}

// SetDefaults registers the reference defaults on v.
func SetDefaults(v *viper.Viper) {
	p := cohort.DefaultParams()
	v.SetDefault("startYear", cohort.DefaultStartYear)
	v.SetDefault("endYear", cohort.DefaultEndYear)
	v.SetDefault("seed", cohort.DefaultSeed)
	v.SetDefault("generator.passedOutLow", p.PassedOutLow)
	v.SetDefault("generator.passedOutHigh", p.PassedOutHigh)
	v.SetDefault("generator.placedFloor", p.PlacedFloor)
	v.SetDefault("generator.margin", p.Margin)
	v.SetDefault("output.path", "")
	v.SetDefault("output.format", dashboard.FormatPretty)
	v.SetDefault("output.previewRows", dashboard.DefaultPreviewRows)
	v.SetDefault("output.describe", true)
	v.SetDefault("output.footer", "Thank you for viewing this dashboard!")
	v.SetDefault("background.enabled", false)
	v.SetDefault("background.url", DefaultBackgroundURL)
	v.SetDefault("background.timeout", 10*time.Second)
	v.SetDefault("background.maxBytes", int64(dashboard.DefaultBackgroundMaxBytes))
}

// Load resolves a Config from v. Defaults are registered first; path, when
// non-empty, names a config file (any format viper reads). Environment
// variables use EnvPrefix with '.' replaced by '_'.
// The result is validated; every problem is reported at once.
func Load(v *viper.Viper, path string) (Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// Validate checks every field and returns a *multierror.Error listing all
// problems, or nil.
func (c Config) Validate() error {
	var result *multierror.Error

	if c.StartYear > c.EndYear {
		result = multierror.Append(result, fmt.Errorf("startYear %d is after endYear %d", c.StartYear, c.EndYear))
	}
	if err := c.Generator.Params().Validate(); err != nil {
		result = multierror.Append(result, err)
	}
	switch c.Output.Format {
	case dashboard.FormatJSON, dashboard.FormatPretty, dashboard.FormatYAML:
	default:
		result = multierror.Append(result, fmt.Errorf("output.format %q is not one of json, pretty, yaml", c.Output.Format))
	}
	if c.Output.PreviewRows < 0 {
		result = multierror.Append(result, fmt.Errorf("output.previewRows must be ≥ 0, got %d", c.Output.PreviewRows))
	}
	if c.Background.Enabled {
		if c.Background.URL == "" {
			result = multierror.Append(result, fmt.Errorf("background.url is required when background is enabled"))
		}
		if c.Background.Timeout <= 0 {
			result = multierror.Append(result, fmt.Errorf("background.timeout must be positive, got %s", c.Background.Timeout))
		}
	}

	return result.ErrorOrNil()
}
