package config

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"start":        "startYear",
	"end":          "endYear",
	"seed":         "seed",
	"passed-low":   "generator.passedOutLow",
	"passed-high":  "generator.passedOutHigh",
	"placed-floor": "generator.placedFloor",
	"margin":       "generator.margin",
	"out":          "output.path",
	"format":       "output.format",
	"preview":      "output.previewRows",
	"describe":     "output.describe",
	"footer":       "output.footer",
	"background":   "background.enabled",
	"bg-url":       "background.url",
	"bg-timeout":   "background.timeout",
}

// AddFlags registers the run flags on fs. Flag defaults are informational;
// a flag overrides file and environment only when set explicitly.
func AddFlags(fs *pflag.FlagSet) {
	fs.Int("start", 0, "first year of the range (default 2016)")
	fs.Int("end", 0, "last year of the range, inclusive (default 2025)")
	fs.Int64("seed", 0, "generator seed (default 42)")
	fs.Int("passed-low", 0, "inclusive lower bound of passed-out draws (default 300)")
	fs.Int("passed-high", 0, "exclusive upper bound of passed-out draws (default 600)")
	fs.Int("placed-floor", 0, "inclusive lower bound of placed draws (default 200)")
	fs.Int("margin", 0, "minimum unemployed graduates per year (default 50)")
	fs.StringP("out", "o", "", "write the dashboard document to this file")
	fs.StringP("format", "f", "", "dashboard format: json, pretty, yaml (default pretty)")
	fs.Int("preview", 0, "rows in the data preview, 0 for all (default 5)")
	fs.Bool("describe", true, "print summary statistics")
	fs.String("footer", "", "dashboard footer text")
	fs.Bool("background", false, "fetch decorative background art (best-effort)")
	fs.String("bg-url", "", "background image URL")
	fs.Duration("bg-timeout", 0, "background fetch timeout (default 10s)")
}

// BindFlags binds every flag registered by AddFlags to its configuration
// key. Unknown or missing flags are skipped.
func BindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return err
		}
	}

	return nil
}
