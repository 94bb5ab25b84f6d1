package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gradstats/cohort"
	"github.com/katalvlaran/gradstats/config"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := config.Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 2016, c.StartYear)
	assert.Equal(t, 2025, c.EndYear)
	assert.Equal(t, int64(42), c.Seed)
	assert.Equal(t, cohort.DefaultParams(), c.Generator.Params())
	assert.Equal(t, "pretty", c.Output.Format)
	assert.Equal(t, 5, c.Output.PreviewRows)
	assert.True(t, c.Output.Describe)
	assert.False(t, c.Background.Enabled)
	assert.Equal(t, config.DefaultBackgroundURL, c.Background.URL)
	assert.Equal(t, 10*time.Second, c.Background.Timeout)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gradstats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
startYear: 2000
endYear: 2004
seed: 7
generator:
  margin: 20
output:
  format: yaml
background:
  enabled: true
  timeout: 2s
`), 0o600))

	c, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 2000, c.StartYear)
	assert.Equal(t, 2004, c.EndYear)
	assert.Equal(t, int64(7), c.Seed)
	assert.Equal(t, 20, c.Generator.Margin)
	assert.Equal(t, 300, c.Generator.PassedOutLow)
	assert.Equal(t, "yaml", c.Output.Format)
	assert.True(t, c.Background.Enabled)
	assert.Equal(t, 2*time.Second, c.Background.Timeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gradstats.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 7\n"), 0o600))
	t.Setenv("GRADSTATS_SEED", "99")
	t.Setenv("GRADSTATS_OUTPUT_FORMAT", "json")

	c, err := config.Load(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), c.Seed)
	assert.Equal(t, "json", c.Output.Format)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("GRADSTATS_SEED", "99")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	config.AddFlags(fs)
	require.NoError(t, fs.Parse([]string{"--seed", "5", "--end", "2020", "-f", "yaml"}))

	v := viper.New()
	require.NoError(t, config.BindFlags(v, fs))
	c, err := config.Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, int64(5), c.Seed)
	assert.Equal(t, 2020, c.EndYear)
	assert.Equal(t, "yaml", c.Output.Format)
	// Unset flags fall through to defaults, not to the flag zero values.
	assert.Equal(t, 2016, c.StartYear)
	assert.Equal(t, 50, c.Generator.Margin)
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	t.Parallel()

	c := config.Config{
		StartYear: 2030,
		EndYear:   2020,
		Generator: config.GeneratorConfig{PassedOutLow: 300, PassedOutHigh: 600, PlacedFloor: 200, Margin: 150},
		Output:    config.OutputConfig{Format: "png", PreviewRows: -1},
		Background: config.BackgroundConfig{
			Enabled: true,
		},
	}
	err := c.Validate()
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	assert.Len(t, merr.Errors, 6)
	assert.ErrorIs(t, err, cohort.ErrConfiguration)
}

func TestValidate_OK(t *testing.T) {
	t.Parallel()

	c := config.Config{
		StartYear: 2016,
		EndYear:   2016,
		Generator: config.GeneratorConfig{PassedOutLow: 300, PassedOutHigh: 600, PlacedFloor: 200, Margin: 50},
		Output:    config.OutputConfig{Format: "json"},
	}
	assert.NoError(t, c.Validate())
}
