package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gradstats/config"
	"github.com/katalvlaran/gradstats/runner"
)

func runCmd() *cobra.Command {
	a := runner.New()
	v := viper.New()
	var configPath string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate the dataset, print insights and export the dashboard",
		Example: `  gradstats run
  gradstats run --start 2000 --end 2009 --seed 7 -o dashboard.json -f json
  gradstats run --config gradstats.yaml --background`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			a.Out = cmd.OutOrStdout()
			return config.BindFlags(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			_, err = a.Run(cmd.Context(), cfg)
			return err
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (yaml, json or toml)")
	config.AddFlags(cmd.Flags())

	return cmd
}
