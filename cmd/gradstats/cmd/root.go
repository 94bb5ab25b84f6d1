package cmd

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ConfigureLogging sets the process-wide logrus format.
func ConfigureLogging() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
}

// RootCmd is the root Cobra command that gets called from the main func.
// All other sub-commands should be registered here.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "gradstats",
		Short:         "gradstats fabricates graduate employment statistics and renders a dashboard.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		name, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return err
		}
		level, err := log.ParseLevel(name)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	}

	cmd.AddCommand(
		runCmd(),
		versionCmd(),
	)

	return cmd
}
