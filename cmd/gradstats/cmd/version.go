package cmd

import (
	"fmt"
	"runtime"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// Build information, set with -ldflags "-X".
var (
	ReleaseVersion = "dev"
	GitCommit      = "unknown"
	BuildTime      = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 1, 1, 1, ' ', 0)
			fmt.Fprintf(w, "Version:\t%s\n", ReleaseVersion)
			fmt.Fprintf(w, "Commit:\t%s\n", GitCommit)
			fmt.Fprintf(w, "Go version:\t%s\n", runtime.Version())
			fmt.Fprintf(w, "Built:\t%s\n", BuildTime)
			return w.Flush()
		},
	}
}
