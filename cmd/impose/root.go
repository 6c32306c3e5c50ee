package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "impose",
	Short: "Bind imposters to ports and answer with stubbed responses",
	Long: `impose runs lightweight fake HTTP services called imposters.

Each imposter claims a TCP port and answers requests by walking an
ordered list of stubs: the first stub whose predicates all match serves
the next response in its rotation. Imposters are managed at runtime
through a JSON configuration API and can also be loaded from collection
files at startup.`,
	SilenceUsage:  true,
	SilenceErrors: false,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "impose %s (commit %s, built %s)\n", version, commit, buildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
