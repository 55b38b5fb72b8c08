package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "tacc",
	Short: "Three-address-code front-end compiler",
	Long: `tacc compiles a small imperative language - declarations, assignment,
if/while/do/break, scalar and array arithmetic - down to three-address
code with explicit labels and gotos.

With no subcommand, tacc reads a single program from standard input and
writes its generated listing to standard output, exiting non-zero with
a diagnostic on standard error if compilation fails.`,
	RunE: compileScript,
	Args: cobra.MaximumNArgs(1),
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
