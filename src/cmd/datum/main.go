package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "datum",
	Short:        "Heuristic calendar-date decoding for free-form text (Danish and English)",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if interactive() {
			return runInteractive(cmd.InOrStdin(), cmd.OutOrStdout())
		}
		return runBatch(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func execute() error {
	// Attach subcommands
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newScanCmd())
	rootCmd.AddCommand(newMonthsCmd())
	return rootCmd.Execute()
}

func main() {
	if err := execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
