// targetroll resolves annotation-store targets into the targets that
// should be reported in their place, under a named rollup strategy.
//
// Usage:
//
//	targetroll resolve --strategy smart_all CHEMBL1833 [ID...]
//	targetroll strategies
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "targetroll",
	Short: "Roll annotation-store targets up to biologically meaningful ones",
	Long: `targetroll walks the annotation store's target-relation graph from a
source target, following only the edges a strategy permits, and reports
the targets the strategy accepts.`,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(strategiesCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
