package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pharmatlas/targetroll/strategy"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List built-in rollup strategies",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), strategy.NullStrategy)
		for _, name := range strategy.Builtins() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}
