// Command ffseval is a small inspection tool for the rule language:
// check whether a formula parses, or evaluate it against a JSON
// environment from the shell.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ffseval",
		Short: "Inspect feature-flag rollout formulas",
	}
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newEvalCmd())
	return cmd
}
