package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kemasdimas/ffs"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <formula>",
		Short: "Report whether a formula parses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !ffs.Validate(args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
				return fmt.Errorf("formula does not parse")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
