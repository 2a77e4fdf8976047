package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kemasdimas/ffs"
)

type evalConfig struct {
	envJSON string
}

func newEvalCmd() *cobra.Command {
	cfg := &evalConfig{}

	cmd := &cobra.Command{
		Use:   "eval <formula>",
		Short: "Evaluate a formula against a JSON environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, cfg, args[0])
		},
	}

	cmd.Flags().StringVar(&cfg.envJSON, "env", "{}", "JSON object environment")
	return cmd
}

func runEval(cmd *cobra.Command, cfg *evalConfig, formula string) error {
	// Decode with UseNumber so "5" and "5.0" keep their distinct token
	// shapes all the way to env.Coerce; a plain json.Unmarshal collapses
	// every number to float64 and loses the int/float distinction.
	dec := json.NewDecoder(strings.NewReader(cfg.envJSON))
	dec.UseNumber()
	var env map[string]any
	if err := dec.Decode(&env); err != nil {
		return fmt.Errorf("invalid --env JSON: %w", err)
	}

	result, err := ffs.Evaluate(formula, env)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%v\n", result)
	return nil
}
