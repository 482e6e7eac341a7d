package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/termfx/sysml-core/rule"
)

func newRuleCmd() *cobra.Command {
	var dialectFlag string

	cmd := &cobra.Command{
		Use:   "rule <rule-name> <fragment>",
		Short: "Parse a single grammar rule in isolation",
		Long:  "Wraps <fragment> in the smallest host context its rule needs and reports whether it parsed cleanly.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dialect, err := dialectFromFlagOrExt(dialectFlag, "")
			if err != nil {
				return err
			}

			name, fragment := args[0], args[1]
			result := rule.ParseRule(dialect, rule.Rule(name), fragment)

			fmt.Printf("wrapped: %s\n", result.Wrapped)
			if !result.OK() {
				for _, d := range result.Parsed.Diagnostics {
					printDiagnostic("<fragment>", d)
				}
				os.Exit(1)
			}
			if !result.Found() {
				fmt.Fprintf(os.Stderr, "rule %q parsed without diagnostics but produced no matching node\n", name)
				os.Exit(1)
			}
			fmt.Printf("ok: found %s node %q\n", name, result.Fragment.Text())
			return nil
		},
	}
	cmd.Flags().StringVar(&dialectFlag, "dialect", "sysml", "dialect: sysml or kerml")
	return cmd
}
