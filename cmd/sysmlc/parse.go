package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/termfx/sysml-core/query"
	"github.com/termfx/sysml-core/syntax"
)

func newParseCmd() *cobra.Command {
	var dialectFlag string

	cmd := &cobra.Command{
		Use:   "parse <file>...",
		Short: "Parse one or more source files and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exitCode := 0
			for _, path := range args {
				source, err := os.ReadFile(path)
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
					exitCode = 1
					continue
				}
				dialect, err := dialectFromFlagOrExt(dialectFlag, path)
				if err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
					exitCode = 1
					continue
				}
				pf := query.Parse(dialect, string(source))
				if len(pf.Diagnostics) == 0 {
					fmt.Printf("%s: ok\n", path)
					continue
				}
				exitCode = 1
				for _, d := range pf.Diagnostics {
					printDiagnostic(path, d)
				}
			}
			if exitCode != 0 {
				os.Exit(exitCode)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dialectFlag, "dialect", "", "force dialect: sysml or kerml (default: infer from extension)")
	return cmd
}

func printDiagnostic(path string, d syntax.Diagnostic) {
	severity := "error"
	switch d.Severity {
	case syntax.SeverityWarning:
		severity = "warning"
	case syntax.SeverityInfo:
		severity = "info"
	}
	fmt.Printf("%s:%d: %s[%s]: %s\n", path, d.Range.Start, severity, d.Code, d.Message)
	if d.Hint != "" {
		fmt.Printf("  hint: %s\n", d.Hint)
	}
	for _, rel := range d.Related {
		fmt.Printf("  related: %s (at %d)\n", rel.Message, rel.Range.Start)
	}
}
