// Command sysmlc is a small CLI host exercising the full pipeline: parse
// a file under a dialect, print its diagnostics, dump the extracted
// symbol table, or parse a single grammar rule in isolation.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load() // optional; absence is not an error

	root := &cobra.Command{
		Use:   "sysmlc",
		Short: "SysML v2 / KerML parser and symbol extractor",
		Long:  "sysmlc lexes and parses SysML v2 and KerML source files, reports diagnostics, and dumps the extracted symbol table.",
	}

	root.AddCommand(newParseCmd(), newExtractCmd(), newRuleCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
