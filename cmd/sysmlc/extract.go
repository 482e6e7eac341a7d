package main

import (
	"fmt"
	"os"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/termfx/sysml-core/hir"
	"github.com/termfx/sysml-core/query"
	"github.com/termfx/sysml-core/query/cache"
)

func newExtractCmd() *cobra.Command {
	var dialectFlag string
	var useCache bool

	cmd := &cobra.Command{
		Use:   "extract <glob>...",
		Short: "Extract and print the symbol table for matching files",
		Long:  "Each argument is a doublestar glob (e.g. **/*.sysml) resolved against the current directory.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var store *cache.Store
			if useCache {
				cfg := loadCacheConfig()
				s, err := cache.Open(cfg.DBPath, cfg.Debug)
				if err != nil {
					return fmt.Errorf("opening cache: %w", err)
				}
				defer s.Close()
				store = s
			}

			var paths []string
			for _, pattern := range args {
				matches, err := doublestar.FilepathGlob(pattern)
				if err != nil {
					return fmt.Errorf("glob %q: %w", pattern, err)
				}
				paths = append(paths, matches...)
			}
			if len(paths) == 0 {
				fmt.Fprintln(os.Stderr, "no files matched")
				return nil
			}

			for _, path := range paths {
				if err := extractOne(path, dialectFlag, store); err != nil {
					fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dialectFlag, "dialect", "", "force dialect: sysml or kerml (default: infer from extension)")
	cmd.Flags().BoolVar(&useCache, "cache", false, "memoize parse/extraction results in the sqlite cache (SYSMLCORE_CACHE_DB)")
	return cmd
}

func extractOne(path string, dialectFlag string, store *cache.Store) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	dialect, err := dialectFromFlagOrExt(dialectFlag, path)
	if err != nil {
		return err
	}

	var diagCount int
	var symbols int
	if store != nil {
		pf, _, err := store.GetOrParse(dialect, string(source))
		if err != nil {
			return err
		}
		diagCount = len(pf.Diagnostics)
		res, _, err := store.GetOrExtract(path, dialect, string(source))
		if err != nil {
			return err
		}
		symbols = len(res.Symbols)
		printSymbolTable(path, res)
	} else {
		pf, res := query.ParseAndExtract(path, dialect, string(source))
		diagCount = len(pf.Diagnostics)
		symbols = len(res.Symbols)
		printSymbolTable(path, res)
	}

	fmt.Printf("%s: %d symbols, %d diagnostics\n", path, symbols, diagCount)
	return nil
}

func printSymbolTable(path string, res hir.ExtractionResult) {
	for _, sym := range res.Symbols {
		fmt.Printf("  %-40s %-12s %s\n", sym.QualifiedName, sym.Kind, sym.ElementID)
	}
	for _, f := range res.ScopeFilters {
		fmt.Printf("  filter %s: %v\n", f.ScopeQualifiedName, f.Names)
	}
	for _, f := range res.ImportFilters {
		fmt.Printf("  import-filter %s: %v\n", f.ImportQualifiedName, f.Names)
	}
}
