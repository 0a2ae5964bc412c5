package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/orvitpng/glas/gleam/codebase"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [dir]",
		Short: "Parse every .gleam file under a directory and report syntax errors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			cb := codebase.New(root)
			if err := cb.ScanAll(); err != nil {
				return fmt.Errorf("scan %s: %w", root, err)
			}

			files := cb.Files()
			sort.Slice(files, func(i, j int) bool {
				return files[i].Path < files[j].Path
			})

			total := 0
			for _, f := range files {
				for _, diag := range cb.Diagnostics(f.Path) {
					fmt.Fprintf(os.Stderr, "%s:%s: %s\n", diag.Path, diag.Start, diag.Message)
					total++
				}
			}

			if total > 0 {
				return fmt.Errorf("%d syntax errors in %d files", total, len(files))
			}
			fmt.Printf("checked %d files, no syntax errors\n", len(files))
			return nil
		},
	}
}
