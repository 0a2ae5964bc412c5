package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orvitpng/glas/format"
	"github.com/orvitpng/glas/gleam/codebase"
	"github.com/orvitpng/glas/gleam/parser"
)

func newParseCmd() *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a .gleam file and dump the syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			data, err := os.ReadFile(filename)
			if err != nil {
				return fmt.Errorf("read gleam file: %w", err)
			}

			parse := parser.ParseModule(string(data))

			switch outputFormat {
			case "json":
				if err := format.NewJSONEncoder(os.Stdout).Encode(parse.Root()); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			case "tree":
				if err := format.NewTreeEncoder(os.Stdout).Encode(parse.Root()); err != nil {
					return fmt.Errorf("encode: %w", err)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if errs := parse.Errors(); len(errs) > 0 {
				lines := codebase.NewLineIndex(string(data))
				for _, perr := range errs {
					pos := lines.PositionFor(perr.Range.Start)
					fmt.Fprintf(os.Stderr, "%s:%s: %s\n", filename, pos, perr.Message())
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "tree", "output format (tree, json)")

	return cmd
}
