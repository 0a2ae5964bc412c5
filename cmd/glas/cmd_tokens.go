package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/orvitpng/glas/format"
	"github.com/orvitpng/glas/gleam/parser"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Lex a .gleam file and print one token per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read gleam file: %w", err)
			}
			return format.NewTokenEncoder(os.Stdout).Encode(parser.Lex(string(data)))
		},
	}
}
