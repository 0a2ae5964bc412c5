package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "glas",
		Short: "A language server and syntax toolkit for Gleam",
	}

	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newTokensCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
