package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"

	"github.com/orvitpng/glas/gleam/codebase"
)

func newWatchCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Watch a directory and report syntax errors as files change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			verbosity := 0
			if verbose {
				verbosity = 1
			}
			commonlog.Configure(verbosity, nil)
			log := commonlog.GetLogger("glas.watch")

			cb := codebase.New(root)
			watcher, err := codebase.NewFileWatcher(cb)
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}
			watcher.OnUpdate = func(path string) {
				diags := cb.Diagnostics(path)
				if len(diags) == 0 {
					log.Infof("%s: ok", path)
					return
				}
				for _, diag := range diags {
					fmt.Fprintf(os.Stderr, "%s:%s: %s\n", diag.Path, diag.Start, diag.Message)
				}
			}

			if err := watcher.Start(); err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}
			defer watcher.Stop()
			log.Noticef("watching %s", root)

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log clean reparses as well as errors")

	return cmd
}
