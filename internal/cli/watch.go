package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/cobra"

	"github.com/quantacode/qoc/internal/parser"
	"github.com/quantacode/qoc/internal/watcher"
)

// watchIgnoreDirs are directory names never descended into while watching.
var watchIgnoreDirs = []string{".git", "node_modules", "vendor", "__pycache__", "dist", "build"}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Re-analyze supported files as they change",
		Long: `Watch a directory tree and re-run the QOC analysis for every supported
file that changes. Each change is analyzed from scratch; a file whose
content hash is unchanged (e.g. a touch or editor re-save) is skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if info, err := os.Stat(dir); err != nil {
				return fmt.Errorf("watching %s: %w", dir, err)
			} else if !info.IsDir() {
				return fmt.Errorf("watching %s: not a directory", dir)
			}

			a, err := newAnalyzer()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			w := watcher.New(dir, watchIgnoreDirs)
			events, err := w.Start(ctx)
			if err != nil {
				return fmt.Errorf("starting watcher: %w", err)
			}
			defer w.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Watching %s (Ctrl-C to stop)\n", dir)

			// Content hashes of already-analyzed files, to suppress
			// re-analysis when the bytes did not change.
			seen := make(map[string]uint64)

			for evt := range events {
				if evt.Op == watcher.Remove || evt.Op == watcher.Rename {
					delete(seen, evt.Path)
					continue
				}
				if _, ok := parser.Detect(evt.Path); !ok {
					continue
				}

				content, err := os.ReadFile(evt.Path)
				if err != nil {
					continue // gone again already
				}
				sum := xxhash.Sum64(content)
				if prev, ok := seen[evt.Path]; ok && prev == sum {
					continue
				}
				seen[evt.Path] = sum

				result, err := a.AnalyzeFile(evt.Path)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
					continue
				}
				fmt.Fprintf(out, "%-40s qoc=%.1f sloc=%d nodes=%d\n",
					result.Path, result.TotalQOC, result.SLOC, result.ASTNodes)
			}
			return nil
		},
	}
}
