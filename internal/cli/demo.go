package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantacode/qoc/internal/analyzer"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a quick analysis of the current project",
		Long: `Analyze the src directory (or the current directory when no src
exists) recursively and print a compact per-file table together with the
batch summary. A good first command to see what qoc measures.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target := "."
			if info, err := os.Stat("src"); err == nil && info.IsDir() {
				target = "src"
			}

			a, err := newAnalyzer()
			if err != nil {
				return err
			}

			batch, err := a.AnalyzeDir(target, true)
			if err != nil {
				return err
			}
			for _, fe := range batch.Failures {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", fe)
			}

			out := cmd.OutOrStdout()

			fmt.Fprintln(out)
			fmt.Fprintln(out, headerStyle.Render(fmt.Sprintf("Analyzing %s", target)))
			fmt.Fprintf(out, "  %-30s %-10s %10s %6s %6s %8s %8s\n",
				"File", "Language", "QOC", "LOC", "SLOC", "AST", "QOC/SLOC")

			for _, r := range batch.Results {
				fmt.Fprintf(out, "  %-30s %-10s %10.1f %6d %6d %8d %8.2f\n",
					truncatePath(r.Path, 30), r.Language, r.TotalQOC,
					r.LOC, r.SLOC, r.ASTNodes, r.Efficiency())
			}

			printSummary(out, analyzer.Summarize(batch.Results))

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Try these commands:")
			fmt.Fprintln(out, "  qoc analyze <file> --detailed    per-node-kind breakdown")
			fmt.Fprintln(out, "  qoc compare <file1> <file2>      diff two files")
			fmt.Fprintln(out, "  qoc init                         write a starter weight config")
			return nil
		},
	}
}
