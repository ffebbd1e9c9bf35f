package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quantacode/qoc/internal/analyzer"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <file1> <file2>",
		Short: "Compare Quanta of Code between two files",
		Long: `Compare two files and report the difference in QOC, line counts,
AST node counts, and the QOC/SLOC efficiency ratio.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newAnalyzer()
			if err != nil {
				return err
			}

			first, err := a.AnalyzeFile(args[0])
			if err != nil {
				return err
			}
			second, err := a.AnalyzeFile(args[1])
			if err != nil {
				return err
			}

			delta := analyzer.Compare(first, second)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out)
			fmt.Fprintln(out, headerStyle.Render("File Comparison"))
			fmt.Fprintf(out, "  %-18s %14s %14s %14s\n", "Metric", "File 1", "File 2", "Diff")

			fmt.Fprintf(out, "  %-18s %14s %14s %14s\n", "Path",
				truncatePath(first.Path, 14), truncatePath(second.Path, 14), "-")
			fmt.Fprintf(out, "  %-18s %14.1f %14.1f %+14.1f\n", "QOC",
				first.TotalQOC, second.TotalQOC, delta.QOC)
			fmt.Fprintf(out, "  %-18s %14d %14d %+14d\n", "LOC",
				first.LOC, second.LOC, delta.LOC)
			fmt.Fprintf(out, "  %-18s %14d %14d %+14d\n", "SLOC",
				first.SLOC, second.SLOC, delta.SLOC)
			fmt.Fprintf(out, "  %-18s %14d %14d %+14d\n", "AST nodes",
				first.ASTNodes, second.ASTNodes, delta.ASTNodes)
			fmt.Fprintf(out, "  %-18s %14.2f %14.2f %+14.2f\n", "QOC/SLOC",
				first.Efficiency(), second.Efficiency(), delta.Efficiency)

			fmt.Fprintln(out)
			switch delta.Outcome() {
			case "increased":
				fmt.Fprintf(out, "Complexity increased by %.1f QOC\n", delta.QOC)
			case "decreased":
				fmt.Fprintf(out, "Complexity decreased by %.1f QOC\n", -delta.QOC)
			default:
				fmt.Fprintln(out, "Both files have the same complexity")
			}
			return nil
		},
	}
}

// truncatePath shortens long paths for the comparison table.
func truncatePath(path string, max int) string {
	if len(path) <= max {
		return path
	}
	return "..." + path[len(path)-max+3:]
}
