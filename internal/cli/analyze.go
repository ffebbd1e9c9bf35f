package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quantacode/qoc/internal/analyzer"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		recursive bool
		detailed  bool
		output    string
		format    string
	)

	cmd := &cobra.Command{
		Use:   "analyze <path>",
		Short: "Analyze Quanta of Code for a file or directory",
		Long: `Analyze a source file or directory and report Quanta of Code.

For a directory, every supported file is analyzed and a summary is shown;
files that cannot be analyzed are skipped with a warning. Use --detailed
for the per-node-kind breakdown and --format for machine-readable output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			switch format {
			case "console", "json", "csv":
			default:
				return fmt.Errorf("unknown format %q (expected console, json, or csv)", format)
			}

			a, err := newAnalyzer()
			if err != nil {
				return err
			}

			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("analyzing %s: %w", path, err)
			}

			var results []*analyzer.FileResult
			if info.IsDir() {
				batch, err := a.AnalyzeDir(path, recursive)
				if err != nil {
					return err
				}
				for _, f := range batch.Failures {
					fmt.Fprintf(cmd.ErrOrStderr(), "Warning: skipped %v\n", f)
				}
				if len(batch.Results) == 0 {
					return fmt.Errorf("%s: every candidate file failed to analyze", path)
				}
				results = batch.Results
			} else {
				result, err := a.AnalyzeFile(path)
				if err != nil {
					return err
				}
				results = []*analyzer.FileResult{result}
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				data, err := marshalJSON(results, detailed)
				if err != nil {
					return err
				}
				if output != "" {
					if err := os.WriteFile(output, data, 0644); err != nil {
						return fmt.Errorf("writing %s: %w", output, err)
					}
					fmt.Fprintf(out, "Results saved to %s\n", output)
					return nil
				}
				fmt.Fprintln(out, string(data))
				return nil
			case "csv":
				if output == "" {
					return fmt.Errorf("csv format requires an output file (-o)")
				}
				if err := writeCSVFile(output, results); err != nil {
					return err
				}
				fmt.Fprintf(out, "CSV results saved to %s\n", output)
				return nil
			default:
				if len(results) == 1 {
					printResult(out, results[0], detailed)
				} else {
					printSummary(out, analyzer.Summarize(results))
					if detailed {
						for _, r := range results {
							printResult(out, r, true)
						}
					}
				}
				return nil
			}
		},
	}

	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "recursively analyze subdirectories")
	cmd.Flags().BoolVarP(&detailed, "detailed", "d", false, "show per-node-kind statistics")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write results to file")
	cmd.Flags().StringVar(&format, "format", "console", "output format (console, json, csv)")

	return cmd
}
