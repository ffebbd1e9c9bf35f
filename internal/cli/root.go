// Package cli implements the command-line interface for qoc.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/quantacode/qoc/internal/analyzer"
	"github.com/quantacode/qoc/internal/config"
	"github.com/quantacode/qoc/internal/parser"
	"github.com/quantacode/qoc/internal/parser/cpp"
	"github.com/quantacode/qoc/internal/parser/java"
	"github.com/quantacode/qoc/internal/parser/javascript"
	"github.com/quantacode/qoc/internal/parser/python"
)

var cfgFile string

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "qoc",
	Short: "qoc - syntax-aware code size analysis",
	Long: `qoc computes Quanta of Code (QOC), a weighted syntax-tree metric that
measures code contribution independently of formatting and whitespace.

Each source file is parsed into a concrete syntax tree; every node kind
carries a configurable weight, and the file's QOC is the weighted sum of
node occurrences.

Commands:
  analyze    Analyze a file or directory
  compare    Compare two files
  languages  List supported languages
  init       Write a starter weight configuration
  watch      Re-analyze files as they change
  demo       Quick recursive analysis of the current project`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "weight config file (default: .qoc.yaml)")

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newCompareCmd())
	rootCmd.AddCommand(newLanguagesCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newDemoCmd())
	rootCmd.AddCommand(newVersionCmd())
}

// newRegistry builds a parser registry with every available grammar. Batch
// workers each call it again so no native parser handle is shared.
func newRegistry() *parser.Registry {
	r := parser.NewRegistry()
	r.Register(python.NewParser())
	r.Register(javascript.NewParser())
	r.Register(java.NewParser())
	r.Register(cpp.NewParser())
	return r
}

// newAnalyzer loads the weight document and wires up an analyzer. A
// malformed weight document is fatal here, before any file is touched.
func newAnalyzer() (*analyzer.Analyzer, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	return analyzer.New(analyzer.NewWeightTable(cfg), newRegistry), nil
}
