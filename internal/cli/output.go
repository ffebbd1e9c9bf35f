package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/quantacode/qoc/internal/analyzer"
)

// jsonFile is the per-file record in JSON output.
type jsonFile struct {
	Path      string                       `json:"filepath"`
	Language  string                       `json:"language"`
	QOC       float64                      `json:"qoc"`
	LOC       int                          `json:"loc"`
	SLOC      int                          `json:"sloc"`
	ASTNodes  int                          `json:"ast_nodes"`
	NodeStats map[string]analyzer.NodeStat `json:"node_stats,omitempty"`
}

// jsonReport is the top-level JSON output document.
type jsonReport struct {
	Summary analyzer.Summary `json:"summary"`
	Files   []jsonFile       `json:"files"`
}

// marshalJSON renders results as an indented JSON report. Per-kind node
// stats are included only in detailed mode.
func marshalJSON(results []*analyzer.FileResult, detailed bool) ([]byte, error) {
	report := jsonReport{
		Summary: analyzer.Summarize(results),
		Files:   make([]jsonFile, 0, len(results)),
	}
	for _, r := range results {
		f := jsonFile{
			Path:     r.Path,
			Language: string(r.Language),
			QOC:      r.TotalQOC,
			LOC:      r.LOC,
			SLOC:     r.SLOC,
			ASTNodes: r.ASTNodes,
		}
		if detailed && len(r.NodeStats) > 0 {
			f.NodeStats = r.NodeStats
		}
		report.Files = append(report.Files, f)
	}
	return json.MarshalIndent(report, "", "  ")
}

// writeCSVFile writes one row per result to path.
func writeCSVFile(path string, results []*analyzer.FileResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Filename", "Language", "QOC", "AST Nodes", "LOC", "SLOC", "QOC/SLOC Ratio"}); err != nil {
		return err
	}
	for _, r := range results {
		row := []string{
			r.Path,
			string(r.Language),
			fmt.Sprintf("%.1f", r.TotalQOC),
			strconv.Itoa(r.ASTNodes),
			strconv.Itoa(r.LOC),
			strconv.Itoa(r.SLOC),
			fmt.Sprintf("%.2f", r.Efficiency()),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
