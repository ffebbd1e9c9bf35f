// Package analyzer implements the QOC (Quanta of Code) analysis engine:
// weighted syntax-tree aggregation, per-file line statistics, batch
// summaries, and result comparison.
package analyzer

import (
	"github.com/quantacode/qoc/internal/parser"
)

// NodeStat accumulates occurrences of one syntax node kind within a single
// file. TotalWeight is always Weight * Count.
type NodeStat struct {
	Kind        string  `json:"kind"`
	Weight      float64 `json:"weight"`
	Count       int     `json:"count"`
	TotalWeight float64 `json:"total_weight"`
}

// FileResult is the outcome of analyzing one file. It is never mutated
// after construction.
type FileResult struct {
	Path     string          `json:"filepath"`
	Language parser.Language `json:"language"`
	// TotalQOC is the weighted sum over all counted nodes. When the file
	// could not be fully parsed it falls back to SLOC (see Degraded).
	TotalQOC float64 `json:"qoc"`
	// ASTNodes is the number of counted syntax nodes. Kinds weighted 0 are
	// excluded, so this may undercount the true node population.
	ASTNodes int `json:"ast_nodes"`
	// LOC is the total line count, blank lines included.
	LOC int `json:"loc"`
	// SLOC is the count of non-blank lines.
	SLOC int `json:"sloc"`
	// NodeStats holds the per-kind breakdown. It is empty for empty input
	// and nil when the weighted metric was not computed (parse fallback).
	NodeStats map[string]NodeStat `json:"node_stats,omitempty"`
}

// Efficiency returns the QOC/SLOC ratio, or 0 for files without source lines.
func (r *FileResult) Efficiency() float64 {
	if r.SLOC <= 0 {
		return 0
	}
	return r.TotalQOC / float64(r.SLOC)
}

// Degraded reports whether the weighted metric fell back to the line-count
// proxy because the syntax tree had structural errors.
func (r *FileResult) Degraded() bool {
	return r.ASTNodes == 0 && r.SLOC > 0 && r.NodeStats == nil
}

// LanguageTotals aggregates results for one language within a Summary.
type LanguageTotals struct {
	Files int     `json:"count"`
	QOC   float64 `json:"qoc"`
	LOC   int     `json:"loc"`
	SLOC  int     `json:"sloc"`
}

// Summary holds batch-level totals over a collection of file results.
type Summary struct {
	TotalFiles    int     `json:"total_files"`
	TotalQOC      float64 `json:"total_qoc"`
	TotalLOC      int     `json:"total_loc"`
	TotalSLOC     int     `json:"total_sloc"`
	TotalASTNodes int     `json:"total_nodes"`

	Languages map[parser.Language]LanguageTotals `json:"languages"`
}

// Summarize folds a collection of file results into a Summary.
func Summarize(results []*FileResult) Summary {
	s := Summary{
		Languages: make(map[parser.Language]LanguageTotals),
	}
	for _, r := range results {
		s.TotalFiles++
		s.TotalQOC += r.TotalQOC
		s.TotalLOC += r.LOC
		s.TotalSLOC += r.SLOC
		s.TotalASTNodes += r.ASTNodes

		lt := s.Languages[r.Language]
		lt.Files++
		lt.QOC += r.TotalQOC
		lt.LOC += r.LOC
		lt.SLOC += r.SLOC
		s.Languages[r.Language] = lt
	}
	return s
}
