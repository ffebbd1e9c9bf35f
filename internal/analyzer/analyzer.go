package analyzer

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/quantacode/qoc/internal/parser"
)

// Hard per-file failure conditions. Read failures (including missing
// paths) are surfaced as wrapped *os.PathError values instead.
var (
	// ErrUnsupportedLanguage means the file extension maps to no known language.
	ErrUnsupportedLanguage = errors.New("unsupported language")
	// ErrParserUnavailable means the language is recognized but no parser
	// was registered for it.
	ErrParserUnavailable = errors.New("parser unavailable")
	// ErrNoFiles means a batch scan found nothing to analyze.
	ErrNoFiles = errors.New("no supported files to analyze")
)

// Analyzer orchestrates language resolution, parsing, line counting, and
// tree aggregation into per-file results.
//
// An Analyzer wraps one parser registry and must therefore not be used
// from multiple goroutines at once; AnalyzeDir runs its own workers, each
// with a private registry built by the factory.
type Analyzer struct {
	weights     *WeightTable
	registry    *parser.Registry
	newRegistry func() *parser.Registry
}

// New creates an Analyzer. newRegistry builds a parser registry with all
// available parsers registered; it is invoked once up front and once per
// batch worker.
func New(weights *WeightTable, newRegistry func() *parser.Registry) *Analyzer {
	return &Analyzer{
		weights:     weights,
		registry:    newRegistry(),
		newRegistry: newRegistry,
	}
}

// Registry exposes the analyzer's parser registry, e.g. for listing the
// supported languages.
func (a *Analyzer) Registry() *parser.Registry {
	return a.registry
}

// AnalyzeFile produces the QOC result for a single file.
//
// Hard failures (ErrUnsupportedLanguage, ErrParserUnavailable, read
// errors) abort only this file. A file whose tree has structural errors
// is not a failure: its result carries TotalQOC = SLOC with ASTNodes = 0,
// so consumers can detect the fallback structurally.
func (a *Analyzer) AnalyzeFile(path string) (*FileResult, error) {
	lang, ok := parser.Detect(path)
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedLanguage)
	}

	p, ok := a.registry.Get(lang)
	if !ok {
		return nil, fmt.Errorf("%s: %w (%s)", path, ErrParserUnavailable, lang)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	// Line statistics are computed regardless of how parsing goes.
	loc, sloc := CountLines(content)

	if len(bytes.TrimSpace(content)) == 0 {
		// Empty or whitespace-only input is a normal zero result.
		return &FileResult{
			Path:      path,
			Language:  lang,
			TotalQOC:  0,
			ASTNodes:  0,
			LOC:       loc,
			SLOC:      sloc,
			NodeStats: map[string]NodeStat{},
		}, nil
	}

	res, err := p.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("analyzing %s: %w", path, err)
	}

	if res.HasError {
		// Degraded fallback: a line-count proxy beats discarding the file,
		// and zero AST nodes signals that the weighted metric is absent.
		return &FileResult{
			Path:     path,
			Language: lang,
			TotalQOC: float64(sloc),
			ASTNodes: 0,
			LOC:      loc,
			SLOC:     sloc,
		}, nil
	}

	stats := aggregate(res.Root, lang, a.weights)
	qoc, nodes := totals(stats)

	return &FileResult{
		Path:      path,
		Language:  lang,
		TotalQOC:  qoc,
		ASTNodes:  nodes,
		LOC:       loc,
		SLOC:      sloc,
		NodeStats: stats,
	}, nil
}
