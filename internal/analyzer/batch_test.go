package analyzer

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/quantacode/qoc/internal/parser"
)

func TestAnalyzeDirMatchesIndividualAnalyses(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.py", "x = 1\ny = 2\n")
	writeFile(t, dir, "b.py", pythonSample)
	writeFile(t, dir, "c.js", "function f() { return 1; }\n")
	writeFile(t, dir, "ignored.xyz", "not source\n")

	a := testAnalyzer(nil)
	batch, err := a.AnalyzeDir(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(batch.Failures) != 0 {
		t.Fatalf("unexpected failures: %v", batch.Failures)
	}
	if len(batch.Results) != 3 {
		t.Fatalf("got %d results, want 3 (unsupported extension must be excluded)", len(batch.Results))
	}

	// Batch totals must equal the sum over per-file analyses.
	var wantQOC float64
	var wantLOC, wantSLOC, wantNodes int
	for _, r := range batch.Results {
		single, err := a.AnalyzeFile(r.Path)
		if err != nil {
			t.Fatal(err)
		}
		wantQOC += single.TotalQOC
		wantLOC += single.LOC
		wantSLOC += single.SLOC
		wantNodes += single.ASTNodes
	}

	s := Summarize(batch.Results)
	if s.TotalFiles != 3 {
		t.Errorf("total files = %d, want 3", s.TotalFiles)
	}
	if math.Abs(s.TotalQOC-wantQOC) > 1e-9 || s.TotalLOC != wantLOC || s.TotalSLOC != wantSLOC || s.TotalASTNodes != wantNodes {
		t.Errorf("summary totals %+v diverge from per-file sums (qoc=%v loc=%d sloc=%d nodes=%d)",
			s, wantQOC, wantLOC, wantSLOC, wantNodes)
	}

	if s.Languages[parser.LangPython].Files != 2 || s.Languages[parser.LangJavaScript].Files != 1 {
		t.Errorf("language breakdown = %+v", s.Languages)
	}
}

func TestSummarizeFixedValues(t *testing.T) {
	results := []*FileResult{
		{Language: "python", TotalQOC: 15, SLOC: 10},
		{Language: "python", TotalQOC: 25, SLOC: 20},
		{Language: "javascript", TotalQOC: 45, SLOC: 30},
	}
	s := Summarize(results)
	if s.TotalSLOC != 60 || s.TotalQOC != 85 {
		t.Errorf("totals = sloc %d qoc %v, want 60 and 85", s.TotalSLOC, s.TotalQOC)
	}
}

func TestAnalyzeDirRecursive(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "pkg")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	skip := filepath.Join(dir, "node_modules")
	if err := os.MkdirAll(skip, 0755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, dir, "top.py", "x = 1\n")
	writeFile(t, sub, "nested.py", "y = 2\n")
	writeFile(t, skip, "dep.js", "module.exports = {}\n")

	a := testAnalyzer(nil)

	flat, err := a.AnalyzeDir(dir, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(flat.Results) != 1 {
		t.Errorf("non-recursive scan found %d files, want 1", len(flat.Results))
	}

	deep, err := a.AnalyzeDir(dir, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(deep.Results) != 2 {
		t.Errorf("recursive scan found %d files, want 2 (node_modules skipped)", len(deep.Results))
	}
	// Results are sorted by path.
	for i := 1; i < len(deep.Results); i++ {
		if deep.Results[i-1].Path > deep.Results[i].Path {
			t.Errorf("results not sorted: %s before %s", deep.Results[i-1].Path, deep.Results[i].Path)
		}
	}
}

func TestAnalyzeDirNothingToAnalyze(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "README.xyz", "no parsers here\n")

	a := testAnalyzer(nil)
	if _, err := a.AnalyzeDir(dir, true); !errors.Is(err, ErrNoFiles) {
		t.Errorf("empty scan error = %v, want ErrNoFiles", err)
	}
}

func TestAnalyzeDirMissingRoot(t *testing.T) {
	a := testAnalyzer(nil)
	if _, err := a.AnalyzeDir(filepath.Join(t.TempDir(), "nope"), true); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing dir error = %v, want wrapped os.ErrNotExist", err)
	}
}
