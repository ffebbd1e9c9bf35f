package parser_test

import (
	"testing"

	"github.com/quantacode/qoc/internal/parser"
	"github.com/quantacode/qoc/internal/parser/python"
)

func TestTreeSitterParse(t *testing.T) {
	var p parser.Parser = python.NewParser()

	res, err := p.Parse([]byte("def f():\n    return 1\n"))
	if err != nil {
		t.Fatal(err)
	}
	if res.HasError {
		t.Error("valid source reported structural errors")
	}
	if res.Root.Kind() != "module" {
		t.Errorf("root kind = %q, want module", res.Root.Kind())
	}
	if res.Root.ChildCount() == 0 {
		t.Error("root has no children")
	}

	// Reusing the same parser handle sequentially is supported.
	res2, err := p.Parse([]byte("def broken(:\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !res2.HasError {
		t.Error("invalid source not flagged with structural errors")
	}
}
