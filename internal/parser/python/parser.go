// Package python provides the Python syntax parser.
package python

import (
	"github.com/smacker/go-tree-sitter/python"

	"github.com/quantacode/qoc/internal/parser"
)

// NewParser creates a new Python parser.
func NewParser() parser.Parser {
	return parser.NewTreeSitterParser(parser.LangPython, python.GetLanguage())
}
