// Package cpp provides the C++ syntax parser.
package cpp

import (
	"github.com/smacker/go-tree-sitter/cpp"

	"github.com/quantacode/qoc/internal/parser"
)

// NewParser creates a new C++ parser.
func NewParser() parser.Parser {
	return parser.NewTreeSitterParser(parser.LangCpp, cpp.GetLanguage())
}
