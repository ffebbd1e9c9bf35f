// Package javascript provides the JavaScript syntax parser, which also
// handles TypeScript sources.
package javascript

import (
	"github.com/smacker/go-tree-sitter/javascript"

	"github.com/quantacode/qoc/internal/parser"
)

// NewParser creates a new JavaScript parser.
func NewParser() parser.Parser {
	return parser.NewTreeSitterParser(parser.LangJavaScript, javascript.GetLanguage())
}
