// Package java provides the Java syntax parser.
package java

import (
	"github.com/smacker/go-tree-sitter/java"

	"github.com/quantacode/qoc/internal/parser"
)

// NewParser creates a new Java parser.
func NewParser() parser.Parser {
	return parser.NewTreeSitterParser(parser.LangJava, java.GetLanguage())
}
