package parser

import (
	"path/filepath"
	"strings"
)

// Language represents a supported programming language.
type Language string

const (
	LangPython     Language = "python"
	LangJavaScript Language = "javascript"
	LangJava       Language = "java"
	LangCpp        Language = "cpp"
)

// FileExtensions maps each language to its recognized file extensions.
// TypeScript sources deliberately share the JavaScript grammar.
var FileExtensions = map[Language][]string{
	LangPython:     {".py", ".pyi"},
	LangJavaScript: {".js", ".jsx", ".mjs", ".cjs", ".ts", ".tsx"},
	LangJava:       {".java"},
	LangCpp:        {".cpp", ".cc", ".cxx", ".c++", ".hpp", ".h", ".hh", ".hxx"},
}

// Detect resolves a file path to a language by its extension
// (case-insensitive). The second return value is false for unknown
// extensions; that is a classification, not an error.
func Detect(path string) (Language, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	for lang, exts := range FileExtensions {
		for _, e := range exts {
			if e == ext {
				return lang, true
			}
		}
	}
	return "", false
}

// SyntaxNode is the minimal view of a concrete syntax tree node that the
// analysis engine depends on. It hides the native tree-sitter binding so
// callers never hold a cgo-backed handle directly.
type SyntaxNode interface {
	// Kind returns the grammatical category of the node as emitted by the
	// language grammar (e.g. "function_definition").
	Kind() string

	// ChildCount returns the number of children, anonymous tokens included.
	ChildCount() int

	// Child returns the i-th child.
	Child(i int) SyntaxNode
}

// ParseResult holds the outcome of parsing one file's content.
type ParseResult struct {
	// Root is the root node of the concrete syntax tree.
	Root SyntaxNode
	// HasError reports whether the tree contains structural errors, i.e.
	// the grammar could not fully parse the content.
	HasError bool
}

// Parser defines the interface for language-specific syntax parsers.
//
// A Parser owns a native parser handle with internal mutable state and is
// NOT safe for concurrent use. Callers that parse from multiple goroutines
// must use one Parser (or Registry) per goroutine.
type Parser interface {
	// Language returns which language this parser handles.
	Language() Language

	// Extensions returns the file extensions this parser can handle.
	Extensions() []string

	// Parse parses the given source bytes into a concrete syntax tree.
	Parse(content []byte) (*ParseResult, error)
}
