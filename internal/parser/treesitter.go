package parser

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// TreeSitterParser implements Parser on top of a tree-sitter grammar.
// Language packages construct one via NewTreeSitterParser with their grammar.
type TreeSitterParser struct {
	lang   Language
	parser *sitter.Parser
}

// NewTreeSitterParser creates a parser for the given language and grammar.
func NewTreeSitterParser(lang Language, grammar *sitter.Language) *TreeSitterParser {
	p := sitter.NewParser()
	p.SetLanguage(grammar)
	return &TreeSitterParser{
		lang:   lang,
		parser: p,
	}
}

func (p *TreeSitterParser) Language() Language {
	return p.lang
}

func (p *TreeSitterParser) Extensions() []string {
	return FileExtensions[p.lang]
}

// Parse parses the source bytes into a concrete syntax tree. A returned
// ParseResult with HasError set means the grammar recovered around
// structural errors; the tree is still traversable.
func (p *TreeSitterParser) Parse(content []byte) (*ParseResult, error) {
	tree, err := p.parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s source: %w", p.lang, err)
	}

	root := tree.RootNode()
	return &ParseResult{
		Root:     sitterNode{root},
		HasError: root.HasError(),
	}, nil
}

// sitterNode adapts *sitter.Node to SyntaxNode.
type sitterNode struct {
	n *sitter.Node
}

func (s sitterNode) Kind() string {
	return s.n.Type()
}

func (s sitterNode) ChildCount() int {
	return int(s.n.ChildCount())
}

func (s sitterNode) Child(i int) SyntaxNode {
	return sitterNode{s.n.Child(i)}
}
