package parser

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want Language
		ok   bool
	}{
		{"main.py", LangPython, true},
		{"types.pyi", LangPython, true},
		{"app.js", LangJavaScript, true},
		{"component.TSX", LangJavaScript, true}, // extensions are case-insensitive
		{"index.ts", LangJavaScript, true},
		{"Main.java", LangJava, true},
		{"engine.cpp", LangCpp, true},
		{"engine.c++", LangCpp, true},
		{"header.hpp", LangCpp, true},
		{"src/deep/nested/mod.py", LangPython, true},
		{"README.md", "", false},
		{"Makefile", "", false},
		{"archive.xyz", "", false},
	}

	for _, tt := range tests {
		lang, ok := Detect(tt.path)
		if lang != tt.want || ok != tt.ok {
			t.Errorf("Detect(%q) = (%q, %v), want (%q, %v)", tt.path, lang, ok, tt.want, tt.ok)
		}
	}
}

// stubParser implements Parser without a grammar.
type stubParser struct {
	lang Language
	exts []string
}

func (p stubParser) Language() Language { return p.lang }

func (p stubParser) Extensions() []string { return p.exts }

func (p stubParser) Parse([]byte) (*ParseResult, error) { return &ParseResult{}, nil }

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	r.Register(stubParser{lang: LangPython, exts: []string{".py"}})
	r.Register(stubParser{lang: LangJava, exts: []string{".java"}})

	if p, ok := r.Get(LangPython); !ok || p.Language() != LangPython {
		t.Errorf("Get(python) = %v, %v", p, ok)
	}
	if _, ok := r.Get(LangCpp); ok {
		t.Error("Get(cpp) found an unregistered parser")
	}
	if p, ok := r.GetByExtension(".java"); !ok || p.Language() != LangJava {
		t.Errorf("GetByExtension(.java) = %v, %v", p, ok)
	}
	if !r.Supports(LangJava) || r.Supports(LangJavaScript) {
		t.Error("Supports() disagrees with registration")
	}

	all := r.All()
	if len(all) != 2 || all[0].Language() != LangPython || all[1].Language() != LangJava {
		t.Errorf("All() = %v, want registration order", all)
	}
}
