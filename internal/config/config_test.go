package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMergesFileOverDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weights.yaml")
	content := `languages:
  python:
    node_weights:
      function_definition: 7
      string: 0
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	py := cfg.Languages["python"].NodeWeights
	if py["function_definition"] != 7 {
		t.Errorf("file override not applied: %v", py["function_definition"])
	}
	if py["string"] != 0 {
		t.Errorf("explicit zero weight lost: %v", py["string"])
	}
	// Presets for keys the file does not mention survive the merge.
	if py["class_definition"] != DefaultWeights["python"]["class_definition"] {
		t.Errorf("default class_definition weight lost: %v", py["class_definition"])
	}
	if _, ok := cfg.Languages["java"]; !ok {
		t.Error("default java preset missing after load")
	}
}

func TestLoadMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("languages: [not: a map\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("malformed weight document loaded without error")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("explicitly named missing file loaded without error")
	}
}

func TestValidate(t *testing.T) {
	bad := &Config{Languages: map[string]LanguageConfig{
		"python": {NodeWeights: map[string]float64{" ": 1}},
	}}
	if err := bad.Validate(); err == nil {
		t.Error("empty node kind passed validation")
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".qoc.yaml")

	if err := WriteConfig(Default(), path); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	for lang, weights := range DefaultWeights {
		lc, ok := cfg.Languages[lang]
		if !ok {
			t.Fatalf("language %s missing after round trip", lang)
		}
		for kind, w := range weights {
			if lc.NodeWeights[kind] != w {
				t.Errorf("%s/%s = %v, want %v", lang, kind, lc.NodeWeights[kind], w)
			}
		}
	}
}
