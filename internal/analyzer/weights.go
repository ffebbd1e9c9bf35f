package analyzer

import (
	"github.com/quantacode/qoc/internal/config"
	"github.com/quantacode/qoc/internal/parser"
)

// DefaultWeight is the weight of any node kind not present in the table.
const DefaultWeight = 1.0

// WeightTable resolves a (language, node kind) pair to a weight. It is
// built once from the loaded weight document and read-only afterwards, so
// it may be shared freely across concurrent analyses.
type WeightTable struct {
	languages map[parser.Language]map[string]float64
}

// NewWeightTable builds a weight table from a loaded weight document.
func NewWeightTable(cfg *config.Config) *WeightTable {
	t := &WeightTable{
		languages: make(map[parser.Language]map[string]float64, len(cfg.Languages)),
	}
	for lang, lc := range cfg.Languages {
		weights := make(map[string]float64, len(lc.NodeWeights))
		for kind, w := range lc.NodeWeights {
			weights[kind] = w
		}
		t.languages[parser.Language(lang)] = weights
	}
	return t
}

// Weight returns the weight for a node kind in the given language. Unknown
// languages and unknown kinds resolve to DefaultWeight; an explicit 0 in
// the table is returned as-is, which excludes the kind from the metric.
func (t *WeightTable) Weight(lang parser.Language, kind string) float64 {
	weights, ok := t.languages[lang]
	if !ok {
		return DefaultWeight
	}
	w, ok := weights[kind]
	if !ok {
		return DefaultWeight
	}
	return w
}
