package analyzer

import (
	"github.com/quantacode/qoc/internal/parser"
)

// aggregate walks the syntax tree rooted at root in pre-order, visiting
// every node exactly once, and folds weighted occurrences into a per-kind
// stat map. Kinds whose weight is not positive are excluded from the map
// but their subtrees are still visited, so a weight-0 wrapper never hides
// its children from the metric.
func aggregate(root parser.SyntaxNode, lang parser.Language, weights *WeightTable) map[string]NodeStat {
	stats := make(map[string]NodeStat)

	stack := []parser.SyntaxNode{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		kind := node.Kind()
		if w := weights.Weight(lang, kind); w > 0 {
			st, ok := stats[kind]
			if !ok {
				st = NodeStat{Kind: kind, Weight: w}
			}
			st.Count++
			st.TotalWeight += w
			stats[kind] = st
		}

		// Push children in reverse so they pop in source order. The map's
		// numeric content does not depend on traversal order; only later
		// rendering cares.
		for i := node.ChildCount() - 1; i >= 0; i-- {
			stack = append(stack, node.Child(i))
		}
	}

	return stats
}

// totals derives the two scalar totals from a stat map, taken only over
// counted kinds.
func totals(stats map[string]NodeStat) (qoc float64, nodes int) {
	for _, st := range stats {
		qoc += st.TotalWeight
		nodes += st.Count
	}
	return qoc, nodes
}
