package analyzer

// Delta holds field-wise signed differences between two file results,
// computed as second minus first.
type Delta struct {
	QOC      float64 `json:"qoc_diff"`
	LOC      int     `json:"loc_diff"`
	SLOC     int     `json:"sloc_diff"`
	ASTNodes int     `json:"ast_nodes_diff"`
	// Efficiency is the difference between the QOC/SLOC ratios.
	Efficiency float64 `json:"efficiency_diff"`
}

// Compare computes the delta between two file results. There is no
// ordering requirement between the inputs; swapping them negates every
// field.
func Compare(first, second *FileResult) Delta {
	return Delta{
		QOC:        second.TotalQOC - first.TotalQOC,
		LOC:        second.LOC - first.LOC,
		SLOC:       second.SLOC - first.SLOC,
		ASTNodes:   second.ASTNodes - first.ASTNodes,
		Efficiency: second.Efficiency() - first.Efficiency(),
	}
}

// Outcome classifies the comparison by the sign of the QOC difference.
func (d Delta) Outcome() string {
	switch {
	case d.QOC > 0:
		return "increased"
	case d.QOC < 0:
		return "decreased"
	default:
		return "unchanged"
	}
}
