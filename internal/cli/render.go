package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/quantacode/qoc/internal/analyzer"
	"github.com/quantacode/qoc/internal/parser"
)

// Style definitions for console views.
var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"})
	labelStyle = lipgloss.NewStyle().
			Faint(true).
			Width(18)
	valueStyle = lipgloss.NewStyle()
	warnStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#E6C14C"})
)

// printResult renders one file result; detailed mode adds the per-kind table.
func printResult(out io.Writer, r *analyzer.FileResult, detailed bool) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, headerStyle.Render(r.Path))

	printKV(out, "Language", string(r.Language))
	printKV(out, "Lines (LOC)", fmt.Sprintf("%d", r.LOC))
	printKV(out, "Source lines", fmt.Sprintf("%d", r.SLOC))
	printKV(out, "QOC", fmt.Sprintf("%.1f", r.TotalQOC))
	printKV(out, "AST nodes", fmt.Sprintf("%d", r.ASTNodes))
	printKV(out, "QOC/SLOC", fmt.Sprintf("%.2f", r.Efficiency()))

	if r.Degraded() {
		fmt.Fprintf(out, "  %s\n", warnStyle.Render("syntax errors: QOC estimated from source lines"))
	}

	if detailed && len(r.NodeStats) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %s\n", headerStyle.Render("Node kinds"))
		fmt.Fprintf(out, "  %-30s %8s %8s %12s %8s\n", "Kind", "Count", "Weight", "Total", "Share")

		stats := make([]analyzer.NodeStat, 0, len(r.NodeStats))
		for _, st := range r.NodeStats {
			stats = append(stats, st)
		}
		// Heaviest kinds first; ties broken by name for stable output.
		sort.Slice(stats, func(i, j int) bool {
			if stats[i].TotalWeight != stats[j].TotalWeight {
				return stats[i].TotalWeight > stats[j].TotalWeight
			}
			return stats[i].Kind < stats[j].Kind
		})

		for _, st := range stats {
			share := 0.0
			if r.TotalQOC > 0 {
				share = st.TotalWeight / r.TotalQOC * 100
			}
			fmt.Fprintf(out, "  %-30s %8d %8.1f %12.1f %7.1f%%\n",
				st.Kind, st.Count, st.Weight, st.TotalWeight, share)
		}
	}
}

// printSummary renders batch totals and the per-language distribution.
func printSummary(out io.Writer, s analyzer.Summary) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, headerStyle.Render("QOC Summary"))
	fmt.Fprintln(out, headerStyle.Render(strings.Repeat("=", 11)))

	printKV(out, "Files", fmt.Sprintf("%d", s.TotalFiles))
	printKV(out, "Total QOC", fmt.Sprintf("%.1f", s.TotalQOC))
	printKV(out, "Total LOC", fmt.Sprintf("%d", s.TotalLOC))
	printKV(out, "Total SLOC", fmt.Sprintf("%d", s.TotalSLOC))
	printKV(out, "Total AST nodes", fmt.Sprintf("%d", s.TotalASTNodes))
	if s.TotalSLOC > 0 {
		printKV(out, "QOC/SLOC", fmt.Sprintf("%.2f", s.TotalQOC/float64(s.TotalSLOC)))
	}

	if len(s.Languages) > 1 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "  %s\n", headerStyle.Render("Languages"))
		fmt.Fprintf(out, "  %-12s %8s %12s %8s %8s %8s\n", "Language", "Files", "QOC", "LOC", "SLOC", "Share")

		langs := make([]parser.Language, 0, len(s.Languages))
		for lang := range s.Languages {
			langs = append(langs, lang)
		}
		sort.Slice(langs, func(i, j int) bool {
			a, b := s.Languages[langs[i]], s.Languages[langs[j]]
			if a.Files != b.Files {
				return a.Files > b.Files
			}
			return langs[i] < langs[j]
		})

		for _, lang := range langs {
			lt := s.Languages[lang]
			share := float64(lt.Files) / float64(s.TotalFiles) * 100
			fmt.Fprintf(out, "  %-12s %8d %12.1f %8d %8d %7.1f%%\n",
				lang, lt.Files, lt.QOC, lt.LOC, lt.SLOC, share)
		}
	}
}

func printKV(out io.Writer, label, value string) {
	fmt.Fprintf(out, "  %s%s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
}
