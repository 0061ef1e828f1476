// Package summary renders the human-readable run summary printed to
// stdout after a transformation. The summary is informational only; the
// persisted output document is the contract.
package summary

import (
	"fmt"
	"io"
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/orgviz/orgviz/pkg/classify"
	"github.com/orgviz/orgviz/pkg/graph"
)

// Variant names the transformation a summary describes.
type Variant string

const (
	VariantHybrid Variant = "hybrid"
	VariantOrgs   Variant = "organization-centric"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	itemStyle  = lipgloss.NewStyle().PaddingLeft(3)
)

// Run describes one completed transformation.
type Run struct {
	Variant Variant
	Output  string
	Result  *graph.Result
}

// Render writes the run summary.
func Render(w io.Writer, run Run) {
	r := run.Result

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Created %s graph:", run.Variant)))

	switch run.Variant {
	case VariantHybrid:
		item(w, "%d organization nodes (large)", r.OrgCount)
		item(w, "%d person nodes (small)", r.PersonCount)
		item(w, "Total nodes: %d", len(r.Graph.Nodes))
		item(w, "%d edges (%d membership + %d relationships)",
			len(r.Graph.Edges), r.MembershipEdges, r.RelationshipEdges)
	default:
		item(w, "%d organization nodes", r.OrgCount)
		item(w, "%d inter-org connections", r.AggregateEdges)
	}

	if r.DroppedEdges > 0 {
		item(w, "%d edges dropped (unknown endpoints)", r.DroppedEdges)
	}
	item(w, "Saved to: %s", run.Output)

	fmt.Fprintln(w)
	fmt.Fprintln(w, titleStyle.Render("Organizations by category:"))
	for _, c := range sortedCategories(r.Categories) {
		item(w, "%s: %d", c.category, c.count)
	}
}

func item(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, itemStyle.Render("- "+fmt.Sprintf(format, args...)))
}

type categoryCount struct {
	category classify.Category
	count    int
}

// sortedCategories orders by count descending, ties by name, so the
// summary is stable across runs.
func sortedCategories(categories map[classify.Category]int) []categoryCount {
	counts := make([]categoryCount, 0, len(categories))
	for category, count := range categories {
		counts = append(counts, categoryCount{category, count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].count != counts[j].count {
			return counts[i].count > counts[j].count
		}
		return counts[i].category < counts[j].category
	})
	return counts
}
