package summary

import (
	"strings"
	"testing"

	"github.com/orgviz/orgviz/pkg/classify"
	"github.com/orgviz/orgviz/pkg/common"
	"github.com/orgviz/orgviz/pkg/graph"
)

func sampleSource() *common.SourceGraph {
	return &common.SourceGraph{
		Nodes: []common.PersonNode{
			{ID: "p1", Label: "Alice", Attributes: common.PersonAttributes{Organization: "City Hospital"}},
			{ID: "p2", Label: "Bob", Attributes: common.PersonAttributes{Organization: "Mercy Clinic"}},
			{ID: "p3", Label: "Carol"},
		},
		Edges: []common.RelationshipEdge{
			{Source: "p1", Target: "p2"},
			{Source: "p1", Target: "ghost"},
		},
	}
}

func TestRenderHybrid(t *testing.T) {
	var buf strings.Builder
	Render(&buf, Run{
		Variant: VariantHybrid,
		Output:  "out/hybrid.json",
		Result:  graph.BuildHybrid(sampleSource()),
	})
	out := buf.String()

	for _, want := range []string{
		"hybrid graph",
		"3 organization nodes",
		"3 person nodes",
		"Total nodes: 6",
		"4 edges (3 membership + 1 relationships)",
		"1 edges dropped",
		"Saved to: out/hybrid.json",
		"Healthcare: 2",
		"Unaffiliated: 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestRenderOrgs(t *testing.T) {
	var buf strings.Builder
	Render(&buf, Run{
		Variant: VariantOrgs,
		Output:  "out/orgs.json",
		Result:  graph.BuildOrgs(sampleSource()),
	})
	out := buf.String()

	for _, want := range []string{
		"organization-centric graph",
		"3 organization nodes",
		"1 inter-org connections",
		"Saved to: out/orgs.json",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

// Ties in category counts break by name so output is deterministic.
func TestSortedCategories(t *testing.T) {
	counts := sortedCategories(map[classify.Category]int{
		"Private":    1,
		"Healthcare": 2,
		"Education":  1,
	})

	if counts[0].category != "Healthcare" {
		t.Errorf("first category = %q, want Healthcare", counts[0].category)
	}
	if counts[1].category != "Education" || counts[2].category != "Private" {
		t.Errorf("tie order = %q, %q; want Education, Private", counts[1].category, counts[2].category)
	}
}
