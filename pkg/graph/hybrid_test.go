package graph

import (
	"fmt"
	"testing"

	"github.com/orgviz/orgviz/pkg/common"
)

func personWith(id, org, status string, mentions common.FlexString) common.PersonNode {
	return common.PersonNode{
		ID:    id,
		Label: id,
		Type:  "Person",
		Attributes: common.PersonAttributes{
			Organization: org,
			Status:       status,
			Mentions:     mentions,
		},
	}
}

func nodeByID(t *testing.T, g *common.SigmaGraph, id string) common.SigmaNode {
	t.Helper()
	for _, n := range g.Nodes {
		if n.ID == id {
			return n
		}
	}
	t.Fatalf("node %q not found", id)
	return common.SigmaNode{}
}

func TestBuildHybridEndToEnd(t *testing.T) {
	// Two people, one affiliated, one not, one relationship edge
	// between them.
	src := &common.SourceGraph{
		Nodes: []common.PersonNode{
			personWith("person1", "City Hospital", "Hot", "2"),
			personWith("person2", "", "", ""),
		},
		Edges: []common.RelationshipEdge{
			{Source: "person1", Target: "person2", Label: "knows", Type: "professional"},
		},
	}

	result := BuildHybrid(src)
	g := result.Graph

	if len(g.Nodes) != 4 {
		t.Fatalf("nodes = %d, want 4 (2 orgs + 2 people)", len(g.Nodes))
	}
	if len(g.Edges) != 3 {
		t.Fatalf("edges = %d, want 3 (2 memberships + 1 relationship)", len(g.Edges))
	}

	// "City Hospital" < "Unaffiliated" in sort order.
	hospital := nodeByID(t, g, "org_0")
	if hospital.Label != "City Hospital" {
		t.Errorf("org_0 label = %q, want City Hospital", hospital.Label)
	}
	if hospital.Attributes["category"] != "Healthcare" {
		t.Errorf("org_0 category = %v, want Healthcare", hospital.Attributes["category"])
	}
	if hospital.Size != 18 { // 15 + 3*1
		t.Errorf("org_0 size = %v, want 18", hospital.Size)
	}
	if hospital.Color != "#2196F3" {
		t.Errorf("org_0 color = %q, want #2196F3", hospital.Color)
	}

	unaffiliated := nodeByID(t, g, "org_1")
	if unaffiliated.Label != UnaffiliatedName {
		t.Errorf("org_1 label = %q, want %q", unaffiliated.Label, UnaffiliatedName)
	}
	if unaffiliated.Attributes["category"] != "Unaffiliated" {
		t.Errorf("org_1 category = %v, want Unaffiliated", unaffiliated.Attributes["category"])
	}

	p1 := nodeByID(t, g, "person1")
	if p1.Size != 3.6 { // 3 + 0.3*2
		t.Errorf("person1 size = %v, want 3.6", p1.Size)
	}
	if p1.Color != "#ff5722" {
		t.Errorf("person1 color = %q, want Hot color", p1.Color)
	}

	p2 := nodeByID(t, g, "person2")
	if p2.Size != 3 {
		t.Errorf("person2 size = %v, want 3", p2.Size)
	}
	if p2.Color != "#999999" {
		t.Errorf("person2 color = %q, want gray", p2.Color)
	}
	if p2.Attributes["mentions"] != "0" {
		t.Errorf("person2 mentions = %v, want \"0\"", p2.Attributes["mentions"])
	}

	// Memberships come first, then relationships; ids follow emission order.
	m0 := g.Edges[0]
	if m0.ID != "e_0" || m0.Source != "person1" || m0.Target != "org_0" {
		t.Errorf("first membership edge = %+v", m0)
	}
	if m0.Label != "member of" || m0.Size != 1 || m0.Color != "#E0E0E0" {
		t.Errorf("membership edge visuals = %+v", m0)
	}

	m1 := g.Edges[1]
	if m1.ID != "e_1" || m1.Source != "person2" || m1.Target != "org_1" {
		t.Errorf("second membership edge = %+v", m1)
	}

	rel := g.Edges[2]
	if rel.ID != "e_2" || rel.Source != "person1" || rel.Target != "person2" {
		t.Errorf("relationship edge = %+v", rel)
	}
	if rel.Label != "knows" || rel.Size != 2 || rel.Color != "#CCCCCC" {
		t.Errorf("relationship edge visuals = %+v", rel)
	}
	if rel.Attributes["original_type"] != "professional" {
		t.Errorf("relationship original_type = %v", rel.Attributes["original_type"])
	}
}

// Total output nodes = organizations + persons; total output edges =
// persons + relationship edges with both endpoints known.
func TestBuildHybridCountLaws(t *testing.T) {
	src := &common.SourceGraph{
		Nodes: []common.PersonNode{
			personWith("p1", "City Hospital", "", ""),
			personWith("p2", "City Hospital", "", ""),
			personWith("p3", "Acme", "", ""),
			personWith("p4", "", "", ""),
		},
		Edges: []common.RelationshipEdge{
			{Source: "p1", Target: "p2"},
			{Source: "p2", Target: "p3"},
			{Source: "p1", Target: "ghost"}, // dropped
			{Source: "ghost", Target: "p4"}, // dropped
		},
	}

	result := BuildHybrid(src)

	orgs, people := 3, 4
	if got := len(result.Graph.Nodes); got != orgs+people {
		t.Errorf("nodes = %d, want %d", got, orgs+people)
	}
	kept := 2
	if got := len(result.Graph.Edges); got != people+kept {
		t.Errorf("edges = %d, want %d", got, people+kept)
	}
	if result.DroppedEdges != 2 {
		t.Errorf("dropped = %d, want 2", result.DroppedEdges)
	}
	if result.MembershipEdges != people || result.RelationshipEdges != kept {
		t.Errorf("memberships/relationships = %d/%d, want %d/%d",
			result.MembershipEdges, result.RelationshipEdges, people, kept)
	}
}

func TestBuildHybridMentionsParsing(t *testing.T) {
	tests := []struct {
		mentions common.FlexString
		wantSize float64
	}{
		{"", 3},
		{"0", 3},
		{"10", 6},
		{"not a number", 3},
		{" 4 ", 4.2},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("mentions=%q", string(tt.mentions)), func(t *testing.T) {
			src := &common.SourceGraph{
				Nodes: []common.PersonNode{personWith("p1", "Acme", "", tt.mentions)},
			}
			result := BuildHybrid(src)
			node := nodeByID(t, result.Graph, "p1")
			if node.Size != tt.wantSize {
				t.Errorf("size = %v, want %v", node.Size, tt.wantSize)
			}
		})
	}
}

func TestBuildHybridEmptyDocument(t *testing.T) {
	result := BuildHybrid(&common.SourceGraph{})
	if len(result.Graph.Nodes) != 0 || len(result.Graph.Edges) != 0 {
		t.Errorf("empty input produced %d nodes, %d edges",
			len(result.Graph.Nodes), len(result.Graph.Edges))
	}
}

func TestBuildHybridCategoryCounts(t *testing.T) {
	src := &common.SourceGraph{
		Nodes: []common.PersonNode{
			personWith("p1", "City Hospital", "", ""),
			personWith("p2", "Mercy Clinic", "", ""),
			personWith("p3", "Acme", "", ""),
			personWith("p4", "", "", ""),
		},
	}

	result := BuildHybrid(src)

	if result.Categories["Healthcare"] != 2 {
		t.Errorf("Healthcare = %d, want 2", result.Categories["Healthcare"])
	}
	if result.Categories["Private"] != 1 {
		t.Errorf("Private = %d, want 1", result.Categories["Private"])
	}
	if result.Categories["Unaffiliated"] != 1 {
		t.Errorf("Unaffiliated = %d, want 1", result.Categories["Unaffiliated"])
	}
}
