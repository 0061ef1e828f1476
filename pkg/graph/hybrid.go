package graph

import (
	"github.com/orgviz/orgviz/pkg/classify"
	"github.com/orgviz/orgviz/pkg/common"
)

// BuildHybrid projects the source document into the hybrid view:
// organization hub nodes sized by member count, every original person node
// sized by mentions and colored by status, one membership edge per person,
// and the original person-to-person edges re-emitted. Relationship edges
// whose endpoints are unknown person ids are dropped, never an error.
func BuildHybrid(src *common.SourceGraph) *Result {
	groups := GroupByOrganization(src.Nodes)

	out := &common.SigmaGraph{
		Nodes: []common.SigmaNode{},
		Edges: []common.SigmaEdge{},
	}
	result := &Result{
		Graph:       out,
		OrgCount:    len(groups.Names()),
		PersonCount: len(src.Nodes),
		Categories:  make(map[classify.Category]int),
	}

	for _, name := range groups.Names() {
		members := groups.Members[name]
		category := classify.Classify(name)
		result.Categories[category]++

		out.Nodes = append(out.Nodes, common.SigmaNode{
			ID:    groups.IDs[name],
			Label: name,
			Type:  orgNodeType,
			Size:  15 + 3*float64(len(members)),
			Color: colorForCategory(category),
			Attributes: map[string]any{
				"nodeType":       orgNodeType,
				"category":       string(category),
				"people_count":   len(members),
				"isOrganization": true,
			},
		})
	}

	personIDs := make(map[string]struct{}, len(src.Nodes))
	for _, node := range src.Nodes {
		personIDs[node.ID] = struct{}{}
		attrs := node.Attributes

		out.Nodes = append(out.Nodes, common.SigmaNode{
			ID:    node.ID,
			Label: node.Label,
			Type:  personNodeType,
			Size:  3 + 0.3*float64(attrs.Mentions.Int()),
			Color: colorForStatus(attrs.Status),
			Attributes: map[string]any{
				"nodeType":          personNodeType,
				"organization":      attrs.Organization,
				"title":             attrs.Title,
				"status":            attrs.Status,
				"priority":          attrs.Priority,
				"sentiment":         attrs.Sentiment,
				"stance":            attrs.Stance,
				"relationship_type": attrs.RelationshipType,
				"steward":           attrs.Steward,
				"mentions":          attrs.Mentions.OrDefault("0"),
				"isPerson":          true,
			},
		})
	}

	ids := &edgeIDs{}

	// Membership always resolves: unaffiliated people belong to the
	// sentinel organization.
	for _, node := range src.Nodes {
		orgID, ok := groups.OrgID(node.ID)
		if !ok {
			continue
		}
		out.Edges = append(out.Edges, common.SigmaEdge{
			ID:     ids.take(),
			Source: node.ID,
			Target: orgID,
			Size:   1,
			Color:  membershipEdgeColor,
			Label:  "member of",
			Attributes: map[string]any{
				"edgeType": "membership",
			},
		})
		result.MembershipEdges++
	}

	for _, edge := range src.Edges {
		if _, ok := personIDs[edge.Source]; !ok {
			result.DroppedEdges++
			continue
		}
		if _, ok := personIDs[edge.Target]; !ok {
			result.DroppedEdges++
			continue
		}
		out.Edges = append(out.Edges, common.SigmaEdge{
			ID:     ids.take(),
			Source: edge.Source,
			Target: edge.Target,
			Size:   2,
			Color:  relationEdgeColor,
			Label:  edge.Label,
			Attributes: map[string]any{
				"edgeType":      "relationship",
				"original_type": edge.Type,
			},
		})
		result.RelationshipEdges++
	}

	return result
}
