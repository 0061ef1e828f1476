package graph

import (
	"fmt"
	"sort"

	"github.com/orgviz/orgviz/pkg/classify"
	"github.com/orgviz/orgviz/pkg/common"
)

// pairSampleCap bounds the contributing person pairs retained per
// aggregated edge: the first ten in input order, deterministic truncation
// rather than random sampling.
const pairSampleCap = 10

type orgConnection struct {
	count int
	pairs []common.PersonPair
}

// orgConnections accumulates directed (source org, target org) aggregates.
// Both levels keep first-seen order so edge emission matches the order the
// underlying edges were scanned in.
type orgConnections struct {
	bySource    map[string]map[string]*orgConnection
	sourceOrder []string
	targetOrder map[string][]string
}

func newOrgConnections() *orgConnections {
	return &orgConnections{
		bySource:    make(map[string]map[string]*orgConnection),
		targetOrder: make(map[string][]string),
	}
}

func (c *orgConnections) add(sourceOrg, targetOrg string, pair common.PersonPair) {
	targets, ok := c.bySource[sourceOrg]
	if !ok {
		targets = make(map[string]*orgConnection)
		c.bySource[sourceOrg] = targets
		c.sourceOrder = append(c.sourceOrder, sourceOrg)
	}

	conn, ok := targets[targetOrg]
	if !ok {
		conn = &orgConnection{}
		targets[targetOrg] = conn
		c.targetOrder[sourceOrg] = append(c.targetOrder[sourceOrg], targetOrg)
	}

	conn.count++
	if len(conn.pairs) < pairSampleCap {
		conn.pairs = append(conn.pairs, pair)
	}
}

// BuildOrgs projects the source document into the org-centric view:
// organization nodes carrying full member rollups, and directed aggregate
// edges synthesized from person-to-person edges that cross organizations.
// Intra-org edges and edges with unknown endpoints contribute nothing.
func BuildOrgs(src *common.SourceGraph) *Result {
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

		people := make([]common.PersonSummary, 0, len(members))
		statuses := newStringSet()
		priorities := newStringSet()
		personTypes := newStringSet()

		for _, member := range members {
			attrs := member.Attributes
			nodeType := member.Type
			if nodeType == "" {
				nodeType = personNodeType
			}

			people = append(people, common.PersonSummary{
				ID:               member.ID,
				Name:             member.Label,
				Title:            attrs.Title,
				Status:           attrs.Status,
				Priority:         attrs.Priority,
				Sentiment:        attrs.Sentiment,
				Stance:           attrs.Stance,
				RelationshipType: attrs.RelationshipType,
				Steward:          attrs.Steward,
				Mentions:         attrs.Mentions.OrDefault("0"),
				NodeType:         nodeType,
			})

			if attrs.Status != "" {
				statuses.add(attrs.Status)
			}
			if attrs.Priority != "" {
				priorities.add(attrs.Priority)
			}
			personTypes.add(nodeType)
		}

		out.Nodes = append(out.Nodes, common.SigmaNode{
			ID:    groups.IDs[name],
			Label: name,
			Type:  orgNodeType,
			Size:  5 + 2*float64(len(members)),
			Color: colorForCategory(category),
			Attributes: map[string]any{
				"category":     string(category),
				"people_count": len(members),
				"people":       people,
				"statuses":     statuses.sorted(),
				"priorities":   priorities.sorted(),
				"person_types": personTypes.sorted(),
			},
		})
	}

	connections := newOrgConnections()
	for _, edge := range src.Edges {
		sourceOrg, sourceKnown := groups.PersonOrg[edge.Source]
		targetOrg, targetKnown := groups.PersonOrg[edge.Target]
		if !sourceKnown || !targetKnown {
			result.DroppedEdges++
			continue
		}
		if sourceOrg == targetOrg {
			continue
		}
		connections.add(sourceOrg, targetOrg, common.PersonPair{
			Source: edge.Source,
			Target: edge.Target,
		})
	}

	ids := &edgeIDs{}
	for _, sourceOrg := range connections.sourceOrder {
		for _, targetOrg := range connections.targetOrder[sourceOrg] {
			conn := connections.bySource[sourceOrg][targetOrg]

			out.Edges = append(out.Edges, common.SigmaEdge{
				ID:     ids.take(),
				Source: groups.IDs[sourceOrg],
				Target: groups.IDs[targetOrg],
				Size:   min(1+0.5*float64(conn.count), 10),
				Color:  relationEdgeColor,
				Label:  connectionLabel(conn.count),
				Attributes: map[string]any{
					"connection_count": conn.count,
					"people_pairs":     conn.pairs,
				},
			})
			result.AggregateEdges++
		}
	}

	return result
}

func connectionLabel(count int) string {
	return fmt.Sprintf("%d connection(s)", count)
}

type stringSet struct {
	seen map[string]struct{}
}

func newStringSet() *stringSet {
	return &stringSet{seen: make(map[string]struct{})}
}

func (s *stringSet) add(value string) {
	s.seen[value] = struct{}{}
}

// sorted returns the members as a sorted slice. Set order is not part of
// the contract, sorting just keeps output byte-stable across runs.
func (s *stringSet) sorted() []string {
	values := make([]string, 0, len(s.seen))
	for value := range s.seen {
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}
