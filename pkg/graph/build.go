package graph

import (
	"fmt"

	"github.com/orgviz/orgviz/pkg/classify"
	"github.com/orgviz/orgviz/pkg/common"
)

const (
	orgNodeType    = "Organization"
	personNodeType = "Person"

	fallbackColor       = "#999999"
	membershipEdgeColor = "#E0E0E0"
	relationEdgeColor   = "#CCCCCC"
)

var categoryColors = map[classify.Category]string{
	classify.Healthcare:   "#2196F3",
	classify.Government:   "#9C27B0",
	classify.Nonprofit:    "#FF9800",
	classify.Education:    "#4CAF50",
	classify.Private:      "#F44336",
	classify.Unaffiliated: "#999999",
}

var statusColors = map[string]string{
	"Hot":  "#ff5722",
	"Warm": "#ff9800",
	"Cold": "#64b5f6",
	"":     "#999999",
}

func colorForCategory(cat classify.Category) string {
	if color, ok := categoryColors[cat]; ok {
		return color
	}
	return fallbackColor
}

func colorForStatus(status string) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return fallbackColor
}

// Result carries the built document together with the counts the run
// summary reports. Counts that do not apply to a variant stay zero.
type Result struct {
	Graph *common.SigmaGraph

	OrgCount    int
	PersonCount int
	Categories  map[classify.Category]int

	MembershipEdges   int
	RelationshipEdges int
	AggregateEdges    int
	DroppedEdges      int
}

// edgeIDs hands out e_0, e_1, ... in emission order for one builder run.
type edgeIDs struct {
	next int
}

func (e *edgeIDs) take() string {
	id := fmt.Sprintf("e_%d", e.next)
	e.next++
	return id
}
