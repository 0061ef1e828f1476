// Package graph derives organization-level views from a person-centric
// relationship graph. It groups people by organization and builds the two
// output variants: the hybrid graph (organization hubs plus person nodes)
// and the org-centric graph (organizations plus aggregated inter-org edges).
package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/orgviz/orgviz/pkg/common"
)

// UnaffiliatedName is the sentinel organization for people whose
// organization field is empty or whitespace-only.
const UnaffiliatedName = "Unaffiliated"

// NormalizeOrgName trims the free-text organization name and substitutes
// the Unaffiliated sentinel when nothing remains. Names are otherwise kept
// verbatim: grouping is case-sensitive, so "ACME Inc" and "acme inc" are
// distinct organizations.
func NormalizeOrgName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return UnaffiliatedName
	}
	return trimmed
}

// Grouping indexes a source document by organization. Members preserves
// input order within each organization; IDs assigns org_<k> by the
// lexicographic rank of the normalized name, so ids do not depend on the
// order people appear in the document.
type Grouping struct {
	Members   map[string][]common.PersonNode
	PersonOrg map[string]string
	IDs       map[string]string

	names []string
}

// GroupByOrganization builds the organization index for a node list.
func GroupByOrganization(nodes []common.PersonNode) *Grouping {
	g := &Grouping{
		Members:   make(map[string][]common.PersonNode),
		PersonOrg: make(map[string]string, len(nodes)),
	}

	for _, node := range nodes {
		org := NormalizeOrgName(node.Attributes.Organization)
		g.PersonOrg[node.ID] = org
		g.Members[org] = append(g.Members[org], node)
	}

	g.names = make([]string, 0, len(g.Members))
	for name := range g.Members {
		g.names = append(g.names, name)
	}
	sort.Strings(g.names)

	g.IDs = make(map[string]string, len(g.names))
	for i, name := range g.names {
		g.IDs[name] = fmt.Sprintf("org_%d", i)
	}

	return g
}

// Names returns the distinct normalized organization names in the order
// their ids were assigned.
func (g *Grouping) Names() []string {
	return g.names
}

// OrgID resolves a person id to the id of their organization node.
func (g *Grouping) OrgID(personID string) (string, bool) {
	org, ok := g.PersonOrg[personID]
	if !ok {
		return "", false
	}
	id, ok := g.IDs[org]
	return id, ok
}
