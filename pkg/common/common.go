package common

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// SourceGraph is the person-centric relationship graph as it arrives from
// upstream tooling. Nodes are people, edges are person-to-person
// relationships. The document is read-only input: builders re-project it
// into SigmaGraph documents and never mutate it.
type SourceGraph struct {
	Nodes []PersonNode       `json:"nodes"`
	Edges []RelationshipEdge `json:"edges"`
}

// PersonNode is a single person record from the source document.
type PersonNode struct {
	ID         string           `json:"id"`
	Label      string           `json:"label"`
	Type       string           `json:"type"`
	Attributes PersonAttributes `json:"attributes"`
}

// PersonAttributes is the attribute bag carried by every person node.
// All fields are optional in the source document and default to their
// zero value when absent.
type PersonAttributes struct {
	Organization     string     `json:"organization"`
	Title            string     `json:"title"`
	Status           string     `json:"status"`
	Priority         string     `json:"priority"`
	Sentiment        string     `json:"sentiment"`
	Stance           string     `json:"stance"`
	RelationshipType string     `json:"relationship_type"`
	Steward          string     `json:"steward"`
	Mentions         FlexString `json:"mentions"`
}

// RelationshipEdge is a directed person-to-person edge from the source
// document. Label and Type are optional.
type RelationshipEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Label  string `json:"label"`
	Type   string `json:"type"`
}

// FlexString is a string that also accepts a bare JSON number during
// unmarshaling. Upstream exports are inconsistent about whether mention
// counts are written as "12" or 12, so both decode to the textual form.
// Anything else (null, objects, arrays) decodes to the empty string
// rather than failing the document.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*f = ""
			return nil
		}
		*f = FlexString(s)
		return nil
	}
	raw := string(data)
	if _, err := strconv.ParseFloat(raw, 64); err == nil {
		*f = FlexString(raw)
		return nil
	}
	*f = ""
	return nil
}

// OrDefault returns the value, or def when the value is empty.
func (f FlexString) OrDefault(def string) string {
	if strings.TrimSpace(string(f)) == "" {
		return def
	}
	return string(f)
}

// Int parses the value as a base-10 integer, returning 0 when the value
// is missing or not a plain integer.
func (f FlexString) Int() int {
	n, err := strconv.Atoi(strings.TrimSpace(string(f)))
	if err != nil {
		return 0
	}
	return n
}

// SigmaGraph is the output document consumed by the visualization layer.
// Node coordinates are always emitted as 0; layout is applied downstream.
type SigmaGraph struct {
	Nodes []SigmaNode `json:"nodes"`
	Edges []SigmaEdge `json:"edges"`
}

// SigmaNode is a renderable node. Attributes carry variant-specific
// payloads (person detail on hybrid person nodes, member rollups on
// organization nodes).
type SigmaNode struct {
	ID         string         `json:"id"`
	Label      string         `json:"label"`
	Type       string         `json:"type"`
	Size       float64        `json:"size"`
	Color      string         `json:"color"`
	X          float64        `json:"x"`
	Y          float64        `json:"y"`
	Attributes map[string]any `json:"attributes"`
}

// SigmaEdge is a renderable edge. IDs are assigned sequentially as
// e_0, e_1, ... in emission order within a single builder run.
type SigmaEdge struct {
	ID         string         `json:"id"`
	Source     string         `json:"source"`
	Target     string         `json:"target"`
	Size       float64        `json:"size"`
	Color      string         `json:"color"`
	Label      string         `json:"label"`
	Attributes map[string]any `json:"attributes"`
}

// PersonSummary is the per-member record aggregated onto organization
// nodes in the org-centric view. Field names match the document contract.
type PersonSummary struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Title            string `json:"title"`
	Status           string `json:"status"`
	Priority         string `json:"priority"`
	Sentiment        string `json:"sentiment"`
	Stance           string `json:"stance"`
	RelationshipType string `json:"relationship_type"`
	Steward          string `json:"steward"`
	Mentions         string `json:"mentions"`
	NodeType         string `json:"nodeType"`
}

// PersonPair records one person-to-person edge that contributed to an
// aggregated organization edge.
type PersonPair struct {
	Source string `json:"source"`
	Target string `json:"target"`
}
