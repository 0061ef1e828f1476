// Package loader reads and decodes source graph documents. Retrieval is
// abstracted behind DocumentLoader so documents can come from the local
// filesystem, S3, or anything else that can hand back bytes.
package loader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kaptinlin/jsonrepair"

	"github.com/orgviz/orgviz/pkg/common"
)

// ErrMalformed indicates the document could not be decoded into a source
// graph even after repair. Malformed input is fatal: the caller aborts the
// run without writing anything.
var ErrMalformed = errors.New("malformed graph document")

// DocumentLoader retrieves the raw bytes of a graph document.
// Implementations may load from disk, object storage, or other sources.
type DocumentLoader interface {
	GetDocument(ctx context.Context, ref string) ([]byte, error)
}

// Decode parses a source graph document. Strict JSON is tried first;
// syntactically sloppy documents (trailing commas, single quotes) go
// through a repair pass before giving up. Missing per-node and per-edge
// fields decode to their defaults and are never errors, but a document
// without nodes or edges keys is malformed.
func Decode(data []byte) (*common.SourceGraph, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrMalformed)
	}

	var doc common.SourceGraph
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		repaired, repairErr := jsonrepair.JSONRepair(string(trimmed))
		if repairErr != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		doc = common.SourceGraph{}
		if err := json.Unmarshal([]byte(repaired), &doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
	}

	if doc.Nodes == nil && doc.Edges == nil {
		return nil, fmt.Errorf("%w: missing nodes and edges", ErrMalformed)
	}
	if doc.Nodes == nil {
		doc.Nodes = []common.PersonNode{}
	}
	if doc.Edges == nil {
		doc.Edges = []common.RelationshipEdge{}
	}

	return &doc, nil
}

// Load retrieves a document through the given loader and decodes it.
func Load(ctx context.Context, l DocumentLoader, ref string) (*common.SourceGraph, error) {
	data, err := l.GetDocument(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph document %q: %w", ref, err)
	}
	return Decode(data)
}
