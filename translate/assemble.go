package translate

import (
	"fmt"

	"github.com/c360studio/casebridge/caseschema"
	"github.com/c360studio/casebridge/vocabulary/ceasn"
	"github.com/c360studio/casebridge/vocabulary/scd"
)

// Graph is the assembled JSON-LD output: a fixed per-format namespace
// map and the ordered node list.
type Graph struct {
	Context map[string]string `json:"@context"`
	Nodes   []*Node           `json:"@graph"`
}

// Stats summarizes one assembly for callers that want to log it.
type Stats struct {
	Items        int
	Associations int

	// DroppedRelations counts embedded-format deltas whose origin did
	// not resolve to a translated competency. The embedded format
	// cannot represent those relationships, so they are dropped from
	// the output without failing the call.
	DroppedRelations int
}

// DuplicateIDError reports two output nodes sharing an @id, which
// would make the graph ambiguous.
type DuplicateIDError struct {
	IRI string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate node @id %q in output graph", e.IRI)
}

// Assemble validates the document, translates every record in input
// order, and builds the @context/@graph envelope for the target
// format. Assembly is all-or-nothing: any error aborts the whole call
// with no partial output.
func Assemble(doc *caseschema.Document, format Format) (*Graph, Stats, error) {
	var stats Stats

	if err := doc.Validate(); err != nil {
		return nil, stats, err
	}

	// The framework's own identifier is never used as its own base;
	// only an explicit uri establishes a base IRI for the document.
	baseIRI := doc.CFDocument.URI

	framework := translateFramework(doc.CFDocument, format)

	items := make([]*Node, 0, len(doc.CFItems))
	for _, item := range doc.CFItems {
		items = append(items, translateItem(item, baseIRI, format))
	}
	stats.Items = len(items)
	stats.Associations = len(doc.CFAssociations)

	var graph []*Node
	switch format {
	case FormatCEASN:
		graph = assembleCEASN(doc, framework, items, baseIRI, &stats)
	default:
		graph = assembleSCD(doc, framework, items, baseIRI)
	}

	if err := checkUniqueIDs(graph); err != nil {
		return nil, stats, err
	}

	context := scd.Context()
	if format == FormatCEASN {
		context = ceasn.Context()
	}

	return &Graph{Context: context, Nodes: graph}, stats, nil
}

// assembleSCD concatenates framework, items, and association nodes in
// input order. No merging.
func assembleSCD(doc *caseschema.Document, framework *Node, items []*Node, baseIRI string) []*Node {
	graph := make([]*Node, 0, 1+len(items)+len(doc.CFAssociations))
	graph = append(graph, framework)
	graph = append(graph, items...)
	for _, assoc := range doc.CFAssociations {
		graph = append(graph, translateAssociationSCD(assoc, baseIRI))
	}
	return graph
}

// assembleCEASN merges association deltas into the matching
// competency nodes. A delta whose origin matches no competency is
// dropped: the framework node, for example, is not a competency and
// cannot carry embedded relations.
func assembleCEASN(doc *caseschema.Document, framework *Node, items []*Node, baseIRI string, stats *Stats) []*Node {
	byID := make(map[string]*Node, len(items))
	for _, item := range items {
		byID[item.ID()] = item
	}

	for _, assoc := range doc.CFAssociations {
		for _, delta := range translateAssociationCEASN(assoc, baseIRI) {
			node, ok := byID[delta.Origin]
			if !ok {
				stats.DroppedRelations++
				continue
			}
			node.Merge(delta.Property, delta.Value)
		}
	}

	graph := make([]*Node, 0, 1+len(items))
	graph = append(graph, framework)
	graph = append(graph, items...)
	return graph
}

func checkUniqueIDs(graph []*Node) error {
	seen := make(map[string]struct{}, len(graph))
	for _, node := range graph {
		if _, dup := seen[node.ID()]; dup {
			return &DuplicateIDError{IRI: node.ID()}
		}
		seen[node.ID()] = struct{}{}
	}
	return nil
}
