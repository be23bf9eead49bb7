package translate

import (
	"fmt"

	"github.com/c360studio/casebridge/caseschema"
	"github.com/c360studio/casebridge/vocabulary/ceasn"
	"github.com/c360studio/casebridge/vocabulary/scd"
)

// Delta is one property insertion produced by an association in the
// embedded-property format: set Property to Value on the node whose
// @id is Origin.
type Delta struct {
	Origin   string
	Property string
	Value    any
}

// resolveRef resolves a NodeRef with the same precedence as any other
// node IRI. The target is not required to exist in the document.
func resolveRef(ref caseschema.NodeRef, baseIRI string) string {
	return ResolveIRI(ref.Identifier, ref.URI, baseIRI)
}

// translateAssociationSCD maps one CFAssociation to a standalone
// ResourceAssociation node. Every association produces exactly one
// node; unmapped types become the relation type verbatim.
func translateAssociationSCD(assoc caseschema.CFAssociation, baseIRI string) *Node {
	iri := ResolveIRI(assoc.Identifier, assoc.URI, baseIRI)

	node := NewNode(iri, scd.ClassAssociation)
	node.Set(scd.PropRelationType, scd.RelationType(assoc.AssociationType))
	node.Set(scd.PropSourceNode, Ref{ID: resolveRef(assoc.OriginNodeURI, baseIRI)})
	node.Set(scd.PropTargetNode, Ref{ID: resolveRef(assoc.DestinationNodeURI, baseIRI)})

	if assoc.SequenceNumber != nil {
		node.Set(scd.PropSequenceNumber, *assoc.SequenceNumber)
	}
	if assoc.LastChangeDateTime != "" {
		node.Set(scd.PropDateModified, assoc.LastChangeDateTime)
	}

	return node
}

// translateAssociationCEASN maps one CFAssociation to property deltas
// against its origin competency. Types with no property equivalent
// fall back to a ceasn:comment naming the original type and
// destination.
func translateAssociationCEASN(assoc caseschema.CFAssociation, baseIRI string) []Delta {
	origin := resolveRef(assoc.OriginNodeURI, baseIRI)
	dest := resolveRef(assoc.DestinationNodeURI, baseIRI)

	if property, ok := ceasn.RelationProperty(assoc.AssociationType); ok {
		return []Delta{{Origin: origin, Property: property, Value: Ref{ID: dest}}}
	}

	comment := fmt.Sprintf("Association %s to %s", assoc.AssociationType, dest)
	return []Delta{{Origin: origin, Property: ceasn.PropComment, Value: comment}}
}
