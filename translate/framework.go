package translate

import (
	"github.com/c360studio/casebridge/caseschema"
	"github.com/c360studio/casebridge/vocabulary/ceasn"
	"github.com/c360studio/casebridge/vocabulary/scd"
)

// translateFramework maps the CFDocument record to the single
// framework node. Absent source fields are omitted entirely, never
// emitted as nulls or empty strings.
func translateFramework(doc caseschema.CFDocument, format Format) *Node {
	iri := ResolveIRI(doc.Identifier, doc.URI, "")

	if format == FormatCEASN {
		return translateFrameworkCEASN(doc, iri)
	}
	return translateFrameworkSCD(doc, iri)
}

func translateFrameworkSCD(doc caseschema.CFDocument, iri string) *Node {
	node := NewNode(iri, scd.ClassFramework)

	if doc.Title != "" {
		node.Set(scd.PropName, doc.Title)
	}
	if doc.Description != "" {
		node.Set(scd.PropDescription, doc.Description)
	}
	if doc.Language != "" {
		node.Set(scd.PropLanguage, doc.Language)
	}
	if doc.Version != "" {
		node.Set(scd.PropVersion, doc.Version)
	}
	if doc.LastChangeDateTime != "" {
		node.Set(scd.PropDateModified, doc.LastChangeDateTime)
	}
	if doc.Publisher != nil {
		node.Set(scd.PropPublisher, doc.Publisher)
	}
	if doc.OfficialSourceURL != "" {
		node.Set(scd.PropURL, doc.OfficialSourceURL)
	}

	return node
}

func translateFrameworkCEASN(doc caseschema.CFDocument, iri string) *Node {
	node := NewNode(iri, ceasn.ClassFramework)

	// CTDL-ASN carries the resolved IRI as an explicit identifier
	// property in addition to @id.
	node.Set(ceasn.PropIdentifier, iri)

	if doc.Title != "" {
		node.Set(ceasn.PropName, doc.Title)
	}
	if doc.Description != "" {
		node.Set(ceasn.PropDescription, doc.Description)
	}
	if doc.Language != "" {
		node.Set(ceasn.PropInLanguage, doc.Language)
	}
	if doc.LastChangeDateTime != "" {
		node.Set(ceasn.PropDateModified, doc.LastChangeDateTime)
	}
	if doc.Publisher != nil {
		node.Set(ceasn.PropPublisher, doc.Publisher)
	}
	if doc.OfficialSourceURL != "" {
		node.Set(ceasn.PropSource, doc.OfficialSourceURL)
	}
	if doc.Rights != "" {
		node.Set(ceasn.PropRights, doc.Rights)
	}
	if doc.License != "" {
		node.Set(ceasn.PropLicense, doc.License)
	}
	// version and adoptionStatus have no CTDL-ASN equivalent and are
	// dropped.

	return node
}
