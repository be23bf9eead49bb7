package translate

import (
	"github.com/c360studio/casebridge/caseschema"
	"github.com/c360studio/casebridge/vocabulary/ceasn"
	"github.com/c360studio/casebridge/vocabulary/scd"
)

// translateItem maps one CFItem record to a competency node using the
// shared base IRI.
func translateItem(item caseschema.CFItem, baseIRI string, format Format) *Node {
	iri := ResolveIRI(item.Identifier, item.URI, baseIRI)

	if format == FormatCEASN {
		return translateItemCEASN(item, iri)
	}
	return translateItemSCD(item, iri)
}

func translateItemSCD(item caseschema.CFItem, iri string) *Node {
	node := NewNode(iri, scd.ClassCompetency)

	if item.FullStatement != "" {
		node.Set(scd.PropStatement, item.FullStatement)
	}
	if item.AbbreviatedStatement != "" {
		node.Set(scd.PropAbbreviatedStatement, item.AbbreviatedStatement)
	}
	if len(item.AlternativeLabel) > 0 {
		node.Set(scd.PropAlternativeLabel, item.AlternativeLabel)
	}
	if len(item.ConceptKeywords) > 0 {
		node.Set(scd.PropConceptKeyword, item.ConceptKeywords)
	}
	if item.HierarchyCode != "" {
		node.Set(scd.PropHierarchyCode, item.HierarchyCode)
	}
	if item.HumanCodingScheme != "" {
		node.Set(scd.PropHumanCodingScheme, item.HumanCodingScheme)
	}
	if item.CFItemType != "" {
		node.Set(scd.PropCompetencyCategory, item.CFItemType)
	}
	if item.Language != "" {
		node.Set(scd.PropLanguage, item.Language)
	}
	if len(item.EducationLevel) > 0 {
		node.Set(scd.PropEducationLevel, item.EducationLevel)
	}

	return node
}

func translateItemCEASN(item caseschema.CFItem, iri string) *Node {
	node := NewNode(iri, ceasn.ClassCompetency)

	node.Set(ceasn.PropIdentifier, iri)

	if item.FullStatement != "" {
		node.Set(ceasn.PropCompetencyText, item.FullStatement)
	}
	if item.AbbreviatedStatement != "" {
		node.Set(ceasn.PropCompetencyLabel, item.AbbreviatedStatement)
	}
	if len(item.AlternativeLabel) > 0 {
		node.Set(ceasn.PropAltLabel, item.AlternativeLabel)
	}
	if len(item.ConceptKeywords) > 0 {
		node.Set(ceasn.PropConceptKeyword, item.ConceptKeywords)
	}
	if item.HierarchyCode != "" {
		node.Set(ceasn.PropCodedNotation, item.HierarchyCode)
	}
	// humanCodingScheme shares codedNotation and wins when both are
	// present.
	if item.HumanCodingScheme != "" {
		node.Set(ceasn.PropCodedNotation, item.HumanCodingScheme)
	}
	if item.CFItemType != "" {
		node.Set(ceasn.PropCompetencyCategory, item.CFItemType)
	}
	if item.Language != "" {
		node.Set(ceasn.PropInLanguage, item.Language)
	}
	if len(item.EducationLevel) > 0 {
		node.Set(ceasn.PropEducationLevelType, item.EducationLevel)
	}

	return node
}
