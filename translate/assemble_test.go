package translate

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/casebridge/caseschema"
)

func frameworkOnly() *caseschema.Document {
	return &caseschema.Document{
		CFDocument: caseschema.CFDocument{Identifier: "fw-1", Title: "T"},
	}
}

func linkedItems() *caseschema.Document {
	return &caseschema.Document{
		CFDocument: caseschema.CFDocument{
			Identifier: "fw-1",
			URI:        "http://ex.org/fw",
			Title:      "Linked Framework",
		},
		CFItems: []caseschema.CFItem{
			{Identifier: "item-1", FullStatement: "First"},
			{Identifier: "item-2", FullStatement: "Second"},
		},
		CFAssociations: []caseschema.CFAssociation{
			{
				Identifier:         "assoc-1",
				AssociationType:    "isChildOf",
				OriginNodeURI:      caseschema.NodeRef{Identifier: "item-2"},
				DestinationNodeURI: caseschema.NodeRef{Identifier: "item-1"},
			},
		},
	}
}

func TestAssemble_FrameworkOnlySCD(t *testing.T) {
	graph, stats, err := Assemble(frameworkOnly(), FormatSCD)
	require.NoError(t, err)

	require.Len(t, graph.Nodes, 1)
	assert.Equal(t, 0, stats.Items)
	assert.Equal(t, 0, stats.Associations)

	fw := graph.Nodes[0]
	assert.Equal(t, "#fw-1", fw.ID())
	assert.Equal(t, "scd:CompetencyFramework", fw.Type())

	name, ok := fw.Get("scd:name")
	require.True(t, ok)
	assert.Equal(t, "T", name)
}

func TestAssemble_SCDContext(t *testing.T) {
	graph, _, err := Assemble(frameworkOnly(), FormatSCD)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"scd":    "https://w3id.org/skill-credential/",
		"@vocab": "https://w3id.org/skill-credential/",
	}, graph.Context)
}

func TestAssemble_CEASNContext(t *testing.T) {
	graph, _, err := Assemble(frameworkOnly(), FormatCEASN)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"ceasn":  "https://purl.org/ctdlasn/terms/",
		"skos":   "http://www.w3.org/2004/02/skos/core#",
		"@vocab": "https://purl.org/ctdlasn/terms/",
	}, graph.Context)
}

func TestAssemble_SCDCountInvariant(t *testing.T) {
	doc := linkedItems()
	graph, _, err := Assemble(doc, FormatSCD)
	require.NoError(t, err)

	// 1 framework + items + associations, always.
	assert.Len(t, graph.Nodes, 1+len(doc.CFItems)+len(doc.CFAssociations))
}

func TestAssemble_SCDAssociationNode(t *testing.T) {
	graph, _, err := Assemble(linkedItems(), FormatSCD)
	require.NoError(t, err)

	assoc := graph.Nodes[3]
	assert.Equal(t, "http://ex.org/fw#assoc-1", assoc.ID())
	assert.Equal(t, "scd:ResourceAssociation", assoc.Type())

	relation, _ := assoc.Get("scd:relationType")
	assert.Equal(t, "hasPart", relation)

	source, _ := assoc.Get("scd:sourceNode")
	assert.Equal(t, Ref{ID: "http://ex.org/fw#item-2"}, source)

	target, _ := assoc.Get("scd:targetNode")
	assert.Equal(t, Ref{ID: "http://ex.org/fw#item-1"}, target)
}

func TestAssemble_SCDAssociationOptionalFields(t *testing.T) {
	doc := linkedItems()
	seq := 3
	doc.CFAssociations[0].SequenceNumber = &seq
	doc.CFAssociations[0].LastChangeDateTime = "2024-01-01T00:00:00Z"

	graph, _, err := Assemble(doc, FormatSCD)
	require.NoError(t, err)

	assoc := graph.Nodes[3]
	n, _ := assoc.Get("scd:sequenceNumber")
	assert.Equal(t, 3, n)
	modified, _ := assoc.Get("scd:dateModified")
	assert.Equal(t, "2024-01-01T00:00:00Z", modified)
}

func TestAssemble_CEASNEmbedsAssociation(t *testing.T) {
	graph, stats, err := Assemble(linkedItems(), FormatCEASN)
	require.NoError(t, err)

	// Framework + two competencies; no standalone association node.
	require.Len(t, graph.Nodes, 3)
	assert.Equal(t, 0, stats.DroppedRelations)

	origin := graph.Nodes[2]
	require.Equal(t, "http://ex.org/fw#item-2", origin.ID())
	child, ok := origin.Get("ceasn:isChildOf")
	require.True(t, ok)
	assert.Equal(t, Ref{ID: "http://ex.org/fw#item-1"}, child)

	// The destination node is untouched.
	dest := graph.Nodes[1]
	_, ok = dest.Get("ceasn:isChildOf")
	assert.False(t, ok)
}

func TestAssemble_CEASNMergePromotion(t *testing.T) {
	doc := linkedItems()
	doc.CFItems = append(doc.CFItems, caseschema.CFItem{Identifier: "item-3"})
	doc.CFAssociations = append(doc.CFAssociations, caseschema.CFAssociation{
		Identifier:         "assoc-2",
		AssociationType:    "isChildOf",
		OriginNodeURI:      caseschema.NodeRef{Identifier: "item-2"},
		DestinationNodeURI: caseschema.NodeRef{Identifier: "item-3"},
	})

	graph, _, err := Assemble(doc, FormatCEASN)
	require.NoError(t, err)

	origin := graph.Nodes[2]
	value, ok := origin.Get("ceasn:isChildOf")
	require.True(t, ok)
	assert.Equal(t, []any{
		Ref{ID: "http://ex.org/fw#item-1"},
		Ref{ID: "http://ex.org/fw#item-3"},
	}, value)
}

func TestAssemble_UnknownTypePassThroughSCD(t *testing.T) {
	doc := linkedItems()
	doc.CFAssociations[0].AssociationType = "exactMatchOf"

	graph, _, err := Assemble(doc, FormatSCD)
	require.NoError(t, err)

	relation, _ := graph.Nodes[3].Get("scd:relationType")
	assert.Equal(t, "exactMatchOf", relation)
}

func TestAssemble_UnknownTypeCommentCEASN(t *testing.T) {
	doc := linkedItems()
	doc.CFAssociations[0].AssociationType = "exactMatchOf"

	graph, _, err := Assemble(doc, FormatCEASN)
	require.NoError(t, err)

	comment, ok := graph.Nodes[2].Get("ceasn:comment")
	require.True(t, ok)
	assert.Equal(t, "Association exactMatchOf to http://ex.org/fw#item-1", comment)
}

func TestAssemble_HasSkillLevelFallsBackToCommentCEASN(t *testing.T) {
	doc := linkedItems()
	doc.CFAssociations[0].AssociationType = "hasSkillLevel"

	graph, _, err := Assemble(doc, FormatCEASN)
	require.NoError(t, err)

	comment, ok := graph.Nodes[2].Get("ceasn:comment")
	require.True(t, ok)
	assert.Contains(t, comment, "hasSkillLevel")
}

func TestAssemble_DanglingDestinationSCD(t *testing.T) {
	doc := linkedItems()
	doc.CFAssociations[0].DestinationNodeURI = caseschema.NodeRef{Identifier: "item-999"}

	graph, _, err := Assemble(doc, FormatSCD)
	require.NoError(t, err)

	// Dangling references pass through unchanged.
	target, _ := graph.Nodes[3].Get("scd:targetNode")
	assert.Equal(t, Ref{ID: "http://ex.org/fw#item-999"}, target)
}

func TestAssemble_DanglingOriginDroppedCEASN(t *testing.T) {
	doc := linkedItems()
	doc.CFAssociations[0].OriginNodeURI = caseschema.NodeRef{Identifier: "item-999"}

	graph, stats, err := Assemble(doc, FormatCEASN)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.DroppedRelations)
	require.Len(t, graph.Nodes, 3)
	for _, node := range graph.Nodes {
		_, ok := node.Get("ceasn:isChildOf")
		assert.False(t, ok, "no node should have gained the relation")
	}
}

func TestAssemble_FrameworkOriginDroppedCEASN(t *testing.T) {
	// The framework is not a competency: an association originating
	// at the framework cannot be embedded and is dropped.
	doc := linkedItems()
	doc.CFAssociations[0].OriginNodeURI = caseschema.NodeRef{Identifier: "fw-1", URI: "http://ex.org/fw"}

	_, stats, err := Assemble(doc, FormatCEASN)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.DroppedRelations)
}

func TestAssemble_Determinism(t *testing.T) {
	for _, format := range []Format{FormatSCD, FormatCEASN} {
		t.Run(string(format), func(t *testing.T) {
			first, _, err := Assemble(linkedItems(), format)
			require.NoError(t, err)
			second, _, err := Assemble(linkedItems(), format)
			require.NoError(t, err)

			a, err := json.Marshal(first)
			require.NoError(t, err)
			b, err := json.Marshal(second)
			require.NoError(t, err)
			assert.Equal(t, a, b, "same input must marshal byte-identically")
		})
	}
}

func TestAssemble_AbsentFieldsOmitted(t *testing.T) {
	doc := &caseschema.Document{
		CFDocument: caseschema.CFDocument{Identifier: "fw-1"},
		CFItems:    []caseschema.CFItem{{Identifier: "item-1"}},
	}

	graph, _, err := Assemble(doc, FormatSCD)
	require.NoError(t, err)

	assert.Equal(t, 0, graph.Nodes[0].Len())
	assert.Equal(t, 0, graph.Nodes[1].Len())

	data, err := json.Marshal(graph)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "null"), "absent fields must be omitted, not null")
}

func TestAssemble_DuplicateIDRejected(t *testing.T) {
	doc := linkedItems()
	doc.CFItems = append(doc.CFItems, caseschema.CFItem{Identifier: "item-1"})

	_, _, err := Assemble(doc, FormatSCD)
	require.Error(t, err)

	var dup *DuplicateIDError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "http://ex.org/fw#item-1", dup.IRI)
}

func TestAssemble_ValidationRunsFirst(t *testing.T) {
	doc := linkedItems()
	doc.CFDocument.Identifier = ""

	graph, _, err := Assemble(doc, FormatSCD)
	require.Error(t, err)
	assert.Nil(t, graph)

	var verr *caseschema.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestAssemble_CEASNIdentifierProperty(t *testing.T) {
	graph, _, err := Assemble(linkedItems(), FormatCEASN)
	require.NoError(t, err)

	fw := graph.Nodes[0]
	id, ok := fw.Get("ceasn:identifier")
	require.True(t, ok)
	assert.Equal(t, "http://ex.org/fw", id)

	item := graph.Nodes[1]
	id, ok = item.Get("ceasn:identifier")
	require.True(t, ok)
	assert.Equal(t, "http://ex.org/fw#item-1", id)
}

func TestAssemble_CEASNCodedNotationPrefersHumanCodingScheme(t *testing.T) {
	doc := frameworkOnly()
	doc.CFItems = []caseschema.CFItem{{
		Identifier:        "item-1",
		HierarchyCode:     "1.1",
		HumanCodingScheme: "A.1",
	}}

	graph, _, err := Assemble(doc, FormatCEASN)
	require.NoError(t, err)

	code, _ := graph.Nodes[1].Get("ceasn:codedNotation")
	assert.Equal(t, "A.1", code)
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"ieee_scd", "ieee", "scd"} {
		format, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, FormatSCD, format)
	}
	for _, s := range []string{"asn_ctdl", "asn", "ceasn"} {
		format, err := ParseFormat(s)
		require.NoError(t, err)
		assert.Equal(t, FormatCEASN, format)
	}
	_, err := ParseFormat("rdfxml")
	assert.Error(t, err)
}
