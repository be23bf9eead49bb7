package caseschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDocument() *Document {
	return &Document{
		CFDocument: CFDocument{Identifier: "fw-1", Title: "Test Framework"},
		CFItems: []CFItem{
			{Identifier: "item-1", FullStatement: "First competency"},
			{Identifier: "item-2"},
		},
		CFAssociations: []CFAssociation{
			{
				Identifier:         "assoc-1",
				AssociationType:    "isChildOf",
				OriginNodeURI:      NodeRef{Identifier: "item-2"},
				DestinationNodeURI: NodeRef{Identifier: "item-1"},
			},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, validDocument().Validate())
}

func TestValidate_EmptyLists(t *testing.T) {
	doc := &Document{CFDocument: CFDocument{Identifier: "fw-1"}}
	require.NoError(t, doc.Validate())
}

func TestValidate_MissingFrameworkIdentifier(t *testing.T) {
	doc := validDocument()
	doc.CFDocument.Identifier = ""

	err := doc.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "CFDocument", verr.Record)
	assert.Equal(t, "identifier", verr.Field)
}

func TestValidate_MissingItemIdentifier(t *testing.T) {
	doc := validDocument()
	doc.CFItems[1].Identifier = ""

	err := doc.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "CFItems[1]", verr.Record)
}

func TestValidate_AssociationFields(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*CFAssociation)
		wantRecord string
		wantField  string
	}{
		{
			name:       "missing identifier",
			mutate:     func(a *CFAssociation) { a.Identifier = "" },
			wantRecord: "CFAssociations[0]",
			wantField:  "identifier",
		},
		{
			name:       "missing association type",
			mutate:     func(a *CFAssociation) { a.AssociationType = "" },
			wantRecord: "CFAssociations[0]",
			wantField:  "associationType",
		},
		{
			name:       "missing origin identifier",
			mutate:     func(a *CFAssociation) { a.OriginNodeURI = NodeRef{} },
			wantRecord: "CFAssociations[0].originNodeURI",
			wantField:  "identifier",
		},
		{
			name:       "missing destination identifier",
			mutate:     func(a *CFAssociation) { a.DestinationNodeURI = NodeRef{} },
			wantRecord: "CFAssociations[0].destinationNodeURI",
			wantField:  "identifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(&doc.CFAssociations[0])

			err := doc.Validate()
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantRecord, verr.Record)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestValidate_DanglingReferencesAllowed(t *testing.T) {
	doc := validDocument()
	doc.CFAssociations[0].DestinationNodeURI = NodeRef{Identifier: "item-999"}

	// Referential integrity is not validation's concern.
	require.NoError(t, doc.Validate())
}
