package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		filename string
		want     Format
	}{
		{"framework.json", FormatJSON},
		{"framework.jsonld", FormatJSON},
		{"Framework.JSON", FormatJSON},
		{"skills.csv", FormatCSV},
		{"workbook.xlsx", FormatExcel},
		{"legacy.xls", FormatExcel},
	}
	for _, tt := range tests {
		format, err := DetectFormat(tt.filename)
		require.NoError(t, err, tt.filename)
		assert.Equal(t, tt.want, format, tt.filename)
	}

	_, err := DetectFormat("framework.xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}

func TestCSVReshape_FrameworkFromFirstRow(t *testing.T) {
	content := []byte(`identifier,title,description,fullStatement
fw-1,Math Framework,All of mathematics,Count to ten
item-2,,,Count to twenty
`)

	doc, err := DefaultRegistry.Parse("math.csv", content, "")
	require.NoError(t, err)

	assert.Equal(t, "fw-1", doc.CFDocument.Identifier)
	assert.Equal(t, "Math Framework", doc.CFDocument.Title)
	assert.Equal(t, "All of mathematics", doc.CFDocument.Description)

	// The framework row is consumed; remaining rows become items.
	require.Len(t, doc.CFItems, 1)
	assert.Equal(t, "item-2", doc.CFItems[0].Identifier)
	assert.Equal(t, "Count to twenty", doc.CFItems[0].FullStatement)
	assert.Empty(t, doc.CFAssociations)
}

func TestCSVReshape_SynthesizedFramework(t *testing.T) {
	content := []byte(`identifier,statement,label,type,code
item-1,Count to ten,Counting,Competency,1.1
item-2,Count to twenty,,Competency,1.2
`)

	doc, err := DefaultRegistry.Parse("skills.csv", content, "")
	require.NoError(t, err)

	assert.Equal(t, "csv-import-001", doc.CFDocument.Identifier)
	assert.Equal(t, "skills", doc.CFDocument.Title)

	require.Len(t, doc.CFItems, 2)
	assert.Equal(t, "Count to ten", doc.CFItems[0].FullStatement)
	assert.Equal(t, "Counting", doc.CFItems[0].AbbreviatedStatement)
	assert.Equal(t, "Competency", doc.CFItems[0].CFItemType)
	assert.Equal(t, "1.1", doc.CFItems[0].HierarchyCode)
	assert.Empty(t, doc.CFItems[1].AbbreviatedStatement)
}

func TestCSVReshape_SynonymPrecedence(t *testing.T) {
	// fullStatement wins over statement when both columns exist.
	content := []byte(`identifier,fullStatement,statement
item-1,primary,secondary
`)

	doc, err := DefaultRegistry.Parse("skills.csv", content, "")
	require.NoError(t, err)
	require.Len(t, doc.CFItems, 1)
	assert.Equal(t, "primary", doc.CFItems[0].FullStatement)
}

func TestCSVReshape_RowsWithoutIdentifierSkipped(t *testing.T) {
	content := []byte(`identifier,statement
item-1,First
,orphan row
item-2,Second
`)

	doc, err := DefaultRegistry.Parse("skills.csv", content, "")
	require.NoError(t, err)
	require.Len(t, doc.CFItems, 2)
}

func TestCSVReshape_Empty(t *testing.T) {
	_, err := DefaultRegistry.Parse("empty.csv", []byte(""), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no rows")
}

func TestJSONReshape(t *testing.T) {
	content := []byte(`{
		"CFDocument": {"identifier": "fw-1", "title": "T"},
		"CFItems": [{"identifier": "item-1"}],
		"CFAssociations": []
	}`)

	doc, err := DefaultRegistry.Parse("case.json", content, "")
	require.NoError(t, err)
	assert.Equal(t, "fw-1", doc.CFDocument.Identifier)
	require.Len(t, doc.CFItems, 1)
}

func TestJSONReshape_Invalid(t *testing.T) {
	_, err := DefaultRegistry.Parse("case.json", []byte("{not json"), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid CASE JSON")
}

func TestParse_OverrideWinsOverExtension(t *testing.T) {
	content := []byte(`{"CFDocument": {"identifier": "fw-1"}}`)

	// Extension says CSV; override says JSON.
	doc, err := DefaultRegistry.Parse("mislabeled.csv", content, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, "fw-1", doc.CFDocument.Identifier)
}
