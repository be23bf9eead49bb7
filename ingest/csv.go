package ingest

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/c360studio/casebridge/caseschema"
)

// itemColumnSynonyms maps CASE item fields to accepted column names,
// tried in order; the first non-empty cell wins.
var itemColumnSynonyms = []struct {
	set     func(*caseschema.CFItem, string)
	columns []string
}{
	{func(i *caseschema.CFItem, v string) { i.FullStatement = v }, []string{"fullStatement", "statement"}},
	{func(i *caseschema.CFItem, v string) { i.AbbreviatedStatement = v }, []string{"abbreviatedStatement", "label"}},
	{func(i *caseschema.CFItem, v string) { i.CFItemType = v }, []string{"CFItemType", "type"}},
	{func(i *caseschema.CFItem, v string) { i.HierarchyCode = v }, []string{"hierarchyCode", "code"}},
	{func(i *caseschema.CFItem, v string) { i.Notes = v }, []string{"description", "notes"}},
}

// frameworkOptionalColumns are copied to the framework record when
// present on the first row.
var frameworkOptionalColumns = []struct {
	set    func(*caseschema.CFDocument, string)
	column string
}{
	{func(d *caseschema.CFDocument, v string) { d.Description = v }, "description"},
	{func(d *caseschema.CFDocument, v string) { d.Language = v }, "language"},
	{func(d *caseschema.CFDocument, v string) { d.Version = v }, "version"},
	{func(d *caseschema.CFDocument, v string) { d.LastChangeDateTime = v }, "lastChangeDateTime"},
	{func(d *caseschema.CFDocument, v string) { d.OfficialSourceURL = v }, "officialSourceURL"},
}

// csvReshaper reshapes a single delimited table into a CASE document:
// the table rows become items, and the first row seeds the framework
// record when identifier/title columns are present.
type csvReshaper struct{}

func (c *csvReshaper) Format() Format { return FormatCSV }

func (c *csvReshaper) Reshape(filename string, content []byte) (*caseschema.Document, error) {
	reader := csv.NewReader(bytes.NewReader(content))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse %s as CSV: %w", filename, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s contains no rows", filename)
	}

	header := newHeader(records[0])
	rows := records[1:]

	doc := &caseschema.Document{CFAssociations: []caseschema.CFAssociation{}}

	// The first data row seeds the framework record when identifier and
	// title columns exist, and is consumed by it: a row cannot be both
	// the framework and a competency, since both would resolve to the
	// same fragment IRI in a document without an explicit uri.
	if fw, ok := frameworkFromFirstRow(header, rows); ok {
		doc.CFDocument = fw
		rows = rows[1:]
	} else {
		doc.CFDocument = caseschema.CFDocument{
			Identifier: "csv-import-001",
			Title:      baseName(filename),
		}
	}

	doc.CFItems = tableItems(header, rows)
	return doc, nil
}

func frameworkFromFirstRow(h header, rows [][]string) (caseschema.CFDocument, bool) {
	if !h.has("identifier") || !h.has("title") || len(rows) == 0 {
		return caseschema.CFDocument{}, false
	}

	doc := caseschema.CFDocument{
		Identifier: h.get(rows[0], "identifier"),
		Title:      h.get(rows[0], "title"),
	}
	if doc.Identifier == "" {
		doc.Identifier = "csv-import-001"
	}
	for _, opt := range frameworkOptionalColumns {
		if v := h.get(rows[0], opt.column); v != "" {
			opt.set(&doc, v)
		}
	}
	return doc, true
}

// tableItems converts data rows to items. Rows without an identifier
// cell are skipped rather than treated as an error.
func tableItems(h header, rows [][]string) []caseschema.CFItem {
	items := make([]caseschema.CFItem, 0, len(rows))
	for _, row := range rows {
		id := h.get(row, "identifier")
		if id == "" {
			continue
		}
		item := caseschema.CFItem{Identifier: id}
		for _, syn := range itemColumnSynonyms {
			for _, column := range syn.columns {
				if v := h.get(row, column); v != "" {
					syn.set(&item, v)
					break
				}
			}
		}
		items = append(items, item)
	}
	return items
}

// header indexes column names case-sensitively, trimming surrounding
// whitespace from both names and cells.
type header map[string]int

func newHeader(columns []string) header {
	h := make(header, len(columns))
	for i, name := range columns {
		h[strings.TrimSpace(name)] = i
	}
	return h
}

func (h header) has(column string) bool {
	_, ok := h[column]
	return ok
}

func (h header) get(row []string, column string) string {
	i, ok := h[column]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
