package ingest

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/c360studio/casebridge/caseschema"
)

// Sheet-name synonyms, matched case-insensitively.
var (
	frameworkSheetNames   = []string{"cfdocument", "document", "framework"}
	itemSheetNames        = []string{"cfitems", "items", "competencies", "skills"}
	associationSheetNames = []string{"cfassociations", "associations", "relationships"}
)

// excelReshaper reshapes a multi-sheet workbook into a CASE document.
// Sheets are matched by name; when no item sheet is found, the first
// sheet is used for items.
type excelReshaper struct{}

func (e *excelReshaper) Format() Format { return FormatExcel }

func (e *excelReshaper) Reshape(filename string, content []byte) (*caseschema.Document, error) {
	workbook, err := excelize.OpenReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("cannot open %s as a spreadsheet: %w", filename, err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s contains no sheets", filename)
	}

	var frameworkSheet, itemSheet, associationSheet string
	for _, sheet := range sheets {
		switch {
		case matchSheet(sheet, frameworkSheetNames):
			frameworkSheet = sheet
		case matchSheet(sheet, itemSheetNames):
			itemSheet = sheet
		case matchSheet(sheet, associationSheetNames):
			associationSheet = sheet
		}
	}
	if itemSheet == "" {
		itemSheet = sheets[0]
	}

	doc := &caseschema.Document{
		CFDocument:     caseschema.CFDocument{Identifier: "excel-import-001", Title: baseName(filename)},
		CFItems:        []caseschema.CFItem{},
		CFAssociations: []caseschema.CFAssociation{},
	}

	if frameworkSheet != "" {
		h, rows, err := sheetTable(workbook, frameworkSheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", frameworkSheet, err)
		}
		if len(rows) > 0 {
			doc.CFDocument = excelFramework(h, rows[0], filename)
		}
	}

	h, rows, err := sheetTable(workbook, itemSheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", itemSheet, err)
	}
	if itemSheet == frameworkSheet && len(rows) > 0 {
		// The framework row is consumed and never doubles as an item.
		rows = rows[1:]
	}
	doc.CFItems = tableItems(h, rows)

	if associationSheet != "" {
		h, rows, err := sheetTable(workbook, associationSheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", associationSheet, err)
		}
		doc.CFAssociations = tableAssociations(h, rows)
	}

	return doc, nil
}

func excelFramework(h header, row []string, filename string) caseschema.CFDocument {
	doc := caseschema.CFDocument{
		Identifier: h.get(row, "identifier"),
		Title:      h.get(row, "title"),
	}
	if doc.Identifier == "" {
		doc.Identifier = "excel-import-001"
	}
	if doc.Title == "" {
		doc.Title = baseName(filename)
	}
	for _, opt := range frameworkOptionalColumns {
		if v := h.get(row, opt.column); v != "" {
			opt.set(&doc, v)
		}
	}
	return doc
}

// tableAssociations converts rows to associations. Rows missing any
// of the four required cells are skipped.
func tableAssociations(h header, rows [][]string) []caseschema.CFAssociation {
	assocs := make([]caseschema.CFAssociation, 0, len(rows))
	for _, row := range rows {
		id := h.get(row, "identifier")
		assocType := h.get(row, "associationType")
		origin := firstOf(h, row, "originNodeURI", "originIdentifier")
		dest := firstOf(h, row, "destinationNodeURI", "destinationIdentifier")
		if id == "" || assocType == "" || origin == "" || dest == "" {
			continue
		}
		assocs = append(assocs, caseschema.CFAssociation{
			Identifier:         id,
			AssociationType:    assocType,
			OriginNodeURI:      caseschema.NodeRef{Identifier: origin},
			DestinationNodeURI: caseschema.NodeRef{Identifier: dest},
		})
	}
	return assocs
}

func sheetTable(workbook *excelize.File, sheet string) (header, [][]string, error) {
	rows, err := workbook.GetRows(sheet)
	if err != nil {
		return nil, nil, err
	}
	if len(rows) == 0 {
		return header{}, nil, nil
	}
	return newHeader(rows[0]), rows[1:], nil
}

func matchSheet(sheet string, names []string) bool {
	lower := strings.ToLower(strings.TrimSpace(sheet))
	for _, name := range names {
		if lower == name {
			return true
		}
	}
	return false
}

func firstOf(h header, row []string, columns ...string) string {
	for _, column := range columns {
		if v := h.get(row, column); v != "" {
			return v
		}
	}
	return ""
}

func baseName(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
}
