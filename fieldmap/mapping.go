// Package fieldmap holds the static three-way field-mapping reference
// between CASE 1.1, IEEE SCD, and ASN-CTDL. It documents both mapped
// and unmapped fields and backs the /field-mapping endpoint and the
// CSV export.
package fieldmap

// Entry describes how one CASE field maps (or fails to map) into each
// target format.
type Entry struct {
	CASEField  string `json:"case_1_1_field,omitempty"`
	SCDField   string `json:"ieee_scd_field,omitempty"`
	CEASNField string `json:"asn_ctdl_field,omitempty"`
	Mapped     bool   `json:"mapped"`
	Notes      string `json:"notes"`
}

// Table groups mapping entries by source record kind.
type Table struct {
	CFDocument     []Entry `json:"cfDocument"`
	CFItem         []Entry `json:"cfItem"`
	CFAssociation  []Entry `json:"cfAssociation"`
	FormatSpecific []Entry `json:"format_specific"`
}

// Reference returns the full mapping table. The table is a fixed
// constant of the translator, independent of any input.
func Reference() Table {
	return Table{
		CFDocument: []Entry{
			{CASEField: "identifier", SCDField: "@id", CEASNField: "ceasn:identifier (@id)", Mapped: true,
				Notes: "Used to generate @id IRI (same in both formats)"},
			{CASEField: "uri", SCDField: "@id", CEASNField: "@id", Mapped: true,
				Notes: "Used as @id IRI if provided (same in both formats)"},
			{CASEField: "title", SCDField: "scd:name", CEASNField: "ceasn:name", Mapped: true,
				Notes: "Direct mapping (same concept, different namespace)"},
			{CASEField: "description", SCDField: "scd:description", CEASNField: "ceasn:description", Mapped: true,
				Notes: "Direct mapping (same in both formats)"},
			{CASEField: "language", SCDField: "scd:language", CEASNField: "ceasn:inLanguage", Mapped: true,
				Notes: "IEEE SCD: language; ASN-CTDL: inLanguage"},
			{CASEField: "version", SCDField: "scd:version", Mapped: true,
				Notes: "IEEE SCD: version; ASN-CTDL: No direct equivalent"},
			{CASEField: "lastChangeDateTime", SCDField: "scd:dateModified", CEASNField: "ceasn:dateModified", Mapped: true,
				Notes: "Direct mapping (same in both formats)"},
			{CASEField: "publisher", SCDField: "scd:publisher", CEASNField: "ceasn:publisher", Mapped: true,
				Notes: "Direct mapping (object preserved as-is, same in both)"},
			{CASEField: "officialSourceURL", SCDField: "scd:url", CEASNField: "ceasn:source", Mapped: true,
				Notes: "IEEE SCD: url; ASN-CTDL: source"},
			{CASEField: "adoptionStatus", CEASNField: "ceasn:publicationStatusType", Mapped: false,
				Notes: "IEEE SCD: No equivalent; ASN-CTDL: publicationStatusType"},
			{CASEField: "educationLevel", CEASNField: "ceasn:educationLevelType", Mapped: false,
				Notes: "IEEE SCD: No equivalent at framework level; ASN-CTDL: educationLevelType"},
			{CASEField: "subject", CEASNField: "ceasn:localSubject", Mapped: false,
				Notes: "IEEE SCD: No equivalent; ASN-CTDL: localSubject"},
			{CASEField: "rights", CEASNField: "ceasn:rights", Mapped: false,
				Notes: "IEEE SCD: No equivalent; ASN-CTDL: rights"},
			{CASEField: "license", CEASNField: "ceasn:license", Mapped: false,
				Notes: "IEEE SCD: No equivalent; ASN-CTDL: license"},
			{CASEField: "notes", CEASNField: "ceasn:comment", Mapped: false,
				Notes: "IEEE SCD: No equivalent; ASN-CTDL: comment"},
		},
		CFItem: []Entry{
			{CASEField: "identifier", SCDField: "@id", Mapped: true,
				Notes: "Used to generate @id IRI"},
			{CASEField: "uri", SCDField: "@id", Mapped: true,
				Notes: "Used as @id IRI if provided"},
			{CASEField: "fullStatement", SCDField: "scd:statement", CEASNField: "ceasn:competencyText", Mapped: true,
				Notes: "IEEE SCD: statement; ASN-CTDL: competencyText"},
			{CASEField: "abbreviatedStatement", SCDField: "scd:abbreviatedStatement", CEASNField: "ceasn:competencyLabel", Mapped: true,
				Notes: "IEEE SCD: abbreviatedStatement; ASN-CTDL: competencyLabel"},
			{CASEField: "alternativeLabel", SCDField: "scd:alternativeLabel", CEASNField: "skos:altLabel", Mapped: true,
				Notes: "IEEE SCD: alternativeLabel; ASN-CTDL: skos:altLabel"},
			{CASEField: "conceptKeywords", SCDField: "scd:conceptKeyword", CEASNField: "ceasn:conceptKeyword", Mapped: true,
				Notes: "Direct mapping (same in both formats, array)"},
			{CASEField: "hierarchyCode", SCDField: "scd:hierarchyCode", CEASNField: "ceasn:codedNotation", Mapped: true,
				Notes: "IEEE SCD: hierarchyCode; ASN-CTDL: codedNotation"},
			{CASEField: "humanCodingScheme", SCDField: "scd:humanCodingScheme", CEASNField: "ceasn:codedNotation", Mapped: true,
				Notes: "IEEE SCD: humanCodingScheme; ASN-CTDL: codedNotation (or altCodedNotation)"},
			{CASEField: "CFItemType", SCDField: "scd:competencyCategory", CEASNField: "ceasn:competencyCategory", Mapped: true,
				Notes: "Direct mapping (same in both formats)"},
			{CASEField: "language", SCDField: "scd:language", CEASNField: "ceasn:inLanguage", Mapped: true,
				Notes: "IEEE SCD: language; ASN-CTDL: inLanguage"},
			{CASEField: "educationLevel", SCDField: "scd:educationLevel", CEASNField: "ceasn:educationLevelType", Mapped: true,
				Notes: "IEEE SCD: educationLevel; ASN-CTDL: educationLevelType (expects skos:Concept)"},
			{CASEField: "conceptKeywordsUri", CEASNField: "ceasn:conceptTerm", Mapped: false,
				Notes: "IEEE SCD: No equivalent; ASN-CTDL: conceptTerm (skos:Concept)"},
			{CASEField: "notes", CEASNField: "ceasn:comment", Mapped: false,
				Notes: "IEEE SCD: No equivalent; ASN-CTDL: comment"},
		},
		CFAssociation: []Entry{
			{CASEField: "identifier", SCDField: "@id", Mapped: true,
				Notes: "Used to generate @id IRI"},
			{CASEField: "uri", SCDField: "@id", Mapped: true,
				Notes: "Used as @id IRI if provided"},
			{CASEField: "associationType (isChildOf)", SCDField: "scd:relationType = hasPart",
				CEASNField: "ceasn:isChildOf (property on Competency)", Mapped: true,
				Notes: "IEEE SCD: hasPart (separate ResourceAssociation); ASN-CTDL: isChildOf (direct property)"},
			{CASEField: "associationType (precedes)", SCDField: "scd:relationType = precedes",
				CEASNField: "ceasn:prerequisiteAlignment", Mapped: true,
				Notes: "IEEE SCD: precedes; ASN-CTDL: prerequisiteAlignment"},
			{CASEField: "associationType (hasSkillLevel)", SCDField: "scd:relationType = competencyLevel",
				CEASNField: "asn:hasProgressionLevel", Mapped: true,
				Notes: "IEEE SCD: competencyLevel; ASN-CTDL: hasProgressionLevel (references progression model)"},
			{CASEField: "associationType (other)", SCDField: "scd:relationType",
				CEASNField: "Various alignment properties (alignTo, alignFrom, etc.)", Mapped: true,
				Notes: "IEEE SCD: Unmapped types pass through; ASN-CTDL: Various alignment properties available"},
			{CASEField: "originNodeURI", SCDField: "scd:sourceNode.@id",
				CEASNField: "Property on origin Competency", Mapped: true,
				Notes: "IEEE SCD: sourceNode in ResourceAssociation; ASN-CTDL: Direct property on Competency"},
			{CASEField: "destinationNodeURI", SCDField: "scd:targetNode.@id",
				CEASNField: "Value of property on origin Competency", Mapped: true,
				Notes: "IEEE SCD: targetNode in ResourceAssociation; ASN-CTDL: Value of relationship property"},
			{CASEField: "sequenceNumber", SCDField: "scd:sequenceNumber", CEASNField: "ceasn:listID", Mapped: true,
				Notes: "IEEE SCD: sequenceNumber; ASN-CTDL: listID (alphanumeric position)"},
			{CASEField: "lastChangeDateTime", SCDField: "scd:dateModified", CEASNField: "ceasn:dateModified", Mapped: true,
				Notes: "Direct mapping (same in both formats)"},
			{CASEField: "CFDocumentURI", CEASNField: "ceasn:isPartOf", Mapped: false,
				Notes: "IEEE SCD: No equivalent; ASN-CTDL: isPartOf (framework reference)"},
		},
		FormatSpecific: []Entry{
			{SCDField: "@type", CEASNField: "@type", Mapped: false,
				Notes: "Both formats add @type: SCD (scd:CompetencyFramework, scd:CompetencyDefinition, scd:ResourceAssociation); ASN (ceasn:CompetencyFramework, ceasn:Competency)"},
			{SCDField: "@context", CEASNField: "@context", Mapped: false,
				Notes: "Both formats add @context: SCD uses scd namespace; ASN uses ceasn and skos namespaces"},
			{SCDField: "@graph", CEASNField: "@graph", Mapped: false,
				Notes: "Both formats use @graph to contain all translated entities"},
			{SCDField: "scd:ResourceAssociation", Mapped: false,
				Notes: "IEEE SCD: Separate association objects; ASN-CTDL: Relationships are direct properties on Competency"},
			{CEASNField: "ceasn:hasChild", Mapped: false,
				Notes: "ASN-CTDL only: Inverse of isChildOf, indicates child competencies"},
			{CEASNField: "ceasn:alignTo / ceasn:alignFrom", Mapped: false,
				Notes: "ASN-CTDL only: Alignment properties for equivalency assertions"},
		},
	}
}
