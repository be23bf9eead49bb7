package ceasn

// Namespace is the base IRI for CTDL-ASN vocabulary terms.
const Namespace = "https://purl.org/ctdlasn/terms/"

// SKOSNamespace is the base IRI for the SKOS terms CTDL-ASN borrows.
const SKOSNamespace = "http://www.w3.org/2004/02/skos/core#"

// Prefix is the compact-IRI prefix used for CTDL-ASN terms.
const Prefix = "ceasn"

// Class names for translated nodes.
const (
	// ClassFramework is the type of the single framework node.
	ClassFramework = "ceasn:CompetencyFramework"

	// ClassCompetency is the type of each competency node.
	ClassCompetency = "ceasn:Competency"
)

// Framework properties.
const (
	PropIdentifier   = "ceasn:identifier"
	PropName         = "ceasn:name"
	PropDescription  = "ceasn:description"
	PropInLanguage   = "ceasn:inLanguage"
	PropDateModified = "ceasn:dateModified"
	PropPublisher    = "ceasn:publisher"
	PropSource       = "ceasn:source"
	PropRights       = "ceasn:rights"
	PropLicense      = "ceasn:license"
)

// Competency properties.
const (
	PropCompetencyText     = "ceasn:competencyText"
	PropCompetencyLabel    = "ceasn:competencyLabel"
	PropAltLabel           = "skos:altLabel"
	PropConceptKeyword     = "ceasn:conceptKeyword"
	PropCodedNotation      = "ceasn:codedNotation"
	PropCompetencyCategory = "ceasn:competencyCategory"
	PropEducationLevelType = "ceasn:educationLevelType"
)

// Relationship properties embedded on the origin competency.
const (
	PropIsChildOf             = "ceasn:isChildOf"
	PropPrerequisiteAlignment = "ceasn:prerequisiteAlignment"
	PropComment               = "ceasn:comment"
)

// Context returns the fixed JSON-LD @context for CTDL-ASN output.
// It is never derived from input.
func Context() map[string]string {
	return map[string]string{
		Prefix:   Namespace,
		"skos":   SKOSNamespace,
		"@vocab": Namespace,
	}
}
