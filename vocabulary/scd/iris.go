package scd

// Namespace is the base IRI for IEEE SCD vocabulary terms.
const Namespace = "https://w3id.org/skill-credential/"

// Prefix is the compact-IRI prefix used for SCD terms.
const Prefix = "scd"

// Class names for translated nodes.
const (
	// ClassFramework is the type of the single framework node.
	ClassFramework = "scd:CompetencyFramework"

	// ClassCompetency is the type of each competency node.
	ClassCompetency = "scd:CompetencyDefinition"

	// ClassAssociation is the type of each standalone association node.
	ClassAssociation = "scd:ResourceAssociation"
)

// Framework properties.
const (
	PropName         = "scd:name"
	PropDescription  = "scd:description"
	PropLanguage     = "scd:language"
	PropVersion      = "scd:version"
	PropDateModified = "scd:dateModified"
	PropPublisher    = "scd:publisher"
	PropURL          = "scd:url"
)

// Competency properties.
const (
	PropStatement            = "scd:statement"
	PropAbbreviatedStatement = "scd:abbreviatedStatement"
	PropAlternativeLabel     = "scd:alternativeLabel"
	PropConceptKeyword       = "scd:conceptKeyword"
	PropHierarchyCode        = "scd:hierarchyCode"
	PropHumanCodingScheme    = "scd:humanCodingScheme"
	PropCompetencyCategory   = "scd:competencyCategory"
	PropEducationLevel       = "scd:educationLevel"
)

// Association properties.
const (
	PropRelationType   = "scd:relationType"
	PropSourceNode     = "scd:sourceNode"
	PropTargetNode     = "scd:targetNode"
	PropSequenceNumber = "scd:sequenceNumber"
)

// Context returns the fixed JSON-LD @context for SCD output.
// It is never derived from input.
func Context() map[string]string {
	return map[string]string{
		Prefix:   Namespace,
		"@vocab": Namespace,
	}
}
