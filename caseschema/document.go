package caseschema

// NodeRef references a node by identifier, with an optional absolute
// URI that takes precedence during IRI resolution.
type NodeRef struct {
	Identifier string `json:"identifier"`
	URI        string `json:"uri,omitempty"`
}

// CFDocument is the framework record. Exactly one per document.
type CFDocument struct {
	Identifier         string           `json:"identifier"`
	URI                string           `json:"uri,omitempty"`
	Title              string           `json:"title,omitempty"`
	Description        string           `json:"description,omitempty"`
	Language           string           `json:"language,omitempty"`
	AdoptionStatus     string           `json:"adoptionStatus,omitempty"`
	Version            string           `json:"version,omitempty"`
	LastChangeDateTime string           `json:"lastChangeDateTime,omitempty"`
	Publisher          map[string]any   `json:"publisher,omitempty"`
	OfficialSourceURL  string           `json:"officialSourceURL,omitempty"`
	EducationLevel     []string         `json:"educationLevel,omitempty"`
	Subject            []map[string]any `json:"subject,omitempty"`
	Rights             string           `json:"rights,omitempty"`
	License            string           `json:"license,omitempty"`
	Notes              string           `json:"notes,omitempty"`
}

// CFItem is a single competency node. Identifier uniqueness across
// items is assumed, not enforced here.
type CFItem struct {
	Identifier           string           `json:"identifier"`
	URI                  string           `json:"uri,omitempty"`
	FullStatement        string           `json:"fullStatement,omitempty"`
	AlternativeLabel     []string         `json:"alternativeLabel,omitempty"`
	CFItemType           string           `json:"CFItemType,omitempty"`
	HierarchyCode        string           `json:"hierarchyCode,omitempty"`
	AbbreviatedStatement string           `json:"abbreviatedStatement,omitempty"`
	ConceptKeywords      []string         `json:"conceptKeywords,omitempty"`
	ConceptKeywordsURI   []map[string]any `json:"conceptKeywordsUri,omitempty"`
	Notes                string           `json:"notes,omitempty"`
	Language             string           `json:"language,omitempty"`
	EducationLevel       []string         `json:"educationLevel,omitempty"`
	HumanCodingScheme    string           `json:"humanCodingScheme,omitempty"`
}

// CFAssociation is a typed, directed relationship between two nodes.
// AssociationType is an open string, not a closed enum.
type CFAssociation struct {
	Identifier         string         `json:"identifier"`
	URI                string         `json:"uri,omitempty"`
	AssociationType    string         `json:"associationType"`
	OriginNodeURI      NodeRef        `json:"originNodeURI"`
	DestinationNodeURI NodeRef        `json:"destinationNodeURI"`
	CFDocumentURI      map[string]any `json:"CFDocumentURI,omitempty"`
	SequenceNumber     *int           `json:"sequenceNumber,omitempty"`
	LastChangeDateTime string         `json:"lastChangeDateTime,omitempty"`
}

// Document is the three-part CASE input envelope. Item and
// association order is preserved through translation.
type Document struct {
	CFDocument     CFDocument      `json:"CFDocument"`
	CFItems        []CFItem        `json:"CFItems"`
	CFAssociations []CFAssociation `json:"CFAssociations"`
}
